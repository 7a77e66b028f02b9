package query

import "errors"

// ErrRegistryRequired is returned when creating an engine without an access registry.
var ErrRegistryRequired = errors.New("access registry is required")

// ErrVectorStoreRequired is returned when creating an engine without a vector store.
var ErrVectorStoreRequired = errors.New("vector store is required")

// ErrGeneratorRequired is returned when creating an engine without a generator.
var ErrGeneratorRequired = errors.New("generator is required")

// ErrChatLogRequired is returned when creating an engine without a chat log.
var ErrChatLogRequired = errors.New("chat log is required")

// ErrEmptyQuery is returned when the question text is blank.
var ErrEmptyQuery = errors.New("query is empty")
