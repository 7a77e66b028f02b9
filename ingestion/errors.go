package ingestion

import "errors"

// ErrChunkRegistryRequired is returned when creating a pipeline without a chunk registry.
var ErrChunkRegistryRequired = errors.New("chunk registry is required")

// ErrVectorStoreRequired is returned when creating a pipeline without a vector store.
var ErrVectorStoreRequired = errors.New("vector store is required")

// ErrDepartmentRequired is returned when ingesting a file without a department.
var ErrDepartmentRequired = errors.New("department is required")
