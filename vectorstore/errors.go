package vectorstore

import "errors"

// ErrStoreClosed is returned when operating on a closed store.
var ErrStoreClosed = errors.New("vector store is closed")

// ErrInvalidK is returned when a search requests a non-positive result count.
var ErrInvalidK = errors.New("result count must be positive")
