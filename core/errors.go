// Copyright 2026 FinSolve Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// Error taxonomy shared across packages. Handlers map these onto HTTP
// status codes; internal callers test them with errors.Is.
var (
	// ErrUnauthenticated indicates bad or missing credentials.
	ErrUnauthenticated = errors.New("invalid credentials")

	// ErrForbidden indicates a non-privileged role attempting an
	// administrative operation.
	ErrForbidden = errors.New("operation requires a privileged role")

	// ErrUnsupportedFileType indicates ingestion was given a file with an
	// unrecognized extension.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrUpstreamService indicates the embedding or generation service was
	// unreachable or returned an error.
	ErrUpstreamService = errors.New("upstream service error")

	// ErrDeadlineExceeded indicates an embedding or generation call ran past
	// its configured deadline.
	ErrDeadlineExceeded = errors.New("deadline exceeded")

	// ErrUserExists indicates a create-user conflict on username.
	ErrUserExists = errors.New("user already exists")

	// ErrUnknownUser indicates a lookup for a username that was never created.
	ErrUnknownUser = errors.New("unknown user")
)

// Domain validation errors.
var (
	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrInvalidLogEntry indicates a ChatLogEntry failed validation.
	ErrInvalidLogEntry = errors.New("invalid chat log entry")

	// ErrEmptyChunkID indicates the ChunkID field is empty.
	ErrEmptyChunkID = errors.New("chunk id cannot be empty")

	// ErrEmptyRoleScope indicates the RoleScope field is empty.
	ErrEmptyRoleScope = errors.New("role scope cannot be empty")

	// ErrEmptyUsername indicates the Username field is empty.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrPreviewTooLong indicates an AnswerPreview over the persisted limit.
	ErrPreviewTooLong = errors.New("answer preview exceeds limit")
)
