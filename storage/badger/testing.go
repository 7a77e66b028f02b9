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


package badger

import "github.com/finsolve/finsight/storage"

// NewMemoryStores creates an in-memory chunk registry and chat log for testing.
// Returns registry, chatLog, backend, and error.
// Caller must close the chat log and backend when done.
func NewMemoryStores() (storage.ChunkRegistry, storage.ChatLog, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}

	registry := NewChunkRegistry(backend)

	chatLog, err := NewChatLog(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	return registry, chatLog, backend, nil
}
