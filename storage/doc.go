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


// Package storage defines the metadata/audit store contracts.
//
// Two repositories back the system:
//
//   - ChunkRegistry: chunk provenance, keyed by chunk ID with upsert
//     semantics. Chunks are never updated or deleted once written.
//   - ChatLog: the append-only audit record of answered queries, with
//     store-assigned monotonic IDs. Entries are immutable.
//
// The storage/badger sub-package provides the BadgerDB implementation.
// Values are serialized with the MUS binary format (see core package
// serializers).
package storage
