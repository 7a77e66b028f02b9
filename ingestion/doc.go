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


// Package ingestion turns source documents into scoped, embedded chunks.
//
// The pipeline loads a document, splits its text into overlapping chunks,
// assigns each chunk a fresh ID and the department's role scope, then
// writes the chunk to the vector store and its provenance to the chunk
// registry. Single-file ingestion serves uploads; directory ingestion
// walks department subdirectories and processes files concurrently,
// skipping files that fail to load.
package ingestion
