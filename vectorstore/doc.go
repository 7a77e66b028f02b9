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


// Package vectorstore defines the similarity-search retrieval layer.
//
// A Store holds embedded chunks and answers scoped nearest-neighbor
// queries. Retrieval scope is enforced inside the store itself: the
// filter travels with every search so a caller can never widen its own
// visibility by post-filtering.
//
// Two implementations exist: vectorstore/chroma backed by a Chroma
// server, and vectorstore/memory for tests and single-node setups.
package vectorstore
