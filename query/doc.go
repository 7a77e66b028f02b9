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


// Package query answers user questions from retrieved document chunks.
//
// The engine derives a retrieval filter from the caller's role, runs a
// scoped similarity search, and grounds the language model on the
// retrieved text only. Every answered query, including the no-evidence
// case, is appended to the audit log before the answer is returned.
package query
