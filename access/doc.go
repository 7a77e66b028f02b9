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


// Package access implements the role registry and the retrieval-scope policy.
//
// Roles are explicit values with a privilege flag, looked up by exact name.
// The policy maps a role name to a RetrievalFilter:
//
//   - privileged roles retrieve without restriction
//   - the baseline role ("employee") is scoped to "general" documents
//   - any other name, known or not, is treated as a literal department scope
//
// The registry also holds the process-lifetime user table. Users and roles
// are create-only; all writes go through a single mutex so concurrent
// create-user calls against the same username cannot race.
package access
