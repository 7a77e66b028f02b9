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


// Package server exposes the question-answering service over HTTP.
//
// All endpoints except the health check sit behind HTTP basic auth
// resolved against the access registry. Administrative endpoints
// (document upload, user and role creation) additionally require a
// privileged role. Errors surface as structured JSON with status codes
// mapped from the core error taxonomy.
package server
