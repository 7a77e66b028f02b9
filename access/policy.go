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


package access

const (
	// BaselineRole is the non-privileged general-staff role. Its queries are
	// scoped to GeneralScope documents only.
	BaselineRole = "employee"

	// GeneralScope is the role scope for documents visible to the baseline role.
	GeneralScope = "general"
)

// RetrievalFilter is the scope restriction applied to a similarity search.
// The zero value restricts to an empty scope; use Unrestricted or ScopeTo.
type RetrievalFilter struct {
	// RoleScope is the department scope chunks must carry. Ignored when
	// Unrestricted is true.
	RoleScope string

	// Unrestricted disables scope filtering entirely (privileged roles).
	Unrestricted bool
}

// Unrestricted returns the filter used for privileged roles.
func Unrestricted() RetrievalFilter {
	return RetrievalFilter{Unrestricted: true}
}

// ScopeTo returns a filter restricted to a single role scope.
func ScopeTo(scope string) RetrievalFilter {
	return RetrievalFilter{RoleScope: scope}
}

// Allows reports whether a chunk with the given role scope passes the filter.
func (f RetrievalFilter) Allows(roleScope string) bool {
	if f.Unrestricted {
		return true
	}
	return roleScope == f.RoleScope
}
