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

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/go-crypt/x/bcrypt"

	"github.com/finsolve/finsight/core"
)

// Registry is the process-lifetime store of roles and users.
// All mutation goes through a single write lock; reads are concurrent.
type Registry struct {
	mu     sync.RWMutex
	roles  map[string]core.Role
	users  map[string]core.User
	logger *slog.Logger
}

// NewRegistry creates an empty registry with the baseline role pre-registered.
func NewRegistry() *Registry {
	r := &Registry{
		roles:  make(map[string]core.Role),
		users:  make(map[string]core.User),
		logger: slog.Default().With("component", "access-registry"),
	}
	r.roles[BaselineRole] = core.Role{Name: BaselineRole}
	return r
}

// AddRole registers a role, overwriting any previous definition of the same
// name. Role names are normalized to lower case, matching the scopes that
// ingestion attaches to chunks.
func (r *Registry) AddRole(role core.Role) {
	role.Name = strings.ToLower(role.Name)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles[role.Name] = role
}

// CreateRole registers a new non-privileged role whose name becomes a real,
// enforceable retrieval scope. Creating an existing role is a no-op.
func (r *Registry) CreateRole(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("role name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.roles[name]; ok {
		return nil
	}
	r.roles[name] = core.Role{Name: name}
	r.logger.Info("role created", "role", name)
	return nil
}

// Roles returns the sorted unique role names currently known.
func (r *Registry) Roles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.roles))
	for name := range r.roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Role looks up a role by exact name. The second return is false for names
// that were never registered.
func (r *Registry) Role(name string) (core.Role, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	role, ok := r.roles[strings.ToLower(name)]
	return role, ok
}

// IsPrivileged reports whether the named role carries the privilege flag.
// Unknown role names are never privileged.
func (r *Registry) IsPrivileged(name string) bool {
	role, ok := r.Role(name)
	return ok && role.Privileged
}

// ScopeFor maps a role name to its retrieval filter. Rules, in order:
// privileged roles are unrestricted; the baseline role sees GeneralScope;
// every other name, registered or not, is treated as a literal department
// scope.
func (r *Registry) ScopeFor(roleName string) RetrievalFilter {
	roleName = strings.ToLower(roleName)

	if r.IsPrivileged(roleName) {
		return Unrestricted()
	}
	if roleName == BaselineRole {
		return ScopeTo(GeneralScope)
	}
	return ScopeTo(roleName)
}

// CreateUser creates a user with a bcrypt-hashed credential.
// Returns core.ErrUserExists if the username is taken.
func (r *Registry) CreateUser(username, password, roleName string) error {
	if username == "" {
		return core.ErrEmptyUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[username]; ok {
		return core.ErrUserExists
	}
	r.users[username] = core.User{
		Username:     username,
		PasswordHash: string(hash),
		RoleName:     strings.ToLower(roleName),
	}
	r.logger.Info("user created", "username", username, "role", roleName)
	return nil
}

// Authenticate verifies a username/password pair.
// Returns core.ErrUnauthenticated for unknown users and bad passwords alike.
func (r *Registry) Authenticate(username, password string) (*core.User, error) {
	r.mu.RLock()
	user, ok := r.users[username]
	r.mu.RUnlock()

	if !ok {
		return nil, core.ErrUnauthenticated
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, core.ErrUnauthenticated
	}
	return &user, nil
}

// User looks up a user by username.
func (r *Registry) User(username string) (*core.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return nil, core.ErrUnknownUser
	}
	return &user, nil
}
