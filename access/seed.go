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
	"os"

	"gopkg.in/yaml.v3"

	"github.com/finsolve/finsight/core"
)

// SeedRole declares a role in a seed file.
type SeedRole struct {
	Name       string `yaml:"name"`
	Privileged bool   `yaml:"privileged"`
}

// SeedUser declares a user in a seed file. Passwords are plaintext in the
// file and hashed on load; seed files are for bootstrap only.
type SeedUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// SeedFile is the YAML layout for bootstrapping roles and users.
type SeedFile struct {
	Roles []SeedRole `yaml:"roles"`
	Users []SeedUser `yaml:"users"`
}

// LoadSeedFile reads and parses a YAML seed file.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}
	return &seed, nil
}

// Apply registers every role and user from the seed into the registry.
// Duplicate usernames in the seed fail the whole load.
func (r *Registry) Apply(seed *SeedFile) error {
	for _, role := range seed.Roles {
		r.AddRole(core.Role{Name: role.Name, Privileged: role.Privileged})
	}
	for _, user := range seed.Users {
		if err := r.CreateUser(user.Username, user.Password, user.Role); err != nil {
			return fmt.Errorf("seeding user %q: %w", user.Username, err)
		}
	}
	return nil
}
