/*
Copyright © 2025 Ian Shuley

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package users

import "context"

// Directory is the main interface for credential operations. Like the task
// store it owns its records for the process lifetime: loaded once, full
// rewrite after every registration. Usernames keep file order, which is also
// registration order and the iteration order of the per-user report.
type Directory interface {
	// Load reads the persisted directory, seeding the bootstrap admin
	// account when no directory exists yet
	Load(ctx context.Context) error

	// Exists reports whether username is registered
	Exists(ctx context.Context, username string) bool

	// Authenticate checks an exact match on username and password
	Authenticate(ctx context.Context, username, password string) bool

	// Register adds a new credential entry. Only the admin account may
	// register users; duplicates, delimiter-unsafe fields and mismatched
	// confirmations are rejected before anything is persisted.
	Register(ctx context.Context, requestingUsername, newUsername, newPassword, confirmPassword string) error

	// Usernames returns all registered usernames in directory order
	Usernames(ctx context.Context) []string

	// Count returns the number of registered users
	Count(ctx context.Context) int
}

// Repository is the storage interface for the user directory
type Repository interface {
	// LoadAll reads every credential entry in file order. When no data has
	// ever been persisted it seeds and returns the bootstrap admin entry.
	LoadAll(ctx context.Context) ([]User, error)

	// SaveAll rewrites the entire persisted directory
	SaveAll(ctx context.Context, entries []User) error
}
