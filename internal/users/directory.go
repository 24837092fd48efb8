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

// Package users implements the user directory: the ordered credential
// mapping loaded once at startup and rewritten in full on registration.
package users

import (
	"context"

	"tasktrack/internal/validate"
	apperrors "tasktrack/pkg/errors"
	"tasktrack/pkg/users"
)

// DirectoryImpl implements the users.Directory interface. The username order
// slice preserves file order, which the per-user report iterates.
type DirectoryImpl struct {
	repo      users.Repository
	order     []string
	passwords map[string]string
}

// NewDirectory creates a user directory backed by repo
func NewDirectory(repo users.Repository) users.Directory {
	return &DirectoryImpl{
		repo:      repo,
		passwords: make(map[string]string),
	}
}

// Load reads the persisted directory, seeding the bootstrap admin on first run
func (d *DirectoryImpl) Load(ctx context.Context) error {
	entries, err := d.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	d.order = d.order[:0]
	d.passwords = make(map[string]string, len(entries))
	for _, entry := range entries {
		d.order = append(d.order, entry.Username)
		d.passwords[entry.Username] = entry.Password
	}
	return nil
}

// Exists reports whether username is registered
func (d *DirectoryImpl) Exists(ctx context.Context, username string) bool {
	_, ok := d.passwords[username]
	return ok
}

// Authenticate checks an exact plaintext match on both fields
func (d *DirectoryImpl) Authenticate(ctx context.Context, username, password string) bool {
	stored, ok := d.passwords[username]
	return ok && stored == password
}

// Register appends a new credential entry and rewrites the directory. Every
// rejection happens before anything is persisted, so a failed registration
// leaves both memory and file untouched.
func (d *DirectoryImpl) Register(ctx context.Context, requestingUsername, newUsername, newPassword, confirmPassword string) error {
	if requestingUsername != users.AdminUsername {
		return apperrors.NewNotAuthorizedError("register")
	}
	if _, ok := d.passwords[newUsername]; ok {
		return apperrors.NewDuplicateUserError(newUsername)
	}
	if err := validate.SafeCredentials(newUsername, newPassword); err != nil {
		return err
	}
	if newPassword != confirmPassword {
		return apperrors.NewPasswordMismatchError()
	}

	entries := make([]users.User, 0, len(d.order)+1)
	for _, username := range d.order {
		entries = append(entries, users.User{Username: username, Password: d.passwords[username]})
	}
	entries = append(entries, users.User{Username: newUsername, Password: newPassword})

	if err := d.repo.SaveAll(ctx, entries); err != nil {
		return err
	}

	d.order = append(d.order, newUsername)
	d.passwords[newUsername] = newPassword
	return nil
}

// Usernames returns all registered usernames in directory order
func (d *DirectoryImpl) Usernames(ctx context.Context) []string {
	return append([]string(nil), d.order...)
}

// Count returns the number of registered users
func (d *DirectoryImpl) Count(ctx context.Context) int {
	return len(d.order)
}
