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

// Package users provides the public model and interfaces for the user
// directory: the ordered username→password mapping that gates every command.
package users

// AdminUsername is the only account allowed to register users and run reports
const AdminUsername = "admin"

// DefaultAdminPassword seeds the bootstrap admin account on first run.
// Passwords are stored and compared in plain text; credential security is an
// explicit non-goal of this tool.
const DefaultAdminPassword = "password"

// User is one credential entry. Neither field may contain the record
// delimiter.
type User struct {
	Username string
	Password string
}

// IsAdmin reports whether this user holds admin privileges
func (u *User) IsAdmin() bool {
	return u.Username == AdminUsername
}
