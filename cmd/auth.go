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
package cmd

import (
	"os"

	"tasktrack/internal/platform"
	apperrors "tasktrack/pkg/errors"
	"tasktrack/pkg/users"

	"github.com/spf13/cobra"
)

const (
	userEnvVar     = "TASKTRACK_USER"
	passwordEnvVar = "TASKTRACK_PASSWORD"
)

// LoginGuard resolves credentials, authenticates them against the user
// directory and returns the logged-in username with the platform. Flags win
// over environment variables.
func LoginGuard(cmd *cobra.Command) (string, *platform.Platform, error) {
	app := platform.MustFromContext(cmd.Context())

	username, password := resolveCredentials()
	if username == "" {
		return "", nil, apperrors.NewLoginFailedError(
			"Login required: pass --user/--password or set " + userEnvVar + " and " + passwordEnvVar)
	}

	if !app.Users.Exists(cmd.Context(), username) {
		return "", nil, apperrors.NewLoginFailedError("User does not exist")
	}
	if !app.Users.Authenticate(cmd.Context(), username, password) {
		return "", nil, apperrors.NewLoginFailedError("Wrong password")
	}

	app.Log.Debug().Str("user", username).Msg("login successful")
	return username, app, nil
}

// AdminGuard is LoginGuard plus the admin-only check
func AdminGuard(cmd *cobra.Command, operation string) (string, *platform.Platform, error) {
	username, app, err := LoginGuard(cmd)
	if err != nil {
		return "", nil, err
	}
	if username != users.AdminUsername {
		return "", nil, apperrors.NewNotAuthorizedError(operation)
	}
	return username, app, nil
}

// resolveCredentials returns the login pair from flags or environment
func resolveCredentials() (string, string) {
	username, password := UserFlag, PasswordFlag
	if username == "" {
		username = os.Getenv(userEnvVar)
	}
	if password == "" {
		password = os.Getenv(passwordEnvVar)
	}
	return username, password
}
