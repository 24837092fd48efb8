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

// Package validate holds the pure field-safety rules applied before any store
// mutation. A field that reaches persistence must never be able to split a
// record line, so everything user-entered is screened for the delimiter here.
package validate

import (
	"strings"
	"time"

	"tasktrack/internal/codec"
	apperrors "tasktrack/pkg/errors"
	"tasktrack/pkg/tasks"
)

// SafeField rejects a value containing the record delimiter. The field name
// appears in the user-visible message.
func SafeField(field, value string) error {
	if strings.Contains(value, codec.Delimiter) {
		return apperrors.NewInvalidFieldError(field,
			"Your input cannot contain a '"+codec.Delimiter+"' character")
	}
	return nil
}

// SafeCredentials screens both registration fields at once
func SafeCredentials(username, password string) error {
	if strings.Contains(username, codec.Delimiter) || strings.Contains(password, codec.Delimiter) {
		return apperrors.NewInvalidFieldError("username or password",
			"Username or password cannot contain '"+codec.Delimiter+"'")
	}
	return nil
}

// ParseDueDate parses a due date in the fixed day-month-year layout
func ParseDueDate(value string) (time.Time, error) {
	parsed, err := time.Parse(tasks.DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewInvalidFieldError("due date",
			"Invalid datetime format. Please use the format "+tasks.DateLayout)
	}
	return parsed, nil
}
