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

package errors

// Validation-specific errors

// NewInvalidFieldError creates an invalid field error
func NewInvalidFieldError(field, reason string) *StructuredError {
	return New(ErrCodeInvalidField, "Invalid value for "+field, reason)
}

// NewUnknownUserError creates an unknown user error
func NewUnknownUserError(username string) *StructuredError {
	return New(ErrCodeUnknownUser, "User does not exist. Please enter a valid username", "no user named '"+username+"'")
}

// NewDuplicateUserError creates a duplicate user error
func NewDuplicateUserError(username string) *StructuredError {
	return New(ErrCodeDuplicateUser, "User name you entered already exists", "user '"+username+"' is already registered")
}

// NewPasswordMismatchError creates a password mismatch error
func NewPasswordMismatchError() *StructuredError {
	return New(ErrCodePasswordMismatch, "Passwords do not match")
}
