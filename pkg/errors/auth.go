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

// Authentication-specific errors

// NewNotAuthorizedError creates a not authorized error
func NewNotAuthorizedError(operation string) *StructuredError {
	return New(ErrCodeNotAuthorized, "Operation requires admin privileges", "operation '"+operation+"' is admin-only")
}

// NewLoginFailedError creates a login failure error.
// The message distinguishes unknown users from wrong passwords, matching the
// two-step login prompt behavior.
func NewLoginFailedError(reason string) *StructuredError {
	return New(ErrCodeNotAuthorized, reason)
}
