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

// Task-domain errors

// NewAlreadyCompletedError creates an already completed error
func NewAlreadyCompletedError(index string) *StructuredError {
	return New(ErrCodeAlreadyCompleted,
		"Sorry this task is already marked as completed. You cannot edit it further",
		"task "+index+" is completed and immutable")
}

// NewNotAssignedToUserError creates an error for an index owned by someone else
func NewNotAssignedToUserError(index string) *StructuredError {
	return New(ErrCodeNotAssignedToUser,
		"Task with this index is not assigned to you",
		"task "+index+" exists under a different owner")
}

// NewEmptyTaskSetError creates an error for statistics over zero tasks
func NewEmptyTaskSetError() *StructuredError {
	return New(ErrCodeEmptyTaskSet,
		"There are no tasks yet, so system percentages cannot be computed")
}
