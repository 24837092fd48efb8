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

// Package errors defines the structured error taxonomy shared by every
// tasktrack domain. All recoverable failures carry a stable ErrorCode so the
// CLI can map them to user-visible messages without string matching.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode identifies a category of failure
type ErrorCode string

const (
	// ErrCodeMalformedRecord means a persisted line could not be decoded (fatal at load)
	ErrCodeMalformedRecord ErrorCode = "MALFORMED_RECORD"

	// ErrCodeUnknownUser means a referenced username is not in the user directory
	ErrCodeUnknownUser ErrorCode = "UNKNOWN_USER"

	// ErrCodeInvalidField means a field failed delimiter-safety or format validation
	ErrCodeInvalidField ErrorCode = "INVALID_FIELD"

	// ErrCodeDuplicateUser means the username is already registered
	ErrCodeDuplicateUser ErrorCode = "DUPLICATE_USER"

	// ErrCodePasswordMismatch means password and confirmation differ
	ErrCodePasswordMismatch ErrorCode = "PASSWORD_MISMATCH"

	// ErrCodeNotAuthorized means the requesting user lacks admin privileges
	ErrCodeNotAuthorized ErrorCode = "NOT_AUTHORIZED"

	// ErrCodeAlreadyCompleted means a completed task was asked to change
	ErrCodeAlreadyCompleted ErrorCode = "ALREADY_COMPLETED"

	// ErrCodeNotAssignedToUser means the task index exists but under another owner
	ErrCodeNotAssignedToUser ErrorCode = "NOT_ASSIGNED_TO_USER"

	// ErrCodeEmptyTaskSet means system-wide percentages were requested with zero tasks
	ErrCodeEmptyTaskSet ErrorCode = "EMPTY_TASK_SET"

	// ErrCodeNotFound means no record matched the lookup
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeStorageFailure means the storage backend failed
	ErrCodeStorageFailure ErrorCode = "STORAGE_FAILURE"
)

// StructuredError is the error type returned by all domain operations.
// Message is safe to show to the user; Details adds context for logs.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Details string
	Cause   error
}

func (e *StructuredError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As chains
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// UserMessage returns the message meant for terminal display
func (e *StructuredError) UserMessage() string {
	return e.Message
}

// New creates a structured error. The optional trailing argument becomes Details.
func New(code ErrorCode, message string, details ...string) *StructuredError {
	e := &StructuredError{Code: code, Message: message}
	if len(details) > 0 {
		e.Details = details[0]
	}
	return e
}

// Wrap creates a structured error around an underlying cause
func Wrap(cause error, code ErrorCode, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause}
}

// CodeOf extracts the ErrorCode from err, or "" when err is not structured
func CodeOf(err error) ErrorCode {
	var structured *StructuredError
	if stderrors.As(err, &structured) {
		return structured.Code
	}
	return ""
}

// HasCode reports whether err (or anything it wraps) carries the given code
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
