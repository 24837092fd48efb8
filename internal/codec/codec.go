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

// Package codec serializes task and user records to and from the
// semicolon-delimited line format of the persisted record files. It owns the
// delimiter: fields reaching a record must already be delimiter-free, which
// the validate package enforces before any store mutation.
package codec

import (
	"fmt"
	"strings"
	"time"

	apperrors "tasktrack/pkg/errors"
	"tasktrack/pkg/tasks"
	"tasktrack/pkg/users"
)

// Delimiter separates fields within a persisted record line
const Delimiter = ";"

const (
	taskFieldCount = 7
	userFieldCount = 2
)

// EncodeTask renders a task as a single record line:
// index;username;title;description;due_date;assigned_date;completed
func EncodeTask(t *tasks.Task) string {
	fields := []string{
		t.Index,
		t.Username,
		t.Title,
		t.Description,
		t.DueDate.Format(tasks.DateLayout),
		t.AssignedDate.Format(tasks.DateLayout),
		t.CompletionLabel(),
	}
	return strings.Join(fields, Delimiter)
}

// DecodeTask parses a record line into a task. The line must have exactly
// seven fields and both dates must parse in the fixed day-month-year layout;
// anything else is a MALFORMED_RECORD error. The completion flag maps "Yes"
// to true and any other token to false.
func DecodeTask(line string) (*tasks.Task, error) {
	fields := strings.Split(line, Delimiter)
	if len(fields) != taskFieldCount {
		return nil, apperrors.New(apperrors.ErrCodeMalformedRecord,
			"Task record is malformed",
			fmt.Sprintf("expected %d fields, got %d", taskFieldCount, len(fields)))
	}

	dueDate, err := time.Parse(tasks.DateLayout, fields[4])
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeMalformedRecord,
			"Task record has an unparseable due date")
	}

	assignedDate, err := time.Parse(tasks.DateLayout, fields[5])
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeMalformedRecord,
			"Task record has an unparseable assigned date")
	}

	return &tasks.Task{
		Index:        fields[0],
		Username:     fields[1],
		Title:        fields[2],
		Description:  fields[3],
		DueDate:      dueDate,
		AssignedDate: assignedDate,
		Completed:    fields[6] == "Yes",
	}, nil
}

// EncodeUser renders a credential entry as username;password
func EncodeUser(u users.User) string {
	return u.Username + Delimiter + u.Password
}

// DecodeUser parses a username;password line
func DecodeUser(line string) (users.User, error) {
	fields := strings.Split(line, Delimiter)
	if len(fields) != userFieldCount {
		return users.User{}, apperrors.New(apperrors.ErrCodeMalformedRecord,
			"User record is malformed",
			fmt.Sprintf("expected %d fields, got %d", userFieldCount, len(fields)))
	}
	return users.User{Username: fields[0], Password: fields[1]}, nil
}
