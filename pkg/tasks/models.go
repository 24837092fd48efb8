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

// Package tasks provides the public model and interfaces for the task domain.
package tasks

import (
	"fmt"
	"time"
)

// DateLayout is the fixed day-month-year format used in task records and
// everywhere a due date crosses the CLI boundary (e.g. "01 Jan 2024").
const DateLayout = "02 Jan 2006"

// Task is a single tracked task. Index is a sequential string key assigned at
// creation and never reused; AssignedDate is set at creation and immutable.
type Task struct {
	Index        string
	Username     string
	Title        string
	Description  string
	DueDate      time.Time
	AssignedDate time.Time
	Completed    bool
}

// IsOverdue reports whether the task is incomplete with a due date strictly
// before now
func (t *Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate.Before(now)
}

// CompletionLabel returns the Yes/No token used in the persisted record
func (t *Task) CompletionLabel() string {
	if t.Completed {
		return "Yes"
	}
	return "No"
}

// Display renders the task in the block layout the view commands print
func (t *Task) Display() string {
	s := fmt.Sprintf("Index: \t\t\t%s\n", t.Index)
	s += fmt.Sprintf("Task: \t\t\t%s\n", t.Title)
	s += fmt.Sprintf("Assigned to: \t\t%s\n", t.Username)
	s += fmt.Sprintf("Date Assigned: \t\t%s\n", t.AssignedDate.Format(DateLayout))
	s += fmt.Sprintf("Due Date: \t\t%s\n", t.DueDate.Format(DateLayout))
	s += fmt.Sprintf("Task Description: \t%s\n", t.Description)
	s += fmt.Sprintf("Completion Status: \t%s\n", t.CompletionLabel())
	return s
}

// Normalize truncates a timestamp to date-only precision. Records persist
// dates at day granularity, so every stored date passes through here.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
