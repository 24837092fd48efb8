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

package tasks

import (
	"context"
	"time"
)

// Store is the main interface for task operations used by the CLI commands.
// The store owns the in-memory task list for the process lifetime: records
// are loaded once and every mutation flushes the full list back to storage.
type Store interface {
	// Load reads all persisted tasks into memory. Any malformed record is a
	// fatal load error; the store never skips lines.
	Load(ctx context.Context) error

	// Create validates the assignee and fields, assigns the next sequential
	// index and today's assigned date, then appends and persists
	Create(ctx context.Context, username, title, description string, dueDate time.Time) (*Task, error)

	// List returns all tasks in file order
	List(ctx context.Context) []*Task

	// ListByOwner returns the tasks assigned to username, in file order
	ListByOwner(ctx context.Context, username string) []*Task

	// FindByIndexAndOwner returns the task with the given index when it is
	// owned by username. An index that exists under a different owner yields
	// a NOT_ASSIGNED_TO_USER error, a missing index a NOT_FOUND error.
	FindByIndexAndOwner(ctx context.Context, index, username string) (*Task, error)

	// MarkComplete records the confirmation answer on an open task. A task
	// that is already completed is rejected with ALREADY_COMPLETED and left
	// untouched. An answered "No" assigns false to an open task, which is a
	// persisted no-op.
	MarkComplete(ctx context.Context, task *Task, value bool) error

	// Reassign moves an open task to a new assignee and due date. The
	// already-completed gate belongs to the caller; this primitive only
	// validates that the new assignee exists.
	Reassign(ctx context.Context, task *Task, newUsername string, newDueDate time.Time) error
}

// Repository is the storage interface for the task domain. Implementations
// persist the whole collection at once; there are no partial writes.
type Repository interface {
	// LoadAll reads and decodes every persisted task in file order
	LoadAll(ctx context.Context) ([]*Task, error)

	// SaveAll rewrites the entire persisted collection
	SaveAll(ctx context.Context, list []*Task) error
}
