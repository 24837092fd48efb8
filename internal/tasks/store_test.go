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
	"os"
	"path/filepath"
	"testing"
	"time"

	usersImpl "tasktrack/internal/users"
	apperrors "tasktrack/pkg/errors"
	"tasktrack/pkg/tasks"
	"tasktrack/pkg/users"
)

// storeClock is the fixed "today" stamped on created tasks in these tests
var storeClock = func() time.Time {
	return time.Date(2026, time.August, 29, 10, 30, 0, 0, time.UTC)
}

type fixture struct {
	ctx       context.Context
	store     tasks.Store
	directory users.Directory
	tasksPath string
}

// newFixture builds a store over a temp data directory. Loading the
// directory seeds the bootstrap admin account, and "bob" is registered so
// tests have a second assignee.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	ctx := context.Background()

	userRepo := usersImpl.NewFileRepository(filepath.Join(dir, "user.txt"))
	directory := usersImpl.NewDirectory(userRepo)
	if err := directory.Load(ctx); err != nil {
		t.Fatalf("Failed to load directory: %v", err)
	}
	if err := directory.Register(ctx, "admin", "bob", "x", "x"); err != nil {
		t.Fatalf("Failed to register bob: %v", err)
	}

	tasksPath := filepath.Join(dir, "tasks.txt")
	store := NewStoreWithClock(NewFileRepository(tasksPath), directory, storeClock)
	if err := store.Load(ctx); err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}

	return &fixture{ctx: ctx, store: store, directory: directory, tasksPath: tasksPath}
}

func dueDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(tasks.DateLayout, value)
	if err != nil {
		t.Fatalf("Failed to parse date %q: %v", value, err)
	}
	return parsed
}

func TestStoreCreate(t *testing.T) {
	f := newFixture(t)

	task, err := f.store.Create(f.ctx, "bob", "File report", "Quarterly numbers", dueDate(t, "15 Sep 2026"))
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	if task.Index != "1" {
		t.Errorf("Expected index '1', got '%s'", task.Index)
	}
	if task.Completed {
		t.Error("Expected new task to be open")
	}
	today := tasks.Normalize(storeClock())
	if !task.AssignedDate.Equal(today) {
		t.Errorf("Expected assigned date %v, got %v", today, task.AssignedDate)
	}

	second, err := f.store.Create(f.ctx, "admin", "Fix bug", "Login bug", dueDate(t, "01 Oct 2026"))
	if err != nil {
		t.Fatalf("Failed to create second task: %v", err)
	}
	if second.Index != "2" {
		t.Errorf("Expected index '2', got '%s'", second.Index)
	}

	data, err := os.ReadFile(f.tasksPath)
	if err != nil {
		t.Fatalf("Failed to read tasks file: %v", err)
	}
	expected := "1;bob;File report;Quarterly numbers;15 Sep 2026;29 Aug 2026;No\n" +
		"2;admin;Fix bug;Login bug;01 Oct 2026;29 Aug 2026;No"
	if string(data) != expected {
		t.Errorf("Unexpected tasks file contents:\n%s", string(data))
	}
}

func TestStoreCreateUnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.Create(f.ctx, "mallory", "Title", "Desc", dueDate(t, "15 Sep 2026"))
	if !apperrors.HasCode(err, apperrors.ErrCodeUnknownUser) {
		t.Fatalf("Expected UNKNOWN_USER error, got %v", err)
	}

	if len(f.store.List(f.ctx)) != 0 {
		t.Error("Expected store to be unchanged after rejection")
	}
	if _, err := os.Stat(f.tasksPath); !os.IsNotExist(err) {
		t.Error("Expected no tasks file to be written after rejection")
	}
}

func TestStoreCreateRejectsDelimiterFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.Create(f.ctx, "bob", "bad;title", "Desc", dueDate(t, "15 Sep 2026"))
	if !apperrors.HasCode(err, apperrors.ErrCodeInvalidField) {
		t.Fatalf("Expected INVALID_FIELD error for title, got %v", err)
	}

	_, err = f.store.Create(f.ctx, "bob", "Title", "bad;desc", dueDate(t, "15 Sep 2026"))
	if !apperrors.HasCode(err, apperrors.ErrCodeInvalidField) {
		t.Fatalf("Expected INVALID_FIELD error for description, got %v", err)
	}

	if len(f.store.List(f.ctx)) != 0 {
		t.Error("Expected store to be unchanged after rejections")
	}
}

func TestStoreFindByIndexAndOwner(t *testing.T) {
	f := newFixture(t)

	if _, err := f.store.Create(f.ctx, "bob", "Bob task", "Desc", dueDate(t, "15 Sep 2026")); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	task, err := f.store.FindByIndexAndOwner(f.ctx, "1", "bob")
	if err != nil {
		t.Fatalf("Expected to find bob's task: %v", err)
	}
	if task.Title != "Bob task" {
		t.Errorf("Expected 'Bob task', got '%s'", task.Title)
	}

	// The index exists, but under a different owner
	_, err = f.store.FindByIndexAndOwner(f.ctx, "1", "admin")
	if !apperrors.HasCode(err, apperrors.ErrCodeNotAssignedToUser) {
		t.Fatalf("Expected NOT_ASSIGNED_TO_USER error, got %v", err)
	}

	_, err = f.store.FindByIndexAndOwner(f.ctx, "99", "bob")
	if !apperrors.HasCode(err, apperrors.ErrCodeNotFound) {
		t.Fatalf("Expected NOT_FOUND error, got %v", err)
	}
}

func TestStoreMarkComplete(t *testing.T) {
	f := newFixture(t)

	task, err := f.store.Create(f.ctx, "bob", "Title", "Desc", dueDate(t, "15 Sep 2026"))
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	if err := f.store.MarkComplete(f.ctx, task, true); err != nil {
		t.Fatalf("Failed to mark complete: %v", err)
	}
	if !task.Completed {
		t.Error("Expected task to be completed")
	}

	// A completed task rejects any further answer and stays unchanged
	err = f.store.MarkComplete(f.ctx, task, false)
	if !apperrors.HasCode(err, apperrors.ErrCodeAlreadyCompleted) {
		t.Fatalf("Expected ALREADY_COMPLETED error, got %v", err)
	}
	if !task.Completed {
		t.Error("Expected completed task to stay completed")
	}

	reloaded := NewStore(NewFileRepository(f.tasksPath), f.directory)
	if err := reloaded.Load(f.ctx); err != nil {
		t.Fatalf("Failed to reload store: %v", err)
	}
	persisted, err := reloaded.FindByIndexAndOwner(f.ctx, "1", "bob")
	if err != nil {
		t.Fatalf("Failed to find reloaded task: %v", err)
	}
	if !persisted.Completed {
		t.Error("Expected completion to be persisted")
	}
}

func TestStoreMarkCompleteNoAnswer(t *testing.T) {
	f := newFixture(t)

	task, err := f.store.Create(f.ctx, "bob", "Title", "Desc", dueDate(t, "15 Sep 2026"))
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	// Answering "No" on an open task assigns false: a persisted no-op
	if err := f.store.MarkComplete(f.ctx, task, false); err != nil {
		t.Fatalf("Expected No answer on open task to succeed: %v", err)
	}
	if task.Completed {
		t.Error("Expected task to remain open")
	}
}

func TestStoreReassign(t *testing.T) {
	f := newFixture(t)

	task, err := f.store.Create(f.ctx, "bob", "Title", "Desc", dueDate(t, "15 Sep 2026"))
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	if err := f.store.Reassign(f.ctx, task, "admin", dueDate(t, "01 Oct 2026")); err != nil {
		t.Fatalf("Failed to reassign: %v", err)
	}
	if task.Username != "admin" {
		t.Errorf("Expected assignee 'admin', got '%s'", task.Username)
	}
	if task.Index != "1" {
		t.Errorf("Expected index to be stable, got '%s'", task.Index)
	}

	reloaded := NewStore(NewFileRepository(f.tasksPath), f.directory)
	if err := reloaded.Load(f.ctx); err != nil {
		t.Fatalf("Failed to reload store: %v", err)
	}
	persisted, err := reloaded.FindByIndexAndOwner(f.ctx, "1", "admin")
	if err != nil {
		t.Fatalf("Failed to find reassigned task: %v", err)
	}
	if !persisted.DueDate.Equal(dueDate(t, "01 Oct 2026")) {
		t.Errorf("Expected persisted due date 01 Oct 2026, got %v", persisted.DueDate)
	}
}

func TestStoreReassignUnknownUser(t *testing.T) {
	f := newFixture(t)

	task, err := f.store.Create(f.ctx, "bob", "Title", "Desc", dueDate(t, "15 Sep 2026"))
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	err = f.store.Reassign(f.ctx, task, "mallory", dueDate(t, "01 Oct 2026"))
	if !apperrors.HasCode(err, apperrors.ErrCodeUnknownUser) {
		t.Fatalf("Expected UNKNOWN_USER error, got %v", err)
	}
	if task.Username != "bob" {
		t.Errorf("Expected assignee unchanged, got '%s'", task.Username)
	}
}

func TestStoreReassignDoesNotGateCompleted(t *testing.T) {
	f := newFixture(t)

	task, err := f.store.Create(f.ctx, "bob", "Title", "Desc", dueDate(t, "15 Sep 2026"))
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	if err := f.store.MarkComplete(f.ctx, task, true); err != nil {
		t.Fatalf("Failed to complete task: %v", err)
	}

	// The completed gate belongs to the caller; the primitive itself only
	// validates the new assignee.
	if err := f.store.Reassign(f.ctx, task, "admin", dueDate(t, "01 Oct 2026")); err != nil {
		t.Fatalf("Expected primitive reassign to succeed on completed task: %v", err)
	}
}

func TestStoreListByOwner(t *testing.T) {
	f := newFixture(t)

	for _, owner := range []string{"bob", "admin", "bob"} {
		if _, err := f.store.Create(f.ctx, owner, "Title", "Desc", dueDate(t, "15 Sep 2026")); err != nil {
			t.Fatalf("Failed to create task for %s: %v", owner, err)
		}
	}

	owned := f.store.ListByOwner(f.ctx, "bob")
	if len(owned) != 2 {
		t.Fatalf("Expected 2 tasks for bob, got %d", len(owned))
	}
	if owned[0].Index != "1" || owned[1].Index != "3" {
		t.Errorf("Expected bob's tasks in file order (1, 3), got (%s, %s)", owned[0].Index, owned[1].Index)
	}
}
