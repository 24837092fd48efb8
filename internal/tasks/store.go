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

// Package tasks implements the task store: an in-memory ordered task list
// loaded once at startup and rewritten in full after every mutation.
package tasks

import (
	"context"
	"strconv"
	"time"

	"tasktrack/internal/validate"
	apperrors "tasktrack/pkg/errors"
	"tasktrack/pkg/tasks"
	"tasktrack/pkg/users"
)

// StoreImpl implements the tasks.Store interface providing business logic
type StoreImpl struct {
	repo      tasks.Repository
	directory users.Directory
	list      []*tasks.Task
	now       func() time.Time
}

// NewStore creates a task store backed by repo. The directory validates
// assignees on create and reassign.
func NewStore(repo tasks.Repository, directory users.Directory) tasks.Store {
	return &StoreImpl{
		repo:      repo,
		directory: directory,
		now:       time.Now,
	}
}

// NewStoreWithClock creates a task store with an injectable clock for tests
func NewStoreWithClock(repo tasks.Repository, directory users.Directory, now func() time.Time) tasks.Store {
	return &StoreImpl{
		repo:      repo,
		directory: directory,
		now:       now,
	}
}

// Load reads all persisted tasks into memory
func (s *StoreImpl) Load(ctx context.Context) error {
	list, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}
	s.list = list
	return nil
}

// Create validates, assigns the next index and today's assigned date, then
// appends and persists the full list. The in-memory list is untouched unless
// both validation and the rewrite succeed.
func (s *StoreImpl) Create(ctx context.Context, username, title, description string, dueDate time.Time) (*tasks.Task, error) {
	if !s.directory.Exists(ctx, username) {
		return nil, apperrors.NewUnknownUserError(username)
	}
	if err := validate.SafeField("title", title); err != nil {
		return nil, err
	}
	if err := validate.SafeField("description", description); err != nil {
		return nil, err
	}

	task := &tasks.Task{
		Index:        strconv.Itoa(len(s.list) + 1),
		Username:     username,
		Title:        title,
		Description:  description,
		DueDate:      tasks.Normalize(dueDate),
		AssignedDate: tasks.Normalize(s.now()),
		Completed:    false,
	}

	next := append(append([]*tasks.Task(nil), s.list...), task)
	if err := s.repo.SaveAll(ctx, next); err != nil {
		return nil, err
	}

	s.list = next
	return task, nil
}

// List returns all tasks in file order
func (s *StoreImpl) List(ctx context.Context) []*tasks.Task {
	return s.list
}

// ListByOwner returns the tasks assigned to username, in file order
func (s *StoreImpl) ListByOwner(ctx context.Context, username string) []*tasks.Task {
	var owned []*tasks.Task
	for _, task := range s.list {
		if task.Username == username {
			owned = append(owned, task)
		}
	}
	return owned
}

// FindByIndexAndOwner scans for the task with the given index owned by
// username. An index held by another user is reported distinctly so the
// caller can message it, and is never revealed.
func (s *StoreImpl) FindByIndexAndOwner(ctx context.Context, index, username string) (*tasks.Task, error) {
	foreignIndex := false
	for _, task := range s.list {
		if task.Index != index {
			continue
		}
		if task.Username == username {
			return task, nil
		}
		foreignIndex = true
	}

	if foreignIndex {
		return nil, apperrors.NewNotAssignedToUserError(index)
	}
	return nil, apperrors.NewNotFoundError("task", index)
}

// MarkComplete records the confirmation answer on an open task. Once a task
// is completed every further change is rejected and nothing is written. The
// answer is assigned as-is, so "No" on an open task persists a no-op.
func (s *StoreImpl) MarkComplete(ctx context.Context, task *tasks.Task, value bool) error {
	if task.Completed {
		return apperrors.NewAlreadyCompletedError(task.Index)
	}

	previous := task.Completed
	task.Completed = value
	if err := s.repo.SaveAll(ctx, s.list); err != nil {
		task.Completed = previous
		return err
	}
	return nil
}

// Reassign overwrites the assignee and due date and persists. Callers that
// already know the task is completed must reject before calling here; this
// primitive only guards the new assignee.
func (s *StoreImpl) Reassign(ctx context.Context, task *tasks.Task, newUsername string, newDueDate time.Time) error {
	if !s.directory.Exists(ctx, newUsername) {
		return apperrors.NewUnknownUserError(newUsername)
	}

	prevUser, prevDue := task.Username, task.DueDate
	task.Username = newUsername
	task.DueDate = tasks.Normalize(newDueDate)
	if err := s.repo.SaveAll(ctx, s.list); err != nil {
		task.Username, task.DueDate = prevUser, prevDue
		return err
	}
	return nil
}
