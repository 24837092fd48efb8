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

// Package report implements the statistics engine: a read-only aggregation
// pass over the task store and user directory snapshots.
package report

import (
	"context"
	"time"

	apperrors "tasktrack/pkg/errors"
	"tasktrack/pkg/report"
	"tasktrack/pkg/tasks"
	"tasktrack/pkg/users"
)

// Engine computes aggregate reports. The clock decides which incomplete
// tasks count as overdue and is injectable for tests.
type Engine struct {
	tasks     tasks.Store
	directory users.Directory
	now       func() time.Time
}

// NewEngine creates a statistics engine over the given snapshots
func NewEngine(taskStore tasks.Store, directory users.Directory) *Engine {
	return &Engine{tasks: taskStore, directory: directory, now: time.Now}
}

// NewEngineWithClock creates an engine with a fixed clock for tests
func NewEngineWithClock(taskStore tasks.Store, directory users.Directory, now func() time.Time) *Engine {
	return &Engine{tasks: taskStore, directory: directory, now: now}
}

// SystemOverview computes system-wide counts and percentages. An empty task
// set cannot produce percentages and is reported as EMPTY_TASK_SET rather
// than dividing by zero.
func (e *Engine) SystemOverview(ctx context.Context) (*report.SystemOverview, error) {
	list := e.tasks.List(ctx)
	total := len(list)
	if total == 0 {
		return nil, apperrors.NewEmptyTaskSetError()
	}

	now := e.now()
	completed, overdue := 0, 0
	for _, task := range list {
		if task.Completed {
			completed++
		}
		if task.IsOverdue(now) {
			overdue++
		}
	}
	incomplete := total - completed

	return &report.SystemOverview{
		TotalTasks:        total,
		CompletedTasks:    completed,
		IncompleteTasks:   incomplete,
		OverdueTasks:      overdue,
		IncompletePercent: float64(incomplete*100) / float64(total),
		OverduePercent:    float64(overdue*100) / float64(total),
	}, nil
}

// UserOverview computes one statistics block per registered user, in
// directory order. Users with no assigned tasks report all percentages as 0.
func (e *Engine) UserOverview(ctx context.Context) (*report.UserOverview, error) {
	list := e.tasks.List(ctx)
	usernames := e.directory.Usernames(ctx)
	now := e.now()

	overview := &report.UserOverview{
		RegisteredUsers: len(usernames),
		TotalTasks:      len(list),
		Users:           make([]report.UserStats, 0, len(usernames)),
	}

	for _, username := range usernames {
		assigned, completed, incomplete, overdue := 0, 0, 0, 0
		for _, task := range list {
			if task.Username != username {
				continue
			}
			assigned++
			if task.Completed {
				completed++
			} else {
				incomplete++
			}
			if task.IsOverdue(now) {
				overdue++
			}
		}

		stats := report.UserStats{Username: username, TaskCount: assigned}
		// A user with no tasks keeps every percentage at 0. Having any task
		// also implies the system total is non-zero.
		if assigned > 0 {
			stats.TaskSharePercent = float64(assigned*100) / float64(len(list))
			stats.CompletedPercent = float64(completed*100) / float64(assigned)
			stats.IncompletePercent = float64(incomplete*100) / float64(assigned)
			stats.OverduePercent = float64(overdue*100) / float64(assigned)
		}
		overview.Users = append(overview.Users, stats)
	}

	return overview, nil
}
