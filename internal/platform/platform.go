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

// Package platform provides service composition for the CLI application.
// It wires the record repositories, the task store, the user directory and
// the statistics engine into a unified surface the commands can use.
package platform

import (
	"context"

	"tasktrack/internal/logger"
	reportImpl "tasktrack/internal/report"
	tasksImpl "tasktrack/internal/tasks"
	usersImpl "tasktrack/internal/users"
	"tasktrack/pkg/config"
	"tasktrack/pkg/tasks"
	"tasktrack/pkg/users"
)

// Platform is the complete service composition for one CLI invocation. Both
// stores hold their records in memory for the process lifetime; the flushed
// files are the durable copy.
type Platform struct {
	// Tasks is the task store
	Tasks tasks.Store

	// Users is the credential directory
	Users users.Directory

	// Reports computes aggregate statistics over the two stores
	Reports *reportImpl.Engine

	// ReportWriter renders the overview files
	ReportWriter *reportImpl.Writer

	// Config is the resolved configuration
	Config *config.Config

	// Log is the process logger
	Log *logger.Logger
}

// New creates a Platform with all services wired together. Loading happens
// here, once: the user directory first (it may seed the bootstrap admin),
// then the task store, whose assignee validation depends on the directory.
// A malformed record in either file fails the whole composition.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Platform, error) {
	usersRepo := usersImpl.NewFileRepository(cfg.UsersPath())
	directory := usersImpl.NewDirectory(usersRepo)
	if err := directory.Load(ctx); err != nil {
		return nil, err
	}

	tasksRepo := tasksImpl.NewFileRepository(cfg.TasksPath())
	taskStore := tasksImpl.NewStore(tasksRepo, directory)
	if err := taskStore.Load(ctx); err != nil {
		return nil, err
	}

	log.Debug().
		Int("users", directory.Count(ctx)).
		Int("tasks", len(taskStore.List(ctx))).
		Str("data_dir", cfg.DataDir).
		Msg("records loaded")

	return &Platform{
		Tasks:        taskStore,
		Users:        directory,
		Reports:      reportImpl.NewEngine(taskStore, directory),
		ReportWriter: reportImpl.NewWriter(cfg.TaskOverviewPath(), cfg.UserOverviewPath()),
		Config:       cfg,
		Log:          log,
	}, nil
}
