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

package platform

import (
	"context"
	"os"
	"testing"

	"tasktrack/internal/logger"
	appconfig "tasktrack/pkg/config"
	apperrors "tasktrack/pkg/errors"
)

func testConfig(t *testing.T) *appconfig.Config {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TASKTRACK_CONFIG_DIR", dir)

	cfg, err := appconfig.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func TestNewPlatform(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	p, err := New(ctx, cfg, logger.Nop())
	if err != nil {
		t.Fatalf("Failed to create platform: %v", err)
	}

	if p.Tasks == nil || p.Users == nil || p.Reports == nil || p.ReportWriter == nil {
		t.Fatal("Expected all services to be wired")
	}

	// First run seeds the bootstrap admin and persists the user file
	if !p.Users.Authenticate(ctx, "admin", "password") {
		t.Error("Expected bootstrap admin to authenticate")
	}
	if _, err := os.Stat(cfg.UsersPath()); err != nil {
		t.Errorf("Expected user file to exist after first run: %v", err)
	}
}

func TestNewPlatformLoadsExistingRecords(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	if err := os.WriteFile(cfg.UsersPath(), []byte("admin;password\nbob;x"), 0600); err != nil {
		t.Fatalf("Failed to write user file: %v", err)
	}
	tasksLine := "1;bob;Title;Desc;15 Sep 2026;29 Aug 2026;No"
	if err := os.WriteFile(cfg.TasksPath(), []byte(tasksLine), 0600); err != nil {
		t.Fatalf("Failed to write tasks file: %v", err)
	}

	p, err := New(ctx, cfg, logger.Nop())
	if err != nil {
		t.Fatalf("Failed to create platform: %v", err)
	}

	if p.Users.Count(ctx) != 2 {
		t.Errorf("Expected 2 users, got %d", p.Users.Count(ctx))
	}
	if len(p.Tasks.List(ctx)) != 1 {
		t.Errorf("Expected 1 task, got %d", len(p.Tasks.List(ctx)))
	}
}

func TestNewPlatformMalformedRecord(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	if err := os.WriteFile(cfg.TasksPath(), []byte("not a task line"), 0600); err != nil {
		t.Fatalf("Failed to write tasks file: %v", err)
	}

	_, err := New(ctx, cfg, logger.Nop())
	if !apperrors.HasCode(err, apperrors.ErrCodeMalformedRecord) {
		t.Fatalf("Expected MALFORMED_RECORD error, got %v", err)
	}
}

func TestPlatformContext(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	p, err := New(ctx, cfg, logger.Nop())
	if err != nil {
		t.Fatalf("Failed to create platform: %v", err)
	}

	ctx = WithPlatform(ctx, p)
	got, err := FromContext(ctx)
	if err != nil {
		t.Fatalf("Failed to retrieve platform from context: %v", err)
	}
	if got != p {
		t.Error("Expected the same platform instance from context")
	}

	if _, err := FromContext(context.Background()); err == nil {
		t.Error("Expected error when no platform is in context")
	}
}
