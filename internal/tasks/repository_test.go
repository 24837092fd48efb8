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
	"strings"
	"testing"

	apperrors "tasktrack/pkg/errors"
)

func TestRepositoryLoadAllMissingFile(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "tasks.txt"))

	list, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("Expected missing file to load as empty: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Expected empty list, got %d tasks", len(list))
	}
}

func TestRepositoryLoadAllSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	content := "1;bob;Title;Desc;15 Sep 2026;29 Aug 2026;No\n\n" +
		"2;bob;Other;Desc;15 Sep 2026;29 Aug 2026;Yes\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write tasks file: %v", err)
	}

	list, err := NewFileRepository(path).LoadAll(context.Background())
	if err != nil {
		t.Fatalf("Failed to load tasks: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(list))
	}
	if list[0].Index != "1" || list[1].Index != "2" {
		t.Errorf("Expected file order preserved, got (%s, %s)", list[0].Index, list[1].Index)
	}
}

func TestRepositoryLoadAllMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	content := "1;bob;Title;Desc;15 Sep 2026;29 Aug 2026;No\n" +
		"2;bob;missing fields\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write tasks file: %v", err)
	}

	_, err := NewFileRepository(path).LoadAll(context.Background())
	if !apperrors.HasCode(err, apperrors.ErrCodeMalformedRecord) {
		t.Fatalf("Expected MALFORMED_RECORD error, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected error to name the offending line, got %v", err)
	}
}

func TestRepositoryLoadAllCancelledContext(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "tasks.txt"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.LoadAll(ctx); err == nil {
		t.Error("Expected cancelled context to abort the load")
	}
}
