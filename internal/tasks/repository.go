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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tasktrack/internal/codec"
	"tasktrack/internal/fsutil"
	apperrors "tasktrack/pkg/errors"
	"tasktrack/pkg/tasks"
)

// FileRepository implements the tasks.Repository interface over the
// line-oriented task record file
type FileRepository struct {
	path string
}

// NewFileRepository creates a file-based task repository at path
func NewFileRepository(path string) tasks.Repository {
	return &FileRepository{path: path}
}

// LoadAll reads every non-empty line of the record file in order. A line
// that fails to decode aborts the whole load; the store never skips
// malformed records.
func (r *FileRepository) LoadAll(ctx context.Context) ([]*tasks.Task, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorageFailureError("load tasks", err)
	}

	var list []*tasks.Task
	for i, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		task, err := codec.DecodeTask(line)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeMalformedRecord,
				fmt.Sprintf("%s line %d is malformed", filepath.Base(r.path), i+1))
		}
		list = append(list, task)
	}

	return list, nil
}

// SaveAll rewrites the entire record file
func (r *FileRepository) SaveAll(ctx context.Context, list []*tasks.Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := fsutil.EnsureDir(filepath.Dir(r.path)); err != nil {
		return apperrors.NewStorageFailureError("create data directory", err)
	}

	lines := make([]string, len(list))
	for i, task := range list {
		lines[i] = codec.EncodeTask(task)
	}

	data := []byte(strings.Join(lines, "\n"))
	if err := fsutil.AtomicWriteFile(r.path, data, fsutil.SecureFilePermissions); err != nil {
		return apperrors.NewStorageFailureError("save tasks", err)
	}
	return nil
}
