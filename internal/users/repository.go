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

package users

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tasktrack/internal/codec"
	"tasktrack/internal/fsutil"
	apperrors "tasktrack/pkg/errors"
	"tasktrack/pkg/users"
)

// FileRepository implements the users.Repository interface over the
// line-oriented user record file
type FileRepository struct {
	path string
}

// NewFileRepository creates a file-based user repository at path
func NewFileRepository(path string) users.Repository {
	return &FileRepository{path: path}
}

// LoadAll reads every credential entry in file order. A missing file means
// this is the first run: the bootstrap admin account is seeded and persisted
// so a login is possible.
func (r *FileRepository) LoadAll(ctx context.Context) ([]users.User, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		seed := []users.User{{Username: users.AdminUsername, Password: users.DefaultAdminPassword}}
		if err := r.SaveAll(ctx, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	if err != nil {
		return nil, apperrors.NewStorageFailureError("load users", err)
	}

	var entries []users.User
	for i, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := codec.DecodeUser(line)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeMalformedRecord,
				fmt.Sprintf("%s line %d is malformed", filepath.Base(r.path), i+1))
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// SaveAll rewrites the entire persisted directory
func (r *FileRepository) SaveAll(ctx context.Context, entries []users.User) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := fsutil.EnsureDir(filepath.Dir(r.path)); err != nil {
		return apperrors.NewStorageFailureError("create data directory", err)
	}

	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = codec.EncodeUser(entry)
	}

	data := []byte(strings.Join(lines, "\n"))
	if err := fsutil.AtomicWriteFile(r.path, data, fsutil.SecureFilePermissions); err != nil {
		return apperrors.NewStorageFailureError("save users", err)
	}
	return nil
}
