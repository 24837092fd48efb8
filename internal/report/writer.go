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

package report

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"tasktrack/internal/fsutil"
	"tasktrack/pkg/report"
)

// Writer renders computed overviews into the two fixed-width report files
type Writer struct {
	taskOverviewPath string
	userOverviewPath string
}

// NewWriter creates a report writer targeting the given file paths
func NewWriter(taskOverviewPath, userOverviewPath string) *Writer {
	return &Writer{
		taskOverviewPath: taskOverviewPath,
		userOverviewPath: userOverviewPath,
	}
}

// Generate computes both overviews from the engine and rewrites both report
// files. The EMPTY_TASK_SET error from the system overview propagates so the
// dispatcher can message it.
func (w *Writer) Generate(ctx context.Context, engine *Engine) error {
	system, err := engine.SystemOverview(ctx)
	if err != nil {
		return err
	}
	perUser, err := engine.UserOverview(ctx)
	if err != nil {
		return err
	}

	if err := fsutil.EnsureDir(filepath.Dir(w.taskOverviewPath)); err != nil {
		return err
	}

	var taskBuf strings.Builder
	WriteTaskOverview(&taskBuf, system)
	if err := fsutil.AtomicWriteFile(w.taskOverviewPath, []byte(taskBuf.String()), fsutil.SecureFilePermissions); err != nil {
		return err
	}

	var userBuf strings.Builder
	WriteUserOverview(&userBuf, perUser)
	return fsutil.AtomicWriteFile(w.userOverviewPath, []byte(userBuf.String()), fsutil.SecureFilePermissions)
}

// TaskOverviewPath returns the system report file path
func (w *Writer) TaskOverviewPath() string {
	return w.taskOverviewPath
}

// UserOverviewPath returns the per-user report file path
func (w *Writer) UserOverviewPath() string {
	return w.userOverviewPath
}

// WriteTaskOverview renders the system overview in the fixed-width layout of
// the task overview file
func WriteTaskOverview(w io.Writer, o *report.SystemOverview) {
	fmt.Fprintln(w, "This file gives you tasks overview")
	fmt.Fprintln(w, "----------------------------------")
	fmt.Fprintf(w, "%-30s%d\n", "Total Tasks", o.TotalTasks)
	fmt.Fprintf(w, "%-30s%d\n", "Completed Tasks", o.CompletedTasks)
	fmt.Fprintf(w, "%-30s%d\n", "Incomplete Tasks", o.IncompleteTasks)
	fmt.Fprintf(w, "%-30s%d\n", "Overdue Tasks", o.OverdueTasks)
	fmt.Fprintf(w, "%-30s%.2f\n", "Incomplete Tasks Percentage", o.IncompletePercent)
	fmt.Fprintf(w, "%-30s%.2f\n", "Overdue Tasks Percentage", o.OverduePercent)
}

// WriteUserOverview renders the per-user overview, one block per registered
// user in directory order
func WriteUserOverview(w io.Writer, o *report.UserOverview) {
	fmt.Fprintln(w, "This file gives you user and tasks Overview")
	fmt.Fprintln(w, "-------------------------------------------")
	fmt.Fprintf(w, "%-50s%d\n", "Total Registered users", o.RegisteredUsers)
	fmt.Fprintf(w, "%-50s%d\n", "Total Tasks", o.TotalTasks)

	for _, stats := range o.Users {
		fmt.Fprintf(w, "\nUser %s Overview\n", stats.Username)
		fmt.Fprintln(w, "---------------------")
		fmt.Fprintf(w, "%-50s%d\n", "Total Tasks", stats.TaskCount)
		fmt.Fprintf(w, "%-50s%.2f\n", "User Tasks percentage", stats.TaskSharePercent)
		fmt.Fprintf(w, "%-50s%.2f\n", "User Tasks Completed Percentage", stats.CompletedPercent)
		fmt.Fprintf(w, "%-50s%.2f\n", "User Tasks Must be Completed Percentage", stats.IncompletePercent)
		fmt.Fprintf(w, "%-50s%.2f\n", "User Tasks Overdue Percentage", stats.OverduePercent)
	}
}
