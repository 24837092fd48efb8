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
package cmd

import (
	"fmt"

	"tasktrack/internal/validate"
	apperrors "tasktrack/pkg/errors"

	"github.com/spf13/cobra"
)

var (
	editAssigneeFlag string
	editDueFlag      string
)

var editCmd = &cobra.Command{
	Use:     "edit [index]",
	Short:   "Reassign one of your open tasks.",
	Long:    "Change the assignee and due date of one of your own tasks. Completed tasks cannot be edited.",
	Example: "tasktrack edit 3 --assignee carol --due \"01 Oct 2026\"",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, app, err := LoginGuard(cmd)
		if err != nil {
			return err
		}

		task, err := app.Tasks.FindByIndexAndOwner(cmd.Context(), args[0], username)
		if err != nil {
			return err
		}

		// The completed gate lives here, before the reassign primitive.
		if task.Completed {
			return apperrors.NewAlreadyCompletedError(task.Index)
		}

		dueDate, err := validate.ParseDueDate(editDueFlag)
		if err != nil {
			return err
		}

		if err := app.Tasks.Reassign(cmd.Context(), task, editAssigneeFlag, dueDate); err != nil {
			return err
		}

		fmt.Println("Task successfully edited.")
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editAssigneeFlag, "assignee", "", "new assignee username")
	editCmd.Flags().StringVar(&editDueFlag, "due", "", "new due date (DD Mon YYYY)")
	editCmd.MarkFlagRequired("assignee")
	editCmd.MarkFlagRequired("due")

	rootCmd.AddCommand(editCmd)
}
