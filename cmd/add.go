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

	"github.com/spf13/cobra"
)

var (
	addAssigneeFlag    string
	addTitleFlag       string
	addDescriptionFlag string
	addDueFlag         string
)

var addCmd = &cobra.Command{
	Use:     "add",
	Short:   "Add a new task.",
	Long:    "Add a task assigned to a registered user. The due date uses the fixed day-month-year layout, e.g. \"01 Jan 2024\".",
	Example: "tasktrack add --assignee bob --title \"File report\" --description \"Quarterly numbers\" --due \"15 Sep 2026\"",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, app, err := LoginGuard(cmd)
		if err != nil {
			return err
		}

		dueDate, err := validate.ParseDueDate(addDueFlag)
		if err != nil {
			return err
		}

		task, err := app.Tasks.Create(cmd.Context(), addAssigneeFlag, addTitleFlag, addDescriptionFlag, dueDate)
		if err != nil {
			return err
		}

		fmt.Println("Task successfully added.")
		fmt.Printf("Assigned index %s to %s.\n", task.Index, task.Username)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addAssigneeFlag, "assignee", "", "username the task is assigned to")
	addCmd.Flags().StringVar(&addTitleFlag, "title", "", "task title")
	addCmd.Flags().StringVar(&addDescriptionFlag, "description", "", "task description")
	addCmd.Flags().StringVar(&addDueFlag, "due", "", "due date (DD Mon YYYY)")
	addCmd.MarkFlagRequired("assignee")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("description")
	addCmd.MarkFlagRequired("due")

	rootCmd.AddCommand(addCmd)
}
