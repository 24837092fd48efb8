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
	"strings"

	"github.com/spf13/cobra"
)

var completeAnswerFlag string

var completeCmd = &cobra.Command{
	Use:     "complete [index]",
	Short:   "Mark one of your tasks as complete.",
	Long: `Record the completion answer on one of your own tasks. The answer is
stored as given: answering No on an open task leaves it open. A task that is
already completed cannot be changed again.`,
	Example: "tasktrack complete 3\ntasktrack complete 3 --answer No",
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

		value := strings.EqualFold(completeAnswerFlag, "yes")
		if err := app.Tasks.MarkComplete(cmd.Context(), task, value); err != nil {
			return err
		}

		fmt.Println("Task successfully edited.")
		return nil
	},
}

func init() {
	completeCmd.Flags().StringVar(&completeAnswerFlag, "answer", "Yes", "confirmation answer (Yes/No)")
	rootCmd.AddCommand(completeCmd)
}
