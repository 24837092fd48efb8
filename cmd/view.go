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
	"github.com/spf13/cobra"
)

var viewAllCmd = &cobra.Command{
	Use:   "view-all",
	Short: "View every task in the tracker.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, app, err := LoginGuard(cmd)
		if err != nil {
			return err
		}

		printTaskListing(app.Tasks.List(cmd.Context()), "There are no tasks.")
		return nil
	},
}

var viewMineCmd = &cobra.Command{
	Use:   "view-mine",
	Short: "View the tasks assigned to the logged-in user.",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, app, err := LoginGuard(cmd)
		if err != nil {
			return err
		}

		printTaskListing(app.Tasks.ListByOwner(cmd.Context(), username), "You have no tasks.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewAllCmd)
	rootCmd.AddCommand(viewMineCmd)
}
