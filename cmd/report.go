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
	"os"

	"github.com/spf13/cobra"
)

var generateReportsCmd = &cobra.Command{
	Use:   "generate-reports",
	Short: "Write the task and user overview report files (admin only).",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, app, err := AdminGuard(cmd, "generate-reports")
		if err != nil {
			return err
		}

		if err := app.ReportWriter.Generate(cmd.Context(), app.Reports); err != nil {
			return err
		}

		fmt.Println("Reports generated successfully")
		return nil
	},
}

var showStatsCmd = &cobra.Command{
	Use:   "show-stats",
	Short: "Print the overview reports, generating them first if missing (admin only).",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, app, err := AdminGuard(cmd, "show-stats")
		if err != nil {
			return err
		}

		taskPath := app.ReportWriter.TaskOverviewPath()
		userPath := app.ReportWriter.UserOverviewPath()

		if !fileExists(taskPath) || !fileExists(userPath) {
			if err := app.ReportWriter.Generate(cmd.Context(), app.Reports); err != nil {
				return err
			}
		}

		if err := dumpReportFile(taskPath); err != nil {
			return err
		}
		return dumpReportFile(userPath)
	},
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// dumpReportFile prints a generated report file under its banner
func dumpReportFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	printReportBanner(path)
	fmt.Print(string(data))
	return nil
}

func init() {
	rootCmd.AddCommand(generateReportsCmd)
	rootCmd.AddCommand(showStatsCmd)
}
