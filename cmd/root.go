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
	"errors"
	"fmt"
	"os"

	"tasktrack/internal/logger"
	"tasktrack/internal/platform"
	"tasktrack/pkg/config"
	apperrors "tasktrack/pkg/errors"

	"github.com/spf13/cobra"
)

var (
	// UserFlag and PasswordFlag carry the login credentials for all commands
	UserFlag     string
	PasswordFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tasktrack",
	Short: "A single-user, file-backed task tracker with per-user statistics reports.",
	Long: `tasktrack maintains a list of tasks and a small user directory in plain
record files, and generates aggregate statistics reports over them.

Features:
	• Task creation, viewing, completion and reassignment
	• Admin-gated user registration
	• System and per-user overview reports (totals, percentages, overdue counts)
	• Record files compatible with the classic tasks.txt / user.txt layout

All records are stored locally in ~/.tasktrack/ (override with
TASKTRACK_CONFIG_DIR or config.toml). On first run a bootstrap admin account
(admin/password) is created.

Every data command needs a login: pass --user/--password or set the
TASKTRACK_USER and TASKTRACK_PASSWORD environment variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printUserError(err)
		os.Exit(1)
	}
}

// initializePlatform loads configuration and records before every command.
// A malformed record in either file aborts here; that is the only failure
// that terminates the process instead of returning to the prompt.
func initializePlatform(cmd *cobra.Command, args []string) error {
	switch cmd.Name() {
	case "help", "completion", "version":
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New("cli", cfg.LogLevel)

	app, err := platform.New(cmd.Context(), cfg, log)
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeMalformedRecord) {
			log.Error().Err(err).Msg("persisted records are corrupt; manual repair required")
		}
		return err
	}

	cmd.SetContext(platform.WithPlatform(cmd.Context(), app))
	return nil
}

// printUserError shows the message meant for the terminal, keeping codes and
// causes in the details for the log
func printUserError(err error) {
	var structured *apperrors.StructuredError
	if errors.As(err, &structured) {
		fmt.Fprintln(os.Stderr, structured.UserMessage())
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&UserFlag, "user", "", "login username (overrides env)")
	rootCmd.PersistentFlags().StringVar(&PasswordFlag, "password", "", "login password (overrides env)")
	rootCmd.PersistentPreRunE = initializePlatform
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}
