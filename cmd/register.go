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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	registerPasswordFlag string
	registerConfirmFlag  string
)

var registerCmd = &cobra.Command{
	Use:     "register [username]",
	Short:   "Register a new user (admin only).",
	Long:    "Register a new user in the directory. Only the admin account may register users.",
	Example: "tasktrack register bob --password-new hunter2 --confirm hunter2",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, app, err := LoginGuard(cmd)
		if err != nil {
			return err
		}

		newUsername, newPassword, confirmPassword := collectRegistrationInput(args)
		if err := app.Users.Register(cmd.Context(), username, newUsername, newPassword, confirmPassword); err != nil {
			return err
		}

		fmt.Println("New user added")
		return nil
	},
}

// collectRegistrationInput gathers the new credentials from args/flags or
// interactive prompts
func collectRegistrationInput(args []string) (string, string, string) {
	reader := bufio.NewReader(os.Stdin)

	var newUsername string
	if len(args) >= 1 {
		newUsername = args[0]
	}
	if newUsername == "" {
		newUsername = promptLine(reader, "New Username: ")
	}

	newPassword := registerPasswordFlag
	if newPassword == "" {
		newPassword = promptLine(reader, "New Password: ")
	}

	confirmPassword := registerConfirmFlag
	if confirmPassword == "" {
		confirmPassword = promptLine(reader, "Confirm Password: ")
	}

	return newUsername, newPassword, confirmPassword
}

func promptLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func init() {
	registerCmd.Flags().StringVar(&registerPasswordFlag, "password-new", "", "password for the new user")
	registerCmd.Flags().StringVar(&registerConfirmFlag, "confirm", "", "password confirmation")

	rootCmd.AddCommand(registerCmd)
}
