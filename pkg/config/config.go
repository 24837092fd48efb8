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

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Default file names inside the data directory. The record file names match
// the original flat-file layout so existing data keeps working.
const (
	DefaultTasksFile        = "tasks.txt"
	DefaultUsersFile        = "user.txt"
	DefaultTaskOverviewFile = "task_overview.txt"
	DefaultUserOverviewFile = "user_overview.txt"
	DefaultLogLevel         = "warn"

	configFileName = "config.toml"
)

// Config holds the full configuration for tasktrack. Values resolve in three
// layers: built-in defaults, then config.toml in the data directory, then
// environment variables.
type Config struct {
	DataDir          string `toml:"data_dir" env:"TASKTRACK_DATA_DIR"`
	TasksFile        string `toml:"tasks_file" env:"TASKTRACK_TASKS_FILE"`
	UsersFile        string `toml:"users_file" env:"TASKTRACK_USERS_FILE"`
	TaskOverviewFile string `toml:"task_overview_file" env:"TASKTRACK_TASK_OVERVIEW_FILE"`
	UserOverviewFile string `toml:"user_overview_file" env:"TASKTRACK_USER_OVERVIEW_FILE"`
	LogLevel         string `toml:"log_level" env:"TASKTRACK_LOG_LEVEL"`
}

// Load resolves the effective configuration
func Load() (*Config, error) {
	dataDir, err := ResolveDataDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataDir:          dataDir,
		TasksFile:        DefaultTasksFile,
		UsersFile:        DefaultUsersFile,
		TaskOverviewFile: DefaultTaskOverviewFile,
		UserOverviewFile: DefaultUserOverviewFile,
		LogLevel:         DefaultLogLevel,
	}

	if err := cfg.applyFile(filepath.Join(dataDir, configFileName)); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing env configuration: %w", err)
	}

	return cfg, nil
}

// applyFile overlays values from a config.toml when one exists
func (c *Config) applyFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// TasksPath returns the absolute path of the task record file
func (c *Config) TasksPath() string {
	return filepath.Join(c.DataDir, c.TasksFile)
}

// UsersPath returns the absolute path of the user record file
func (c *Config) UsersPath() string {
	return filepath.Join(c.DataDir, c.UsersFile)
}

// TaskOverviewPath returns the absolute path of the system report file
func (c *Config) TaskOverviewPath() string {
	return filepath.Join(c.DataDir, c.TaskOverviewFile)
}

// UserOverviewPath returns the absolute path of the per-user report file
func (c *Config) UserOverviewPath() string {
	return filepath.Join(c.DataDir, c.UserOverviewFile)
}
