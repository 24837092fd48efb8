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

// Package logger provides a thin wrapper around zerolog.Logger. Embedding
// zerolog.Logger exposes the full zerolog API while letting the application
// add constructors without touching the upstream type. Log output goes to
// stderr so it never mixes with the record and report output on stdout.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger
type Logger struct {
	zerolog.Logger
}

// New constructs a logger for the given role label (e.g. "cli") at the given
// level. An unknown level falls back to warn, keeping normal CLI runs quiet.
func New(role, level string) *Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.WarnLevel
	}

	logger := zerolog.New(os.Stderr).Level(parsed).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a logger that discards all output. It is intended for tests
// and other contexts where logging would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
