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

package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tasktrack/pkg/errors"
)

func TestSafeField(t *testing.T) {
	assert.NoError(t, SafeField("title", "File the report"))
	assert.NoError(t, SafeField("description", ""))

	err := SafeField("title", "bad;title")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidField, apperrors.CodeOf(err))
}

func TestSafeCredentials(t *testing.T) {
	assert.NoError(t, SafeCredentials("bob", "hunter2"))

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"delimiter in username", "bo;b", "hunter2"},
		{"delimiter in password", "bob", "hun;ter2"},
		{"delimiter in both", "bo;b", "hun;ter2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SafeCredentials(tt.username, tt.password)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeInvalidField, apperrors.CodeOf(err))
		})
	}
}

func TestParseDueDate(t *testing.T) {
	parsed, err := ParseDueDate("15 Sep 2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), parsed)

	for _, bad := range []string{"2026-09-15", "15 September 2026", "someday", ""} {
		_, err := ParseDueDate(bad)
		require.Error(t, err, "value %q", bad)
		assert.Equal(t, apperrors.ErrCodeInvalidField, apperrors.CodeOf(err))
	}
}
