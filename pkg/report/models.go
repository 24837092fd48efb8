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

// Package report defines the structured results produced by the statistics
// engine. Rendering these to files or the terminal is the caller's concern.
package report

// SystemOverview aggregates counts and percentages across the whole task set
type SystemOverview struct {
	TotalTasks        int
	CompletedTasks    int
	IncompleteTasks   int
	OverdueTasks      int
	IncompletePercent float64
	OverduePercent    float64
}

// UserStats is the per-user block of the user overview. All percentages are
// exactly 0 when the user has no assigned tasks.
type UserStats struct {
	Username          string
	TaskCount         int
	TaskSharePercent  float64
	CompletedPercent  float64
	IncompletePercent float64
	OverduePercent    float64
}

// UserOverview aggregates per-user statistics in directory order
type UserOverview struct {
	RegisteredUsers int
	TotalTasks      int
	Users           []UserStats
}
