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

	"tasktrack/pkg/tasks"
)

const listingSeparator = "-----------------------------------"

// printTaskListing prints tasks in the block layout, or the given message
// when the listing is empty
func printTaskListing(list []*tasks.Task, emptyMessage string) {
	fmt.Println(listingSeparator)
	if len(list) == 0 {
		fmt.Println(emptyMessage)
		fmt.Println(listingSeparator)
		return
	}

	for _, task := range list {
		fmt.Println(task.Display())
		fmt.Println(listingSeparator)
	}
}

// printReportBanner prints the header shown above a report file dump
func printReportBanner(name string) {
	fmt.Println("\n*****************************************")
	fmt.Printf("This is the %s file report\n", name)
	fmt.Println("*****************************************")
}
