/* Copyright 2026 Daybook Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package cmd implements the command line interface of the server
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "daybook-server",
	Short:         "Daybook server - a personal study, health and activity tracker",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the error of the invoked
// command, if any
func Execute() error {
	// A missing .env file is fine; configuration falls back to the
	// environment and defaults.
	godotenv.Load()

	return rootCmd.Execute()
}
