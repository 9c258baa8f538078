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

package cmd

import (
	"fmt"

	"github.com/daybookhq/daybook/pkg/server/config"
	"github.com/daybookhq/daybook/pkg/server/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user account",
		RunE:  runUserAdd,
	}
	addCmd.Flags().String("email", "", "Email for the new account")
	addCmd.Flags().String("password", "", "Password for the new account")
	addCmd.Flags().String("dbDriver", "", "Database driver: sqlite or postgres (env: DBDriver, default: sqlite)")
	addCmd.Flags().String("dbDsn", "", "Database file path or connection string (env: DBDSN, default: daybook.db)")

	userCmd.AddCommand(addCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	dbDriver, _ := cmd.Flags().GetString("dbDriver")
	dbDSN, _ := cmd.Flags().GetString("dbDsn")

	cfg, err := config.New(config.Params{
		DBDriver: dbDriver,
		DBDSN:    dbDSN,
	})
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	a := initApp(cfg)
	defer func() {
		sqlDB, err := a.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}()

	user, err := a.CreateUser(email, password, password)
	if err != nil {
		return errors.Wrap(err, "creating user")
	}

	log.WithFields(log.Fields{
		"email": email,
		"uuid":  user.UUID,
	}).Info("created user")
	fmt.Printf("created user %s\n", email)

	return nil
}
