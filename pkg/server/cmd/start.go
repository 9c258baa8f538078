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
	"net/http"

	"github.com/daybookhq/daybook/pkg/clock"
	"github.com/daybookhq/daybook/pkg/server/app"
	"github.com/daybookhq/daybook/pkg/server/buildinfo"
	"github.com/daybookhq/daybook/pkg/server/config"
	"github.com/daybookhq/daybook/pkg/server/controllers"
	"github.com/daybookhq/daybook/pkg/server/database"
	"github.com/daybookhq/daybook/pkg/server/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the server",
		RunE:  runStart,
	}

	cmd.Flags().String("port", "", "Server port (env: PORT, default: 3001)")
	cmd.Flags().String("webUrl", "", "Full URL to server without trailing slash (env: WebURL, default: http://localhost:3001)")
	cmd.Flags().String("dbDriver", "", "Database driver: sqlite or postgres (env: DBDriver, default: sqlite)")
	cmd.Flags().String("dbDsn", "", "Database file path or connection string (env: DBDSN, default: daybook.db)")
	cmd.Flags().Bool("disableRegistration", false, "Disable user registration (env: DisableRegistration, default: false)")
	cmd.Flags().String("logLevel", "", "Log level: debug, info, warn, or error (env: LOG_LEVEL, default: info)")

	rootCmd.AddCommand(cmd)
}

func initApp(cfg config.Config) app.App {
	db := database.Open(cfg.DBDriver, cfg.DBDSN)
	database.InitSchema(db)

	return app.App{
		DB:                  db,
		Clock:               clock.New(),
		WebURL:              cfg.WebURL,
		Port:                cfg.Port,
		AppEnv:              cfg.AppEnv,
		DisableRegistration: cfg.DisableRegistration,
	}
}

func runStart(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetString("port")
	webURL, _ := cmd.Flags().GetString("webUrl")
	dbDriver, _ := cmd.Flags().GetString("dbDriver")
	dbDSN, _ := cmd.Flags().GetString("dbDsn")
	disableRegistration, _ := cmd.Flags().GetBool("disableRegistration")
	logLevel, _ := cmd.Flags().GetString("logLevel")

	cfg, err := config.New(config.Params{
		Port:                port,
		WebURL:              webURL,
		DBDriver:            dbDriver,
		DBDSN:               dbDSN,
		DisableRegistration: disableRegistration,
		LogLevel:            logLevel,
	})
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	log.SetLevel(cfg.LogLevel)

	a := initApp(cfg)
	defer func() {
		sqlDB, err := a.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}()

	sweeper, err := database.StartSessionSweep(a.DB, cfg.SessionSweepSchedule)
	if err != nil {
		return errors.Wrap(err, "starting session sweep")
	}
	defer sweeper.Stop()

	ctl := controllers.New(&a)
	rc := controllers.RouteConfig{
		APIRoutes:   controllers.NewAPIRoutes(&a, ctl),
		Controllers: ctl,
	}

	r, err := controllers.NewRouter(&a, rc)
	if err != nil {
		return errors.Wrap(err, "initializing router")
	}

	log.WithFields(log.Fields{
		"version": buildinfo.Version,
		"port":    cfg.Port,
	}).Info("Daybook server starting")

	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		return errors.Wrap(err, "running server")
	}

	return nil
}
