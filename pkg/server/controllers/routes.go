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

package controllers

import (
	"net/http"

	"github.com/daybookhq/daybook/pkg/server/app"
	mw "github.com/daybookhq/daybook/pkg/server/middleware"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// Route represents a single route
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// RouteConfig is the configuration for routes
type RouteConfig struct {
	Controllers *Controllers
	APIRoutes   []Route
}

// NewAPIRoutes returns the API routes, mounted under /api
func NewAPIRoutes(a *app.App, c *Controllers) []Route {
	ret := []Route{
		{"POST", "/login", c.Users.Login},
		{"POST", "/logout", c.Users.Logout},
		{"GET", "/me", mw.Auth(a.DB, c.Users.Me)},

		{"GET", "/study-notes", mw.Auth(a.DB, c.Notes.Index)},
		{"POST", "/study-notes", mw.Auth(a.DB, c.Notes.Create)},
		{"PUT", "/study-notes/{id}", mw.Auth(a.DB, c.Notes.Update)},
		{"DELETE", "/study-notes/{id}", mw.Auth(a.DB, c.Notes.Delete)},

		{"GET", "/health-goals", mw.Auth(a.DB, c.Goals.Index)},
		{"POST", "/health-goals", mw.Auth(a.DB, c.Goals.Create)},
		{"PUT", "/health-goals/{id}", mw.Auth(a.DB, c.Goals.Update)},
		{"DELETE", "/health-goals/{id}", mw.Auth(a.DB, c.Goals.Delete)},

		{"GET", "/health-logs", mw.Auth(a.DB, c.Logs.Index)},
		{"POST", "/health-logs", mw.Auth(a.DB, c.Logs.Create)},
		{"PUT", "/health-logs/{id}", mw.Auth(a.DB, c.Logs.Update)},
		{"DELETE", "/health-logs/{id}", mw.Auth(a.DB, c.Logs.Delete)},

		{"GET", "/daily-activities", mw.Auth(a.DB, c.Activities.Index)},
		{"POST", "/daily-activities", mw.Auth(a.DB, c.Activities.Create)},
		{"PUT", "/daily-activities/{id}", mw.Auth(a.DB, c.Activities.Update)},
		{"DELETE", "/daily-activities/{id}", mw.Auth(a.DB, c.Activities.Delete)},

		{"GET", "/quotes/random", c.Quotes.Random},

		{"POST", "/sync", mw.Auth(a.DB, c.Sync.Create)},
		{"GET", "/sync/{key}", mw.Auth(a.DB, c.Sync.Load)},
	}

	if !a.DisableRegistration {
		ret = append(ret, Route{"POST", "/register", c.Users.Register})
	}

	return ret
}

func registerRoutes(router *mux.Router, routes []Route) {
	for _, route := range routes {
		router.
			Handle(route.Pattern, route.Handler).
			Methods(route.Method)
	}
}

// NewRouter creates and returns a new router
func NewRouter(app *app.App, rc RouteConfig) (http.Handler, error) {
	if err := app.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating the app parameters")
	}

	router := mux.NewRouter().StrictSlash(true)

	apiRouter := router.PathPrefix("/api").Subrouter()
	registerRoutes(apiRouter, rc.APIRoutes)

	router.HandleFunc("/health", rc.Controllers.Health.Index).Methods("GET")

	return mw.Global(router), nil
}
