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
	"github.com/daybookhq/daybook/pkg/server/context"
	"github.com/daybookhq/daybook/pkg/server/presenters"
)

// NewLogs creates a new Logs controller
func NewLogs(app *app.App) *Logs {
	return &Logs{
		app: app,
	}
}

// Logs is a health log controller
type Logs struct {
	app *app.App
}

type logsQuery struct {
	Date   string `schema:"date"`
	GoalID int    `schema:"goalId"`
}

// Index handles GET /api/health-logs
func (l *Logs) Index(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	var query logsQuery
	if err := parseQuery(&query, r.URL.Query()); err != nil {
		handleJSONError(w, newValidationError("goalId must be an integer"), "parsing query")
		return
	}
	if query.Date != "" {
		if err := validateDate(query.Date); err != nil {
			handleJSONError(w, err, "validating query")
			return
		}
	}

	logs, err := l.app.GetLogs(user.ID, app.GetLogsParams{
		GoalID: query.GoalID,
		Date:   query.Date,
	})
	if err != nil {
		handleJSONError(w, err, "getting logs")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentHealthLogs(logs))
}

type createLogPayload struct {
	GoalID      int    `json:"goalId"`
	Date        string `json:"date"`
	IsCompleted bool   `json:"isCompleted"`
	Notes       string `json:"notes"`
}

func (p createLogPayload) validate() error {
	if p.GoalID == 0 {
		return newValidationError("Goal is required")
	}
	if p.Date == "" {
		return newValidationError("Date is required")
	}
	if err := validateDate(p.Date); err != nil {
		return err
	}

	return nil
}

// Create handles POST /api/health-logs
func (l *Logs) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	var payload createLogPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}
	if err := payload.validate(); err != nil {
		handleJSONError(w, err, "validating payload")
		return
	}

	logRecord, err := l.app.CreateLog(user.ID, app.CreateLogParams{
		GoalID:      payload.GoalID,
		Date:        payload.Date,
		IsCompleted: payload.IsCompleted,
		Notes:       payload.Notes,
	})
	if err != nil {
		handleJSONError(w, err, "creating log")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentHealthLog(logRecord))
}

type updateLogPayload struct {
	GoalID      *int    `json:"goalId"`
	Date        *string `json:"date"`
	IsCompleted *bool   `json:"isCompleted"`
	Notes       *string `json:"notes"`
}

func (p updateLogPayload) validate() error {
	if p.GoalID != nil && *p.GoalID == 0 {
		return newValidationError("Goal is required")
	}
	if p.Date != nil {
		if err := validateDate(*p.Date); err != nil {
			return err
		}
	}

	return nil
}

// Update handles PUT /api/health-logs/{id}
func (l *Logs) Update(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	logID, err := getIDParam(r)
	if err != nil {
		handleJSONError(w, err, "parsing id")
		return
	}

	var payload updateLogPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}
	if err := payload.validate(); err != nil {
		handleJSONError(w, err, "validating payload")
		return
	}

	logRecord, err := l.app.UpdateLog(user.ID, logID, app.UpdateLogParams{
		GoalID:      payload.GoalID,
		Date:        payload.Date,
		IsCompleted: payload.IsCompleted,
		Notes:       payload.Notes,
	})
	if err != nil {
		handleJSONError(w, err, "updating log")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentHealthLog(logRecord))
}

// Delete handles DELETE /api/health-logs/{id}
func (l *Logs) Delete(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	logID, err := getIDParam(r)
	if err != nil {
		handleJSONError(w, err, "parsing id")
		return
	}

	if err := l.app.DeleteLog(user.ID, logID); err != nil {
		handleJSONError(w, err, "deleting log")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
