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
	"strings"

	"github.com/daybookhq/daybook/pkg/server/app"
	"github.com/daybookhq/daybook/pkg/server/context"
	"github.com/daybookhq/daybook/pkg/server/presenters"
)

// NewActivities creates a new Activities controller
func NewActivities(app *app.App) *Activities {
	return &Activities{
		app: app,
	}
}

// Activities is a daily activity controller
type Activities struct {
	app *app.App
}

type activitiesQuery struct {
	Date string `schema:"date"`
}

// Index handles GET /api/daily-activities
func (a *Activities) Index(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	var query activitiesQuery
	if err := parseQuery(&query, r.URL.Query()); err != nil {
		handleJSONError(w, err, "parsing query")
		return
	}
	if query.Date != "" {
		if err := validateDate(query.Date); err != nil {
			handleJSONError(w, err, "validating query")
			return
		}
	}

	activities, err := a.app.GetActivities(user.ID, app.GetActivitiesParams{
		Date: query.Date,
	})
	if err != nil {
		handleJSONError(w, err, "getting activities")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentDailyActivities(activities))
}

type createActivityPayload struct {
	Content string  `json:"content"`
	Time    *string `json:"time"`
	Date    string  `json:"date"`
	IsDone  bool    `json:"isDone"`
}

func (p createActivityPayload) validate() error {
	if strings.TrimSpace(p.Content) == "" {
		return newValidationError("Content is required")
	}
	if p.Date == "" {
		return newValidationError("Date is required")
	}
	if err := validateDate(p.Date); err != nil {
		return err
	}
	if p.Time != nil && *p.Time != "" {
		if err := validateTimeOfDay(*p.Time); err != nil {
			return err
		}
	}

	return nil
}

// Create handles POST /api/daily-activities
func (a *Activities) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	var payload createActivityPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}
	if err := payload.validate(); err != nil {
		handleJSONError(w, err, "validating payload")
		return
	}

	activity, err := a.app.CreateActivity(user.ID, app.CreateActivityParams{
		Content: payload.Content,
		Time:    payload.Time,
		Date:    payload.Date,
		IsDone:  payload.IsDone,
	})
	if err != nil {
		handleJSONError(w, err, "creating activity")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentDailyActivity(activity))
}

type updateActivityPayload struct {
	Content *string `json:"content"`
	Time    *string `json:"time"`
	Date    *string `json:"date"`
	IsDone  *bool   `json:"isDone"`
}

func (p updateActivityPayload) validate() error {
	if p.Content != nil && strings.TrimSpace(*p.Content) == "" {
		return newValidationError("Content is required")
	}
	if p.Date != nil {
		if err := validateDate(*p.Date); err != nil {
			return err
		}
	}
	if p.Time != nil && *p.Time != "" {
		if err := validateTimeOfDay(*p.Time); err != nil {
			return err
		}
	}

	return nil
}

// Update handles PUT /api/daily-activities/{id}
func (a *Activities) Update(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	activityID, err := getIDParam(r)
	if err != nil {
		handleJSONError(w, err, "parsing id")
		return
	}

	var payload updateActivityPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}
	if err := payload.validate(); err != nil {
		handleJSONError(w, err, "validating payload")
		return
	}

	activity, err := a.app.UpdateActivity(user.ID, activityID, app.UpdateActivityParams{
		Content: payload.Content,
		Time:    payload.Time,
		Date:    payload.Date,
		IsDone:  payload.IsDone,
	})
	if err != nil {
		handleJSONError(w, err, "updating activity")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentDailyActivity(activity))
}

// Delete handles DELETE /api/daily-activities/{id}
func (a *Activities) Delete(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	activityID, err := getIDParam(r)
	if err != nil {
		handleJSONError(w, err, "parsing id")
		return
	}

	if err := a.app.DeleteActivity(user.ID, activityID); err != nil {
		handleJSONError(w, err, "deleting activity")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
