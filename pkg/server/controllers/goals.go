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

// NewGoals creates a new Goals controller
func NewGoals(app *app.App) *Goals {
	return &Goals{
		app: app,
	}
}

// Goals is a health goal controller
type Goals struct {
	app *app.App
}

// Index handles GET /api/health-goals
func (g *Goals) Index(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	goals, err := g.app.GetGoals(user.ID)
	if err != nil {
		handleJSONError(w, err, "getting goals")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentHealthGoals(goals))
}

type createGoalPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
}

func (p createGoalPayload) validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return newValidationError("Title is required")
	}

	return nil
}

// Create handles POST /api/health-goals
func (g *Goals) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	var payload createGoalPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}
	if err := payload.validate(); err != nil {
		handleJSONError(w, err, "validating payload")
		return
	}

	goal, err := g.app.CreateGoal(user.ID, app.CreateGoalParams{
		Title:       payload.Title,
		Description: payload.Description,
		Frequency:   payload.Frequency,
	})
	if err != nil {
		handleJSONError(w, err, "creating goal")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentHealthGoal(goal))
}

type updateGoalPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Frequency   *string `json:"frequency"`
}

func (p updateGoalPayload) validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return newValidationError("Title is required")
	}

	return nil
}

// Update handles PUT /api/health-goals/{id}
func (g *Goals) Update(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	goalID, err := getIDParam(r)
	if err != nil {
		handleJSONError(w, err, "parsing id")
		return
	}

	var payload updateGoalPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}
	if err := payload.validate(); err != nil {
		handleJSONError(w, err, "validating payload")
		return
	}

	goal, err := g.app.UpdateGoal(user.ID, goalID, app.UpdateGoalParams{
		Title:       payload.Title,
		Description: payload.Description,
		Frequency:   payload.Frequency,
	})
	if err != nil {
		handleJSONError(w, err, "updating goal")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentHealthGoal(goal))
}

// Delete handles DELETE /api/health-goals/{id}
func (g *Goals) Delete(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	goalID, err := getIDParam(r)
	if err != nil {
		handleJSONError(w, err, "parsing id")
		return
	}

	if err := g.app.DeleteGoal(user.ID, goalID); err != nil {
		handleJSONError(w, err, "deleting goal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
