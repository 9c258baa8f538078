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

// NewNotes creates a new Notes controller
func NewNotes(app *app.App) *Notes {
	return &Notes{
		app: app,
	}
}

// Notes is a study note controller
type Notes struct {
	app *app.App
}

// Index handles GET /api/study-notes
func (n *Notes) Index(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	notes, err := n.app.GetNotes(user.ID)
	if err != nil {
		handleJSONError(w, err, "getting notes")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentStudyNotes(notes))
}

type createNotePayload struct {
	Subject    string `json:"subject"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Importance string `json:"importance"`
}

func (p createNotePayload) validate() error {
	if strings.TrimSpace(p.Subject) == "" {
		return newValidationError("Subject is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		return newValidationError("Title is required")
	}
	if strings.TrimSpace(p.Content) == "" {
		return newValidationError("Content is required")
	}
	if p.Importance != "" && !validImportance(p.Importance) {
		return newValidationError("Importance must be low, normal or high")
	}

	return nil
}

// Create handles POST /api/study-notes
func (n *Notes) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	var payload createNotePayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}
	if err := payload.validate(); err != nil {
		handleJSONError(w, err, "validating payload")
		return
	}

	note, err := n.app.CreateNote(user.ID, app.CreateNoteParams{
		Subject:    payload.Subject,
		Title:      payload.Title,
		Content:    payload.Content,
		Importance: payload.Importance,
	})
	if err != nil {
		handleJSONError(w, err, "creating note")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentStudyNote(note))
}

type updateNotePayload struct {
	Subject    *string `json:"subject"`
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Importance *string `json:"importance"`
}

func (p updateNotePayload) validate() error {
	if p.Subject != nil && strings.TrimSpace(*p.Subject) == "" {
		return newValidationError("Subject is required")
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return newValidationError("Title is required")
	}
	if p.Content != nil && strings.TrimSpace(*p.Content) == "" {
		return newValidationError("Content is required")
	}
	if p.Importance != nil && !validImportance(*p.Importance) {
		return newValidationError("Importance must be low, normal or high")
	}

	return nil
}

// Update handles PUT /api/study-notes/{id}
func (n *Notes) Update(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	noteID, err := getIDParam(r)
	if err != nil {
		handleJSONError(w, err, "parsing id")
		return
	}

	var payload updateNotePayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}
	if err := payload.validate(); err != nil {
		handleJSONError(w, err, "validating payload")
		return
	}

	note, err := n.app.UpdateNote(user.ID, noteID, app.UpdateNoteParams{
		Subject:    payload.Subject,
		Title:      payload.Title,
		Content:    payload.Content,
		Importance: payload.Importance,
	})
	if err != nil {
		handleJSONError(w, err, "updating note")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentStudyNote(note))
}

// Delete handles DELETE /api/study-notes/{id}
func (n *Notes) Delete(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	noteID, err := getIDParam(r)
	if err != nil {
		handleJSONError(w, err, "parsing id")
		return
	}

	if err := n.app.DeleteNote(user.ID, noteID); err != nil {
		handleJSONError(w, err, "deleting note")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
