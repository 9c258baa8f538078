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
	"github.com/gorilla/mux"
)

// NewSync creates a new Sync controller
func NewSync(app *app.App) *Sync {
	return &Sync{
		app: app,
	}
}

// Sync is a backup/restore controller
type Sync struct {
	app *app.App
}

// CreateResponse is the response of a backup export
type CreateResponse struct {
	Key string `json:"key"`
}

// Create handles POST /api/sync. It snapshots the user's data and returns
// the generated sync key.
func (s *Sync) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	key, err := s.app.CreateBackup(user.ID)
	if err != nil {
		handleJSONError(w, err, "creating backup")
		return
	}

	respondJSON(w, http.StatusCreated, CreateResponse{Key: key})
}

// Load handles GET /api/sync/{key}. It restores the snapshot stored under
// the key into the calling user's account. A GET is kept deliberately so
// that the key link handed between devices doubles as the restore link.
func (s *Sync) Load(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	vars := mux.Vars(r)
	key := vars["key"]

	if err := s.app.RestoreBackup(user.ID, key); err != nil {
		handleJSONError(w, err, "restoring backup")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Sync complete"})
}
