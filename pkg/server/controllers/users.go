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
	"github.com/daybookhq/daybook/pkg/server/database"
	"github.com/daybookhq/daybook/pkg/server/middleware"
	"github.com/daybookhq/daybook/pkg/server/presenters"
	"github.com/pkg/errors"
)

// NewUsers creates a new Users controller
func NewUsers(app *app.App) *Users {
	return &Users{
		app: app,
	}
}

// Users is a user controller
type Users struct {
	app *app.App
}

// SessionResponse is the response of a successful sign-in
type SessionResponse struct {
	User presenters.User `json:"user"`
}

func (u *Users) respondWithSession(w http.ResponseWriter, statusCode int, user database.User, session *database.Session) {
	setSessionCookie(w, session.Key, session.ExpiresAt)

	respondJSON(w, statusCode, SessionResponse{User: presenters.PresentUser(user)})
}

type registrationPayload struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// Register handles POST /api/register
func (u *Users) Register(w http.ResponseWriter, r *http.Request) {
	var payload registrationPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	user, err := u.app.CreateUser(payload.Email, payload.Password, payload.PasswordConfirmation)
	if err != nil {
		handleJSONError(w, err, "creating user")
		return
	}

	session, err := u.app.SignIn(&user)
	if err != nil {
		handleJSONError(w, err, "signing in user")
		return
	}

	u.respondWithSession(w, http.StatusCreated, user, session)
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (u *Users) login(payload loginPayload) (*database.User, *database.Session, error) {
	if payload.Email == "" {
		return nil, nil, app.ErrEmailRequired
	}
	if payload.Password == "" {
		return nil, nil, app.ErrPasswordRequired
	}

	user, err := u.app.Authenticate(payload.Email, payload.Password)
	if err != nil {
		// If the user is not found, treat it as invalid login
		if errors.Cause(err) == app.ErrNotFound {
			return nil, nil, app.ErrLoginInvalid
		}

		return nil, nil, err
	}

	session, err := u.app.SignIn(user)
	if err != nil {
		return nil, nil, err
	}

	return user, session, nil
}

// Login handles POST /api/login
func (u *Users) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	user, session, err := u.login(payload)
	if err != nil {
		handleJSONError(w, err, "logging in user")
		return
	}

	u.respondWithSession(w, http.StatusOK, *user, session)
}

// Logout handles POST /api/logout
func (u *Users) Logout(w http.ResponseWriter, r *http.Request) {
	key, err := middleware.GetCredential(r)
	if err != nil {
		handleJSONError(w, err, "getting credential")
		return
	}

	if key != "" {
		if err := u.app.DeleteSession(key); err != nil {
			handleJSONError(w, err, "deleting session")
			return
		}

		unsetSessionCookie(w)
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/me
func (u *Users) Me(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	respondJSON(w, http.StatusOK, presenters.PresentUser(*user))
}
