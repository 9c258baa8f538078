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
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/daybookhq/daybook/pkg/server/app"
	"github.com/daybookhq/daybook/pkg/server/log"
	"github.com/daybookhq/daybook/pkg/server/middleware"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	pkgErrors "github.com/pkg/errors"
)

// validationError is an error caused by a request that fails the declared
// shape of its payload. Its message carries the first violated field only.
type validationError struct {
	message string
}

func (e validationError) Error() string {
	return e.message
}

func newValidationError(message string) error {
	return validationError{message: message}
}

// errorResponse is the JSON shape of every error response
type errorResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, statusCode int, i interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(i); err != nil {
		log.ErrorWrap(err, "encoding response")
	}
}

func respondErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, errorResponse{Message: message})
}

// handleJSONError translates an error into a JSON error response. Expected
// conditions are reported precisely; anything else is logged and reported
// as a generic internal error.
func handleJSONError(w http.ResponseWriter, err error, msg string) {
	if vErr, ok := pkgErrors.Cause(err).(validationError); ok {
		respondErrorJSON(w, http.StatusBadRequest, vErr.message)
		return
	}

	switch pkgErrors.Cause(err) {
	case app.ErrNotFound:
		respondErrorJSON(w, http.StatusNotFound, err.Error())
	case app.ErrSyncKeyNotFound:
		respondErrorJSON(w, http.StatusNotFound, err.Error())
	case app.ErrLoginInvalid:
		respondErrorJSON(w, http.StatusUnauthorized, err.Error())
	case app.ErrEmailRequired,
		app.ErrPasswordRequired,
		app.ErrPasswordTooShort,
		app.ErrPasswordConfirmationMismatch,
		app.ErrDuplicateEmail:
		respondErrorJSON(w, http.StatusBadRequest, err.Error())
	default:
		middleware.DoError(w, msg, err, http.StatusInternalServerError)
	}
}

// parseRequestData decodes the JSON request body into the given value
func parseRequestData(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return newValidationError("Invalid request body")
	}

	return nil
}

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// parseQuery decodes query string parameters into the given value.
// A malformed value is a validation error, not a silently ignored one.
func parseQuery(dst interface{}, query url.Values) error {
	if err := queryDecoder.Decode(dst, query); err != nil {
		return newValidationError("Invalid query parameters")
	}

	return nil
}

// getIDParam extracts the integer id from the route path
func getIDParam(r *http.Request) (int, error) {
	vars := mux.Vars(r)

	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		return 0, newValidationError("Invalid id")
	}

	return id, nil
}

const (
	dateFormat = "2006-01-02"
	timeFormat = "15:04"
)

func validateDate(value string) error {
	if _, err := time.Parse(dateFormat, value); err != nil {
		return newValidationError("Date must be in the YYYY-MM-DD format")
	}

	return nil
}

func validateTimeOfDay(value string) error {
	if _, err := time.Parse(timeFormat, value); err != nil {
		return newValidationError("Time must be in the HH:MM format")
	}

	return nil
}

func validImportance(value string) bool {
	switch value {
	case "low", "normal", "high":
		return true
	}

	return false
}

func setSessionCookie(w http.ResponseWriter, key string, expires time.Time) {
	cookie := http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    key,
		Expires:  expires,
		Path:     "/",
		HttpOnly: true,
	}

	http.SetCookie(w, &cookie)
}

func unsetSessionCookie(w http.ResponseWriter) {
	cookie := http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Expires:  time.Now(),
		Path:     "/",
		HttpOnly: true,
	}

	http.SetCookie(w, &cookie)
}
