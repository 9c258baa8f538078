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

package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daybookhq/daybook/pkg/assert"
	"github.com/daybookhq/daybook/pkg/server/context"
	"github.com/daybookhq/daybook/pkg/server/database"
	"github.com/daybookhq/daybook/pkg/server/testutils"
)

func TestGetCredential(t *testing.T) {
	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer some-key")

		key, err := GetCredential(req)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, key, "some-key", "key mismatch")
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "some-key")

		_, err := GetCredential(req)
		if err == nil {
			t.Error("expected an error for a malformed header")
		}
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-key"})

		key, err := GetCredential(req)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, key, "cookie-key", "key mismatch")
	})

	t.Run("no credential", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)

		key, err := GetCredential(req)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, key, "", "key should be empty")
	})
}

func TestAuth(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

	var gotUser *database.User
	handler := Auth(db, func(w http.ResponseWriter, r *http.Request) {
		gotUser = context.User(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid session via header", func(t *testing.T) {
		gotUser = nil
		session := testutils.SetupSession(db, user)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", session.Key))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, w.Code, http.StatusOK, "status code mismatch")
		if gotUser == nil {
			t.Fatal("user should be set in the context")
		}
		assert.Equal(t, gotUser.ID, user.ID, "user mismatch")
	})

	t.Run("valid session via cookie", func(t *testing.T) {
		gotUser = nil
		session := testutils.SetupSession(db, user)

		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: session.Key})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, w.Code, http.StatusOK, "status code mismatch")
		if gotUser == nil {
			t.Fatal("user should be set in the context")
		}
	})

	t.Run("no credential", func(t *testing.T) {
		gotUser = nil

		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, w.Code, http.StatusUnauthorized, "status code mismatch")
		if gotUser != nil {
			t.Error("handler should not be invoked")
		}
	})

	t.Run("nonexistent session", func(t *testing.T) {
		gotUser = nil

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer no-such-key")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, w.Code, http.StatusUnauthorized, "status code mismatch")
	})

	t.Run("expired session", func(t *testing.T) {
		gotUser = nil

		session := database.Session{
			UserID:    user.ID,
			Key:       "expired-session-key",
			ExpiresAt: time.Now().Add(-time.Hour),
		}
		if err := db.Create(&session).Error; err != nil {
			t.Fatal(err)
		}

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", session.Key))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, w.Code, http.StatusUnauthorized, "status code mismatch")
	})
}
