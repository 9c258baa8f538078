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

package app

import (
	"testing"

	"github.com/daybookhq/daybook/pkg/assert"
	"github.com/daybookhq/daybook/pkg/server/database"
	"github.com/daybookhq/daybook/pkg/server/testutils"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db

	user, err := a.CreateUser("alice@example.com", "pass1234", "pass1234")
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating user"))
	}

	assert.Equal(t, user.Email, "alice@example.com", "Email mismatch")
	assert.NotEqual(t, user.UUID, "", "UUID should be set")
	assert.NotEqual(t, user.Password, "pass1234", "password should be hashed")

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pass1234")); err != nil {
		t.Errorf("hashed password does not match the original: %v", err)
	}
}

func TestCreateUser_Validation(t *testing.T) {
	testCases := []struct {
		email                string
		password             string
		passwordConfirmation string
		expectedErr          error
	}{
		{
			email:       "",
			password:    "pass1234",
			expectedErr: ErrEmailRequired,
		},
		{
			email:       "alice@example.com",
			password:    "",
			expectedErr: ErrPasswordRequired,
		},
		{
			email:       "alice@example.com",
			password:    "short",
			expectedErr: ErrPasswordTooShort,
		},
		{
			email:                "alice@example.com",
			password:             "pass1234",
			passwordConfirmation: "pass5678",
			expectedErr:          ErrPasswordConfirmationMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.expectedErr.Error(), func(t *testing.T) {
			db := testutils.InitMemoryDB(t)

			a := NewTest()
			a.DB = db

			confirmation := tc.passwordConfirmation
			if confirmation == "" {
				confirmation = tc.password
			}

			_, err := a.CreateUser(tc.email, tc.password, confirmation)
			assert.Equal(t, errors.Cause(err), tc.expectedErr, "error mismatch")

			var count int64
			testutils.MustExec(t, db.Model(&database.User{}).Count(&count), "counting users")
			assert.Equal(t, count, int64(0), "no user should be created")
		})
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := NewTest()
	a.DB = db

	_, err := a.CreateUser("alice@example.com", "pass1234", "pass1234")
	assert.Equal(t, errors.Cause(err), ErrDuplicateEmail, "error mismatch")

	var count int64
	testutils.MustExec(t, db.Model(&database.User{}).Count(&count), "counting users")
	assert.Equal(t, count, int64(1), "user count mismatch")
}

func TestAuthenticate(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := NewTest()
	a.DB = db

	t.Run("correct credentials", func(t *testing.T) {
		user, err := a.Authenticate("alice@example.com", "pass1234")
		if err != nil {
			t.Fatal(errors.Wrap(err, "authenticating"))
		}

		assert.Equal(t, user.Email, "alice@example.com", "Email mismatch")
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := a.Authenticate("alice@example.com", "wrongpass")
		assert.Equal(t, errors.Cause(err), ErrLoginInvalid, "error mismatch")
	})

	t.Run("nonexistent user", func(t *testing.T) {
		_, err := a.Authenticate("nobody@example.com", "pass1234")
		assert.Equal(t, errors.Cause(err), ErrNotFound, "error mismatch")
	})
}

func TestSignIn(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := NewTest()
	a.DB = db

	session, err := a.SignIn(&user)
	if err != nil {
		t.Fatal(errors.Wrap(err, "signing in"))
	}

	assert.Equal(t, session.UserID, user.ID, "UserID mismatch")
	assert.NotEqual(t, session.Key, "", "session key should be set")
	assert.Equal(t, session.ExpiresAt, a.Clock.Now().Add(SessionLifetime), "ExpiresAt mismatch")

	var stored database.User
	testutils.MustExec(t, db.First(&stored, user.ID), "finding user")
	if stored.LastLoginAt == nil {
		t.Error("LastLoginAt should be set")
	}
}
