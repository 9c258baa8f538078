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
	"fmt"
	"net/http"
	"testing"

	"github.com/daybookhq/daybook/pkg/assert"
	"github.com/daybookhq/daybook/pkg/server/app"
	"github.com/daybookhq/daybook/pkg/server/crypt"
	"github.com/daybookhq/daybook/pkg/server/database"
	"github.com/daybookhq/daybook/pkg/server/testutils"
)

func TestSyncCreate(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := app.NewTest()
	a.DB = db

	if _, err := a.CreateNote(user.ID, app.CreateNoteParams{Subject: "math", Title: "Primes", Content: "2 3 5 7"}); err != nil {
		t.Fatal(err)
	}

	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "POST", "/api/sync", "")
	res := testutils.HTTPAuthDo(t, db, req, user)

	assert.StatusCodeEquals(t, res, http.StatusCreated, "")

	var got CreateResponse
	testutils.MustUnmarshalJSON(t, res, &got)
	assert.Equal(t, len(got.Key), crypt.SyncKeyLen, "key length mismatch")

	var record database.SyncKey
	testutils.MustExec(t, db.Where("key = ?", got.Key).First(&record), "finding sync key")
	assert.Equal(t, record.UserID, user.ID, "UserID mismatch")
}

func TestSyncLoad(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := app.NewTest()
	a.DB = db

	if _, err := a.CreateNote(user.ID, app.CreateNoteParams{Subject: "math", Title: "Primes", Content: "2 3 5 7"}); err != nil {
		t.Fatal(err)
	}

	key, err := a.CreateBackup(user.ID)
	if err != nil {
		t.Fatal(err)
	}

	// diverge from the snapshot
	if _, err := a.CreateNote(user.ID, app.CreateNoteParams{Subject: "math", Title: "Stray", Content: "x"}); err != nil {
		t.Fatal(err)
	}

	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "GET", fmt.Sprintf("/api/sync/%s", key), "")
	res := testutils.HTTPAuthDo(t, db, req, user)

	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var got map[string]string
	testutils.MustUnmarshalJSON(t, res, &got)
	assert.Equal(t, got["message"], "Sync complete", "message mismatch")

	notes, err := a.GetNotes(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equalf(t, len(notes), 1, "note count mismatch")
	assert.Equal(t, notes[0].Title, "Primes", "rows should be replaced with the snapshot")
}

func TestSyncLoad_UnknownKey(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := app.NewTest()
	a.DB = db

	if _, err := a.CreateNote(user.ID, app.CreateNoteParams{Subject: "math", Title: "Primes", Content: "2 3 5 7"}); err != nil {
		t.Fatal(err)
	}

	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "GET", "/api/sync/ZZZZZZZZ", "")
	res := testutils.HTTPAuthDo(t, db, req, user)

	assert.StatusCodeEquals(t, res, http.StatusNotFound, "")

	var count int64
	testutils.MustExec(t, db.Model(&database.StudyNote{}).Count(&count), "counting notes")
	assert.Equal(t, count, int64(1), "existing rows should be untouched")
}

func TestSync_Unauthenticated(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := app.NewTest()
	a.DB = db

	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "POST", "/api/sync", "")
	res := testutils.HTTPDo(t, req)
	assert.StatusCodeEquals(t, res, http.StatusUnauthorized, "")

	req = testutils.MakeReq(server.URL, "GET", "/api/sync/AAAAAAAA", "")
	res = testutils.HTTPDo(t, req)
	assert.StatusCodeEquals(t, res, http.StatusUnauthorized, "")
}
