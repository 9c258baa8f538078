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
)

func TestCreateNote(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := NewTest()
	a.DB = db

	note, err := a.CreateNote(user.ID, CreateNoteParams{
		Subject: "biology",
		Title:   "Mitochondria",
		Content: "powerhouse of the cell",
	})
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating note"))
	}

	assert.Equal(t, note.Subject, "biology", "Subject mismatch")
	assert.Equal(t, note.Title, "Mitochondria", "Title mismatch")
	assert.Equal(t, note.Importance, "normal", "Importance should default to normal")
	assert.NotEqual(t, note.ID, 0, "ID should be assigned")

	var count int64
	testutils.MustExec(t, db.Model(&database.StudyNote{}).Count(&count), "counting notes")
	assert.Equal(t, count, int64(1), "note count mismatch")
}

func TestGetNotes(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")
	other := testutils.SetupUserData(db, "bob@example.com", "pass1234")

	a := NewTest()
	a.DB = db

	n1, err := a.CreateNote(user.ID, CreateNoteParams{Subject: "math", Title: "first"})
	if err != nil {
		t.Fatal(err)
	}
	n2, err := a.CreateNote(user.ID, CreateNoteParams{Subject: "math", Title: "second"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = a.CreateNote(other.ID, CreateNoteParams{Subject: "math", Title: "theirs"}); err != nil {
		t.Fatal(err)
	}

	notes, err := a.GetNotes(user.ID)
	if err != nil {
		t.Fatal(errors.Wrap(err, "getting notes"))
	}

	assert.Equal(t, len(notes), 2, "note count mismatch")
	assert.Equal(t, notes[0].ID, n2.ID, "newest note should come first")
	assert.Equal(t, notes[1].ID, n1.ID, "older note should come last")
}

func TestUpdateNote(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := NewTest()
	a.DB = db

	note, err := a.CreateNote(user.ID, CreateNoteParams{
		Subject:    "history",
		Title:      "Rome",
		Content:    "founded 753 BC",
		Importance: "low",
	})
	if err != nil {
		t.Fatal(err)
	}

	title := "Ancient Rome"
	updated, err := a.UpdateNote(user.ID, note.ID, UpdateNoteParams{Title: &title})
	if err != nil {
		t.Fatal(errors.Wrap(err, "updating note"))
	}

	assert.Equal(t, updated.Title, "Ancient Rome", "Title mismatch")
	assert.Equal(t, updated.Subject, "history", "Subject should be untouched")
	assert.Equal(t, updated.Content, "founded 753 BC", "Content should be untouched")
	assert.Equal(t, updated.Importance, "low", "Importance should be untouched")
}

func TestUpdateNote_NotFound(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")
	other := testutils.SetupUserData(db, "bob@example.com", "pass1234")

	a := NewTest()
	a.DB = db

	note, err := a.CreateNote(other.ID, CreateNoteParams{Subject: "math", Title: "theirs"})
	if err != nil {
		t.Fatal(err)
	}

	title := "hijacked"
	_, err = a.UpdateNote(user.ID, note.ID, UpdateNoteParams{Title: &title})
	assert.Equal(t, errors.Cause(err), ErrNotFound, "error mismatch")

	var stored database.StudyNote
	testutils.MustExec(t, db.First(&stored, note.ID), "finding note")
	assert.Equal(t, stored.Title, "theirs", "note of another user should be untouched")
}

func TestDeleteNote(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := NewTest()
	a.DB = db

	note, err := a.CreateNote(user.ID, CreateNoteParams{Subject: "math", Title: "target"})
	if err != nil {
		t.Fatal(err)
	}

	if err := a.DeleteNote(user.ID, note.ID); err != nil {
		t.Fatal(errors.Wrap(err, "deleting note"))
	}

	var count int64
	testutils.MustExec(t, db.Model(&database.StudyNote{}).Count(&count), "counting notes")
	assert.Equal(t, count, int64(0), "note should be deleted")

	// deleting again is a no-op
	if err := a.DeleteNote(user.ID, note.ID); err != nil {
		t.Fatal(errors.Wrap(err, "deleting missing note"))
	}
}
