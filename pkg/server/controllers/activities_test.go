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
	"github.com/daybookhq/daybook/pkg/server/testutils"
)

func activityTime(s string) *string {
	return &s
}

func TestActivitiesIndex_ByDate(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := app.NewTest()
	a.DB = db

	if _, err := a.CreateActivity(user.ID, app.CreateActivityParams{Content: "Groceries", Date: "2024-03-01"}); err != nil {
		t.Fatal(err)
	}
	if _, err := a.CreateActivity(user.ID, app.CreateActivityParams{Content: "Standup", Time: activityTime("09:30"), Date: "2024-03-01"}); err != nil {
		t.Fatal(err)
	}
	if _, err := a.CreateActivity(user.ID, app.CreateActivityParams{Content: "Other day", Date: "2024-03-02"}); err != nil {
		t.Fatal(err)
	}

	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "GET", "/api/daily-activities?date=2024-03-01", "")
	res := testutils.HTTPAuthDo(t, db, req, user)

	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var got []presentedActivity
	testutils.MustUnmarshalJSON(t, res, &got)
	assert.Equalf(t, len(got), 2, "activity count mismatch")
	assert.Equal(t, got[0].Content, "Standup", "scheduled activity should come first")
	assert.Equal(t, got[1].Content, "Groceries", "unscheduled activity should come last")
}

type presentedActivity struct {
	ID      int     `json:"id"`
	Content string  `json:"content"`
	Time    *string `json:"time"`
	Date    string  `json:"date"`
	IsDone  bool    `json:"isDone"`
}

func TestActivitiesIndex_MalformedDate(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := app.NewTest()
	a.DB = db

	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "GET", "/api/daily-activities?date=bogus", "")
	res := testutils.HTTPAuthDo(t, db, req, user)

	assert.StatusCodeEquals(t, res, http.StatusBadRequest, "")
}

func TestActivitiesCreate(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := app.NewTest()
	a.DB = db

	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "POST", "/api/daily-activities", `{"content": "Standup", "time": "09:30", "date": "2024-03-01"}`)
	res := testutils.HTTPAuthDo(t, db, req, user)

	assert.StatusCodeEquals(t, res, http.StatusCreated, "")

	var got presentedActivity
	testutils.MustUnmarshalJSON(t, res, &got)
	assert.Equal(t, got.Content, "Standup", "Content mismatch")
	if got.Time == nil {
		t.Fatal("Time should be set")
	}
	assert.Equal(t, *got.Time, "09:30", "Time mismatch")
}

func TestActivitiesCreate_NoTime(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := app.NewTest()
	a.DB = db

	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "POST", "/api/daily-activities", `{"content": "Groceries", "date": "2024-03-01"}`)
	res := testutils.HTTPAuthDo(t, db, req, user)

	assert.StatusCodeEquals(t, res, http.StatusCreated, "")

	var got presentedActivity
	testutils.MustUnmarshalJSON(t, res, &got)
	if got.Time != nil {
		t.Errorf("Time should be null. Got: %s", *got.Time)
	}
}

func TestActivitiesCreate_MalformedTime(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := app.NewTest()
	a.DB = db

	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "POST", "/api/daily-activities", `{"content": "Standup", "time": "9:30 AM", "date": "2024-03-01"}`)
	res := testutils.HTTPAuthDo(t, db, req, user)

	assert.StatusCodeEquals(t, res, http.StatusBadRequest, "")
}

func TestActivitiesUpdate_IsDoneOnly(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := app.NewTest()
	a.DB = db

	activity, err := a.CreateActivity(user.ID, app.CreateActivityParams{Content: "Standup", Time: activityTime("09:30"), Date: "2024-03-01"})
	if err != nil {
		t.Fatal(err)
	}

	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "PUT", fmt.Sprintf("/api/daily-activities/%d", activity.ID), `{"isDone": true}`)
	res := testutils.HTTPAuthDo(t, db, req, user)

	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var got presentedActivity
	testutils.MustUnmarshalJSON(t, res, &got)
	assert.Equal(t, got.IsDone, true, "IsDone mismatch")
	assert.Equal(t, got.Content, "Standup", "Content should be untouched")
}

func TestActivitiesUpdate_ClearTime(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := app.NewTest()
	a.DB = db

	activity, err := a.CreateActivity(user.ID, app.CreateActivityParams{Content: "Standup", Time: activityTime("09:30"), Date: "2024-03-01"})
	if err != nil {
		t.Fatal(err)
	}

	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "PUT", fmt.Sprintf("/api/daily-activities/%d", activity.ID), `{"time": ""}`)
	res := testutils.HTTPAuthDo(t, db, req, user)

	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var got presentedActivity
	testutils.MustUnmarshalJSON(t, res, &got)
	if got.Time != nil {
		t.Errorf("Time should be cleared to null. Got: %s", *got.Time)
	}

	// cleared activities sort after scheduled ones again
	if _, err := a.CreateActivity(user.ID, app.CreateActivityParams{Content: "Dinner", Time: activityTime("19:00"), Date: "2024-03-01"}); err != nil {
		t.Fatal(err)
	}

	activities, err := a.GetActivities(user.ID, app.GetActivitiesParams{Date: "2024-03-01"})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equalf(t, len(activities), 2, "activity count mismatch")
	assert.Equal(t, activities[0].Content, "Dinner", "scheduled activity should come first")
	assert.Equal(t, activities[1].Content, "Standup", "unscheduled activity should come last")
}

func TestActivitiesDelete(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "pass1234")

	a := app.NewTest()
	a.DB = db

	activity, err := a.CreateActivity(user.ID, app.CreateActivityParams{Content: "Standup", Date: "2024-03-01"})
	if err != nil {
		t.Fatal(err)
	}

	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "DELETE", fmt.Sprintf("/api/daily-activities/%d", activity.ID), "")
	res := testutils.HTTPAuthDo(t, db, req, user)

	assert.StatusCodeEquals(t, res, http.StatusNoContent, "")

	activities, err := a.GetActivities(user.ID, app.GetActivitiesParams{})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, len(activities), 0, "activity should be deleted")
}
