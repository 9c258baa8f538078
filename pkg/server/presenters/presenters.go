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

// Package presenters defines the wire shapes of persisted rows. The wire
// schema and the storage schema evolve independently; these mapping
// functions are the only bridge between them.
package presenters

import (
	"time"

	"github.com/daybookhq/daybook/pkg/server/database"
)

// StudyNote is a result of PresentStudyNote
type StudyNote struct {
	ID         int       `json:"id"`
	Subject    string    `json:"subject"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Importance string    `json:"importance"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PresentStudyNote presents a study note
func PresentStudyNote(note database.StudyNote) StudyNote {
	return StudyNote{
		ID:         note.ID,
		Subject:    note.Subject,
		Title:      note.Title,
		Content:    note.Content,
		Importance: note.Importance,
		CreatedAt:  note.CreatedAt.UTC(),
	}
}

// PresentStudyNotes presents study notes
func PresentStudyNotes(notes []database.StudyNote) []StudyNote {
	ret := []StudyNote{}

	for _, note := range notes {
		ret = append(ret, PresentStudyNote(note))
	}

	return ret
}

// HealthGoal is a result of PresentHealthGoal
type HealthGoal struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Frequency   string    `json:"frequency"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PresentHealthGoal presents a health goal
func PresentHealthGoal(goal database.HealthGoal) HealthGoal {
	return HealthGoal{
		ID:          goal.ID,
		Title:       goal.Title,
		Description: goal.Description,
		Frequency:   goal.Frequency,
		CreatedAt:   goal.CreatedAt.UTC(),
	}
}

// PresentHealthGoals presents health goals
func PresentHealthGoals(goals []database.HealthGoal) []HealthGoal {
	ret := []HealthGoal{}

	for _, goal := range goals {
		ret = append(ret, PresentHealthGoal(goal))
	}

	return ret
}

// HealthLog is a result of PresentHealthLog
type HealthLog struct {
	ID          int       `json:"id"`
	GoalID      int       `json:"goalId"`
	Date        string    `json:"date"`
	IsCompleted bool      `json:"isCompleted"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PresentHealthLog presents a health log
func PresentHealthLog(logRecord database.HealthLog) HealthLog {
	return HealthLog{
		ID:          logRecord.ID,
		GoalID:      logRecord.GoalID,
		Date:        logRecord.Date,
		IsCompleted: logRecord.IsCompleted,
		Notes:       logRecord.Notes,
		CreatedAt:   logRecord.CreatedAt.UTC(),
	}
}

// PresentHealthLogs presents health logs
func PresentHealthLogs(logs []database.HealthLog) []HealthLog {
	ret := []HealthLog{}

	for _, logRecord := range logs {
		ret = append(ret, PresentHealthLog(logRecord))
	}

	return ret
}

// DailyActivity is a result of PresentDailyActivity
type DailyActivity struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Time      *string   `json:"time"`
	Date      string    `json:"date"`
	IsDone    bool      `json:"isDone"`
	CreatedAt time.Time `json:"createdAt"`
}

// PresentDailyActivity presents a daily activity
func PresentDailyActivity(activity database.DailyActivity) DailyActivity {
	return DailyActivity{
		ID:        activity.ID,
		Content:   activity.Content,
		Time:      activity.Time,
		Date:      activity.Date,
		IsDone:    activity.IsDone,
		CreatedAt: activity.CreatedAt.UTC(),
	}
}

// PresentDailyActivities presents daily activities
func PresentDailyActivities(activities []database.DailyActivity) []DailyActivity {
	ret := []DailyActivity{}

	for _, activity := range activities {
		ret = append(ret, PresentDailyActivity(activity))
	}

	return ret
}

// User is a result of PresentUser
type User struct {
	UUID  string `json:"uuid"`
	Email string `json:"email"`
}

// PresentUser presents a user
func PresentUser(user database.User) User {
	return User{
		UUID:  user.UUID,
		Email: user.Email,
	}
}
