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
	"encoding/json"
	"errors"
	"time"

	"github.com/daybookhq/daybook/pkg/server/crypt"
	"github.com/daybookhq/daybook/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// Snapshot is a point-in-time bundle of one user's rows across all entity
// tables, stored as the payload of a sync key.
type Snapshot struct {
	StudyNotes      []SnapshotNote     `json:"studyNotes"`
	HealthGoals     []SnapshotGoal     `json:"healthGoals"`
	HealthLogs      []SnapshotLog      `json:"healthLogs"`
	DailyActivities []SnapshotActivity `json:"dailyActivities"`
}

// SnapshotNote is a study note inside a snapshot
type SnapshotNote struct {
	Subject    string    `json:"subject"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Importance string    `json:"importance"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SnapshotGoal is a health goal inside a snapshot. The id is carried so
// that log references can be remapped on restore.
type SnapshotGoal struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
}

// SnapshotLog is a health log inside a snapshot. GoalID refers to the
// snapshot's goal ids, not live row ids.
type SnapshotLog struct {
	GoalID      int    `json:"goalId"`
	Date        string `json:"date"`
	IsCompleted bool   `json:"isCompleted"`
	Notes       string `json:"notes"`
}

// SnapshotActivity is a daily activity inside a snapshot
type SnapshotActivity struct {
	Content string  `json:"content"`
	Time    *string `json:"time"`
	Date    string  `json:"date"`
	IsDone  bool    `json:"isDone"`
}

func buildSnapshot(notes []database.StudyNote, goals []database.HealthGoal, logs []database.HealthLog, activities []database.DailyActivity) Snapshot {
	snapshot := Snapshot{
		StudyNotes:      []SnapshotNote{},
		HealthGoals:     []SnapshotGoal{},
		HealthLogs:      []SnapshotLog{},
		DailyActivities: []SnapshotActivity{},
	}

	for _, note := range notes {
		snapshot.StudyNotes = append(snapshot.StudyNotes, SnapshotNote{
			Subject:    note.Subject,
			Title:      note.Title,
			Content:    note.Content,
			Importance: note.Importance,
			CreatedAt:  note.CreatedAt,
		})
	}
	for _, goal := range goals {
		snapshot.HealthGoals = append(snapshot.HealthGoals, SnapshotGoal{
			ID:          goal.ID,
			Title:       goal.Title,
			Description: goal.Description,
			Frequency:   goal.Frequency,
		})
	}
	for _, logRecord := range logs {
		snapshot.HealthLogs = append(snapshot.HealthLogs, SnapshotLog{
			GoalID:      logRecord.GoalID,
			Date:        logRecord.Date,
			IsCompleted: logRecord.IsCompleted,
			Notes:       logRecord.Notes,
		})
	}
	for _, activity := range activities {
		snapshot.DailyActivities = append(snapshot.DailyActivities, SnapshotActivity{
			Content: activity.Content,
			Time:    activity.Time,
			Date:    activity.Date,
			IsDone:  activity.IsDone,
		})
	}

	return snapshot
}

// CreateBackup serializes all of the user's rows into a snapshot, stores it
// under a fresh sync key and returns the key. Keys are never listed or
// expired; old snapshots accumulate until overwritten by a restore of the
// whole database file.
func (a *App) CreateBackup(userID int) (string, error) {
	notes, err := a.GetNotes(userID)
	if err != nil {
		return "", pkgErrors.Wrap(err, "reading notes")
	}
	goals, err := a.GetGoals(userID)
	if err != nil {
		return "", pkgErrors.Wrap(err, "reading goals")
	}
	logs, err := a.GetLogs(userID, GetLogsParams{})
	if err != nil {
		return "", pkgErrors.Wrap(err, "reading logs")
	}
	activities, err := a.GetActivities(userID, GetActivitiesParams{})
	if err != nil {
		return "", pkgErrors.Wrap(err, "reading activities")
	}

	snapshot := buildSnapshot(notes, goals, logs, activities)

	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", pkgErrors.Wrap(err, "serializing snapshot")
	}

	key, err := crypt.GetSyncKey()
	if err != nil {
		return "", pkgErrors.Wrap(err, "generating sync key")
	}

	record := database.SyncKey{
		UserID: userID,
		Key:    key,
		Data:   string(data),
	}
	if err := a.DB.Create(&record).Error; err != nil {
		return "", pkgErrors.Wrap(err, "saving snapshot")
	}

	return key, nil
}

// RestoreBackup looks up the snapshot stored under the given key and
// replaces the calling user's rows in all four entity tables with the
// snapshot's contents. The whole replacement runs in a single transaction;
// a failure partway rolls everything back. Row ids are regenerated on
// insert, and log references are remapped from snapshot goal ids to the
// newly assigned ones.
func (a *App) RestoreBackup(userID int, key string) error {
	var record database.SyncKey
	err := a.DB.Where("key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSyncKeyNotFound
	}
	if err != nil {
		return pkgErrors.Wrap(err, "finding sync key")
	}

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(record.Data), &snapshot); err != nil {
		return pkgErrors.Wrap(err, "parsing snapshot")
	}

	tx := a.DB.Begin()

	for _, model := range []interface{}{
		&database.HealthLog{},
		&database.HealthGoal{},
		&database.StudyNote{},
		&database.DailyActivity{},
	} {
		if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
			tx.Rollback()
			return pkgErrors.Wrap(err, "clearing existing rows")
		}
	}

	for _, snapshotNote := range snapshot.StudyNotes {
		note := database.StudyNote{
			UserID:     userID,
			Subject:    snapshotNote.Subject,
			Title:      snapshotNote.Title,
			Content:    snapshotNote.Content,
			Importance: snapshotNote.Importance,
		}
		// Preserve the original creation time; gorm keeps non-zero values.
		note.CreatedAt = snapshotNote.CreatedAt

		if err := tx.Create(&note).Error; err != nil {
			tx.Rollback()
			return pkgErrors.Wrap(err, "restoring note")
		}
	}

	goalIDs := map[int]int{}
	for _, snapshotGoal := range snapshot.HealthGoals {
		goal := database.HealthGoal{
			UserID:      userID,
			Title:       snapshotGoal.Title,
			Description: snapshotGoal.Description,
			Frequency:   snapshotGoal.Frequency,
		}
		if err := tx.Create(&goal).Error; err != nil {
			tx.Rollback()
			return pkgErrors.Wrap(err, "restoring goal")
		}

		goalIDs[snapshotGoal.ID] = goal.ID
	}

	for _, snapshotLog := range snapshot.HealthLogs {
		goalID := snapshotLog.GoalID
		if mapped, ok := goalIDs[goalID]; ok {
			goalID = mapped
		}

		logRecord := database.HealthLog{
			UserID:      userID,
			GoalID:      goalID,
			Date:        snapshotLog.Date,
			IsCompleted: snapshotLog.IsCompleted,
			Notes:       snapshotLog.Notes,
		}
		if err := tx.Create(&logRecord).Error; err != nil {
			tx.Rollback()
			return pkgErrors.Wrap(err, "restoring log")
		}
	}

	for _, snapshotActivity := range snapshot.DailyActivities {
		activity := database.DailyActivity{
			UserID:  userID,
			Content: snapshotActivity.Content,
			Time:    snapshotActivity.Time,
			Date:    snapshotActivity.Date,
			IsDone:  snapshotActivity.IsDone,
		}
		if err := tx.Create(&activity).Error; err != nil {
			tx.Rollback()
			return pkgErrors.Wrap(err, "restoring activity")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return pkgErrors.Wrap(err, "committing restore")
	}

	return nil
}
