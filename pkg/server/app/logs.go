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
	"errors"

	"github.com/daybookhq/daybook/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetLogsParams is params for finding health logs. Zero values mean no
// filtering.
type GetLogsParams struct {
	GoalID int
	Date   string
}

// GetLogs returns the user's health logs, newest first by date. Dates are
// plain YYYY-MM-DD strings, so lexicographic ordering is chronological.
func (a *App) GetLogs(userID int, p GetLogsParams) ([]database.HealthLog, error) {
	logs := []database.HealthLog{}

	conn := a.DB.Where("user_id = ?", userID)
	if p.GoalID != 0 {
		conn = conn.Where("goal_id = ?", p.GoalID)
	}
	if p.Date != "" {
		conn = conn.Where("date = ?", p.Date)
	}

	err := conn.Order("date DESC, id DESC").Find(&logs).Error
	if err != nil {
		return nil, pkgErrors.Wrap(err, "finding logs")
	}

	return logs, nil
}

// CreateLogParams is the parameters for creating a health log
type CreateLogParams struct {
	GoalID      int
	Date        string
	IsCompleted bool
	Notes       string
}

// CreateLog creates a health log owned by the given user. The referenced
// goal must belong to the same user; otherwise ErrNotFound is returned.
func (a *App) CreateLog(userID int, p CreateLogParams) (database.HealthLog, error) {
	goal, err := a.GetUserGoalByID(userID, p.GoalID)
	if err != nil {
		return database.HealthLog{}, err
	}
	if goal == nil {
		return database.HealthLog{}, ErrNotFound
	}

	logRecord := database.HealthLog{
		UserID:      userID,
		GoalID:      p.GoalID,
		Date:        p.Date,
		IsCompleted: p.IsCompleted,
		Notes:       p.Notes,
	}
	if err := a.DB.Create(&logRecord).Error; err != nil {
		return database.HealthLog{}, pkgErrors.Wrap(err, "inserting log")
	}

	return logRecord, nil
}

// UpdateLogParams is the parameters for updating a health log. Nil fields
// are left untouched.
type UpdateLogParams struct {
	GoalID      *int
	Date        *string
	IsCompleted *bool
	Notes       *string
}

// UpdateLog applies the given partial update to the log matching the id and
// the owner. It returns ErrNotFound if no such log exists, or if the update
// points the log at a goal the user does not own.
func (a *App) UpdateLog(userID, logID int, p UpdateLogParams) (database.HealthLog, error) {
	var logRecord database.HealthLog
	err := a.DB.Where("id = ? AND user_id = ?", logID, userID).First(&logRecord).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.HealthLog{}, ErrNotFound
	}
	if err != nil {
		return database.HealthLog{}, pkgErrors.Wrap(err, "finding log")
	}

	if p.GoalID != nil {
		goal, err := a.GetUserGoalByID(userID, *p.GoalID)
		if err != nil {
			return database.HealthLog{}, err
		}
		if goal == nil {
			return database.HealthLog{}, ErrNotFound
		}

		logRecord.GoalID = *p.GoalID
	}
	if p.Date != nil {
		logRecord.Date = *p.Date
	}
	if p.IsCompleted != nil {
		logRecord.IsCompleted = *p.IsCompleted
	}
	if p.Notes != nil {
		logRecord.Notes = *p.Notes
	}

	if err := a.DB.Save(&logRecord).Error; err != nil {
		return database.HealthLog{}, pkgErrors.Wrap(err, "saving log")
	}

	return logRecord, nil
}

// DeleteLog removes the log matching the id and the owner. Deleting a log
// that does not exist is a no-op.
func (a *App) DeleteLog(userID, logID int) error {
	err := a.DB.Where("id = ? AND user_id = ?", logID, userID).Delete(&database.HealthLog{}).Error
	if err != nil {
		return pkgErrors.Wrap(err, "deleting log")
	}

	return nil
}
