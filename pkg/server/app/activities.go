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

// GetActivitiesParams is params for finding daily activities. A zero value
// means no filtering.
type GetActivitiesParams struct {
	Date string
}

// GetActivities returns the user's daily activities. When filtered by date,
// activities are ordered by time of day with unscheduled ones last;
// otherwise newest dates come first.
func (a *App) GetActivities(userID int, p GetActivitiesParams) ([]database.DailyActivity, error) {
	activities := []database.DailyActivity{}

	conn := a.DB.Where("user_id = ?", userID)
	if p.Date != "" {
		conn = conn.Where("date = ?", p.Date).Order("time IS NULL, time ASC, id ASC")
	} else {
		conn = conn.Order("date DESC, time IS NULL, time ASC, id ASC")
	}

	if err := conn.Find(&activities).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding activities")
	}

	return activities, nil
}

// CreateActivityParams is the parameters for creating a daily activity
type CreateActivityParams struct {
	Content string
	Time    *string
	Date    string
	IsDone  bool
}

// An empty time means the activity is unscheduled. It is stored as NULL so
// that unscheduled activities sort after scheduled ones.
func normalizeTime(t *string) *string {
	if t != nil && *t == "" {
		return nil
	}

	return t
}

// CreateActivity creates a daily activity owned by the given user and
// returns the persisted row
func (a *App) CreateActivity(userID int, p CreateActivityParams) (database.DailyActivity, error) {
	activity := database.DailyActivity{
		UserID:  userID,
		Content: p.Content,
		Time:    normalizeTime(p.Time),
		Date:    p.Date,
		IsDone:  p.IsDone,
	}
	if err := a.DB.Create(&activity).Error; err != nil {
		return database.DailyActivity{}, pkgErrors.Wrap(err, "inserting activity")
	}

	return activity, nil
}

// UpdateActivityParams is the parameters for updating a daily activity.
// Nil fields are left untouched. A pointer to an empty Time clears the
// schedule back to unscheduled.
type UpdateActivityParams struct {
	Content *string
	Time    *string
	Date    *string
	IsDone  *bool
}

// UpdateActivity applies the given partial update to the activity matching
// the id and the owner. It returns ErrNotFound if no such activity exists.
func (a *App) UpdateActivity(userID, activityID int, p UpdateActivityParams) (database.DailyActivity, error) {
	var activity database.DailyActivity
	err := a.DB.Where("id = ? AND user_id = ?", activityID, userID).First(&activity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.DailyActivity{}, ErrNotFound
	}
	if err != nil {
		return database.DailyActivity{}, pkgErrors.Wrap(err, "finding activity")
	}

	if p.Content != nil {
		activity.Content = *p.Content
	}
	if p.Time != nil {
		activity.Time = normalizeTime(p.Time)
	}
	if p.Date != nil {
		activity.Date = *p.Date
	}
	if p.IsDone != nil {
		activity.IsDone = *p.IsDone
	}

	if err := a.DB.Save(&activity).Error; err != nil {
		return database.DailyActivity{}, pkgErrors.Wrap(err, "saving activity")
	}

	return activity, nil
}

// DeleteActivity removes the activity matching the id and the owner.
// Deleting an activity that does not exist is a no-op.
func (a *App) DeleteActivity(userID, activityID int) error {
	err := a.DB.Where("id = ? AND user_id = ?", activityID, userID).Delete(&database.DailyActivity{}).Error
	if err != nil {
		return pkgErrors.Wrap(err, "deleting activity")
	}

	return nil
}
