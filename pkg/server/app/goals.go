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

// FrequencyDaily is the default frequency of a health goal
const FrequencyDaily = "daily"

// GetGoals returns the user's health goals in creation order
func (a *App) GetGoals(userID int) ([]database.HealthGoal, error) {
	goals := []database.HealthGoal{}

	err := a.DB.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&goals).Error
	if err != nil {
		return nil, pkgErrors.Wrap(err, "finding goals")
	}

	return goals, nil
}

// GetUserGoalByID retrieves the goal matching the id and the owner. It
// returns nil without an error if no such goal exists.
func (a *App) GetUserGoalByID(userID, goalID int) (*database.HealthGoal, error) {
	var goal database.HealthGoal
	err := a.DB.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgErrors.Wrap(err, "finding goal")
	}

	return &goal, nil
}

// CreateGoalParams is the parameters for creating a health goal
type CreateGoalParams struct {
	Title       string
	Description string
	Frequency   string
}

// CreateGoal creates a health goal owned by the given user and returns
// the persisted row
func (a *App) CreateGoal(userID int, p CreateGoalParams) (database.HealthGoal, error) {
	frequency := p.Frequency
	if frequency == "" {
		frequency = FrequencyDaily
	}

	goal := database.HealthGoal{
		UserID:      userID,
		Title:       p.Title,
		Description: p.Description,
		Frequency:   frequency,
	}
	if err := a.DB.Create(&goal).Error; err != nil {
		return database.HealthGoal{}, pkgErrors.Wrap(err, "inserting goal")
	}

	return goal, nil
}

// UpdateGoalParams is the parameters for updating a health goal. Nil fields
// are left untouched.
type UpdateGoalParams struct {
	Title       *string
	Description *string
	Frequency   *string
}

// UpdateGoal applies the given partial update to the goal matching the id
// and the owner. It returns ErrNotFound if no such goal exists.
func (a *App) UpdateGoal(userID, goalID int, p UpdateGoalParams) (database.HealthGoal, error) {
	var goal database.HealthGoal
	err := a.DB.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.HealthGoal{}, ErrNotFound
	}
	if err != nil {
		return database.HealthGoal{}, pkgErrors.Wrap(err, "finding goal")
	}

	if p.Title != nil {
		goal.Title = *p.Title
	}
	if p.Description != nil {
		goal.Description = *p.Description
	}
	if p.Frequency != nil {
		goal.Frequency = *p.Frequency
	}

	if err := a.DB.Save(&goal).Error; err != nil {
		return database.HealthGoal{}, pkgErrors.Wrap(err, "saving goal")
	}

	return goal, nil
}

// DeleteGoal removes the goal matching the id and the owner, along with the
// user's logs that reference it. Deleting a goal that does not exist is a
// no-op.
func (a *App) DeleteGoal(userID, goalID int) error {
	tx := a.DB.Begin()

	if err := tx.Where("goal_id = ? AND user_id = ?", goalID, userID).Delete(&database.HealthLog{}).Error; err != nil {
		tx.Rollback()
		return pkgErrors.Wrap(err, "deleting logs of goal")
	}

	if err := tx.Where("id = ? AND user_id = ?", goalID, userID).Delete(&database.HealthGoal{}).Error; err != nil {
		tx.Rollback()
		return pkgErrors.Wrap(err, "deleting goal")
	}

	tx.Commit()

	return nil
}
