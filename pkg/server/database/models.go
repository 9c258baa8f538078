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

package database

import (
	"time"
)

// Model is the base model definition
type Model struct {
	ID        int       `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// User is a model for a user
type User struct {
	Model
	UUID        string `gorm:"type:text;index"`
	Email       string `gorm:"uniqueIndex"`
	Password    string
	LastLoginAt *time.Time
}

// Session represents a user session
type Session struct {
	Model
	UserID     int    `gorm:"index"`
	Key        string `gorm:"index"`
	LastUsedAt time.Time
	ExpiresAt  time.Time `gorm:"index"`
}

// StudyNote is a model for a study note
type StudyNote struct {
	Model
	UserID     int `gorm:"index"`
	Subject    string
	Title      string
	Content    string
	Importance string `gorm:"default:normal"`
}

// HealthGoal is a model for a health goal
type HealthGoal struct {
	Model
	UserID      int `gorm:"index"`
	Title       string
	Description string
	Frequency   string `gorm:"default:daily"`
}

// HealthLog is a model for a daily completion log of a health goal.
// One log per (goal, date) is an application convention; the schema
// does not enforce it.
type HealthLog struct {
	Model
	UserID      int    `gorm:"index"`
	GoalID      int    `gorm:"index"`
	Date        string `gorm:"index"` // YYYY-MM-DD
	IsCompleted bool   `gorm:"default:false"`
	Notes       string
}

// DailyActivity is a model for an entry in the daily activity timeline
type DailyActivity struct {
	Model
	UserID  int `gorm:"index"`
	Content string
	Time    *string // HH:MM, nil when unscheduled
	Date    string  `gorm:"index"` // YYYY-MM-DD
	IsDone  bool    `gorm:"default:false"`
}

// SyncKey is a model for a stored backup snapshot addressed by an opaque key
type SyncKey struct {
	Model
	UserID int    `gorm:"index"`
	Key    string `gorm:"uniqueIndex;type:varchar(8)"`
	Data   string
}
