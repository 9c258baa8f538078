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

// ImportanceNormal is the default importance of a study note
const ImportanceNormal = "normal"

// GetNotes returns the user's study notes, newest first
func (a *App) GetNotes(userID int) ([]database.StudyNote, error) {
	notes := []database.StudyNote{}

	err := a.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, pkgErrors.Wrap(err, "finding notes")
	}

	return notes, nil
}

// CreateNoteParams is the parameters for creating a study note
type CreateNoteParams struct {
	Subject    string
	Title      string
	Content    string
	Importance string
}

// CreateNote creates a study note owned by the given user and returns
// the persisted row
func (a *App) CreateNote(userID int, p CreateNoteParams) (database.StudyNote, error) {
	importance := p.Importance
	if importance == "" {
		importance = ImportanceNormal
	}

	note := database.StudyNote{
		UserID:     userID,
		Subject:    p.Subject,
		Title:      p.Title,
		Content:    p.Content,
		Importance: importance,
	}
	if err := a.DB.Create(&note).Error; err != nil {
		return database.StudyNote{}, pkgErrors.Wrap(err, "inserting note")
	}

	return note, nil
}

// UpdateNoteParams is the parameters for updating a study note. Nil fields
// are left untouched.
type UpdateNoteParams struct {
	Subject    *string
	Title      *string
	Content    *string
	Importance *string
}

// UpdateNote applies the given partial update to the note matching the id
// and the owner. It returns ErrNotFound if no such note exists.
func (a *App) UpdateNote(userID, noteID int, p UpdateNoteParams) (database.StudyNote, error) {
	var note database.StudyNote
	err := a.DB.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.StudyNote{}, ErrNotFound
	}
	if err != nil {
		return database.StudyNote{}, pkgErrors.Wrap(err, "finding note")
	}

	if p.Subject != nil {
		note.Subject = *p.Subject
	}
	if p.Title != nil {
		note.Title = *p.Title
	}
	if p.Content != nil {
		note.Content = *p.Content
	}
	if p.Importance != nil {
		note.Importance = *p.Importance
	}

	if err := a.DB.Save(&note).Error; err != nil {
		return database.StudyNote{}, pkgErrors.Wrap(err, "saving note")
	}

	return note, nil
}

// DeleteNote removes the note matching the id and the owner. Deleting a
// note that does not exist is a no-op.
func (a *App) DeleteNote(userID, noteID int) error {
	err := a.DB.Where("id = ? AND user_id = ?", noteID, userID).Delete(&database.StudyNote{}).Error
	if err != nil {
		return pkgErrors.Wrap(err, "deleting note")
	}

	return nil
}
