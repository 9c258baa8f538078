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

import "github.com/pkg/errors"

// Errors that are expected conditions rather than failures. Controllers
// translate these into client-facing responses; anything else is treated
// as an internal error.
var (
	// ErrNotFound is an error for a row that does not exist for the
	// requesting user
	ErrNotFound = errors.New("not found")
	// ErrSyncKeyNotFound is an error for a sync key that is not recognized
	ErrSyncKeyNotFound = errors.New("sync code not recognized")
	// ErrEmailRequired is an error for a missing email
	ErrEmailRequired = errors.New("Please enter an email")
	// ErrPasswordRequired is an error for a missing password
	ErrPasswordRequired = errors.New("Please enter a password")
	// ErrPasswordTooShort is an error for a password that is too short
	ErrPasswordTooShort = errors.New("Password should be at least 8 characters")
	// ErrPasswordConfirmationMismatch is an error for a password that does
	// not match its confirmation
	ErrPasswordConfirmationMismatch = errors.New("Password does not match the confirmation")
	// ErrDuplicateEmail is an error for an email that is already registered
	ErrDuplicateEmail = errors.New("The email is already in use")
	// ErrLoginInvalid is an error for invalid credentials
	ErrLoginInvalid = errors.New("Wrong email and password combination")
)
