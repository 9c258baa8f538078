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
	"net/http"

	"github.com/daybookhq/daybook/pkg/server/app"
)

// NewQuotes creates a new Quotes controller
func NewQuotes(app *app.App) *Quotes {
	return &Quotes{
		app: app,
	}
}

// Quotes is a quote controller
type Quotes struct {
	app *app.App
}

// Random handles GET /api/quotes/random
func (q *Quotes) Random(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, q.app.GetRandomQuote())
}
