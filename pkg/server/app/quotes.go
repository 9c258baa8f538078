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

import "math/rand"

// Quote is a motivational quote shown on the dashboard
type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

var quotes = []Quote{
	{Content: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{Content: "It does not matter how slowly you go as long as you do not stop.", Author: "Confucius"},
	{Content: "Well begun is half done.", Author: "Aristotle"},
	{Content: "Little by little, one travels far.", Author: "J.R.R. Tolkien"},
	{Content: "We are what we repeatedly do. Excellence, then, is not an act, but a habit.", Author: "Will Durant"},
	{Content: "Success is the sum of small efforts, repeated day in and day out.", Author: "Robert Collier"},
	{Content: "Do not wait to strike till the iron is hot, but make it hot by striking.", Author: "W.B. Yeats"},
	{Content: "Lost time is never found again.", Author: "Benjamin Franklin"},
}

// GetRandomQuote returns a random quote from the built-in list
func (a *App) GetRandomQuote() Quote {
	return quotes[rand.Intn(len(quotes))]
}
