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

	"github.com/daybookhq/daybook/pkg/server/log"
	"github.com/pkg/errors"
	"github.com/robfig/cron"
	"gorm.io/gorm"
)

// DeleteExpiredSessions removes sessions whose expiry is before the given time
func DeleteExpiredSessions(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Where("expires_at < ?", now).Delete(&Session{})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "deleting expired sessions")
	}

	return res.RowsAffected, nil
}

// StartSessionSweep schedules a periodic deletion of expired sessions.
// The schedule string is in the cron format, e.g. "@hourly".
func StartSessionSweep(db *gorm.DB, schedule string) (*cron.Cron, error) {
	c := cron.New()

	err := c.AddFunc(schedule, func() {
		count, err := DeleteExpiredSessions(db, time.Now())
		if err != nil {
			log.ErrorWrap(err, "sweeping sessions")
			return
		}

		if count > 0 {
			log.WithFields(log.Fields{
				"count": count,
			}).Info("swept expired sessions")
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "scheduling session sweep")
	}

	c.Start()

	return c, nil
}
