/*
 * Nuts PAdES
 * Copyright (C) 2020. Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package session

import (
	"fmt"
	"time"

	"github.com/nuts-foundation/nuts-pades/logging"
	"github.com/robfig/cron/v3"
)

const minimalPurgeInterval = time.Minute

// Janitor periodically removes sessions older than the TTL from a Store.
type Janitor struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
	cron  *cron.Cron
}

// NewJanitor creates a Janitor, it does nothing until started.
func NewJanitor(store Store, ttl time.Duration) *Janitor {
	return &Janitor{
		store: store,
		ttl:   ttl,
		now:   time.Now,
		cron:  cron.New(),
	}
}

// Start schedules the purge job. Purging runs every half TTL, but not more often than once a minute.
func (j *Janitor) Start() error {
	interval := j.ttl / 2
	if interval < minimalPurgeInterval {
		interval = minimalPurgeInterval
	}
	if _, err := j.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() { j.Purge() }); err != nil {
		return fmt.Errorf("unable to schedule session purge: %w", err)
	}
	j.cron.Start()
	logging.Log().Debugf("Purging signing sessions older than %s every %s", j.ttl, interval)
	return nil
}

// Stop stops the scheduler and waits for a running purge to complete.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}

// Purge removes expired sessions now.
func (j *Janitor) Purge() int {
	count := j.store.Purge(j.now().Add(-j.ttl))
	if count > 0 {
		logging.Log().Infof("Purged %d expired signing session(s)", count)
	}
	return count
}
