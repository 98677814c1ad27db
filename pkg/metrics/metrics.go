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

package metrics

const (
	// OutcomeSigned is recorded when a signature was downloaded.
	OutcomeSigned = "signed"
	// OutcomePending is recorded when the end user did not finish signing yet.
	OutcomePending = "pending"
	// OutcomeError is recorded for all other failed downloads.
	OutcomeError = "error"
)

// Recorder records metrics about the signing flow.
type Recorder interface {
	// RecordPrepare records a prepare call to eID Easy.
	RecordPrepare(success bool)
	// RecordFetch records a signature download attempt with one of the Outcome values.
	RecordFetch(outcome string)
	// RecordSessionCreated records the start of a signing session.
	RecordSessionCreated()
}

// NoopRecorder discards all metrics.
type NoopRecorder struct{}

// NewNoopRecorder creates a NoopRecorder.
func NewNoopRecorder() *NoopRecorder {
	return &NoopRecorder{}
}

func (n *NoopRecorder) RecordPrepare(bool) {}

func (n *NoopRecorder) RecordFetch(string) {}

func (n *NoopRecorder) RecordSessionCreated() {}

var _ Recorder = (*NoopRecorder)(nil)
