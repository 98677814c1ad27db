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

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopRecorder(t *testing.T) {
	recorder := NewNoopRecorder()

	recorder.RecordPrepare(true)
	recorder.RecordFetch(OutcomePending)
	recorder.RecordSessionCreated()
}

func TestPrometheusRecorder(t *testing.T) {
	registry := prometheus.NewRegistry()
	recorder := NewPrometheusRecorderWithRegistry(registry)

	recorder.RecordPrepare(true)
	recorder.RecordPrepare(true)
	recorder.RecordPrepare(false)
	recorder.RecordFetch(OutcomePending)
	recorder.RecordFetch(OutcomeSigned)
	recorder.RecordSessionCreated()

	families, err := registry.Gather()
	require.NoError(t, err)

	t.Run("prepare", func(t *testing.T) {
		values := counterValues(t, families, "pades_eideasy_prepare_total", "result")
		assert.Equal(t, map[string]float64{"success": 2, "failure": 1}, values)
	})
	t.Run("fetch", func(t *testing.T) {
		values := counterValues(t, families, "pades_eideasy_fetch_total", "outcome")
		assert.Equal(t, map[string]float64{"pending": 1, "signed": 1}, values)
	})
	t.Run("sessions", func(t *testing.T) {
		values := counterValues(t, families, "pades_sessions_created_total", "")
		assert.Equal(t, map[string]float64{"": 1}, values)
	})
}

func TestPrometheusRecorder_DuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewPrometheusRecorderWithRegistry(registry)

	assert.Panics(t, func() {
		NewPrometheusRecorderWithRegistry(registry)
	})
}

func counterValues(t *testing.T, families []*io_prometheus_client.MetricFamily, name string, label string) map[string]float64 {
	t.Helper()
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		result := map[string]float64{}
		for _, m := range mf.GetMetric() {
			key := ""
			for _, l := range m.GetLabel() {
				if l.GetName() == label {
					key = l.GetValue()
				}
			}
			result[key] = m.GetCounter().GetValue()
		}
		return result
	}
	t.Fatalf("metric %s not found", name)
	return nil
}
