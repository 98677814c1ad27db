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
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder records metrics using Prometheus.
type PrometheusRecorder struct {
	prepareTotal         *prometheus.CounterVec
	fetchTotal           *prometheus.CounterVec
	sessionsCreatedTotal prometheus.Counter
}

// NewPrometheusRecorder creates a PrometheusRecorder using the default registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	return NewPrometheusRecorderWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusRecorderWithRegistry creates a PrometheusRecorder that registers its collectors with reg.
func NewPrometheusRecorderWithRegistry(reg prometheus.Registerer) *PrometheusRecorder {
	prepareTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pades_eideasy_prepare_total",
		Help: "Total prepare calls to eID Easy",
	}, []string{"result"})

	fetchTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pades_eideasy_fetch_total",
		Help: "Total signature downloads from eID Easy",
	}, []string{"outcome"})

	sessionsCreatedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pades_sessions_created_total",
		Help: "Total signing sessions created",
	})

	reg.MustRegister(prepareTotal, fetchTotal, sessionsCreatedTotal)

	return &PrometheusRecorder{
		prepareTotal:         prepareTotal,
		fetchTotal:           fetchTotal,
		sessionsCreatedTotal: sessionsCreatedTotal,
	}
}

func (p *PrometheusRecorder) RecordPrepare(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	p.prepareTotal.WithLabelValues(result).Inc()
}

func (p *PrometheusRecorder) RecordFetch(outcome string) {
	p.fetchTotal.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) RecordSessionCreated() {
	p.sessionsCreatedTotal.Inc()
}

var _ Recorder = (*PrometheusRecorder)(nil)
