// Copyright the gofrp Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics provides Prometheus metrics for a running gofrp
// topology.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	DriverEventsTotal   = "gofrp_driver_events_total"
	DriverExitsTotal    = "gofrp_driver_exits_total"
	ForkBranchesGauge   = "gofrp_fork_branches"
	TopologyLaunchGauge = "gofrp_topology_launched"
)

// Recorder holds the Prometheus metrics a topology reports over its
// lifetime: one counter per driver for events originated and exits
// broadcast, and a gauge per fork reporting its current branch count.
// It registers against the caller's own registry rather than the global
// default one, so multiple topologies in the same process don't collide.
type Recorder struct {
	driverEvents *prometheus.CounterVec
	driverExits  *prometheus.CounterVec
	forkBranches *prometheus.GaugeVec
	launched     prometheus.Gauge
}

// NewRecorder creates a new set of metrics and registers them with the
// supplied registry.
func NewRecorder(registry *prometheus.Registry) *Recorder {
	r := &Recorder{
		driverEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: DriverEventsTotal,
				Help: "Total number of Changed events originated by a driver.",
			},
			[]string{"driver"},
		),
		driverExits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: DriverExitsTotal,
				Help: "Total number of Exit broadcasts originated by a driver.",
			},
			[]string{"driver"},
		),
		forkBranches: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: ForkBranchesGauge,
				Help: "Current number of branches attached to a fork.",
			},
			[]string{"fork"},
		),
		launched: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: TopologyLaunchGauge,
				Help: "1 if the topology has been launched, 0 otherwise.",
			},
		),
	}

	registry.MustRegister(
		r.driverEvents,
		r.driverExits,
		r.forkBranches,
		r.launched,
	)

	return r
}

// ObserveEvent records a Changed event originated by driver.
func (r *Recorder) ObserveEvent(driver string) {
	r.driverEvents.WithLabelValues(driver).Inc()
}

// ObserveExit records an Exit broadcast originated by driver.
func (r *Recorder) ObserveExit(driver string) {
	r.driverExits.WithLabelValues(driver).Inc()
}

// SetForkBranches reports fork's current branch count.
func (r *Recorder) SetForkBranches(fork string, n int) {
	r.forkBranches.WithLabelValues(fork).Set(float64(n))
}

// SetLaunched records whether the topology has been launched.
func (r *Recorder) SetLaunched(launched bool) {
	if launched {
		r.launched.Set(1)
		return
	}
	r.launched.Set(0)
}
