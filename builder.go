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

package gofrp

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gofrp/gofrp/internal/metrics"
)

// Builder assembles a topology. Its two registries — input drivers and
// root runners — are append-only during build and frozen once Spawn hands
// the description to a Topology. A Builder is not safe for concurrent
// use; the builder closure passed to Spawn runs on a single goroutine,
// by design.
//
// Element-typed constructors (Listen, Value, Tick, RNG, Timer, Fork, Lift2,
// Lift3, Async) are free functions taking *Builder rather than methods,
// because Go methods cannot introduce their own type parameters beyond the
// receiver's — the same constraint that pushes the rest of the generic
// ecosystem (e.g. iterator helpers) toward package-level generic functions.
type Builder struct {
	cfg     Config
	log     *logrus.Entry
	rec     *metrics.Recorder
	drivers []inputDriver
	runners []forkRunner
}

// NewBuilder creates a Builder for the given configuration. log may be nil.
func NewBuilder(cfg Config, log *logrus.Entry) *Builder {
	return &Builder{cfg: cfg, log: log}
}

// UseMetrics attaches a Recorder that every driver and fork registered
// after this call will report to. Call it immediately after NewBuilder;
// it has no effect on constructs already registered.
func (b *Builder) UseMetrics(rec *metrics.Recorder) {
	b.rec = rec
}

func (b *Builder) addDriver(d inputDriver) {
	b.drivers = append(b.drivers, d)
}

func (b *Builder) addRootRunner(r forkRunner) {
	b.runners = append(b.runners, r)
}

// Listen admits external data into the topology. Every value sent on input
// arrives downstream as Changed; every other registered driver's downstream
// sees a synchronized Unchanged for the same occurrence. The channel must
// eventually be closed by the caller to terminate this driver cleanly;
// closing it triggers an Exit broadcast to every other driver.
func Listen[A any](b *Builder, initial A, input <-chan A) Signal[A] {
	d := newListenDriver[A](input, b.cfg.bufSize(), b.log)
	d.rec = b.rec
	b.addDriver(d)
	return newChannelNode(d.sink, initial, b.log)
}

// Value creates a Constant signal. Nodes downstream of a Value run once at
// build time and never again; combine a Value with a Dynamic signal via
// Lift2/Lift3 to capture a fixed parameter alongside live data.
func Value[A any](_ *Builder, v A) Signal[A] {
	return newValue(v)
}

// Tick registers a driver with no external source of its own: on every
// global event originated by any other driver, Tick re-emits v as Changed.
// Combine with Lift to build a heartbeat signal that recomputes on every
// topology-wide step.
func Tick[A any](b *Builder, v A) Signal[A] {
	d := newTickDriver[A](v, b.cfg.bufSize())
	d.rec = b.rec
	b.addDriver(d)
	return newChannelNode(d.sink, v, b.log)
}

// RNG registers a driver that, like Tick, only ever fires in response to
// other drivers' global events, but calls generate fresh each time instead
// of repeating a fixed value.
func RNG[A any](b *Builder, initial A, generate func() A) Signal[A] {
	d := newRNGDriver[A](generate, b.cfg.bufSize())
	d.rec = b.rec
	b.addDriver(d)
	return newChannelNode(d.sink, initial, b.log)
}

// Timer returns a signal that emits the current time at roughly the given
// cadence. The auxiliary ticking worker may skip an interval rather than
// block if downstream hasn't drained the previous tick, but guarantees
// monotonic, non-decreasing timestamps and eventual delivery.
func Timer(b *Builder, interval time.Duration) Signal[time.Time] {
	queue, worker := newTimerQueue(interval, b.cfg.bufSize())
	id := uuid.NewString()
	b.addRootRunner(forkRunnerFunc{label: "timer/" + id, fn: worker})

	initial := time.Now()
	d := newListenDriver[time.Time](queue, b.cfg.bufSize(), b.log)
	d.rec = b.rec
	b.addDriver(d)
	return newChannelNode(d.sink, initial, b.log)
}

// forkRunnerFunc adapts a plain stop-channel function to forkRunner, the
// same function-as-interface idiom PusherFunc uses for Pusher, plus the
// debug label every other forkRunner carries.
type forkRunnerFunc struct {
	label string
	fn    func(stop <-chan struct{}) error
}

func (f forkRunnerFunc) run(stop <-chan struct{}) error { return f.fn(stop) }
func (f forkRunnerFunc) name() string                   { return f.label }

// Add registers root as a root runner and returns a Branch onto it,
// allowing the same upstream to be consumed more than once — equivalent
// to a let binding. If root is Constant, no root runner is needed and
// Add just returns root unchanged.
//
// The returned signal is a live Branch: per Branch's contract, something
// must eventually Drive it (Drain is enough) or the fork's broadcast loop
// blocks forever trying to deliver to it. Callers that only want root run
// for its side effects, with nobody consuming its output, should use
// Drain instead of discarding Add's result.
func Add[A any](b *Builder, root Signal[A]) Signal[A] {
	if root.Initial().IsConstant() {
		return root
	}
	return Branch(Fork(b, root))
}

// Drain registers root as a root runner that is driven purely for its
// side effects: its output is never consumed by anything. Unlike Add,
// Drain does not go through Fork/Branch, so there is no outbound channel
// that must be drained by a caller — use it for a terminal signal built
// with Lift/Fold solely to run effects (logging, printing, metrics) on
// every upstream step.
func Drain[A any](b *Builder, root Signal[A]) {
	if root.Initial().IsConstant() {
		return
	}
	b.addRootRunner(forkRunnerFunc{
		label: "drain/" + uuid.NewString(),
		fn: func(_ <-chan struct{}) error {
			root.Drive(nil)
			return nil
		},
	})
}
