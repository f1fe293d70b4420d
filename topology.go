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
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/gofrp/gofrp/internal/metrics"
	"github.com/gofrp/gofrp/internal/workgroup"
)

// Handle controls a launched topology. Shutdown is idempotent and safe to
// call from any goroutine; a zero Handle value is not usable, only one
// returned by Topology.Launch.
type Handle struct {
	mirrors []mirror
	stop    chan struct{}
	once    *sync.Once
	done    <-chan error
	rec     *metrics.Recorder
}

// Shutdown floods Exit through every registered input driver's mirror,
// which each node forwards exactly once downstream before terminating.
// It also closes the shared stop channel so tick, RNG, and timer
// auxiliary workers — which have no external source of their own to
// observe Exit through — unblock as well. Calling Shutdown more than
// once is safe; only the first call has effect.
//
// A listenDriver whose external source the application never closes keeps
// its own goroutine parked on that source even after Shutdown — Exit still
// reaches everything downstream of it via the mirror broadcast, but the
// driver's own worker does not return until the source does. There is no
// per-operation cancellation in this runtime; close application-owned
// source channels on shutdown too if you need Wait to return promptly.
//
// Shutdown does not wait for workers to finish; call Wait for that.
func (h *Handle) Shutdown() {
	h.once.Do(func() {
		broadcastAllExit(h.mirrors)
		close(h.stop)
		if h.rec != nil {
			h.rec.SetLaunched(false)
		}
	})
}

// Wait blocks until every worker in the topology has terminated, returning
// whatever the first worker to finish returned (nil if that worker
// returned nil, even when a later one returns an error). A topology built
// entirely from well-behaved drivers and combinators returns nil; the
// core never surfaces application errors through Wait — local transport
// failures are always recovered by synthesizing Exit instead.
func (h *Handle) Wait() error {
	return <-h.done
}

// Topology is a built, not-yet-launched graph: an ordered sequence of
// input drivers and an ordered sequence of root runners. Build one by
// calling Spawn with a builder function, then call Launch.
type Topology struct {
	cfg      Config
	log      *logrus.Entry
	rec      *metrics.Recorder
	drivers  []inputDriver
	runners  []forkRunner
	launched bool
}

// Spawn runs build against a fresh Builder and returns the resulting
// Topology, ready to Launch. Splitting construction (Spawn) from launch
// (Launch) lets callers inspect or reuse the built Signal values before
// committing to running the topology; Launch is still the only supported
// way to start one, and running it twice is rejected (see DESIGN.md's
// Open Questions: repeated launches are unsupported).
func Spawn(cfg Config, log *logrus.Entry, build func(b *Builder)) *Topology {
	b := NewBuilder(cfg, log)
	build(b)
	return &Topology{cfg: cfg, log: log, rec: b.rec, drivers: b.drivers, runners: b.runners}
}

// Launch starts every root runner and every input driver on its own
// goroutine, via an internal workgroup.Group, and returns a Handle for
// cooperative shutdown. Launch may be called at most once per Topology.
//
// workgroup.Group's own first-exits-closes-stop behavior is intentionally
// not relied on here: the FRP protocol already has its own "one driver
// ends, tell everyone" mechanism (the mirror broadcast in drivers.go), so
// every registered function is wired to this Topology's own stop channel
// instead, only closed by an explicit Handle.Shutdown.
func (t *Topology) Launch() (*Handle, error) {
	if t.launched {
		return nil, ErrAlreadyLaunched
	}
	t.launched = true

	mirrors := make([]mirror, len(t.drivers))
	for i, d := range t.drivers {
		mirrors[i] = d.asMirror()
	}

	coord := newCoordinator(t.drivers, t.log)
	driverFns := coord.launchFuncs()

	stop := make(chan struct{})

	g := workgroup.Group{Logger: t.log}
	for _, r := range t.runners {
		run, label := r.run, r.name()
		g.AddNamed(label, func(_ <-chan struct{}) error { return run(stop) })
	}
	for i, fn := range driverFns {
		f, label := fn, t.drivers[i].debugID()
		g.AddNamed(label, func(_ <-chan struct{}) error { return f(stop) })
	}

	if t.rec != nil {
		t.rec.SetLaunched(true)
	}

	done := make(chan error, 1)
	go func() { done <- g.Run() }()

	return &Handle{mirrors: mirrors, stop: stop, once: &sync.Once{}, done: done, rec: t.rec}, nil
}
