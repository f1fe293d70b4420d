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
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gofrp/gofrp/internal/metrics"
)

// sinkMirror is the mirror implementation shared by externally-sourced
// drivers (listen, timer): a no-change notification is a plain Unchanged
// tick, and Exit is delivered to the sink at most once regardless of how
// many callers (a failed source, an explicit Handle.Shutdown) race to
// deliver it.
type sinkMirror[A any] struct {
	sink     chan Event[A]
	exitOnce *sync.Once
}

func (m sinkMirror[A]) sendUnchanged() { m.sink <- Unchanged[A]() }
func (m sinkMirror[A]) sendExit()      { m.exitOnce.Do(func() { m.sink <- Exit[A]() }) }

// selfDrivingMirror backs tick and RNG-per-event drivers: there is no
// external source to pull from, so the mirror's sendUnchanged side effect
// is itself the entire driver behavior — it synthesizes Changed(generate())
// and pushes it into the driver's own sink.
type selfDrivingMirror[A any] struct {
	id       string
	sink     chan Event[A]
	generate func() A
	exitOnce *sync.Once
	rec      *metrics.Recorder
}

func (m selfDrivingMirror[A]) sendUnchanged() {
	m.sink <- Changed(m.generate())
	if m.rec != nil {
		m.rec.ObserveEvent(m.id)
	}
}

func (m selfDrivingMirror[A]) sendExit() {
	m.exitOnce.Do(func() {
		m.sink <- Exit[A]()
		if m.rec != nil {
			m.rec.ObserveExit(m.id)
		}
	})
}

// broadcastAllExit delivers Exit to every driver's mirror, in registration
// order. Used both by a driver whose external source has closed and by
// Handle.Shutdown.
func broadcastAllExit(mirrors []mirror) {
	for _, m := range mirrors {
		m.sendExit()
	}
}

// listenDriver is the "external receiver" variant: it pulls from an
// externally supplied channel and, on each value, delivers Changed to its
// own sink and Unchanged to every other driver's sink.
type listenDriver[A any] struct {
	id       string
	source   <-chan A
	sink     chan Event[A]
	exitOnce *sync.Once
	log      *logrus.Entry
	rec      *metrics.Recorder
}

func newListenDriver[A any](source <-chan A, bufSize int, log *logrus.Entry) *listenDriver[A] {
	return &listenDriver[A]{
		id:       uuid.NewString(),
		source:   source,
		sink:     make(chan Event[A], bufSize),
		exitOnce: &sync.Once{},
		log:      log,
	}
}

func (d *listenDriver[A]) debugID() string { return "listen/" + d.id }

func (d *listenDriver[A]) asMirror() mirror {
	return sinkMirror[A]{sink: d.sink, exitOnce: d.exitOnce}
}

func (d *listenDriver[A]) launch(idx int, mirrors []mirror) func(stop <-chan struct{}) error {
	return func(stop <-chan struct{}) error {
		for {
			a, ok := <-d.source
			if !ok {
				if d.log != nil {
					d.log.WithField("driver", d.id).Debug("external source closed, broadcasting exit")
				}
				if d.rec != nil {
					d.rec.ObserveExit(d.id)
				}
				broadcastAllExit(mirrors)
				return nil
			}
			for j := range mirrors {
				if j == idx {
					d.sink <- Changed(a)
					if d.rec != nil {
						d.rec.ObserveEvent(d.id)
					}
				} else {
					mirrors[j].sendUnchanged()
				}
			}
		}
	}
}

// tickDriver fires its configured value on every global event originated
// by any other driver. It never pulls from a source of its own.
type tickDriver[A any] struct {
	id       string
	value    A
	sink     chan Event[A]
	exitOnce *sync.Once
	rec      *metrics.Recorder
}

func newTickDriver[A any](v A, bufSize int) *tickDriver[A] {
	return &tickDriver[A]{id: uuid.NewString(), value: v, sink: make(chan Event[A], bufSize), exitOnce: &sync.Once{}}
}

func (d *tickDriver[A]) debugID() string { return "tick/" + d.id }

func (d *tickDriver[A]) asMirror() mirror {
	return selfDrivingMirror[A]{id: d.id, sink: d.sink, generate: d.constValue, exitOnce: d.exitOnce, rec: d.rec}
}

func (d *tickDriver[A]) constValue() A { return d.value }

func (d *tickDriver[A]) launch(_ int, _ []mirror) func(stop <-chan struct{}) error {
	return func(stop <-chan struct{}) error {
		<-stop
		return nil
	}
}

// rngDriver behaves like tickDriver but calls a generator function fresh
// on every notification instead of repeating a fixed value.
type rngDriver[A any] struct {
	id       string
	sink     chan Event[A]
	generate func() A
	exitOnce *sync.Once
	rec      *metrics.Recorder
}

func newRNGDriver[A any](generate func() A, bufSize int) *rngDriver[A] {
	return &rngDriver[A]{id: uuid.NewString(), sink: make(chan Event[A], bufSize), generate: generate, exitOnce: &sync.Once{}}
}

func (d *rngDriver[A]) debugID() string { return "rng/" + d.id }

func (d *rngDriver[A]) asMirror() mirror {
	return selfDrivingMirror[A]{id: d.id, sink: d.sink, generate: d.generate, exitOnce: d.exitOnce, rec: d.rec}
}

func (d *rngDriver[A]) launch(_ int, _ []mirror) func(stop <-chan struct{}) error {
	return func(stop <-chan struct{}) error {
		<-stop
		return nil
	}
}

// newTimerQueue allocates the internal queue a Timer driver's listenDriver
// wraps, and returns the auxiliary worker that writes a timestamp into
// the queue at the given cadence, skipping a tick rather than blocking
// forever if the queue is momentarily full, while still guaranteeing
// monotonic, non-decreasing timestamps and eventual delivery. The worker
// is registered as an auxiliary background task and only starts once the
// topology is launched and a real stop channel exists — not at build
// time.
func newTimerQueue(interval time.Duration, bufSize int) (<-chan time.Time, func(stop <-chan struct{}) error) {
	queue := make(chan time.Time, bufSize)
	worker := func(stop <-chan struct{}) error {
		defer close(queue)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return nil
			case t := <-ticker.C:
				select {
				case queue <- t:
				default:
					// Downstream hasn't drained the previous tick yet;
					// skip rather than block.
				}
			}
		}
	}
	return queue, worker
}
