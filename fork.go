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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gofrp/gofrp/internal/metrics"
)

// forkRunner is the non-generic face of a fork: Builder's append-only root
// runner list holds these alongside async adapters' root runners, the same
// type-erasure the coordinator's mirror slice uses for drivers. name labels
// the runner for the workgroup's debug trace the way a driver's debugID()
// does.
type forkRunner interface {
	run(stop <-chan struct{}) error
	name() string
}

// ForkHandle is the root of a fan-out: it owns the single upstream signal
// and a mutex-protected, append-only slice of outbound branch channels.
// Call Branch on the same handle once per consumer; every Branch call
// appends a new outbound channel to the shared slice, written during
// build and only ever read during run.
type ForkHandle[A any] struct {
	id       string
	upstream Signal[A]
	mu       sync.Mutex
	branches []chan Event[A]
	bufSize  int
	log      *logrus.Entry
	rec      *metrics.Recorder
}

// Fork registers upstream as a root runner that fans its events out to
// every Branch attached to the returned handle. upstream is driven exactly
// once, on the handle's own worker, regardless of how many branches are
// attached.
func Fork[A any](b *Builder, upstream Signal[A]) *ForkHandle[A] {
	h := &ForkHandle[A]{id: uuid.NewString(), upstream: upstream, bufSize: b.cfg.bufSize(), log: b.log, rec: b.rec}
	b.addRootRunner(h)
	return h
}

// Branch attaches a new consumer to h, allocating a new outbound channel
// and appending it to the shared branch-sender vector. Each Branch result is independently drivable; the fork
// broadcasts a copy of every event to every attached branch.
func Branch[A any](h *ForkHandle[A]) Signal[A] {
	ch := make(chan Event[A], h.bufSize)
	h.mu.Lock()
	h.branches = append(h.branches, ch)
	n := len(h.branches)
	h.mu.Unlock()
	if h.rec != nil {
		h.rec.SetForkBranches(h.id, n)
	}
	return &branchNode[A]{recv: ch, initial: h.upstream.Initial().Value()}
}

func (h *ForkHandle[A]) name() string { return "fork/" + h.id }

func (h *ForkHandle[A]) run(_ <-chan struct{}) error {
	h.mu.Lock()
	hasBranches := len(h.branches) > 0
	h.mu.Unlock()

	if !hasBranches {
		// No consumer was attached; still drive upstream so it never
		// blocks on a detached fork, but discard everything it produces.
		h.upstream.Drive(nil)
		return nil
	}

	h.upstream.Drive(PusherFunc[A](func(e Event[A]) {
		h.mu.Lock()
		defer h.mu.Unlock()
		for _, ch := range h.branches {
			ch <- e
		}
	}))
	return nil
}

// branchNode is the downstream half of a fork: it pulls from its own
// outbound channel and forwards to whatever consumes it, draining silently
// if nothing does.
type branchNode[A any] struct {
	recv    chan Event[A]
	initial A
}

func (n *branchNode[A]) Initial() SignalKind[A] {
	return DynamicKind(n.initial)
}

func (n *branchNode[A]) Drive(target Pusher[A]) {
	for e := range n.recv {
		pushTo(target, e)
		if e.IsExit() {
			return
		}
	}
}
