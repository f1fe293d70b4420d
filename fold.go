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

import "github.com/sirupsen/logrus"

// foldNode is the stateful accumulator. state is owned exclusively by the
// goroutine that calls Drive — nothing else ever reads or writes it, so
// no lock is needed even though the same value is re-pushed on every
// Changed step.
type foldNode[A, B any] struct {
	upstream Signal[A]
	initial  B
	f        func(B, A) B
	log      *logrus.Entry
}

// Fold reduces an upstream signal into a running accumulator. f receives
// the current accumulator and the new upstream value and returns the next
// accumulator. f is applied exactly once at build time, against upstream's
// reported initial value, to compute this signal's own reported initial —
// that single build-time application is cached and reused verbatim as
// Drive's starting state, rather than recomputed, so a stateful f (one
// that closes over and mutates its own bookkeeping, as Filter's does) is
// never invoked twice for what is meant to be a single build-time
// reduction.
//
// If upstream is Constant, f's build-time application is itself the whole
// answer and the result is a Value; f is never invoked at runtime.
func Fold[A, B any](upstream Signal[A], initial B, f func(B, A) B) Signal[B] {
	return foldWithLog(upstream, initial, f, nil)
}

func foldWithLog[A, B any](upstream Signal[A], initial B, f func(B, A) B, log *logrus.Entry) Signal[B] {
	switch k := upstream.Initial(); {
	case k.IsConstant():
		return newValue(f(initial, k.Value()))
	default:
		seeded := f(initial, k.Value())
		return &foldNode[A, B]{upstream: upstream, initial: seeded, f: f, log: log}
	}
}

func (n *foldNode[A, B]) Initial() SignalKind[B] {
	return DynamicKind(n.initial)
}

func (n *foldNode[A, B]) Drive(target Pusher[B]) {
	state := n.initial
	n.upstream.Drive(PusherFunc[A](func(e Event[A]) {
		switch {
		case e.IsChanged():
			v, _ := e.Value()
			state = n.f(state, v)
			pushTo(target, Changed(state))
		case e.IsExit():
			pushTo(target, Exit[B]())
		default:
			pushTo(target, Unchanged[B]())
		}
	}))
}
