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
	"github.com/sirupsen/logrus"
)

// lift2Node is the binary-combine joiner. It is only ever constructed for
// the Dynamic/Dynamic case — every other combination of kinds is folded
// away by Lift2 at build time before a lift2Node exists.
type lift2Node[A, B, C any] struct {
	left    Signal[A]
	right   Signal[B]
	f       func(A, B) C
	bufSize int
	log     *logrus.Entry
}

// Lift2 combines two upstream signals with a pure binary function. A
// Constant input contributes a fixed captured value and the combiner
// degenerates to a unary Lift over the Dynamic side, which calls f on
// every Changed from that side. If both sides are Constant, f is invoked
// once at build time and the result is a Value.
//
// b supplies the capacity used for the two internal collector legs when
// both sides are Dynamic; pass the Builder the rest of the topology was
// built with so buffering stays consistent with Config.BufferSize.
func Lift2[A, B, C any](b *Builder, left Signal[A], right Signal[B], f func(A, B) C) Signal[C] {
	return lift2WithLog(b, left, right, f, nil)
}

func lift2WithLog[A, B, C any](b *Builder, left Signal[A], right Signal[B], f func(A, B) C, log *logrus.Entry) Signal[C] {
	lk, rk := left.Initial(), right.Initial()

	switch {
	case lk.IsConstant() && rk.IsConstant():
		return newValue(f(lk.Value(), rk.Value()))
	case lk.IsConstant():
		a := lk.Value()
		return liftWithLog(right, func(bv B) C { return f(a, bv) }, log)
	case rk.IsConstant():
		bv := rk.Value()
		return liftWithLog(left, func(av A) C { return f(av, bv) }, log)
	default:
		return &lift2Node[A, B, C]{left: left, right: right, f: f, bufSize: b.cfg.bufSize(), log: log}
	}
}

func (n *lift2Node[A, B, C]) Initial() SignalKind[C] {
	return DynamicKind(n.f(n.left.Initial().Value(), n.right.Initial().Value()))
}

// Drive spawns two collector legs and runs the joiner loop itself on the
// calling goroutine. Caches are seeded from each side's build-time
// reported initial value, so an Unchanged with no prior Changed on that
// leg can never be a protocol violation for a signal built through
// Lift2 — only for a hand-rolled Signal that misreports its own
// Initial().
func (n *lift2Node[A, B, C]) Drive(target Pusher[C]) {
	leftCh := make(chan Event[A], n.bufSize)
	rightCh := make(chan Event[B], n.bufSize)

	go n.left.Drive(PusherFunc[A](func(e Event[A]) { leftCh <- e }))
	go n.right.Drive(PusherFunc[B](func(e Event[B]) { rightCh <- e }))

	cachedLeft := n.left.Initial().Value()
	cachedRight := n.right.Initial().Value()

	for {
		le, lok := <-leftCh
		re, rok := <-rightCh
		if !lok || !rok || le.IsExit() || re.IsExit() {
			pushTo(target, Exit[C]())
			return
		}

		switch {
		case le.IsChanged() && re.IsChanged():
			lv, _ := le.Value()
			rv, _ := re.Value()
			cachedLeft, cachedRight = lv, rv
			pushTo(target, Changed(n.f(lv, rv)))
		case le.IsUnchanged() && re.IsChanged():
			rv, _ := re.Value()
			cachedRight = rv
			pushTo(target, Changed(n.f(cachedLeft, rv)))
		case le.IsChanged() && re.IsUnchanged():
			lv, _ := le.Value()
			cachedLeft = lv
			pushTo(target, Changed(n.f(lv, cachedRight)))
		default:
			pushTo(target, Unchanged[C]())
		}
	}
}
