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

// lift3Node generalizes lift2Node's joiner to three legs, kept to arity 3
// rather than arbitrary N — Go's generic type parameters can't express a
// variadic input list cleanly, so ternary combine gets its own node
// instead of a recursive N-ary one.
type lift3Node[A, B, C, D any] struct {
	first   Signal[A]
	second  Signal[B]
	third   Signal[C]
	f       func(A, B, C) D
	bufSize int
	log     *logrus.Entry
}

// Lift3 combines three upstream signals with a pure ternary function. A
// Constant leg contributes a fixed captured value the same way Lift2 does;
// if all three legs are Constant, f runs once at build time and the result
// is a Value. Any single Dynamic leg is enough to make the result Dynamic.
func Lift3[A, B, C, D any](b *Builder, first Signal[A], second Signal[B], third Signal[C], f func(A, B, C) D) Signal[D] {
	return lift3WithLog(b, first, second, third, f, nil)
}

func lift3WithLog[A, B, C, D any](b *Builder, first Signal[A], second Signal[B], third Signal[C], f func(A, B, C) D, log *logrus.Entry) Signal[D] {
	fk, sk, tk := first.Initial(), second.Initial(), third.Initial()

	if fk.IsConstant() && sk.IsConstant() && tk.IsConstant() {
		return newValue(f(fk.Value(), sk.Value(), tk.Value()))
	}

	if fk.IsConstant() {
		a := fk.Value()
		return lift2WithLog(b, second, third, func(bv B, cv C) D { return f(a, bv, cv) }, log)
	}
	if sk.IsConstant() {
		bv := sk.Value()
		return lift2WithLog(b, first, third, func(av A, cv C) D { return f(av, bv, cv) }, log)
	}
	if tk.IsConstant() {
		cv := tk.Value()
		return lift2WithLog(b, first, second, func(av A, bv B) D { return f(av, bv, cv) }, log)
	}

	return &lift3Node[A, B, C, D]{first: first, second: second, third: third, f: f, bufSize: b.cfg.bufSize(), log: log}
}

func (n *lift3Node[A, B, C, D]) Initial() SignalKind[D] {
	return DynamicKind(n.f(n.first.Initial().Value(), n.second.Initial().Value(), n.third.Initial().Value()))
}

// Drive runs three collector legs and a joiner loop, following the same
// per-step cache rule Lift2 uses independently on each leg: a Changed leg
// refreshes its cache and contributes its new value; an Unchanged leg
// contributes its cache; any Exit ends the node.
func (n *lift3Node[A, B, C, D]) Drive(target Pusher[D]) {
	firstCh := make(chan Event[A], n.bufSize)
	secondCh := make(chan Event[B], n.bufSize)
	thirdCh := make(chan Event[C], n.bufSize)

	go n.first.Drive(PusherFunc[A](func(e Event[A]) { firstCh <- e }))
	go n.second.Drive(PusherFunc[B](func(e Event[B]) { secondCh <- e }))
	go n.third.Drive(PusherFunc[C](func(e Event[C]) { thirdCh <- e }))

	cachedA := n.first.Initial().Value()
	cachedB := n.second.Initial().Value()
	cachedC := n.third.Initial().Value()

	for {
		ea, aok := <-firstCh
		eb, bok := <-secondCh
		ec, cok := <-thirdCh
		if !aok || !bok || !cok || ea.IsExit() || eb.IsExit() || ec.IsExit() {
			pushTo(target, Exit[D]())
			return
		}

		anyChanged := false
		if v, ok := ea.Value(); ok {
			cachedA = v
			anyChanged = true
		}
		if v, ok := eb.Value(); ok {
			cachedB = v
			anyChanged = true
		}
		if v, ok := ec.Value(); ok {
			cachedC = v
			anyChanged = true
		}

		if anyChanged {
			pushTo(target, Changed(n.f(cachedA, cachedB, cachedC)))
		} else {
			pushTo(target, Unchanged[D]())
		}
	}
}
