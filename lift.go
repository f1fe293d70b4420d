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

// liftNode is the pure unary map: f is assumed pure, so an Unchanged
// input is forwarded as Unchanged without invoking f at all — this is
// both a correctness statement (purity means no new output without a
// new input) and the main performance argument for keeping Unchanged a
// first-class token rather than collapsing it into "no event".
type liftNode[A, B any] struct {
	upstream Signal[A]
	f        func(A) B
	log      *logrus.Entry
}

// Lift applies a pure function to every value an upstream signal produces.
// If upstream is Constant, the result reduces to a Value at build time
// and f is never invoked at runtime.
func Lift[A, B any](upstream Signal[A], f func(A) B) Signal[B] {
	return liftWithLog(upstream, f, nil)
}

func liftWithLog[A, B any](upstream Signal[A], f func(A) B, log *logrus.Entry) Signal[B] {
	switch k := upstream.Initial(); {
	case k.IsConstant():
		return newValue(f(k.Value()))
	default:
		return &liftNode[A, B]{upstream: upstream, f: f, log: log}
	}
}

func (n *liftNode[A, B]) Initial() SignalKind[B] {
	return DynamicKind(n.f(n.upstream.Initial().Value()))
}

func (n *liftNode[A, B]) Drive(target Pusher[B]) {
	n.upstream.Drive(PusherFunc[A](func(e Event[A]) {
		switch {
		case e.IsChanged():
			v, _ := e.Value()
			pushTo(target, Changed(n.f(v)))
		case e.IsExit():
			pushTo(target, Exit[B]())
		default:
			pushTo(target, Unchanged[B]())
		}
	}))
}
