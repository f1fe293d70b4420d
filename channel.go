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

// channelNode is the boundary adapter between an input driver's delivery
// slot and the rest of the signal graph. It owns the receiving end of the
// driver's sink channel and the build-supplied initial value; at runtime
// it repeatedly pulls events and forwards them downstream until it
// observes Exit.
type channelNode[A any] struct {
	recv    <-chan Event[A]
	initial A
	log     *logrus.Entry
}

func newChannelNode[A any](recv <-chan Event[A], initial A, log *logrus.Entry) Signal[A] {
	return &channelNode[A]{recv: recv, initial: initial, log: log}
}

func (n *channelNode[A]) Initial() SignalKind[A] {
	return DynamicKind(n.initial)
}

func (n *channelNode[A]) Drive(target Pusher[A]) {
	for {
		e, ok := <-n.recv
		if !ok {
			// Upstream driver's sink was closed without an explicit Exit
			// token (defensive: normal shutdown always sends Exit first).
			pushTo(target, Exit[A]())
			return
		}
		pushTo(target, e)
		if e.IsExit() {
			if n.log != nil {
				n.log.Debug("channel node observed exit, terminating")
			}
			return
		}
	}
}

// pushTo pushes e to target if target is non-nil; a nil target means
// nothing downstream consumes this node's output, but the node still
// runs so its upstream never blocks on a detached consumer.
func pushTo[A any](target Pusher[A], e Event[A]) {
	if target != nil {
		target.Push(e)
	}
}
