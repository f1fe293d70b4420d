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

// fakeSignal is a test double standing in for a Dynamic upstream: its
// Drive loop forwards whatever the test feeds into events until it sees
// Exit, letting combinator tests exercise Drive without spinning up a
// full Topology.
type fakeSignal[A any] struct {
	initial A
	events  chan Event[A]
}

func newFakeSignal[A any](initial A) *fakeSignal[A] {
	return &fakeSignal[A]{initial: initial, events: make(chan Event[A], 8)}
}

func (s *fakeSignal[A]) Initial() SignalKind[A] { return DynamicKind(s.initial) }

func (s *fakeSignal[A]) Drive(target Pusher[A]) {
	for e := range s.events {
		pushTo(target, e)
		if e.IsExit() {
			return
		}
	}
}

// recordingPusher captures every Event it is pushed, in order.
type recordingPusher[A any] struct {
	out chan Event[A]
}

func newRecordingPusher[A any]() *recordingPusher[A] {
	return &recordingPusher[A]{out: make(chan Event[A], 32)}
}

func (p *recordingPusher[A]) Push(e Event[A]) { p.out <- e }
