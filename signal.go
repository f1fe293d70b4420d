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

// Pusher receives one Event at a time. Every node that has a downstream
// consumer is handed a Pusher for it; a node with no consumer still runs,
// so it can drain its own upstream, it simply has nothing to push into.
type Pusher[A any] interface {
	Push(Event[A])
}

// PusherFunc adapts a plain function to the Pusher interface, the same
// single-method-interface-as-function idiom used elsewhere in this
// package.
type PusherFunc[A any] func(Event[A])

// Push implements Pusher.
func (f PusherFunc[A]) Push(e Event[A]) {
	if f != nil {
		f(e)
	}
}

// Signal is the single interface every node in the graph implements,
// regardless of kind (channel, value, lift, lift2, fold, fork, branch,
// async). Capability differences are expressed by what Drive actually
// does, not by additional interface methods.
type Signal[A any] interface {
	// Initial reports this signal's build-time classification and value
	// without side effects; calling it does not consume any runtime
	// event.
	Initial() SignalKind[A]

	// Drive is the one-shot entry point that starts this node's runtime
	// behavior. It must be called exactly once per signal, after the
	// graph is fully built. target is nil when nothing downstream
	// consumes this signal's output; the node still runs (to drain its
	// own upstream so producers never block on a detached consumer) but
	// pushes nowhere.
	//
	// Drive does not return until this node observes Exit (or, for leaf
	// nodes with no upstream of their own, never — Drive blocks for the
	// life of the topology). Callers therefore always invoke Drive in
	// its own goroutine.
	Drive(target Pusher[A])
}
