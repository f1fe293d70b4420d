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

import "github.com/google/uuid"

// asyncPusher is the root runner side of an Async adapter: it drives its
// upstream signal and forwards only Changed values into the new driver's
// external queue; Unchanged produces nothing. Closing out on Exit reuses
// listenDriver's existing "source closed" handling to broadcast Exit
// through the rest of the topology — no separate Exit path needed.
type asyncPusher[A any] struct {
	id       string
	upstream Signal[A]
	out      chan A
}

func (p *asyncPusher[A]) name() string { return "async/" + p.id }

func (p *asyncPusher[A]) run(_ <-chan struct{}) error {
	p.upstream.Drive(PusherFunc[A](func(e Event[A]) {
		if v, ok := e.Value(); ok {
			p.out <- v
		}
		if e.IsExit() {
			close(p.out)
		}
	}))
	return nil
}

// Async re-injects upstream as a brand-new coordinator input, decoupling
// its latency from the rest of the graph: a slow upstream no longer
// serializes with every other driver's broadcast step, at the cost of
// losing the single-global-event-per-step guarantee between upstream's
// occurrences and the rest of the topology.
//
// If upstream is Constant, Async degenerates into a Value and no driver is
// registered, matching the build-time rule every other combinator follows.
func Async[A any](b *Builder, upstream Signal[A]) Signal[A] {
	k := upstream.Initial()
	if k.IsConstant() {
		return newValue(k.Value())
	}

	bufSize := b.cfg.bufSize()
	out := make(chan A, bufSize)
	driver := newListenDriver[A](out, bufSize, b.log)
	driver.rec = b.rec
	b.addDriver(driver)
	b.addRootRunner(&asyncPusher[A]{id: uuid.NewString(), upstream: upstream, out: out})

	return newChannelNode(driver.sink, k.Value(), b.log)
}
