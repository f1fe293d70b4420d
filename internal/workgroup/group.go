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

// Package workgroup provides a mechanism for controlling the lifetime
// of a set of related goroutines: the first member to return closes the
// stop channel passed to every member, and Run waits for all of them.
// Every input driver and every root runner (fork, async pusher) in a
// launched topology is one member of the same Group, but Topology.Launch
// hands those members the topology's own stop channel rather than the
// Group's, so one of them returning does not stop the others.
package workgroup

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// member is one function registered with a Group, carrying the
// caller-supplied debug name (a driver's debugID(), a fork's id, or ""
// for callers that don't need one) alongside the function itself.
type member struct {
	name string
	fn   func(<-chan struct{}) error
}

// A Group manages a set of goroutines with related lifetimes.
// The zero value for a Group is fully usable without initialisation.
type Group struct {
	// Logger receives a debug-level trace of each member's lifecycle
	// and the name of whichever member's return value won the race to
	// become Run's result. Nil-safe: a zero Group logs nothing.
	Logger *logrus.Entry

	members []member
}

// Add adds a function to the Group under no particular name.
// The function will be executed in its own goroutine when Run is called.
// Add must be called before Run.
func (g *Group) Add(fn func(<-chan struct{}) error) {
	g.AddNamed("", fn)
}

// AddNamed adds a function to the Group, tagging it with name for
// Logger's lifecycle trace. Topology.Launch uses this to label each
// member with the driver or root runner it came from, so a debug log
// of a topology shutdown reads as "listen/<id> returned" rather than
// an anonymous index.
func (g *Group) AddNamed(name string, fn func(<-chan struct{}) error) {
	g.members = append(g.members, member{name: name, fn: fn})
}

// AddContext adds a function taking a context.Context to the group.
// The function will be executed in its own goroutine when Run is called.
// The context supplied to the function will be canceled when the group
// exits. AddContext must be called before Run.
func (g *Group) AddContext(fn func(context.Context)) {
	g.Add(func(stop <-chan struct{}) error {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan int)
		go func() {
			defer close(done)
			fn(ctx)
		}()
		// wait for stop
		<-stop

		// cancel fn(ctx)
		cancel()

		// wait for fn(ctx) to exit
		<-done
		return nil
	})
}

// Run executes each function registered via Add/AddNamed in its own
// goroutine. Run blocks until all functions have returned.
// The first function to return will trigger the closure of the channel
// passed to each function, who should in turn, return.
// The return value from the first function to exit will be returned to
// the caller of Run.
func (g *Group) Run() error {

	// if there are no registered members, return immediately.
	if len(g.members) < 1 {
		return nil
	}

	type outcome struct {
		name string
		err  error
	}

	var wg sync.WaitGroup
	wg.Add(len(g.members))

	stop := make(chan struct{})
	result := make(chan outcome, len(g.members))
	for _, m := range g.members {
		go func(m member) {
			defer wg.Done()
			err := m.fn(stop)
			if g.Logger != nil {
				g.Logger.WithField("member", m.name).WithError(err).Debug("workgroup member returned")
			}
			result <- outcome{name: m.name, err: err}
		}(m)
	}

	defer wg.Wait()
	defer close(stop)
	first := <-result
	if g.Logger != nil {
		g.Logger.WithField("member", first.name).Debug("workgroup stopping, first member to return")
	}
	return first.err
}
