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

// mirror is the type-erased face of one driver's "no-change notifier": a
// driver that is not the origin of the current global event receives a
// call to sendUnchanged(); any driver, origin or not, receives sendExit()
// exactly once when the topology or the underlying source closes.
//
// mirror carries no element-type parameter because the Coordinator must
// hold a single homogeneous slice of notifiers across drivers of
// different, unrelated element types A.
type mirror interface {
	sendUnchanged()
	sendExit()
}

// inputDriver is the non-generic face of every registered input driver.
// Driver[A] variants (listen, tick, rng, timer) implement it so the
// Coordinator can hold a single ordered slice regardless of element type.
type inputDriver interface {
	// asMirror returns the notifier other drivers will call into on
	// every global event this driver did not originate.
	asMirror() mirror

	// launch returns the function to run as this driver's dedicated
	// goroutine, now that idx (this driver's stable registration index)
	// and the frozen, full mirror vector are known.
	launch(idx int, mirrors []mirror) func(stop <-chan struct{}) error

	debugID() string
}

// coordinator turns N independent external input streams into one
// globally-ordered stream of per-node steps: every registered driver's
// downstream sees exactly one Event per external occurrence anywhere in
// the graph. It does no work itself beyond freezing the mirror vector at
// launch time — the actual broadcast loop lives inside each driver's own
// goroutine, reading this frozen vector.
type coordinator struct {
	drivers []inputDriver
	log     *logrus.Entry
}

func newCoordinator(drivers []inputDriver, log *logrus.Entry) *coordinator {
	return &coordinator{drivers: drivers, log: log}
}

// launchFuncs freezes the mirror vector (append-only during build,
// immutable from here on) and returns one workgroup function per driver,
// in registration order.
func (c *coordinator) launchFuncs() []func(stop <-chan struct{}) error {
	mirrors := make([]mirror, len(c.drivers))
	for i, d := range c.drivers {
		mirrors[i] = d.asMirror()
	}

	fns := make([]func(stop <-chan struct{}) error, len(c.drivers))
	for i, d := range c.drivers {
		idx, drv := i, d
		fns[i] = func(stop <-chan struct{}) error {
			if c.log != nil {
				c.log.WithField("driver", drv.debugID()).WithField("index", idx).Debug("driver starting")
			}
			return drv.launch(idx, mirrors)(stop)
		}
	}
	return fns
}
