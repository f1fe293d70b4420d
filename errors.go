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

import "github.com/pkg/errors"

// Sentinel errors returned by the build- and run-phase surface. Local
// transport failures (a closed upstream channel, a detached downstream)
// are never surfaced this way — per spec, those are recovered locally by
// synthesizing Exit. These sentinels cover programmer-visible misuse.
var (
	// ErrValueSignalDriven is the panic value when a Value signal's Drive
	// is invoked at runtime: Value signals report Constant and a correctly
	// built graph never calls Drive on one.
	ErrValueSignalDriven = errors.New("gofrp: value signal driven at runtime")

	// ErrAlreadyLaunched is returned by a second call to Topology.Launch.
	// Relaunching a topology is unsupported (see DESIGN.md Open Questions).
	ErrAlreadyLaunched = errors.New("gofrp: topology already launched")
)
