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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsyncOverConstantDegeneratesToValue(t *testing.T) {
	b := NewBuilder(DefaultConfig(), nil)
	asyncSig := Async(b, newValue(7))
	require.True(t, asyncSig.Initial().IsConstant())
	require.Equal(t, 7, asyncSig.Initial().Value())
	require.Empty(t, b.drivers)
	require.Empty(t, b.runners)
}

func TestAsyncDecouplesAndForwardsOnlyChanged(t *testing.T) {
	b := NewBuilder(DefaultConfig(), nil)
	upstream := newFakeSignal(0)
	asyncSig := Async(b, upstream)
	require.True(t, asyncSig.Initial().IsDynamic())
	require.Len(t, b.drivers, 1)
	require.Len(t, b.runners, 1)

	mirrors := []mirror{b.drivers[0].asMirror()}
	launchFn := b.drivers[0].launch(0, mirrors)
	go launchFn(nil)
	go func() {
		for _, r := range b.runners {
			r.run(nil)
		}
	}()

	out := newRecordingPusher[int]()
	done := make(chan struct{})
	go func() {
		asyncSig.Drive(out)
		close(done)
	}()

	upstream.events <- Changed(5)
	require.Equal(t, Changed(5), <-out.out)

	upstream.events <- Unchanged[int]()
	upstream.events <- Changed(6)
	require.Equal(t, Changed(6), <-out.out, "an Unchanged upstream tick must not reach the reinjected signal at all")

	upstream.events <- Exit[int]()
	require.Equal(t, Exit[int](), <-out.out)
	<-done
}
