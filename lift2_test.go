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

func TestLift2BothConstantFoldsToValue(t *testing.T) {
	b := NewBuilder(DefaultConfig(), nil)
	combined := Lift2(b, newValue(2), newValue(3), func(a, c int) int { return a + c })
	require.True(t, combined.Initial().IsConstant())
	require.Equal(t, 5, combined.Initial().Value())
}

func TestLift2OneConstantDegeneratesToLift(t *testing.T) {
	b := NewBuilder(DefaultConfig(), nil)
	left := newFakeSignal(1)
	combined := Lift2[int, int, int](b, left, newValue(100), func(a, c int) int { return a + c })
	require.True(t, combined.Initial().IsDynamic())
	require.Equal(t, 101, combined.Initial().Value())

	out := newRecordingPusher[int]()
	done := make(chan struct{})
	go func() {
		combined.Drive(out)
		close(done)
	}()

	left.events <- Changed(5)
	require.Equal(t, Changed(105), <-out.out)

	left.events <- Exit[int]()
	require.Equal(t, Exit[int](), <-out.out)
	<-done
}

func TestLift2BothDynamicJoinsPerStep(t *testing.T) {
	b := NewBuilder(DefaultConfig(), nil)
	left := newFakeSignal(0)
	right := newFakeSignal(0)
	combined := Lift2(b, left, right, func(a, c int) int { return a + c })
	require.True(t, combined.Initial().IsDynamic())
	require.Equal(t, 0, combined.Initial().Value())

	out := newRecordingPusher[int]()
	done := make(chan struct{})
	go func() {
		combined.Drive(out)
		close(done)
	}()

	left.events <- Changed(1)
	right.events <- Changed(10)
	require.Equal(t, Changed(11), <-out.out)

	left.events <- Unchanged[int]()
	right.events <- Changed(20)
	require.Equal(t, Changed(21), <-out.out, "right's Changed must combine with left's cached value")

	left.events <- Changed(2)
	right.events <- Unchanged[int]()
	require.Equal(t, Changed(22), <-out.out, "left's Changed must combine with right's cached value")

	left.events <- Unchanged[int]()
	right.events <- Unchanged[int]()
	require.Equal(t, Unchanged[int](), <-out.out)

	left.events <- Exit[int]()
	right.events <- Exit[int]()
	require.Equal(t, Exit[int](), <-out.out)
	<-done
}

func TestZipPairsValues(t *testing.T) {
	b := NewBuilder(DefaultConfig(), nil)
	left := newFakeSignal(1)
	right := newFakeSignal("a")
	zipped := Zip[int, string](b, left, right)
	require.Equal(t, Pair[int, string]{First: 1, Second: "a"}, zipped.Initial().Value())

	out := newRecordingPusher[Pair[int, string]]()
	done := make(chan struct{})
	go func() {
		zipped.Drive(out)
		close(done)
	}()

	left.events <- Changed(2)
	right.events <- Changed("b")
	require.Equal(t, Changed(Pair[int, string]{First: 2, Second: "b"}), <-out.out)

	left.events <- Exit[int]()
	right.events <- Exit[string]()
	<-out.out
	<-done
}
