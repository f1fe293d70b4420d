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

func TestFoldAccumulatesAcrossChangedEvents(t *testing.T) {
	upstream := newFakeSignal(0)
	sum := Fold[int, int](upstream, 0, func(acc, n int) int { return acc + n })

	// Fold seeds its own Initial from one build-time application of f
	// against upstream's reported initial (0 + 0 == 0 here).
	require.Equal(t, 0, sum.Initial().Value())

	out := newRecordingPusher[int]()
	done := make(chan struct{})
	go func() {
		sum.Drive(out)
		close(done)
	}()

	upstream.events <- Changed(5)
	require.Equal(t, Changed(5), <-out.out)

	upstream.events <- Unchanged[int]()
	require.Equal(t, Unchanged[int](), <-out.out)

	upstream.events <- Changed(3)
	require.Equal(t, Changed(8), <-out.out)

	upstream.events <- Exit[int]()
	require.Equal(t, Exit[int](), <-out.out)
	<-done
}

func TestFoldOverConstantRunsOnceAtBuildTime(t *testing.T) {
	calls := 0
	result := Fold(newValue(10), 1, func(acc, n int) int {
		calls++
		return acc + n
	})
	require.True(t, result.Initial().IsConstant())
	require.Equal(t, 11, result.Initial().Value())
	require.Equal(t, 1, calls)
}

func TestFoldSeedsStatefulClosureExactlyOnce(t *testing.T) {
	// Filter is a Fold wrapping a closure that mutates its own bookkeeping
	// (see sugar.go); this pins the property that fix depends on: the
	// build-time seeding application and the first runtime application
	// must not double-invoke f.
	upstream := newFakeSignal(1)
	invocations := 0
	seenFirst := false

	folded := Fold[int, int](upstream, 0, func(_ int, n int) int {
		invocations++
		if !seenFirst {
			seenFirst = true
			return n
		}
		return n * 100
	})

	require.Equal(t, 1, invocations, "f must be applied exactly once to seed Initial")
	require.Equal(t, 1, folded.Initial().Value())

	out := newRecordingPusher[int]()
	done := make(chan struct{})
	go func() {
		folded.Drive(out)
		close(done)
	}()

	upstream.events <- Changed(2)
	require.Equal(t, Changed(200), <-out.out)
	require.Equal(t, 2, invocations, "the first runtime event must be f's second call, not a re-seed")

	upstream.events <- Exit[int]()
	<-out.out
	<-done
}
