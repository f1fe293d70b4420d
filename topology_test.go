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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/gofrp/gofrp/internal/metrics"
)

func TestTopologyLaunchRunsLengthFoldPipeline(t *testing.T) {
	input := make(chan string)
	results := make(chan int, 8)

	topo := Spawn(DefaultConfig(), nil, func(b *Builder) {
		lines := Listen(b, "", input)
		lengths := Lift(lines, func(s string) int { return len(s) })
		total := Fold(lengths, 0, func(acc, n int) int { return acc + n })
		Drain(b, Lift(total, func(n int) int {
			results <- n
			return n
		}))
	})

	// Drain reads the side-effecting lift's Initial at build time, which
	// runs its f once against the fold's seeded total of 0.
	require.Equal(t, 0, waitForInt(t, results))

	handle, err := topo.Launch()
	require.NoError(t, err)

	input <- "hi"
	require.Equal(t, 2, waitForInt(t, results))

	input <- "there"
	require.Equal(t, 7, waitForInt(t, results))

	close(input)
	require.NoError(t, handle.Wait())
}

func TestTopologyLaunchTwiceFails(t *testing.T) {
	topo := Spawn(DefaultConfig(), nil, func(b *Builder) {})
	_, err := topo.Launch()
	require.NoError(t, err)

	_, err = topo.Launch()
	require.ErrorIs(t, err, ErrAlreadyLaunched)
}

func TestHandleShutdownIsIdempotent(t *testing.T) {
	input := make(chan string)
	topo := Spawn(DefaultConfig(), nil, func(b *Builder) {
		lines := Listen(b, "", input)
		Drain(b, lines)
	})

	handle, err := topo.Launch()
	require.NoError(t, err)

	require.NotPanics(t, func() {
		handle.Shutdown()
		handle.Shutdown()
	})

	// Shutdown's Exit broadcast unblocks everything downstream of this
	// driver, but the listenDriver's own goroutine is still parked on
	// input per its doc comment — close it too so Wait returns.
	close(input)
	require.NoError(t, handle.Wait())
}

func TestTopologyReportsMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	rec := metrics.NewRecorder(registry)

	input := make(chan int)
	topo := Spawn(DefaultConfig(), nil, func(b *Builder) {
		b.UseMetrics(rec)
		lines := Listen(b, 0, input)
		Drain(b, Lift(lines, func(n int) int { return n }))
	})

	handle, err := topo.Launch()
	require.NoError(t, err)

	gauges, err := registry.Gather()
	require.NoError(t, err)
	found := false
	for _, mf := range gauges {
		if mf.GetName() == metrics.TopologyLaunchGauge {
			found = true
			require.Equal(t, float64(1), mf.GetMetric()[0].GetGauge().GetValue())
		}
	}
	require.True(t, found, "launched gauge must be registered and set")

	close(input)
	require.NoError(t, handle.Wait())
}

func waitForInt(t *testing.T, ch <-chan int) int {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for pipeline output")
		return 0
	}
}
