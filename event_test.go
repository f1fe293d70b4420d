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

func TestEventKinds(t *testing.T) {
	c := Changed(42)
	require.True(t, c.IsChanged())
	require.False(t, c.IsUnchanged())
	require.False(t, c.IsExit())
	v, ok := c.Value()
	require.True(t, ok)
	require.Equal(t, 42, v)

	u := Unchanged[int]()
	require.True(t, u.IsUnchanged())
	_, ok = u.Value()
	require.False(t, ok)

	e := Exit[int]()
	require.True(t, e.IsExit())
	_, ok = e.Value()
	require.False(t, ok)
}

func TestEventMap(t *testing.T) {
	double := func(n int) int { return n * 2 }

	mapped := MapEvent(Changed(21), double)
	v, ok := mapped.Value()
	require.True(t, ok)
	require.Equal(t, 42, v)

	require.True(t, MapEvent(Unchanged[int](), double).IsUnchanged())
	require.True(t, MapEvent(Exit[int](), double).IsExit())
}

func TestEventString(t *testing.T) {
	tests := map[string]struct {
		event Event[int]
		want  string
	}{
		"changed":   {event: Changed(1), want: "Changed"},
		"unchanged": {event: Unchanged[int](), want: "Unchanged"},
		"exit":      {event: Exit[int](), want: "Exit"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.event.String())
		})
	}
}

func TestSignalKind(t *testing.T) {
	c := ConstantKind(7)
	require.True(t, c.IsConstant())
	require.False(t, c.IsDynamic())
	require.Equal(t, 7, c.Value())

	d := DynamicKind("hello")
	require.True(t, d.IsDynamic())
	require.False(t, d.IsConstant())
	require.Equal(t, "hello", d.Value())
}
