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

func TestValueReportsConstant(t *testing.T) {
	v := newValue(5)
	k := v.Initial()
	require.True(t, k.IsConstant())
	require.Equal(t, 5, k.Value())
}

func TestValueDrivenPanics(t *testing.T) {
	v := newValue("x")
	require.PanicsWithValue(t, ErrValueSignalDriven, func() {
		v.Drive(nil)
	})
}
