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

// valueNode is a constant-valued signal. Its Initial reports Constant(v);
// combiners that see a Constant input fold it away at build time, so a
// valueNode's Drive is never expected to run. If it is invoked anyway,
// that is a program error rather than something the library can recover
// from cleanly, so it panics with a sentinel.
type valueNode[A any] struct {
	v A
}

// newValue constructs a constant-valued signal.
func newValue[A any](v A) Signal[A] {
	return &valueNode[A]{v: v}
}

func (n *valueNode[A]) Initial() SignalKind[A] {
	return ConstantKind(n.v)
}

func (n *valueNode[A]) Drive(_ Pusher[A]) {
	panic(ErrValueSignalDriven)
}
