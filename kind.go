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

// SignalKind is a signal's build-time classification: Constant means the
// value is known once and for all at graph-construction time and the node
// will never push at runtime; Dynamic means the node will push Changed or
// Unchanged events once the topology is launched.
//
// Combiners consult SignalKind of their inputs to decide their own kind
// (spec: a combiner over all-Constant inputs reduces to Constant; any
// Dynamic input makes the combiner Dynamic).
type SignalKind[A any] struct {
	dynamic bool
	value   A
}

// ConstantKind reports a value fixed at build time.
func ConstantKind[A any](v A) SignalKind[A] {
	return SignalKind[A]{dynamic: false, value: v}
}

// DynamicKind reports a value that will change at runtime, carrying the
// value the signal reports before its first runtime event.
func DynamicKind[A any](v A) SignalKind[A] {
	return SignalKind[A]{dynamic: true, value: v}
}

// IsDynamic reports whether this signal will push events at runtime.
func (k SignalKind[A]) IsDynamic() bool { return k.dynamic }

// IsConstant reports whether this signal never pushes at runtime.
func (k SignalKind[A]) IsConstant() bool { return !k.dynamic }

// Value returns the captured initial/constant value.
func (k SignalKind[A]) Value() A { return k.value }
