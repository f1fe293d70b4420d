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

// Map is Lift under the name most callers reach for first; it exists
// alongside Lift as a friendlier alias for the same operation.
func Map[A, B any](upstream Signal[A], f func(A) B) Signal[B] {
	return Lift(upstream, f)
}

// Pair is the tuple Zip produces, by way of Lift2 with a combining
// function that just pairs its two arguments.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip combines two signals into a signal of pairs, built on Lift2.
func Zip[A, B any](b *Builder, left Signal[A], right Signal[B]) Signal[Pair[A, B]] {
	return Lift2(b, left, right, func(a A, bv B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: bv}
	})
}

// Filter keeps only values matching pred, repeating the last value that
// passed whenever pred rejects a new one. A pure filter cannot synthesize
// its own SignalKind — dropping an event outright would desynchronize the
// per-global-event totality invariant every other node relies on — so
// Filter is a Fold in disguise: state is the last accepted value, and a
// rejected Changed event folds into Changed(state) unchanged rather than
// Unchanged, because the upstream step still happened and downstream still
// needs its tick.
//
// The very first upstream value is always accepted regardless of pred, to
// give Filter a well-defined initial value; callers that need stricter
// "no accepted value yet" semantics should wrap the element type in an
// Option-like type and filter on that instead.
func Filter[A any](upstream Signal[A], pred func(A) bool) Signal[A] {
	first := true
	return Fold(upstream, *new(A), func(state A, a A) A {
		if first || pred(a) {
			first = false
			return a
		}
		return state
	})
}

// Enumerated pairs a value with the count of Changed events the upstream
// signal has produced so far, starting at 0 for the build-time initial.
type Enumerated[A any] struct {
	Index int
	Value A
}

// Enumerate attaches a monotonically increasing index to every value an
// upstream signal produces, built on Fold.
func Enumerate[A any](upstream Signal[A]) Signal[Enumerated[A]] {
	idx := -1
	return Fold(upstream, Enumerated[A]{}, func(state Enumerated[A], a A) Enumerated[A] {
		idx++
		return Enumerated[A]{Index: idx, Value: a}
	})
}
