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

// Package gofrp is a concurrent functional-reactive runtime. Applications
// declare a static directed acyclic graph of signal nodes at build time
// and launch it once; the runtime then processes external events forever,
// guaranteeing that every node in the graph observes exactly one
// notification — a value change or an explicit no-change tick — for every
// external event ingested anywhere in the graph.
package gofrp
