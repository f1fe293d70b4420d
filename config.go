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
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the single recognized tuning knob for a topology: the
// capacity of every internal bounded FIFO. The zero value (BufferSize: 0)
// is rendezvous — every send blocks until a matching receive, which is
// the strictest and safest default.
type Config struct {
	// BufferSize is the capacity of each internal channel created while
	// building the graph: channel-node delivery slots, fork branch
	// outboxes, and lift2/lift3 collector legs. Must be non-negative.
	BufferSize int `yaml:"bufferSize"`
}

// DefaultConfig returns the rendezvous configuration (BufferSize: 0).
func DefaultConfig() Config {
	return Config{BufferSize: 0}
}

// LoadConfigFile reads a YAML-encoded Config from path. It exists for
// demo/operational convenience (see cmd/frpdemo); the core library itself
// never reads from disk.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config file %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config file %q", path)
	}
	if cfg.BufferSize < 0 {
		return cfg, errors.Errorf("config file %q: bufferSize must be non-negative, got %d", path, cfg.BufferSize)
	}
	return cfg, nil
}

func (c Config) bufSize() int {
	if c.BufferSize < 0 {
		return 0
	}
	return c.BufferSize
}
