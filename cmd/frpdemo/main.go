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

// Command frpdemo wires a tiny gofrp topology end to end: it reads lines
// from stdin, lifts each into its length, folds a running total, and
// prints every update to stdout. It exists to exercise the public surface
// against real input, not as a production tool.
package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	_ "go.uber.org/automaxprocs"

	"github.com/gofrp/gofrp"
	"github.com/gofrp/gofrp/internal/metrics"
)

var (
	app         = kingpin.New("frpdemo", "Demonstration topology for the gofrp runtime.")
	configFile  = app.Flag("config", "Optional YAML config file (bufferSize).").String()
	metricsAddr = app.Flag("metrics-addr", "Address to serve Prometheus metrics on; empty disables it.").Default("").String()
	debug       = app.Flag("debug", "Enable debug logging.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log := logrus.StandardLogger()
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}
	entry := log.WithField("context", "frpdemo")

	cfg := gofrp.DefaultConfig()
	if *configFile != "" {
		loaded, err := gofrp.LoadConfigFile(*configFile)
		if err != nil {
			entry.WithError(err).Fatal("failed to load config file")
		}
		cfg = loaded
	}

	var rec *metrics.Recorder
	if *metricsAddr != "" {
		registry := prometheus.NewRegistry()
		rec = metrics.NewRecorder(registry)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				entry.WithError(err).Error("metrics server stopped")
			}
		}()
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	topo := gofrp.Spawn(cfg, entry, func(b *gofrp.Builder) {
		if rec != nil {
			b.UseMetrics(rec)
		}

		input := gofrp.Listen(b, "", lines)
		lengths := gofrp.Lift(input, func(s string) int { return len(s) })
		total := gofrp.Fold(lengths, 0, func(acc, n int) int { return acc + n })

		gofrp.Drain(b, gofrp.Lift(total, func(n int) int {
			fmt.Fprintf(os.Stdout, "running total: %d\n", n)
			return n
		}))
	})

	handle, err := topo.Launch()
	if err != nil {
		entry.WithError(err).Fatal("failed to launch topology")
	}

	if err := handle.Wait(); err != nil {
		entry.WithError(err).Error("topology exited with error")
	}
}
