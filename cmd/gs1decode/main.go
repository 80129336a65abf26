// gs1decode CLI
// Decodes a GS1 element string from the command line or stdin
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mohammedfouly1/PharmaInventory/internal/obslog"
	"github.com/mohammedfouly1/PharmaInventory/internal/obsmetrics"
	"github.com/mohammedfouly1/PharmaInventory/pkg/gs1config"
	"github.com/mohammedfouly1/PharmaInventory/pkg/gs1decode"
)

var (
	optionsFile = flag.String("options", "", "path to a JSON decode-options file (schema-validated)")
	metricsAddr = flag.String("metrics-addr", "", "address to serve Prometheus /metrics on, e.g. :9090 (empty uses GS1_METRICS_ADDR when GS1_METRICS_ENABLED is true)")
	logLevel    = flag.String("log-level", "", "override GS1_LOG_LEVEL")
	pretty      = flag.Bool("pretty-log", false, "pretty-print log output for development")
)

func main() {
	flag.Parse()

	cfg := gs1config.LoadConfig()
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *pretty {
		cfg.Log.Pretty = true
	}

	obslog.InitGlobalLogger(obslog.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logger := obslog.GetGlobalLogger()

	opts := cfg.ToDecodeOptions()
	if *optionsFile != "" {
		loaded, err := gs1config.LoadOptionsFile(*optionsFile, opts)
		if err != nil {
			log.Fatalf("failed to load decode options: %v", err)
		}
		opts = loaded
	}

	var metrics *obsmetrics.Metrics
	var metricsServer *http.Server
	addr := *metricsAddr
	if addr == "" && cfg.Metrics.Enabled {
		addr = cfg.Metrics.Addr
	}
	if addr != "" {
		metrics = obsmetrics.NewMetrics()
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{Addr: addr, Handler: mux}

		logger.LogServerStart(addr)
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server failed").Err(err).Send()
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		if metricsServer != nil {
			logger.LogServerShutdown()
			_ = metricsServer.Close()
		}
		os.Exit(0)
	}()

	inputs := flag.Args()
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			inputs = append(inputs, scanner.Text())
		}
	}
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: gs1decode [flags] <element-string>...  (or pipe lines on stdin)")
		os.Exit(2)
	}

	encoder := json.NewEncoder(os.Stdout)
	for _, raw := range inputs {
		var result gs1decode.DecodeResult
		if metrics != nil {
			result = gs1decode.DecodeWithMetrics(metrics, raw, opts)
		} else {
			result = gs1decode.DecodeWithLog(logger, raw, opts)
		}
		if err := encoder.Encode(result); err != nil {
			log.Fatalf("failed to encode decode result: %v", err)
		}
	}
}
