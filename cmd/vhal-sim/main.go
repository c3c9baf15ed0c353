// Command vhal-sim runs a simulated in-vehicle property server.
//
// The simulator loads a property table (built-in defaults or a YAML file),
// serves reads, validated writes and continuous subscriptions, and prints
// every produced event to stdout. A CBOR trace file can be written for
// offline analysis with vhal-debug.
//
// Usage:
//
//	vhal-sim [flags]
//
// Flags:
//
//	-config string     YAML property table (built-in defaults if empty)
//	-trace string      CBOR trace file path (tracing off if empty)
//	-heartbeat duration  Heartbeat interval (default 3s)
//	-subscribe string  Comma-separated propID:rateHz pairs to subscribe at boot
//	-log-level string  Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Defaults, speed sampled at 10 Hz
//	vhal-sim -subscribe 291504647:10
//
//	# Custom property table with a trace file
//	vhal-sim -config fleet.yaml -trace run.vtrace
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/openvhal/vhal-go/pkg/config"
	"github.com/openvhal/vhal-go/pkg/event"
	"github.com/openvhal/vhal-go/pkg/hal"
	vlog "github.com/openvhal/vhal-go/pkg/log"
	"github.com/openvhal/vhal-go/pkg/model"
	"github.com/openvhal/vhal-go/pkg/pool"
	"github.com/openvhal/vhal-go/pkg/store"
)

// Config holds the simulator configuration.
type Config struct {
	ConfigFile string
	TraceFile  string
	Heartbeat  time.Duration
	Subscribe  string
	LogLevel   string
}

var cfg Config

func init() {
	flag.StringVar(&cfg.ConfigFile, "config", "", "YAML property table (built-in defaults if empty)")
	flag.StringVar(&cfg.TraceFile, "trace", "", "CBOR trace file path (tracing off if empty)")
	flag.DurationVar(&cfg.Heartbeat, "heartbeat", 3*time.Second, "Heartbeat interval")
	flag.StringVar(&cfg.Subscribe, "subscribe", "", "Comma-separated propID:rateHz pairs to subscribe at boot")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	flag.Parse()
	setupLogging(cfg.LogLevel)

	log.Println("Vehicle Property Server Simulator")
	log.Println("=================================")

	decls, err := loadDeclarations()
	if err != nil {
		log.Fatalf("Failed to load property table: %v", err)
	}
	log.Printf("Properties: %d", len(decls))

	st := store.New()
	config.Apply(st, decls)

	logger, closeTrace, err := buildLogger()
	if err != nil {
		log.Fatalf("Failed to open trace file: %v", err)
	}

	q := event.NewQueueDrop((*pool.Ref).Release)
	h := hal.New(st, &pool.Pool{}, q,
		hal.WithLogger(logger),
		hal.WithHeartbeatInterval(cfg.Heartbeat),
	)
	log.Printf("Instance: %s", h.InstanceID())

	if err := subscribeAll(h, cfg.Subscribe); err != nil {
		log.Fatalf("Invalid -subscribe flag: %v", err)
	}

	done := make(chan struct{})
	go consume(q, done)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	log.Printf("Received signal: %v", sig)
	log.Println("Shutting down...")

	// Deactivate the queue before tearing down the producers so a late
	// tick cannot reference freed state, then join every producer.
	q.Deactivate()
	<-done
	h.Close()
	for _, r := range q.Flush() {
		r.Release()
	}
	closeTrace()

	log.Println("Goodbye!")
}

// consume drains the event queue and prints each event until deactivation.
func consume(q *event.Queue[*pool.Ref], done chan<- struct{}) {
	defer close(done)
	for q.Wait() {
		for _, r := range q.Flush() {
			fmt.Println(r.Value().String())
			r.Release()
		}
	}
}

func loadDeclarations() ([]config.Declaration, error) {
	if cfg.ConfigFile == "" {
		return config.Defaults(), nil
	}
	return config.LoadFile(cfg.ConfigFile)
}

// buildLogger assembles the trace pipeline: always slog, plus the CBOR file
// when -trace is set.
func buildLogger() (vlog.Logger, func(), error) {
	slogger := vlog.NewSlogAdapter(slog.Default())
	if cfg.TraceFile == "" {
		return slogger, func() {}, nil
	}
	fl, err := vlog.NewFileLogger(cfg.TraceFile)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := fl.Close(); err != nil {
			log.Printf("Error closing trace file: %v", err)
		}
	}
	return vlog.NewMultiLogger(slogger, fl), closer, nil
}

// subscribeAll parses "propID:rateHz,propID:rateHz" and subscribes each.
func subscribeAll(h *hal.VehicleHal, pairs string) error {
	if pairs == "" {
		return nil
	}
	for _, pair := range strings.Split(pairs, ",") {
		id, rate, found := strings.Cut(pair, ":")
		if !found {
			return fmt.Errorf("expected propID:rateHz, got %q", pair)
		}
		prop, err := strconv.ParseInt(strings.TrimSpace(id), 0, 32)
		if err != nil {
			return fmt.Errorf("bad property ID %q: %w", id, err)
		}
		hz, err := strconv.ParseFloat(strings.TrimSpace(rate), 32)
		if err != nil {
			return fmt.Errorf("bad sample rate %q: %w", rate, err)
		}
		if st := h.Subscribe(int32(prop), float32(hz)); st != model.StatusOK {
			return fmt.Errorf("subscribe 0x%x at %s Hz: %s", prop, rate, st)
		}
		log.Printf("Subscribed: 0x%x at %s Hz", prop, rate)
	}
	return nil
}

func setupLogging(level string) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	case "warn":
		slogLevel = slog.LevelWarn
		log.SetFlags(log.Ltime)
	case "error":
		slogLevel = slog.LevelError
		log.SetFlags(log.Ltime)
	default:
		slogLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel,
	})))
}
