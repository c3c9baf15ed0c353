// Command vhal-debug is an interactive console for exploring a simulated
// vehicle property server: reads, writes, subscriptions and fake-data
// injection against an in-process server, plus CBOR trace file inspection.
//
// Usage:
//
//	vhal-debug [flags]
//
// Flags:
//
//	-config string  YAML property table (built-in defaults if empty)
//
// At the prompt, "help" lists the available commands. Everything after a
// "debug" token goes straight to the property server's debug surface, e.g.:
//
//	vhal> debug --genfakedata --startlinear 291504647 50 30 50 20 100000000
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/chzyer/readline"

	"github.com/openvhal/vhal-go/pkg/config"
	"github.com/openvhal/vhal-go/pkg/event"
	"github.com/openvhal/vhal-go/pkg/hal"
	vlog "github.com/openvhal/vhal-go/pkg/log"
	"github.com/openvhal/vhal-go/pkg/model"
	"github.com/openvhal/vhal-go/pkg/pool"
	"github.com/openvhal/vhal-go/pkg/store"
)

const help = `Commands:
  list                                  List all property configs
  get <propID> [areaID]                 Read a property value
  set <propID> <areaID> <type> <v...>   Write a value (type: int32|int64|float|string)
  subscribe <propID> <rateHz>           Start continuous sampling
  unsubscribe <propID>                  Stop continuous sampling
  dump                                  Print server state
  debug <tokens...>                     Send a debug command (--genfakedata ...)
  events on|off                         Toggle live event printing (default on)
  trace <file>                          Print events from a CBOR trace file
  help, ?                               Show this help
  exit, quit                            Leave
`

// console drives one in-process property server from a readline loop.
type console struct {
	hal *hal.VehicleHal
	q   *event.Queue[*pool.Ref]
	rl  *readline.Instance

	showEvents atomic.Bool
}

func main() {
	configFile := flag.String("config", "", "YAML property table (built-in defaults if empty)")
	flag.Parse()
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	decls := config.Defaults()
	if *configFile != "" {
		var err error
		decls, err = config.LoadFile(*configFile)
		if err != nil {
			log.Fatalf("Failed to load property table: %v", err)
		}
	}

	st := store.New()
	config.Apply(st, decls)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "vhal> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Fatalf("Failed to create readline: %v", err)
	}

	q := event.NewQueueDrop((*pool.Ref).Release)
	c := &console{
		hal: hal.New(st, &pool.Pool{}, q),
		q:   q,
		rl:  rl,
	}
	c.showEvents.Store(true)

	done := make(chan struct{})
	go c.consume(done)

	c.run()

	q.Deactivate()
	<-done
	c.hal.Close()
	rl.Close()
}

// consume prints arriving events through readline so they do not clobber
// the prompt.
func (c *console) consume(done chan<- struct{}) {
	defer close(done)
	for c.q.Wait() {
		for _, r := range c.q.Flush() {
			if c.showEvents.Load() {
				fmt.Fprintln(c.rl.Stdout(), r.Value().String())
			}
			r.Release()
		}
	}
}

func (c *console) run() {
	fmt.Fprint(c.rl.Stdout(), help)

	for {
		line, err := c.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			return
		}

		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			fmt.Fprint(c.rl.Stdout(), help)

		case "list":
			c.cmdList()

		case "get":
			c.cmdGet(args)

		case "set":
			c.cmdSet(args)

		case "subscribe", "sub":
			c.cmdSubscribe(args)

		case "unsubscribe", "unsub":
			c.cmdUnsubscribe(args)

		case "dump":
			c.hal.Dump(c.rl.Stdout(), nil)

		case "debug":
			c.hal.Dump(c.rl.Stdout(), append([]string{"--debughal"}, args...))

		case "events":
			c.cmdEvents(args)

		case "trace":
			c.cmdTrace(args)

		case "exit", "quit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (try \"help\")\n", cmd)
		}
	}
}

func (c *console) cmdList() {
	for _, cfg := range c.hal.ListProperties() {
		fmt.Fprintf(c.rl.Stdout(), "0x%08x  access=%s changeMode=%s areas=%d\n",
			cfg.Prop, cfg.Access, cfg.ChangeMode, len(cfg.AreaConfigs))
	}
}

func (c *console) cmdGet(args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(c.rl.Stdout(), "usage: get <propID> [areaID]")
		return
	}
	prop, ok := c.parseID(args[0])
	if !ok {
		return
	}
	var areaID int32
	if len(args) == 2 {
		area, ok := c.parseID(args[1])
		if !ok {
			return
		}
		areaID = area
	}

	r, st := c.hal.Get(&model.PropertyValue{Prop: prop, AreaID: areaID})
	if !st.IsOK() {
		fmt.Fprintf(c.rl.Stdout(), "get failed: %s\n", st)
		return
	}
	defer r.Release()
	fmt.Fprintln(c.rl.Stdout(), r.Value().String())
}

func (c *console) cmdSet(args []string) {
	if len(args) < 4 {
		fmt.Fprintln(c.rl.Stdout(), "usage: set <propID> <areaID> <int32|int64|float|string> <value...>")
		return
	}
	prop, ok := c.parseID(args[0])
	if !ok {
		return
	}
	areaID, ok := c.parseID(args[1])
	if !ok {
		return
	}

	v := model.PropertyValue{Prop: prop, AreaID: areaID}
	switch args[2] {
	case "int32":
		for _, s := range args[3:] {
			n, err := strconv.ParseInt(s, 0, 32)
			if err != nil {
				fmt.Fprintf(c.rl.Stdout(), "bad int32 %q: %v\n", s, err)
				return
			}
			v.Value.Int32Values = append(v.Value.Int32Values, int32(n))
		}
	case "int64":
		for _, s := range args[3:] {
			n, err := strconv.ParseInt(s, 0, 64)
			if err != nil {
				fmt.Fprintf(c.rl.Stdout(), "bad int64 %q: %v\n", s, err)
				return
			}
			v.Value.Int64Values = append(v.Value.Int64Values, n)
		}
	case "float":
		for _, s := range args[3:] {
			f, err := strconv.ParseFloat(s, 32)
			if err != nil {
				fmt.Fprintf(c.rl.Stdout(), "bad float %q: %v\n", s, err)
				return
			}
			v.Value.FloatValues = append(v.Value.FloatValues, float32(f))
		}
	case "string":
		v.Value.StringValue = strings.Join(args[3:], " ")
	default:
		fmt.Fprintf(c.rl.Stdout(), "unknown value type %q\n", args[2])
		return
	}

	if st := c.hal.Set(&v); !st.IsOK() {
		fmt.Fprintf(c.rl.Stdout(), "set failed: %s\n", st)
		return
	}
	fmt.Fprintln(c.rl.Stdout(), "OK")
}

func (c *console) cmdSubscribe(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.rl.Stdout(), "usage: subscribe <propID> <rateHz>")
		return
	}
	prop, ok := c.parseID(args[0])
	if !ok {
		return
	}
	hz, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "bad rate %q: %v\n", args[1], err)
		return
	}
	if st := c.hal.Subscribe(prop, float32(hz)); !st.IsOK() {
		fmt.Fprintf(c.rl.Stdout(), "subscribe failed: %s\n", st)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "Subscribed: 0x%x at %g Hz\n", prop, hz)
}

func (c *console) cmdUnsubscribe(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.rl.Stdout(), "usage: unsubscribe <propID>")
		return
	}
	prop, ok := c.parseID(args[0])
	if !ok {
		return
	}
	if st := c.hal.Unsubscribe(prop); !st.IsOK() {
		fmt.Fprintf(c.rl.Stdout(), "unsubscribe failed: %s\n", st)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "Unsubscribed: 0x%x\n", prop)
}

func (c *console) cmdEvents(args []string) {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		fmt.Fprintln(c.rl.Stdout(), "usage: events on|off")
		return
	}
	c.showEvents.Store(args[0] == "on")
}

// cmdTrace prints a CBOR trace file written by vhal-sim.
func (c *console) cmdTrace(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.rl.Stdout(), "usage: trace <file>")
		return
	}
	rd, err := vlog.NewReader(args[0])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "open trace: %v\n", err)
		return
	}
	defer rd.Close()

	count := 0
	for {
		ev, err := rd.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintf(c.rl.Stdout(), "read trace: %v\n", err)
			}
			break
		}
		count++
		fmt.Fprintln(c.rl.Stdout(), formatTraceEvent(ev))
	}
	fmt.Fprintf(c.rl.Stdout(), "%d events\n", count)
}

func formatTraceEvent(ev vlog.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %-9s %-5s", ev.Timestamp.Format(time.RFC3339Nano), ev.Source, ev.Category)
	if ev.Prop != 0 {
		fmt.Fprintf(&b, " prop=0x%x", ev.Prop)
	}
	if ev.AreaID != 0 {
		fmt.Fprintf(&b, " area=0x%x", ev.AreaID)
	}
	if ev.SampleRate != 0 {
		fmt.Fprintf(&b, " rate=%gHz", ev.SampleRate)
	}
	if ev.Message != "" {
		fmt.Fprintf(&b, " %s", ev.Message)
	}
	if ev.Err != "" {
		fmt.Fprintf(&b, " err=%s", ev.Err)
	}
	return b.String()
}

func (c *console) parseID(s string) (int32, bool) {
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "bad ID %q: %v\n", s, err)
		return 0, false
	}
	return int32(n), true
}
