package hal

import (
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/openvhal/vhal-go/pkg/generator"
	"github.com/openvhal/vhal-go/pkg/log"
)

const debugUsage = `Generate Fake Data Usage:
--debughal --genfakedata --startlinear [propID(int32)] [mValue] [cValue] [dispersion] [increment] [interval(ns)]
--debughal --genfakedata --stoplinear [propID(int32)]
--debughal --genfakedata --startjson [jsonFilePath(string)] [repetition(int32)]
--debughal --genfakedata --stopjson [jsonFilePath(string)]
--debughal --genfakedata --keypress [keyCode(int32)] [display(int32)]
`

// debugCommand is one fully parsed debug request. Parsing happens up front
// so the string grammar stays at the boundary and execution works on typed
// arguments only.
type debugCommand interface {
	run(h *VehicleHal, w io.Writer)
}

type helpCmd struct{}

type startLinearCmd struct {
	cfg generator.LinearConfig
}

type stopLinearCmd struct {
	prop int32
}

type startJSONCmd struct {
	file       string
	repetition int32
}

type stopJSONCmd struct {
	file string
}

type keyPressCmd struct {
	keyCode int32
	display int32
}

// handleDebug parses and executes one debug command line. Diagnostics and
// usage go to w; the command surface never fails the dump itself.
func (h *VehicleHal) handleDebug(w io.Writer, tokens []string) {
	cmd, ok := parseDebugCommand(w, tokens)
	if !ok {
		return
	}
	cmd.run(h, w)
}

// parseDebugCommand turns a token list into a typed command, writing a
// diagnostic and returning false on any grammar or argument error.
func parseDebugCommand(w io.Writer, tokens []string) (debugCommand, bool) {
	if len(tokens) == 0 {
		fmt.Fprintln(w, "No command specified")
		fmt.Fprintf(w, "Help:\n%s", debugUsage)
		return nil, false
	}
	switch tokens[0] {
	case "--help":
		return helpCmd{}, true
	case "--genfakedata":
		return parseGenFakeData(w, tokens[1:])
	default:
		fmt.Fprintf(w, "Unknown command: \"%s\"\n", tokens[0])
		fmt.Fprintf(w, "Help:\n%s", debugUsage)
		return nil, false
	}
}

func parseGenFakeData(w io.Writer, args []string) (debugCommand, bool) {
	if len(args) == 0 {
		fmt.Fprintln(w, "No subcommand specified for genfakedata")
		fmt.Fprintf(w, "Help:\n%s", debugUsage)
		return nil, false
	}
	switch args[0] {
	case "--startlinear":
		return parseStartLinear(w, args[1:])
	case "--stoplinear":
		return parseStopLinear(w, args[1:])
	case "--startjson":
		return parseStartJSON(w, args[1:])
	case "--stopjson":
		return parseStopJSON(w, args[1:])
	case "--keypress":
		return parseKeyPress(w, args[1:])
	default:
		fmt.Fprintf(w, "Unknown command: \"%s\"\n", args[0])
		fmt.Fprintf(w, "Help:\n%s", debugUsage)
		return nil, false
	}
}

func parseStartLinear(w io.Writer, args []string) (debugCommand, bool) {
	if len(args) != 6 {
		fmt.Fprintln(w, "incorrect argument count, --startlinear requires 6 arguments")
		return nil, false
	}
	prop, ok := parseDebugInt32(w, "propdID", args[0])
	if !ok {
		return nil, false
	}
	middle, ok := parseDebugFloat(w, "middleValue", args[1])
	if !ok {
		return nil, false
	}
	current, ok := parseDebugFloat(w, "currentValue", args[2])
	if !ok {
		return nil, false
	}
	dispersion, ok := parseDebugFloat(w, "dispersion", args[3])
	if !ok {
		return nil, false
	}
	increment, ok := parseDebugFloat(w, "increment", args[4])
	if !ok {
		return nil, false
	}
	interval, ok := parseDebugInt64(w, "interval", args[5])
	if !ok {
		return nil, false
	}
	return startLinearCmd{cfg: generator.LinearConfig{
		Prop:         prop,
		MiddleValue:  middle,
		CurrentValue: current,
		Dispersion:   dispersion,
		Increment:    increment,
		Interval:     time.Duration(interval),
	}}, true
}

func parseStopLinear(w io.Writer, args []string) (debugCommand, bool) {
	if len(args) != 1 {
		fmt.Fprintln(w, "incorrect argument count, --stoplinear requires 1 argument")
		return nil, false
	}
	prop, ok := parseDebugInt32(w, "propdID", args[0])
	if !ok {
		return nil, false
	}
	return stopLinearCmd{prop: prop}, true
}

func parseStartJSON(w io.Writer, args []string) (debugCommand, bool) {
	if len(args) != 2 {
		fmt.Fprintln(w, "incorrect argument count, --startjson requires 2 arguments")
		return nil, false
	}
	repetition, ok := parseDebugInt32(w, "repetition", args[1])
	if !ok {
		return nil, false
	}
	return startJSONCmd{file: args[0], repetition: repetition}, true
}

func parseStopJSON(w io.Writer, args []string) (debugCommand, bool) {
	if len(args) != 1 {
		fmt.Fprintln(w, "incorrect argument count, --stopjson requires 1 argument")
		return nil, false
	}
	return stopJSONCmd{file: args[0]}, true
}

func parseKeyPress(w io.Writer, args []string) (debugCommand, bool) {
	if len(args) != 2 {
		fmt.Fprintln(w, "incorrect argument count, --keypress requires 2 arguments")
		return nil, false
	}
	keyCode, ok := parseDebugInt32(w, "keyCode", args[0])
	if !ok {
		return nil, false
	}
	display, ok := parseDebugInt32(w, "display", args[1])
	if !ok {
		return nil, false
	}
	return keyPressCmd{keyCode: keyCode, display: display}, true
}

func (helpCmd) run(_ *VehicleHal, w io.Writer) {
	fmt.Fprintf(w, "Help:\n%s", debugUsage)
}

func (c startLinearCmd) run(h *VehicleHal, _ io.Writer) {
	g := generator.NewLinear(c.cfg, h.pool, h.onGeneratedValue)
	h.hub.Register(int64(c.cfg.Prop), g)
	h.logGeneratorState(c.cfg.Prop, "linear generator started")
}

func (c stopLinearCmd) run(h *VehicleHal, _ io.Writer) {
	if h.hub.Unregister(int64(c.prop)) {
		h.logGeneratorState(c.prop, "linear generator stopped")
	}
}

func (c startJSONCmd) run(h *VehicleHal, w io.Writer) {
	data, err := os.ReadFile(c.file)
	if err != nil {
		fmt.Fprintln(w, "invalid JSON file")
		return
	}
	script, err := generator.ParseScript(data)
	if err != nil {
		fmt.Fprintln(w, "invalid JSON file")
		return
	}
	g := generator.NewJSONReplay(script, int(c.repetition), h.pool, h.onGeneratedValue)
	h.hub.Register(jsonCookie(c.file), g)
	h.logGeneratorState(0, "json generator started: "+c.file)
}

func (c stopJSONCmd) run(h *VehicleHal, _ io.Writer) {
	if h.hub.Unregister(jsonCookie(c.file)) {
		h.logGeneratorState(0, "json generator stopped: "+c.file)
	}
}

func (c keyPressCmd) run(h *VehicleHal, _ io.Writer) {
	generator.KeyPress(h.pool, h.onGeneratedValue, c.keyCode, c.display)
}

func (h *VehicleHal) logGeneratorState(prop int32, msg string) {
	h.logger.Log(log.Event{
		Timestamp:  time.Now(),
		InstanceID: h.instanceID,
		Source:     log.SourceDebug,
		Category:   log.CategoryState,
		Prop:       prop,
		Message:    msg,
	})
}

// jsonCookie derives a hub key from a script path, outside the int32 range
// reserved for linear generators keyed by property ID.
func jsonCookie(file string) int64 {
	d := fnv.New32a()
	d.Write([]byte(file))
	return int64(d.Sum32()) | 1<<32
}

func parseDebugInt32(w io.Writer, name, s string) (int32, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		fmt.Fprintf(w, "failed to parse %s as int: \"%s\"\n", name, s)
		return 0, false
	}
	return int32(n), true
}

func parseDebugInt64(w io.Writer, name, s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fmt.Fprintf(w, "failed to parse %s as int: \"%s\"\n", name, s)
		return 0, false
	}
	return n, true
}

func parseDebugFloat(w io.Writer, name, s string) (float32, bool) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		fmt.Fprintf(w, "failed to parse %s as float: \"%s\"\n", name, s)
		return 0, false
	}
	return float32(f), true
}
