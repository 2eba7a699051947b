package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jcorbin/hullpaint/internal/image"
	"github.com/jcorbin/hullpaint/internal/logio"
	"github.com/jcorbin/hullpaint/internal/robot"
)

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)
	log.ErrorIf(run(context.Background(), &log, os.Args[1:], os.Stdin, os.Stdout))
	os.Exit(log.ExitCode())
}

func run(ctx context.Context, log *logio.Logger, args []string, stdin io.Reader, stdout io.Writer) (rerr error) {
	flags := flag.NewFlagSet("hullpaint", flag.ContinueOnError)
	var (
		configName = flags.String("config", "", "load settings from a TOML file")
		timeout    = flags.Duration("timeout", 0, "specify a time limit")
		trace      = flags.Bool("trace", false, "enable trace logging")
		memLimit   = flags.Int64("mem-limit", 0, "enable memory limit")
		pageSize   = flags.Int64("page-size", 0, "memory page size")
		start      = flags.Int64("start", 0, "colour of the panel the robot starts on")
		render     = flags.Bool("render", false, "draw the painted hull after the count")
		dump       = flags.Bool("dump", false, "log a machine dump after the run")
		raw        = flags.Bool("raw", false, "run without the robot, printing every output value")
		input      = flags.String("input", "", "comma separated input values for -raw")
		snapshot   = flags.String("snapshot", "", "write a CBOR result snapshot to this file")
		traceOut   = flags.String("trace-out", "", "write every output value to this file")
	)
	if err := flags.Parse(args); errors.Is(err, flag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}

	cfg, err := loadConfig(*configName)
	if err != nil {
		return err
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "timeout":
			cfg.Machine.Timeout.Duration = *timeout
		case "trace":
			cfg.Machine.Trace = *trace
		case "mem-limit":
			cfg.Machine.MemLimit = *memLimit
		case "page-size":
			cfg.Machine.PageSize = *pageSize
		case "start":
			cfg.Robot.StartColor = *start
		case "render":
			cfg.Output.Render = *render
		case "dump":
			cfg.Output.Dump = *dump
		case "raw":
			cfg.Output.Raw = *raw
		case "snapshot":
			cfg.Output.Snapshot = *snapshot
		case "trace-out":
			cfg.Output.Trace = *traceOut
		}
	})
	if err := cfg.validate(); err != nil {
		return err
	}
	if *input != "" && !cfg.Output.Raw {
		return errors.New("-input is only read in -raw mode")
	}

	if flags.NArg() > 1 {
		return fmt.Errorf("expected at most one image file, got %v", flags.NArg())
	}
	var cells []int64
	if name := flags.Arg(0); name == "" || name == "-" {
		cells, err = image.Parse("<stdin>", stdin)
	} else {
		cells, err = image.ReadFile(name)
	}
	if err != nil {
		return err
	}

	opts := []VMOption{cfg.vmOptions(), WithImage(cells...)}
	if cfg.Machine.Trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}

	var rob *robot.Robot
	if cfg.Output.Raw {
		inputs, err := image.ParseString(*input)
		if err != nil {
			return fmt.Errorf("invalid -input: %w", err)
		}
		in := Ints(inputs)
		opts = append(opts, WithInput(&in), WithOutput(newTextOutput(stdout)))
	} else {
		rob = robot.New(cfg.Robot.StartColor)
		if cfg.Machine.Trace {
			rob.SetLogf(log.Leveledf("ROBOT"))
		}
		opts = append(opts, WithInput(rob), WithOutput(rob))
	}

	var emitted Ints
	if cfg.Output.Snapshot != "" {
		opts = append(opts, WithTee(&emitted))
	}
	if cfg.Output.Trace != "" {
		f, err := os.Create(cfg.Output.Trace)
		if err != nil {
			return err
		}
		defer closeWith(&rerr, f, "trace output")
		opts = append(opts, WithTee(newTextOutput(f)))
	}

	vm := New(opts...)
	if timeout := cfg.Machine.Timeout.Duration; timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	runErr := vm.Run(ctx)

	if cfg.Output.Dump {
		lw := logio.Writer{Logf: log.Leveledf("DUMP")}
		vmDumper{vm: vm, out: &lw}.dump()
		lw.Close()
	}
	if runErr != nil {
		return runErr
	}

	if rob != nil {
		fmt.Fprintln(stdout, rob.Painted())
		if cfg.Output.Render {
			if err := rob.Render(stdout); err != nil {
				return err
			}
		}
	}
	if cfg.Output.Snapshot != "" {
		return takeSnapshot(rob, emitted, vm.Steps()).writeFile(cfg.Output.Snapshot)
	}
	return nil
}

// closeWith closes c, storing any close error in *err unless it already
// holds an earlier error.
func closeWith(err *error, c io.Closer, what string) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("cannot close %v: %w", what, cerr)
	}
}
