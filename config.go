package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jcorbin/hullpaint/internal/mem"
)

// config is the hullpaint.toml run configuration; flags override it.
type config struct {
	Machine machineConfig `toml:"machine"`
	Robot   robotConfig   `toml:"robot"`
	Output  outputConfig  `toml:"output"`
}

type machineConfig struct {
	PageSize int64    `toml:"page-size"`
	MemLimit int64    `toml:"mem-limit"`
	Timeout  duration `toml:"timeout"`
	Trace    bool     `toml:"trace"`
}

type robotConfig struct {
	StartColor int64 `toml:"start-color"`
}

type outputConfig struct {
	Render   bool   `toml:"render"`
	Dump     bool   `toml:"dump"`
	Raw      bool   `toml:"raw"`
	Snapshot string `toml:"snapshot"`
	Trace    string `toml:"trace"`
}

var defaultConfig = config{
	Machine: machineConfig{
		PageSize: mem.DefaultPageSize,
	},
}

type duration struct{ time.Duration }

func (d *duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// loadConfig decodes the named TOML file over the defaults; an empty name
// returns the defaults. Unknown keys are an error.
func loadConfig(name string) (config, error) {
	cfg := defaultConfig
	if name == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(name, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("cannot load config %v: %w", name, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("unknown config keys in %v: %v", name, strings.Join(keys, ", "))
	}
	return cfg, cfg.validate()
}

func (cfg config) validate() error {
	if cfg.Machine.PageSize < 0 {
		return fmt.Errorf("invalid machine.page-size %v", cfg.Machine.PageSize)
	}
	if cfg.Machine.MemLimit < 0 {
		return fmt.Errorf("invalid machine.mem-limit %v", cfg.Machine.MemLimit)
	}
	if cfg.Machine.Timeout.Duration < 0 {
		return fmt.Errorf("invalid machine.timeout %v", cfg.Machine.Timeout)
	}
	return nil
}

func (cfg config) vmOptions() VMOption {
	var opts []VMOption
	if cfg.Machine.PageSize != 0 {
		opts = append(opts, WithPageSize(cfg.Machine.PageSize))
	}
	if cfg.Machine.MemLimit != 0 {
		opts = append(opts, WithMemLimit(cfg.Machine.MemLimit))
	}
	return VMOptions(opts...)
}
