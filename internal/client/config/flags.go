package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/videogenius/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   server URL
//	-d string   session database path
//	-t int      request timeout in seconds, 0 disables it
//	-l string   log level
//
// Only these flags are taken from args (see flagx.FilterArgs), so flags
// meant for other components do not make parsing fail. A flag that is not
// given leaves its field as set by earlier sources. Panics on bad values.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "VideoGenius server URL")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "session database path")
	timeout := fs.Int("t", 0, "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	if *timeout < 0 {
		panic(fmt.Errorf("negative request timeout %d", *timeout))
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
