package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/luca/internal/flagx"
)

// parseFlags populates Config from the command line.
//
//	-a string   listen address (e.g. ":8000")
//	-s string   JWT HMAC secret key
//	-t int      session token validity, minutes
//	-l string   log level
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to listen on")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	validity := fs.Int("t", int(cfg.TokenValidity.Minutes()), "token validity (in minutes)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.TokenValidity = time.Duration(*validity) * time.Minute
}
