package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/wellnest/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the local SQLite database (default from Config)
//	-w int      summary window in days (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.IntVar(&cfg.WindowDays, "w", cfg.WindowDays, "summary window (in days)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
