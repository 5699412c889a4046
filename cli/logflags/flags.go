// Package logflags binds the settings of a logger.Config to command-line
// flags.
package logflags

import (
	"flag"

	"github.com/brimdata/ntuple/logger"
	"go.uber.org/zap"
)

type Flags struct {
	logger.Config
	name string
}

// SetFlags registers the -log.* flags on fs.  Loggers opened by Open are
// named name.
func (f *Flags) SetFlags(fs *flag.FlagSet, name string) {
	f.name = name
	f.Path = "stderr"
	f.Mode = logger.FileModeAppend
	f.Level = zap.InfoLevel
	fs.Var(&f.Level, "log.level", "logging level")
	fs.StringVar(&f.Path, "log.path", f.Path, "where to send logs (stderr, stdout, /dev/null, or a file path)")
	fs.Var(&f.Mode, "log.filemode", "how to open a log file (append, truncate, rotate)")
	fs.BoolVar(&f.DevMode, "log.devmode", false, "panic on dpanic level logs")
}

func (f *Flags) Open() (*zap.Logger, error) {
	l, err := logger.New(f.Config)
	if err != nil {
		return nil, err
	}
	return l.Named(f.name), nil
}
