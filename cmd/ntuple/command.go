package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brimdata/ntuple"
	"github.com/brimdata/ntuple/anyio"
	"github.com/brimdata/ntuple/cli/logflags"
	"github.com/brimdata/ntuple/logger"
	"github.com/brimdata/ntuple/yamlio"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

const usage = `usage: ntuple [options] TYPENAME [field=value ...]

Ntuple builds a record of type TYPENAME and prints it.  Fields come either
from field=value arguments, whose values are read as YAML scalars, or from
the YAML mappings of the -i file, one record per document.  Giving both is
an error.

Options appearing after -config override the settings it loads.
`

var errUsage = errors.New("TYPENAME argument required")

// fileConfig is the layout of the file named by -config.
type fileConfig struct {
	Builder ntuple.Config `yaml:"builder"`
	Log     logger.Config `yaml:"log"`
}

type Command struct {
	flags    *flag.FlagSet
	builder  ntuple.Config
	logFlags logflags.Flags
	input    string
	format   string
}

func New(stderr io.Writer) *Command {
	c := &Command{flags: flag.NewFlagSet("ntuple", flag.ContinueOnError)}
	fs := c.flags
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	fs.Func("config", "YAML file of builder and log settings", c.loadConfig)
	fs.BoolVar(&c.builder.Rename, "rename", false, "replace invalid field names with positional names (_0, _1, ...)")
	fs.BoolVar(&c.builder.Verbose, "verbose", false, "log the definition of each record type")
	fs.IntVar(&c.builder.CacheSize, "cachesize", ntuple.DefaultCacheSize, "maximum number of record types to cache")
	fs.StringVar(&c.input, "i", "", "YAML file of field mappings (\"-\" for stdin)")
	fs.StringVar(&c.format, "f", "text", "output format ["+strings.Join(anyio.Formats, ",")+"]")
	c.logFlags.SetFlags(fs, "ntuple")
	return c
}

func (c *Command) loadConfig(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	conf := fileConfig{Builder: c.builder, Log: c.logFlags.Config}
	if err := yaml.Unmarshal(b, &conf); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	c.builder = conf.Builder
	c.logFlags.Config = conf.Log
	return nil
}

func (c *Command) Run(args []string, stdin io.Reader, stdout io.WriteCloser) (err error) {
	if err := c.flags.Parse(args); err != nil {
		return err
	}
	args = c.flags.Args()
	if len(args) == 0 {
		c.flags.Usage()
		return errUsage
	}
	name := args[0]
	named, err := parseFields(args[1:])
	if err != nil {
		return err
	}
	log, err := c.logFlags.Open()
	if err != nil {
		return err
	}
	defer log.Sync()
	builder, err := ntuple.NewBuilder(c.builder, log)
	if err != nil {
		return err
	}
	w, err := anyio.NewWriter(stdout, c.format)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, w.Close())
	}()
	if c.input == "" {
		rec, err := builder.Build(name, nil, named...)
		if err != nil {
			return err
		}
		return w.Write(rec)
	}
	r, closer, err := c.openInput(stdin)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, closer.Close())
	}()
	for {
		pairs, err := r.Read()
		if err != nil {
			return err
		}
		if pairs == nil {
			return nil
		}
		rec, err := builder.Build(name, pairs, named...)
		if err != nil {
			return err
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
}

func (c *Command) openInput(stdin io.Reader) (*yamlio.Reader, io.Closer, error) {
	if c.input == "-" {
		return yamlio.NewReader(stdin), io.NopCloser(stdin), nil
	}
	f, err := os.Open(c.input)
	if err != nil {
		return nil, nil, err
	}
	return yamlio.NewReader(f), f, nil
}

func parseFields(args []string) ([]ntuple.Field, error) {
	var fields []ntuple.Field
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("field argument %q: expected name=value", arg)
		}
		fields = append(fields, ntuple.NewField(k, yamlio.DecodeValue(v)))
	}
	return fields, nil
}
