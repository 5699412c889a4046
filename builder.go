package ntuple

import (
	"go.uber.org/zap"
)

// Config holds the options of a Builder.
type Config struct {
	// Rename replaces each invalid or duplicate field name with its
	// positional placeholder (_0, _1, ...) instead of failing.
	Rename bool `yaml:"rename"`
	// Verbose logs the definition of each record type a Builder uses.
	Verbose bool `yaml:"verbose"`
	// CacheSize bounds the number of record types held by the Builder's
	// Context.  See NewContext.
	CacheSize int `yaml:"cache_size,omitempty"`
}

// A Builder builds records whose types it interns in a Context.  A
// Builder is safe for concurrent use.
type Builder struct {
	zctx    *Context
	rename  bool
	verbose bool
	logger  *zap.Logger
}

// NewBuilder returns a Builder configured by conf.  If logger is nil,
// diagnostics are discarded.
func NewBuilder(conf Config, logger *zap.Logger) (*Builder, error) {
	zctx, err := NewContext(conf.CacheSize)
	if err != nil {
		return nil, err
	}
	return NewBuilderWithContext(zctx, conf, logger), nil
}

// NewBuilderWithContext is like NewBuilder but shares the record types
// of zctx.  conf.CacheSize is ignored.
func NewBuilderWithContext(zctx *Context, conf Config, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		zctx:    zctx,
		rename:  conf.Rename,
		verbose: conf.Verbose,
		logger:  logger,
	}
}

func (b *Builder) Context() *Context {
	return b.zctx
}

// Build returns a new record of the type named name whose fields come
// from src, or from named when src is nil or empty.  Field order follows
// src when it is ordered (e.g., Pairs) and is otherwise unspecified.
// Supplying both a non-empty src and named fields returns an
// *InvalidArgumentError.  An invalid field name returns an
// *InvalidFieldNameError unless the Builder renames fields.  Errors from
// constructing the record type are returned unchanged.
func (b *Builder) Build(name string, src Source, named ...Field) (*Record, error) {
	var fields []Field
	if src != nil {
		fields = src.Fields()
	}
	if len(fields) > 0 && len(named) > 0 {
		return nil, &InvalidArgumentError{Source: fields, Named: named}
	}
	if len(fields) == 0 {
		fields = named
	}
	names, values := splitFields(fields)
	if b.rename {
		names = RenameFields(names)
	} else if err := CheckFieldNames(names); err != nil {
		return nil, err
	}
	typ, err := b.zctx.LookupTypeRecord(name, names)
	if err != nil {
		return nil, err
	}
	if b.verbose {
		b.logger.Info("record type",
			zap.String("name", typ.Name()),
			zap.Strings("fields", names),
			zap.String("definition", typ.Definition()),
		)
	}
	return &Record{typ: typ, values: values}, nil
}

var defaultBuilder = NewBuilderWithContext(mustNewContext(), Config{}, nil)

func mustNewContext() *Context {
	zctx, err := NewContext(DefaultCacheSize)
	if err != nil {
		panic(err)
	}
	return zctx
}

// Build builds a record with a package-level Builder that does not rename
// fields and logs nothing.  See Builder.Build.
func Build(name string, src Source, named ...Field) (*Record, error) {
	return defaultBuilder.Build(name, src, named...)
}

// BuildRenamed is like Build but replaces invalid field names with
// positional placeholders.
func BuildRenamed(name string, src Source, named ...Field) (*Record, error) {
	return renamingBuilder.Build(name, src, named...)
}

var renamingBuilder = NewBuilderWithContext(defaultBuilder.zctx, Config{Rename: true}, nil)
