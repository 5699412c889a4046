package ntuple

import (
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultCacheSize = 4096

// A Context interns record types.  Each distinct pair of type name and
// ordered field-name sequence corresponds to one TypeRecord pointer for
// as long as it remains in the Context's cache, so records built with
// the same shape share their type.  The cache is bounded; a type evicted
// from it is simply created again on its next lookup, and TypeRecords
// already handed out stay valid.  A Context is safe for concurrent use.
type Context struct {
	mu     sync.Mutex
	types  *lru.Cache[string, *TypeRecord]
	nextID int
}

// NewContext returns a Context caching at most size record types.
// If size is not positive, DefaultCacheSize is used.
func NewContext(size int) (*Context, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	types, err := lru.New[string, *TypeRecord](size)
	if err != nil {
		return nil, err
	}
	return &Context{types: types}, nil
}

// LookupTypeRecord returns the TypeRecord within this context named name
// with the indicated fields.  Subsequent calls with the same name and
// fields return the same pointer.  If the type doesn't exist, it's
// created, stored, and returned.  Field names follow the rules of
// CheckFieldNames except that the placeholder "_k" made by RenameFields
// is allowed at position k.
func (c *Context) LookupTypeRecord(name string, fields []string) (*TypeRecord, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	if err := checkTypeName(name); err != nil {
		return nil, err
	}
	if err := checkTypeFields(fields); err != nil {
		return nil, err
	}
	key := typeKey(name, fields)
	if typ, ok := c.types.Get(key); ok {
		return typ, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	// Another lookup may have entered the type while we waited.
	if typ, ok := c.types.Get(key); ok {
		return typ, nil
	}
	typ := newTypeRecord(c.nextID, name, fields)
	c.nextID++
	c.types.Add(key, typ)
	return typ, nil
}

func (c *Context) MustLookupTypeRecord(name string, fields []string) *TypeRecord {
	typ, err := c.LookupTypeRecord(name, fields)
	if err != nil {
		panic(err)
	}
	return typ
}

// Len returns the number of types currently cached.
func (c *Context) Len() int {
	return c.types.Len()
}

func (c *Context) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.types.Purge()
}

// Names and fields are identifiers by the time they are keyed, so the
// punctuation here cannot collide with them.
func typeKey(name string, fields []string) string {
	return name + "(" + strings.Join(fields, ",") + ")"
}
