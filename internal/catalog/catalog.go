package catalog

import (
	"fmt"
	"maps"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/arcanaland/hearthlodge/internal/card"
)

var (
	// ErrLoad matches every *LoadError
	ErrLoad = errors.New("catalog load error")
	// ErrNotFound is returned when no card has the requested name
	ErrNotFound = errors.New("card not found")
	// ErrUnknownAttribute is returned by FilterMinions for keys other than
	// attack, health and cost
	ErrUnknownAttribute = errors.New("unknown minion attribute")
)

// LoadError reports a card dataset that is not a sequence of named records
type LoadError struct {
	Index  int // Offending record, or -1 when the dataset as a whole is bad
	Reason string
}

func (e *LoadError) Error() string {
	if e.Index < 0 {
		return "invalid card dataset: " + e.Reason
	}
	return fmt.Sprintf("invalid card dataset: record %d: %s", e.Index, e.Reason)
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// Catalog is a name-indexed, read-only set of raw card records
type Catalog struct {
	records map[string]card.Record
	names   []string // Catalog order, first occurrence of each name
	folded  []string // Case-folded names, parallel to names
	logger  *zap.Logger
}

// Load indexes a decoded dataset, which must be a sequence of mappings that
// each carry a string "name". A later record with an already seen name
// replaces the earlier one. The logger receives warnings for records skipped
// during scans; nil disables logging.
func Load(raw any, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case []map[string]any:
		for _, m := range v {
			items = append(items, m)
		}
	case []card.Record:
		for _, r := range v {
			items = append(items, r)
		}
	default:
		return nil, &LoadError{Index: -1, Reason: fmt.Sprintf("expected a list of records, got %T", raw)}
	}

	c := &Catalog{
		records: make(map[string]card.Record, len(items)),
		logger:  logger,
	}
	fold := cases.Fold()

	for i, item := range items {
		var rec card.Record
		switch m := item.(type) {
		case map[string]any:
			rec = card.Record(m)
		case card.Record:
			rec = m
		default:
			return nil, &LoadError{Index: i, Reason: fmt.Sprintf("expected a mapping, got %T", item)}
		}

		name := rec.Name()
		if name == "" {
			return nil, &LoadError{Index: i, Reason: "record has no name"}
		}

		if _, seen := c.records[name]; !seen {
			c.names = append(c.names, name)
			c.folded = append(c.folded, fold.String(name))
		}
		c.records[name] = maps.Clone(rec)
	}

	return c, nil
}

// Len returns the number of indexed cards
func (c *Catalog) Len() int {
	return len(c.names)
}

// LookupExact returns a copy of the record with exactly this name
func (c *Catalog) LookupExact(name string) (card.Record, error) {
	rec, ok := c.records[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}
	return maps.Clone(rec), nil
}

// LookupPartial returns, in catalog order, every name containing substring.
// Matching ignores case and treats the substring literally.
func (c *Catalog) LookupPartial(substring string) []string {
	needle := cases.Fold().String(substring)
	matches := []string{}
	for i, f := range c.folded {
		if strings.Contains(f, needle) {
			matches = append(matches, c.names[i])
		}
	}
	return matches
}

// AllNames returns every indexed name in catalog order
func (c *Catalog) AllNames() []string {
	return append([]string(nil), c.names...)
}

// Records returns copies of the records of one kind, in catalog order
func (c *Catalog) Records(kind card.Kind) []card.Record {
	var out []card.Record
	for _, name := range c.names {
		if rec := c.records[name]; rec.Kind() == kind {
			out = append(out, maps.Clone(rec))
		}
	}
	return out
}
