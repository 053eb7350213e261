package mode

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ID names an editing mode, for example "go-mode".
type ID string

// Spec is the host-supplied description of one mode table entry.
// When Nested is set the entry points at a secondary mode and Mode is ignored.
type Spec struct {
	Pattern string
	Mode    ID
	Nested  *Spec
}

// Entry is a compiled mode table entry.
type Entry struct {
	Pattern string
	Mode    ID
	Nested  *Entry

	strict *regexp.Regexp
	folded *regexp.Regexp
}

// Target returns the mode this entry selects, unwrapping nested entries.
func (e *Entry) Target() ID {
	cur := e
	for cur.Nested != nil {
		cur = cur.Nested
	}
	return cur.Mode
}

func (e *Entry) matches(name string, fold bool) bool {
	if fold {
		return e.folded.MatchString(name)
	}
	return e.strict.MatchString(name)
}

// Table is an ordered pattern-to-mode registry. The first matching entry
// wins; the order is fixed once the table is built.
type Table struct {
	entries []Entry
}

// NewTable compiles specs in order. Patterns use Go regexp syntax; the
// Emacs anchors \` and \' are accepted as \A and \z.
func NewTable(specs []Spec) (*Table, error) {
	entries := make([]Entry, 0, len(specs))
	for i, spec := range specs {
		if spec.Pattern == "" {
			return nil, &PatternError{Index: i, Cause: ErrPatternRequired}
		}
		entry, err := compileEntry(i, spec)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return &Table{entries: entries}, nil
}

// MustTable is like NewTable but panics on an invalid spec.
func MustTable(specs ...Spec) *Table {
	t, err := NewTable(specs)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns a copy of the table entries in match order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// lookup walks the table once and returns the first match.
func (t *Table) lookup(name string, fold bool) (ID, bool) {
	if t == nil {
		return "", false
	}
	for i := range t.entries {
		if t.entries[i].matches(name, fold) {
			return t.entries[i].Target(), true
		}
	}
	return "", false
}

func compileEntry(index int, spec Spec) (*Entry, error) {
	entry := &Entry{Pattern: spec.Pattern, Mode: spec.Mode}

	if spec.Nested != nil {
		nested, err := compileNested(index, *spec.Nested)
		if err != nil {
			return nil, err
		}
		entry.Nested = nested
	} else if spec.Mode == "" {
		return nil, &PatternError{Index: index, Pattern: spec.Pattern, Cause: ErrModeRequired}
	}

	expr := translateAnchors(spec.Pattern)
	strict, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Index: index, Pattern: spec.Pattern, Cause: err}
	}
	folded, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, &PatternError{Index: index, Pattern: spec.Pattern, Cause: err}
	}
	entry.strict = strict
	entry.folded = folded
	return entry, nil
}

// compileNested builds the secondary entry. Its pattern never takes part in
// matching, so it may be empty.
func compileNested(index int, spec Spec) (*Entry, error) {
	if spec.Nested == nil && spec.Mode == "" {
		return nil, &PatternError{Index: index, Pattern: spec.Pattern, Cause: ErrModeRequired}
	}
	entry := &Entry{Pattern: spec.Pattern, Mode: spec.Mode}
	if spec.Nested != nil {
		nested, err := compileNested(index, *spec.Nested)
		if err != nil {
			return nil, err
		}
		entry.Nested = nested
	}
	return entry, nil
}

// translateAnchors rewrites the Emacs buffer anchors \` and \' into \A and
// \z, leaving every other escape untouched.
func translateAnchors(pattern string) string {
	if !strings.Contains(pattern, `\`) {
		return pattern
	}
	var b strings.Builder
	b.Grow(len(pattern))
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '\\' || i+1 == len(pattern) {
			b.WriteByte(c)
			continue
		}
		next := pattern[i+1]
		switch next {
		case '\'':
			b.WriteString(`\z`)
		case '`':
			b.WriteString(`\A`)
		default:
			b.WriteByte(c)
			b.WriteByte(next)
		}
		i++
	}
	return b.String()
}

// rawSpec is the loosely typed shape of a table entry in a config file.
// Mode is either a string or a nested {pattern, mode} object.
type rawSpec struct {
	Pattern string `mapstructure:"pattern"`
	Mode    any    `mapstructure:"mode"`
}

// DecodeSpecs converts config-file table entries into Specs.
func DecodeSpecs(raw []map[string]any) ([]Spec, error) {
	specs := make([]Spec, 0, len(raw))
	for i, item := range raw {
		spec, err := decodeSpec(item)
		if err != nil {
			return nil, &SpecDecodeError{Index: i, Cause: err}
		}
		specs = append(specs, *spec)
	}
	return specs, nil
}

func decodeSpec(item map[string]any) (*Spec, error) {
	var raw rawSpec
	if err := mapstructure.Decode(item, &raw); err != nil {
		return nil, fmt.Errorf("invalid entry: %w", err)
	}

	spec := &Spec{Pattern: raw.Pattern}
	switch m := raw.Mode.(type) {
	case string:
		spec.Mode = ID(m)
	case map[string]any:
		nested, err := decodeSpec(m)
		if err != nil {
			return nil, err
		}
		spec.Nested = nested
	case nil:
		return nil, ErrModeRequired
	default:
		return nil, fmt.Errorf("mode must be a string or an object, got %T", raw.Mode)
	}
	return spec, nil
}

// DefaultSpecs returns a small built-in table used when the host supplies
// none.
func DefaultSpecs() []Spec {
	return []Spec{
		{Pattern: `\.go\'`, Mode: "go-mode"},
		{Pattern: `\.[ch]\'`, Mode: "c-mode"},
		{Pattern: `\.py\'`, Mode: "python-mode"},
		{Pattern: `\.json\'`, Mode: "js-json-mode"},
		{Pattern: `\.ya?ml\'`, Mode: "yaml-mode"},
		{Pattern: `\.md\'`, Mode: "markdown-mode"},
		{Pattern: `\.csv\'`, Mode: "csv-mode"},
		{Pattern: `\.sql\'`, Mode: "sql-mode"},
		{Pattern: `\.txt\'`, Mode: "text-mode"},
		{Pattern: `\.(?:tar|tgz|tbz2?|txz)\'`, Mode: "tar-mode"},
		{Pattern: `\.(?:zip|jar|war|ear|7z|rar)\'`, Mode: "archive-mode"},
		{Pattern: `\.(?:gz|bz2|xz|zst|Z)\'`, Mode: "jka-compr"},
		{Pattern: `\.(?:png|jpe?g|gif|bmp|webp|tiff?)\'`, Mode: "image-mode"},
		{Pattern: `\.(?:pdf|dvi|ps|eps|odt|docx)\'`, Mode: "doc-view-mode-maybe"},
		{Pattern: `COMMIT_EDITMSG\'`, Mode: "git-commit-mode"},
		{Pattern: `BROWSE\'`, Mode: "ebrowse-tree-mode"},
	}
}
