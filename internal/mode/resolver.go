// Package mode resolves file names to the editing mode that would normally
// handle them, independent of file size.
package mode

import "runtime"

// Options controls case sensitivity during resolution.
type Options struct {
	// CaseSensitive selects a strict first pass. When false a single
	// case-insensitive pass runs.
	CaseSensitive bool
	// CaseFoldFallback allows a second, case-insensitive pass after a strict
	// pass found nothing.
	CaseFoldFallback bool
}

// PlatformOptions returns the options native to the running OS.
func PlatformOptions(caseFoldFallback bool) Options {
	return optionsFor(runtime.GOOS, caseFoldFallback)
}

func optionsFor(goos string, caseFoldFallback bool) Options {
	return Options{
		CaseSensitive:    goos != "windows",
		CaseFoldFallback: caseFoldFallback,
	}
}

// Resolve returns the mode selected for name by table, or false when no
// entry matches.
func Resolve(name string, table *Table, opts Options) (ID, bool) {
	name = Normalize(name)

	if !opts.CaseSensitive {
		return table.lookup(name, true)
	}
	if id, ok := table.lookup(name, false); ok {
		return id, true
	}
	if opts.CaseFoldFallback {
		return table.lookup(name, true)
	}
	return "", false
}

// Resolver binds a table to its options.
type Resolver struct {
	table *Table
	opts  Options
}

// NewResolver creates a Resolver over table.
func NewResolver(table *Table, opts Options) *Resolver {
	return &Resolver{table: table, opts: opts}
}

// Resolve returns the mode for name.
func (r *Resolver) Resolve(name string) (ID, bool) {
	return Resolve(name, r.table, r.opts)
}

// Table returns the underlying table.
func (r *Resolver) Table() *Table {
	return r.table
}

// Options returns the resolution options.
func (r *Resolver) Options() Options {
	return r.opts
}
