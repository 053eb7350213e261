// Package listing lists directories with the size and resolved editing mode
// of every entry, honouring .gitignore.
package listing

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
)

// Lister produces directory listings.
type Lister struct {
	fs       fileSystem
	resolver modeResolver
	logger   *slog.Logger
}

// NewLister creates a Lister. A nil logger uses slog.Default().
func NewLister(fs fileSystem, resolver modeResolver, logger *slog.Logger) *Lister {
	if logger == nil {
		logger = slog.Default()
	}
	return &Lister{fs: fs, resolver: resolver, logger: logger}
}

// List lists dir. Directories sort before files, each group alphabetically
// by relative path.
func (l *Lister) List(ctx context.Context, dir string, opts Options) (*Listing, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	info, err := l.fs.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", abs, ErrNotDirectory)
	}

	var ignorer Ignorer = NoOpIgnorer{}
	if !opts.IncludeIgnored {
		matcher, err := NewIgnoreMatcher(abs, l.fs)
		if err != nil {
			l.logger.Warn("ignoring unreadable .gitignore", "dir", abs, "error", err)
		} else {
			ignorer = matcher
		}
	}

	maxDepth := opts.MaxDepth
	if maxDepth < 0 {
		maxDepth = -1
	}
	maxEntries := opts.MaxEntries
	if maxEntries <= 0 {
		maxEntries = int(^uint(0) >> 1)
	}

	w := &walker{
		lister:     l,
		root:       abs,
		ignorer:    ignorer,
		opts:       opts,
		maxDepth:   maxDepth,
		maxEntries: maxEntries,
		visited:    make(map[string]bool),
	}
	entries, capHit, err := w.walk(ctx, abs, 0)
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].RelativePath < entries[j].RelativePath
	})

	l.logger.Debug("listed directory", "dir", abs, "entries", len(entries), "truncated", capHit)

	return &Listing{Root: abs, Entries: entries, Truncated: capHit}, nil
}

type walker struct {
	lister     *Lister
	root       string
	ignorer    Ignorer
	opts       Options
	maxDepth   int
	maxEntries int
	visited    map[string]bool
	count      int
}

// walk returns the entries below abs and whether the entry cap was hit.
func (w *walker) walk(ctx context.Context, abs string, depth int) ([]Entry, bool, error) {
	if w.count >= w.maxEntries {
		return nil, true, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if w.maxDepth >= 0 && depth > w.maxDepth {
		return nil, false, nil
	}

	// Symlink loops are detected on the canonical path.
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		canonical = abs
	}
	if w.visited[canonical] {
		return nil, false, nil
	}
	w.visited[canonical] = true

	infos, err := w.lister.fs.ListDir(abs)
	if err != nil {
		if depth > 0 {
			w.lister.logger.Warn("skipping unreadable directory", "dir", abs, "error", err)
			return nil, false, nil
		}
		return nil, false, err
	}

	var entries []Entry
	for _, info := range infos {
		if w.count >= w.maxEntries {
			return entries, true, nil
		}

		entryAbs := filepath.Join(abs, info.Name())
		rel, err := filepath.Rel(w.root, entryAbs)
		if err != nil {
			return nil, false, fmt.Errorf("failed to calculate relative path for entry %s: %w", info.Name(), err)
		}
		rel = filepath.ToSlash(rel)

		if w.ignorer.ShouldIgnore(rel, info.IsDir()) {
			continue
		}

		entry := Entry{
			Name:         info.Name(),
			Path:         entryAbs,
			RelativePath: rel,
			IsDir:        info.IsDir(),
		}
		if !entry.IsDir {
			entry.Size = info.Size()
			if w.lister.resolver != nil {
				if id, ok := w.lister.resolver.Resolve(entryAbs); ok {
					entry.Mode = id
				}
			}
			entry.Large = w.exceeds(entry.Size)
		}

		entries = append(entries, entry)
		w.count++

		if entry.IsDir {
			sub, capHit, err := w.walk(ctx, entryAbs, depth+1)
			if err != nil {
				return nil, false, err
			}
			entries = append(entries, sub...)
			if capHit {
				return entries, true, nil
			}
		}
	}

	return entries, false, nil
}

func (w *walker) exceeds(size int64) bool {
	if size <= 0 || w.opts.Threshold == nil {
		return false
	}
	return size > *w.opts.Threshold && size > w.opts.BatchSize
}
