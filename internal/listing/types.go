package listing

import (
	"os"

	"github.com/Cyclone1070/vlf/internal/mode"
)

// fileSystem is the slice of the OS adapter the lister needs.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ListDir(path string) ([]os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// modeResolver maps a file name to its editing mode.
type modeResolver interface {
	Resolve(name string) (mode.ID, bool)
}

// Entry is one row of a directory listing.
type Entry struct {
	Name         string
	Path         string // absolute
	RelativePath string // slash-separated, relative to the listing root
	IsDir        bool
	Size         int64
	Mode         mode.ID // empty when no table entry matches
	// Large is set for regular files bigger than both the threshold and
	// the batch size, i.e. files an ordinary open would intercept.
	Large bool
}

// Options controls a List call.
type Options struct {
	// MaxDepth: 0 lists only immediate children, negative is unlimited.
	MaxDepth       int
	IncludeIgnored bool
	MaxEntries     int
	Threshold      *int64
	BatchSize      int64
}

// Listing is the result of a List call.
type Listing struct {
	Root      string
	Entries   []Entry
	Truncated bool
}
