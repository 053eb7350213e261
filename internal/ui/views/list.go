package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/vlf/internal/policy"
	"github.com/Cyclone1070/vlf/internal/ui/models"
)

// RenderListing renders the header and the visible window of entries.
func RenderListing(s models.State) string {
	lines := []string{HeaderStyle.Render(s.Dir)}

	if len(s.Entries) == 0 {
		lines = append(lines, MutedStyle.Render("  (empty)"))
		return strings.Join(lines, "\n")
	}

	end := min(s.Offset+s.VisibleRows(), len(s.Entries))
	for i := s.Offset; i < end; i++ {
		line := formatEntry(s.Entries[i].Name, s.Entries[i].IsDir, s.Entries[i].Size, string(s.Entries[i].Mode))
		switch {
		case i == s.Cursor:
			line = SelectedStyle.Render(line)
		case s.Entries[i].IsDir:
			line = DirStyle.Render(line)
		case s.Entries[i].Large:
			line = LargeStyle.Render(line)
		}
		lines = append(lines, line)
	}

	if s.Truncated {
		lines = append(lines, MutedStyle.Render("  … listing truncated"))
	}
	return strings.Join(lines, "\n")
}

func formatEntry(name string, isDir bool, size int64, mode string) string {
	if isDir {
		return fmt.Sprintf("  %-40s %10s", name+"/", "")
	}
	return fmt.Sprintf("  %-40s %10s  %s", name, policy.HumanSize(size), mode)
}
