// Package noteview derives the rendered note list from the raw collection:
// search filtering, pinned/unpinned partitioning and recency ordering.
package noteview

import (
	"sort"
	"strings"
	"time"

	"grimoire-scribe/pkg/client"
)

// View is the list as it should render: pinned notes first, each partition
// newest first.
type View struct {
	Pinned   []client.Note
	Unpinned []client.Note
}

// Empty reports whether nothing matched. An empty view is a real UI state
// ("no results"), not an error.
func (v View) Empty() bool {
	return len(v.Pinned) == 0 && len(v.Unpinned) == 0
}

// All returns the render order: pinned partition first.
func (v View) All() []client.Note {
	all := make([]client.Note, 0, len(v.Pinned)+len(v.Unpinned))
	all = append(all, v.Pinned...)
	all = append(all, v.Unpinned...)
	return all
}

// Derive filters notes by a case-insensitive substring match on title or
// content, partitions by pinned and sorts each partition by recency.
func Derive(notes []client.Note, searchTerm string) View {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	var view View
	for _, n := range notes {
		if term != "" && !matches(n, term) {
			continue
		}
		if n.Pinned {
			view.Pinned = append(view.Pinned, n)
		} else {
			view.Unpinned = append(view.Unpinned, n)
		}
	}

	sortByRecency(view.Pinned)
	sortByRecency(view.Unpinned)
	return view
}

func matches(n client.Note, term string) bool {
	return strings.Contains(strings.ToLower(n.Title), term) ||
		strings.Contains(strings.ToLower(n.Content), term)
}

// recency is UpdatedAt, falling back to CreatedAt for never-updated notes.
func recency(n client.Note) time.Time {
	if n.UpdatedAt.IsZero() {
		return n.CreatedAt
	}
	return n.UpdatedAt
}

func sortByRecency(notes []client.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return recency(notes[i]).After(recency(notes[j]))
	})
}
