package feed

import (
	"fmt"

	"github.com/CrestNiraj12/threadfeed/domain"
	"github.com/CrestNiraj12/threadfeed/infra/metrics"
	"github.com/CrestNiraj12/threadfeed/tui/dom"
)

// ToggleEntry indexes the nodes of one attached post. It does not own them.
type ToggleEntry struct {
	Section *dom.Node
	Trigger *dom.Node
	Visible bool
}

// ToggleRegistry maps post ids to their comment section and trigger control.
// An entry exists only while its post subtree is attached to the container.
type ToggleRegistry struct {
	entries map[domain.PostID]*ToggleEntry
}

func NewToggleRegistry() *ToggleRegistry {
	return &ToggleRegistry{entries: make(map[domain.PostID]*ToggleEntry)}
}

// Register indexes a section and trigger under postID, replacing any prior
// entry. Visibility starts from the section's current class.
func (r *ToggleRegistry) Register(postID domain.PostID, section, trigger *dom.Node) error {
	if postID <= 0 || section == nil || trigger == nil {
		return fmt.Errorf("register post %d: %w", postID, domain.ErrAbsentInput)
	}
	r.entries[postID] = &ToggleEntry{
		Section: section,
		Trigger: trigger,
		Visible: !section.HasClass(HiddenClass),
	}
	return nil
}

// Toggle flips the comment section of postID and relabels its trigger.
// It returns the new visibility, or domain.ErrNotFound without touching any
// node when postID is not registered.
func (r *ToggleRegistry) Toggle(postID domain.PostID) (bool, error) {
	e, ok := r.entries[postID]
	if !ok {
		metrics.ObserveToggle("stale")
		return false, fmt.Errorf("toggle post %d: %w", postID, domain.ErrNotFound)
	}

	e.Visible = !e.Visible
	if e.Visible {
		e.Section.RemoveClass(HiddenClass)
		e.Trigger.SetText(HideLabel)
		metrics.ObserveToggle("shown")
	} else {
		e.Section.AddClass(HiddenClass)
		e.Trigger.SetText(ShowLabel)
		metrics.ObserveToggle("hidden")
	}
	return e.Visible, nil
}

// Lookup returns a copy of the entry for postID.
func (r *ToggleRegistry) Lookup(postID domain.PostID) (ToggleEntry, bool) {
	e, ok := r.entries[postID]
	if !ok {
		return ToggleEntry{}, false
	}
	return *e, true
}

func (r *ToggleRegistry) Len() int { return len(r.entries) }

// Purge drops every entry and returns how many were dropped.
func (r *ToggleRegistry) Purge() int {
	n := len(r.entries)
	clear(r.entries)
	return n
}
