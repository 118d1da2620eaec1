package feed

import (
	"errors"
	"log/slog"

	"github.com/CrestNiraj12/threadfeed/domain"
	"github.com/CrestNiraj12/threadfeed/infra/metrics"
	"github.com/CrestNiraj12/threadfeed/tui/dom"
)

// ListenerManager binds at most one click handler per trigger control.
//
// The handler carries no per-post state: the post id is read from the
// event target's data attribute when the click arrives.
type ListenerManager struct {
	registry *ToggleRegistry
	logger   *slog.Logger
	bindings map[*dom.Node]dom.ListenerID
}

func NewListenerManager(registry *ToggleRegistry, logger *slog.Logger) *ListenerManager {
	return &ListenerManager{
		registry: registry,
		logger:   logger,
		bindings: make(map[*dom.Node]dom.ListenerID),
	}
}

// AttachAll binds every unbound trigger control under root and returns the
// number of bindings created.
func (m *ListenerManager) AttachAll(root *dom.Node) int {
	created := 0
	for _, trigger := range root.QueryAll(isTrigger) {
		if _, bound := m.bindings[trigger]; bound {
			continue
		}
		m.bindings[trigger] = trigger.AddListener(ClickEvent, m.handleClick)
		created++
	}
	metrics.ListenerBindings.Set(float64(len(m.bindings)))
	return created
}

// DetachAll removes every binding on a node under root and returns the
// number removed. It must run before root's children are cleared.
func (m *ListenerManager) DetachAll(root *dom.Node) int {
	removed := 0
	for trigger, id := range m.bindings {
		if !root.Contains(trigger) {
			continue
		}
		trigger.RemoveListener(ClickEvent, id)
		delete(m.bindings, trigger)
		removed++
	}
	metrics.ListenerBindings.Set(float64(len(m.bindings)))
	return removed
}

// Bindings returns the number of active bindings.
func (m *ListenerManager) Bindings() int { return len(m.bindings) }

func (m *ListenerManager) handleClick(ev dom.Event) {
	raw, _ := ev.Target.Data(PostIDKey)
	postID, err := ParsePostID(raw)
	if err != nil {
		m.logger.Warn("trigger without usable post id", "value", raw, "error", err)
		return
	}

	visible, err := m.registry.Toggle(postID)
	if errors.Is(err, domain.ErrNotFound) {
		m.logger.Debug("stale toggle ignored", "post_id", postID)
		return
	}
	if err != nil {
		m.logger.Warn("toggle failed", "post_id", postID, "error", err)
		return
	}
	m.logger.Debug("comments toggled", "post_id", postID, "visible", visible)
}
