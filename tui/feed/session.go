package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/CrestNiraj12/threadfeed/app"
	"github.com/CrestNiraj12/threadfeed/domain"
	"github.com/CrestNiraj12/threadfeed/infra/metrics"
	"github.com/CrestNiraj12/threadfeed/tui/dom"
)

// FallbackUserID is used when the selection control carries a value that is
// not an integer.
const FallbackUserID domain.UserID = 1

var errUnknownCycle = errors.New("cycle does not belong to this session")

// Session owns the state of one feed: the root container, the selection
// control, the toggle registry and the listener bindings. Only the session
// mutates them, from a single goroutine.
type Session struct {
	root         *dom.Node
	selection    *dom.Node
	registry     *ToggleRegistry
	listeners    *ListenerManager
	refresher    *ContainerRefresher
	orchestrator *Orchestrator
	logger       *slog.Logger

	state    State
	selected domain.UserID
	inFlight *Cycle
}

func NewSession(resources app.ResourceClient, logger *slog.Logger) *Session {
	root := dom.New("main")
	selection := dom.New("select")
	selection.SetAttr("id", "selectMenu")
	registry := NewToggleRegistry()
	listeners := NewListenerManager(registry, logger)

	return &Session{
		root:         root,
		selection:    selection,
		registry:     registry,
		listeners:    listeners,
		refresher:    NewContainerRefresher(root, selection, registry, listeners, logger),
		orchestrator: NewOrchestrator(resources, logger),
		logger:       logger,
		state:        StateIdle,
	}
}

func (s *Session) Root() *dom.Node                { return s.root }
func (s *Session) Selection() *dom.Node           { return s.selection }
func (s *Session) Registry() *ToggleRegistry      { return s.registry }
func (s *Session) Listeners() *ListenerManager    { return s.listeners }
func (s *Session) State() State                   { return s.state }
func (s *Session) Selected() domain.UserID        { return s.selected }
func (s *Session) Orchestrator() *Orchestrator    { return s.orchestrator }
func (s *Session) Refresher() *ContainerRefresher { return s.refresher }

// Busy reports whether the selection control is disabled by a running cycle.
func (s *Session) Busy() bool {
	_, disabled := s.selection.Attr("disabled")
	return disabled
}

// PopulateUsers replaces the selection control's options, one per user.
func (s *Session) PopulateUsers(users []domain.User) int {
	s.selection.Clear()
	for _, opt := range BuildSelectOptions(users) {
		s.selection.Append(opt)
	}
	return s.selection.Len()
}

// Options returns the selection control's options in order.
func (s *Session) Options() []*dom.Node {
	return s.selection.Children()
}

// ParseSelection coerces an option value to a user id. Values that are not
// integers fall back to FallbackUserID.
func ParseSelection(value string) domain.UserID {
	n, err := strconv.Atoi(value)
	if err != nil {
		return FallbackUserID
	}
	return domain.UserID(n)
}

// Begin starts a cycle for userID and disables the selection control.
// It fails with domain.ErrCycleInFlight while another cycle runs.
func (s *Session) Begin(userID domain.UserID) (*Cycle, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("select user %d: %w", userID, domain.ErrAbsentInput)
	}
	if s.Busy() {
		return nil, domain.ErrCycleInFlight
	}

	s.selection.SetAttr("disabled", "")
	s.selection.SetAttr("value", strconv.Itoa(int(userID)))
	s.selected = userID

	c := newCycle(userID)
	s.inFlight = c
	s.state = c.State
	s.logger.Info("refresh cycle started", "cycle", c.ID, "user_id", userID)
	return c, nil
}

// Build runs the fetch-and-build phase of c. It does not touch session
// state and may run off the update loop.
func (s *Session) Build(ctx context.Context, c *Cycle) {
	s.orchestrator.Build(ctx, c)
}

// Finish moves c to a terminal state. A built cycle is committed through the
// refresher; a failed one re-enables the selection control and leaves the
// container untouched.
func (s *Session) Finish(c *Cycle) error {
	if c == nil || c != s.inFlight {
		return errUnknownCycle
	}
	s.inFlight = nil

	if c.State == StateBuildingSubtrees {
		res, err := s.refresher.Refresh(c.Fragment)
		if err != nil {
			c.State = StateFailed
			c.Err = err
		} else {
			c.State = StateCommitted
			s.logger.Info("refresh cycle committed",
				"cycle", c.ID,
				"subtrees", res.Appended,
				"bindings", res.Attached,
				"degraded", c.Degraded,
			)
		}
	} else if !c.State.Terminal() {
		if c.Err == nil {
			c.Err = fmt.Errorf("cycle finished in state %s", c.State)
		}
		c.State = StateFailed
	}

	if c.State == StateFailed {
		s.selection.RemoveAttr("disabled")
		s.logger.Warn("refresh cycle failed", "cycle", c.ID, "user_id", c.UserID, "error", c.Err)
	}

	s.state = c.State
	metrics.ObserveCycle(c.State.String(), c.Started)
	return c.Err
}

// Select runs a full cycle for userID synchronously.
func (s *Session) Select(ctx context.Context, userID domain.UserID) (*Cycle, error) {
	c, err := s.Begin(userID)
	if err != nil {
		return nil, err
	}
	s.Build(ctx, c)
	return c, s.Finish(c)
}

// Click delivers a click to the trigger control registered for postID and
// returns the section's visibility afterwards.
func (s *Session) Click(postID domain.PostID) (bool, error) {
	entry, ok := s.registry.Lookup(postID)
	if !ok {
		s.logger.Debug("click for unregistered post ignored", "post_id", postID)
		return false, fmt.Errorf("click post %d: %w", postID, domain.ErrNotFound)
	}
	entry.Trigger.Dispatch(ClickEvent)
	after, _ := s.registry.Lookup(postID)
	return after.Visible, nil
}

// Triggers returns the attached trigger controls in document order.
func (s *Session) Triggers() []*dom.Node {
	return s.root.QueryAll(isTrigger)
}
