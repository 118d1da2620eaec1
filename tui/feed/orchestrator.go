package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/CrestNiraj12/threadfeed/app"
	"github.com/CrestNiraj12/threadfeed/domain"
	"github.com/CrestNiraj12/threadfeed/tui/dom"
)

// State is the position of a refresh cycle.
type State int

const (
	StateIdle State = iota
	StateFetchingPosts
	StateBuildingSubtrees
	StateCommitted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetchingPosts:
		return "fetching_posts"
	case StateBuildingSubtrees:
		return "building_subtrees"
	case StateCommitted:
		return "committed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool { return s == StateCommitted || s == StateFailed }

// Cycle is one fetch-build-commit pass for a selected user. While Build runs
// the cycle belongs to the goroutine running it; the session reads it only
// after Build returns.
type Cycle struct {
	ID       string
	UserID   domain.UserID
	State    State
	Posts    []domain.Post
	Fragment *dom.Node
	Degraded int // nested fetches that fell back to placeholder content
	Err      error
	Started  time.Time
}

func newCycle(userID domain.UserID) *Cycle {
	return &Cycle{
		ID:      uuid.NewString(),
		UserID:  userID,
		State:   StateIdle,
		Started: time.Now(),
	}
}

// Orchestrator drives the dependent fetches of a cycle and assembles the
// post subtrees. It never touches the live container.
type Orchestrator struct {
	resources app.ResourceClient
	logger    *slog.Logger
}

func NewOrchestrator(resources app.ResourceClient, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{resources: resources, logger: logger}
}

// Build fetches the cycle's posts and, strictly one post after another,
// each post's author and comments, appending subtrees in source order.
// On return the cycle is either Failed or BuildingSubtrees with a complete
// fragment ready to commit.
func (o *Orchestrator) Build(ctx context.Context, c *Cycle) {
	log := o.logger.With("cycle", c.ID, "user_id", c.UserID)

	c.State = StateFetchingPosts
	posts, err := o.resources.ListPosts(ctx, c.UserID)
	if err != nil {
		o.fail(log, c, fmt.Errorf("listing posts: %w", err))
		return
	}
	if err := domain.ValidateOwnedPosts(c.UserID, posts); err != nil {
		o.fail(log, c, err)
		return
	}
	for _, p := range posts {
		log.Debug("post fetched", "id", p.ID, "userId", p.UserID, "title", p.Title, "body", p.Body)
	}

	c.Posts = posts
	c.State = StateBuildingSubtrees
	c.Fragment = dom.NewFragment()
	for _, post := range posts {
		if err := ctx.Err(); err != nil {
			c.Fragment = nil
			o.fail(log, c, err)
			return
		}
		c.Fragment.Append(o.buildPost(ctx, log, c, post))
	}
	log.Info("subtrees built", "posts", len(posts), "degraded", c.Degraded)
}

func (o *Orchestrator) buildPost(ctx context.Context, log *slog.Logger, c *Cycle, post domain.Post) *dom.Node {
	var author *domain.User
	user, err := o.resources.GetUser(ctx, post.UserID)
	if err != nil {
		c.Degraded++
		log.Warn("author fetch failed, using placeholder", "post_id", post.ID, "error", err)
	} else {
		author = &user
	}

	var comments *dom.Node
	list, err := o.resources.ListComments(ctx, post.ID)
	if err != nil {
		c.Degraded++
		log.Warn("comments fetch failed, using placeholder", "post_id", post.ID, "error", err)
		comments = BuildCommentsUnavailable()
	} else {
		comments = BuildCommentSubtree(list)
	}

	return BuildPostSubtree(post, author, comments)
}

func (o *Orchestrator) fail(log *slog.Logger, c *Cycle, err error) {
	c.State = StateFailed
	c.Err = err

	var (
		verr *domain.ValidationError
		ferr *domain.FetchError
	)
	switch {
	case errors.As(err, &verr):
		log.Warn("posts rejected, cycle aborted", "error", err)
	case errors.As(err, &ferr):
		log.Error("posts fetch failed, cycle aborted", "error", err)
	default:
		log.Error("cycle aborted", "error", err)
	}
}
