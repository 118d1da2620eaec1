package feed

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/CrestNiraj12/threadfeed/domain"
	"github.com/CrestNiraj12/threadfeed/tui/dom"
)

// RefreshResult counts what one refresh did at each step.
type RefreshResult struct {
	Detached   int
	Cleared    int
	Appended   int
	Registered int
	Attached   int
}

// ContainerRefresher replaces the root container's content as one step:
// detach listeners, clear children, append the new subtrees, attach
// listeners, re-enable the selection control.
type ContainerRefresher struct {
	root      *dom.Node
	selection *dom.Node
	registry  *ToggleRegistry
	listeners *ListenerManager
	logger    *slog.Logger
}

func NewContainerRefresher(root, selection *dom.Node, registry *ToggleRegistry, listeners *ListenerManager, logger *slog.Logger) *ContainerRefresher {
	return &ContainerRefresher{
		root:      root,
		selection: selection,
		registry:  registry,
		listeners: listeners,
		logger:    logger,
	}
}

type indexedSubtree struct {
	postID  domain.PostID
	section *dom.Node
	trigger *dom.Node
}

// Refresh commits fragment into the container. The fragment is checked
// before anything is mutated, so a rejected fragment leaves the container,
// registry and bindings as they were.
func (r *ContainerRefresher) Refresh(fragment *dom.Node) (RefreshResult, error) {
	var res RefreshResult
	if fragment == nil || fragment.Len() == 0 {
		return res, fmt.Errorf("refresh with empty fragment: %w", domain.ErrAbsentInput)
	}

	index, err := indexSubtrees(fragment)
	if err != nil {
		return res, err
	}

	res.Detached = r.listeners.DetachAll(r.root)
	res.Cleared = r.root.Clear()
	r.registry.Purge()

	res.Appended = fragment.Len()
	r.root.Append(fragment)

	for _, s := range index {
		if err := r.registry.Register(s.postID, s.section, s.trigger); err != nil {
			return res, err
		}
		res.Registered++
	}

	res.Attached = r.listeners.AttachAll(r.root)
	r.selection.RemoveAttr("disabled")

	r.logger.Debug("container refreshed",
		"detached", res.Detached,
		"cleared", res.Cleared,
		"appended", res.Appended,
		"attached", res.Attached,
	)
	return res, nil
}

// indexSubtrees pairs each subtree's trigger and section by post id.
func indexSubtrees(fragment *dom.Node) ([]indexedSubtree, error) {
	var (
		out  []indexedSubtree
		seen = make(map[domain.PostID]struct{})
		errs []error
	)
	for _, subtree := range fragment.Children() {
		trigger := subtree.Query(isTrigger)
		section := subtree.Query(isSection)
		if trigger == nil || section == nil {
			errs = append(errs, fmt.Errorf("subtree %s: missing trigger or section", subtree.Tag()))
			continue
		}
		rawTrigger, _ := trigger.Data(PostIDKey)
		rawSection, _ := section.Data(PostIDKey)
		if rawTrigger != rawSection {
			errs = append(errs, fmt.Errorf("trigger %q and section %q disagree", rawTrigger, rawSection))
			continue
		}
		postID, err := ParsePostID(rawTrigger)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := seen[postID]; dup {
			errs = append(errs, fmt.Errorf("post %d rendered twice", postID))
			continue
		}
		seen[postID] = struct{}{}
		out = append(out, indexedSubtree{postID: postID, section: section, trigger: trigger})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Kind: domain.KindPosts, Reason: errors.Join(errs...).Error()}
	}
	return out, nil
}
