package feed

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CrestNiraj12/threadfeed/domain"
	"github.com/CrestNiraj12/threadfeed/tui/dom"
)

func registeredPost(t *testing.T, r *ToggleRegistry, id domain.PostID) (section, trigger *dom.Node) {
	t.Helper()
	article := BuildPostSubtree(domain.Post{ID: id, UserID: 1}, nil, dom.NewFragment())
	section, trigger = article.Query(isSection), article.Query(isTrigger)
	require.NoError(t, r.Register(id, section, trigger))
	return section, trigger
}

func TestToggle_Involution(t *testing.T) {
	r := NewToggleRegistry()
	section, trigger := registeredPost(t, r, 1)
	before := section.String() + trigger.String()

	visible, err := r.Toggle(1)
	require.NoError(t, err)
	require.True(t, visible)
	require.False(t, section.HasClass(HiddenClass))
	require.Equal(t, HideLabel, trigger.Text())

	visible, err = r.Toggle(1)
	require.NoError(t, err)
	require.False(t, visible)
	require.Equal(t, before, section.String()+trigger.String())
}

func TestToggle_UnknownIsNotFoundAndMutatesNothing(t *testing.T) {
	r := NewToggleRegistry()
	section, trigger := registeredPost(t, r, 1)
	before := section.String() + trigger.String()

	_, err := r.Toggle(2)
	require.True(t, errors.Is(err, domain.ErrNotFound))
	require.Equal(t, before, section.String()+trigger.String())

	entry, ok := r.Lookup(1)
	require.True(t, ok)
	require.False(t, entry.Visible)
}

func TestRegistry_RegisterRejectsAbsent(t *testing.T) {
	r := NewToggleRegistry()
	require.ErrorIs(t, r.Register(0, dom.New("section"), dom.New("button")), domain.ErrAbsentInput)
	require.ErrorIs(t, r.Register(1, nil, dom.New("button")), domain.ErrAbsentInput)
	require.Equal(t, 0, r.Len())
}

func TestRegistry_Purge(t *testing.T) {
	r := NewToggleRegistry()
	registeredPost(t, r, 1)
	registeredPost(t, r, 2)
	require.Equal(t, 2, r.Purge())
	require.Equal(t, 0, r.Len())
	_, err := r.Toggle(1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
