package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/threadfeed/app"
	"github.com/CrestNiraj12/threadfeed/domain"
	"github.com/CrestNiraj12/threadfeed/infra/config"
	"github.com/CrestNiraj12/threadfeed/tui/common"
	"github.com/CrestNiraj12/threadfeed/tui/dom"
	"github.com/CrestNiraj12/threadfeed/tui/feed"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Resources     app.ResourceClient
	Logger        *slog.Logger
	StatePath     string
	InitialUserID domain.UserID
	Context       context.Context // bounds every fetch; cancelled on shutdown
}

type usersLoadedMsg struct {
	Users []domain.User
	Err   error
}

type cycleDoneMsg struct {
	Cycle *feed.Cycle
}

type stateSavedMsg struct {
	Err error
}

// lines taken by everything but the viewport
const chromeHeight = 6

// App is the root Bubble Tea model. The feed session is shared by pointer;
// it is only mutated from Update.
type App struct {
	deps     Deps
	session  *feed.Session
	keys     common.KeyMap
	spinner  spinner.Model
	viewport viewport.Model
	ctx      context.Context

	loadingUsers bool
	cursor       int // option index in the selection control
	focus        int // trigger index
	status       string
	statusErr    bool
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = common.SuccessStyle

	return App{
		deps:         deps,
		session:      feed.NewSession(deps.Resources, deps.Logger),
		keys:         common.DefaultKeyMap(),
		spinner:      s,
		viewport:     viewport.New(80, 20),
		ctx:          deps.Context,
		loadingUsers: true,
	}
}

// Session exposes the feed session driven by the app.
func (a App) Session() *feed.Session { return a.session }

// Init loads the selection options.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadUsers())
}

func (a App) loadUsers() tea.Cmd {
	resources, ctx := a.deps.Resources, a.ctx
	return func() tea.Msg {
		users, err := resources.ListUsers(ctx)
		return usersLoadedMsg{Users: users, Err: err}
	}
}

func (a App) runCycle(c *feed.Cycle) tea.Cmd {
	session, ctx := a.session, a.ctx
	return func() tea.Msg {
		session.Build(ctx, c)
		return cycleDoneMsg{Cycle: c}
	}
}

func (a App) saveState(userID domain.UserID) tea.Cmd {
	path := a.deps.StatePath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		err := config.SaveUIState(path, config.UIState{SelectedUserID: int(userID)})
		return stateSavedMsg{Err: err}
	}
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.viewport.Width = msg.Width
		a.viewport.Height = max(msg.Height-chromeHeight, 1)
		a.syncViewport(false)
		return a, nil

	case usersLoadedMsg:
		a.loadingUsers = false
		if msg.Err != nil {
			a.deps.Logger.Error("loading users failed", "error", msg.Err)
			a.setError("Could not load users: " + msg.Err.Error() + " (r to retry)")
			return a, nil
		}
		n := a.session.PopulateUsers(msg.Users)
		a.deps.Logger.Info("selection populated", "options", n)
		a.syncViewport(false)
		a.cursor = a.optionIndex(a.deps.InitialUserID)
		if a.cursor < 0 {
			a.cursor = 0
			a.setStatus("Pick an employee with ←/→.")
			return a, nil
		}
		return a.startCycle(a.deps.InitialUserID)

	case cycleDoneMsg:
		err := a.session.Finish(msg.Cycle)
		a.focus = 0
		switch {
		case err == nil:
			text := fmt.Sprintf("Loaded %d posts.", len(msg.Cycle.Posts))
			if msg.Cycle.Degraded > 0 {
				text += fmt.Sprintf(" %d details unavailable.", msg.Cycle.Degraded)
			}
			a.setStatus(text)
			a.syncViewport(true)
			return a, a.saveState(msg.Cycle.UserID)
		case isValidation(err):
			a.setError("Nothing to show: " + err.Error())
		default:
			a.setError("Could not load posts: " + err.Error())
		}
		a.syncViewport(true)
		return a, nil

	case stateSavedMsg:
		if msg.Err != nil {
			a.deps.Logger.Warn("saving ui state failed", "error", msg.Err)
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loadingUsers && !a.session.Busy() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.PrevUser):
		return a.moveSelection(-1)

	case key.Matches(msg, a.keys.NextUser):
		return a.moveSelection(1)

	case key.Matches(msg, a.keys.Refresh):
		if a.loadingUsers {
			return a, nil
		}
		if len(a.session.Options()) == 0 {
			a.loadingUsers = true
			a.status = ""
			return a, tea.Batch(a.spinner.Tick, a.loadUsers())
		}
		return a.startCycle(a.cursorUserID())

	case key.Matches(msg, a.keys.Up):
		if a.focus > 0 {
			a.focus--
		}
		a.syncViewport(true)
		return a, nil

	case key.Matches(msg, a.keys.Down):
		if a.focus < len(a.session.Triggers())-1 {
			a.focus++
		}
		a.syncViewport(true)
		return a, nil

	case key.Matches(msg, a.keys.Toggle):
		return a.clickFocused()

	case key.Matches(msg, a.keys.PageUp):
		a.viewport.SetYOffset(a.viewport.YOffset - a.viewport.Height)
		return a, nil

	case key.Matches(msg, a.keys.PageDown):
		a.viewport.SetYOffset(a.viewport.YOffset + a.viewport.Height)
		return a, nil
	}
	return a, nil
}

// moveSelection changes the selected option. The change is only emitted while
// the control is enabled.
func (a App) moveSelection(delta int) (tea.Model, tea.Cmd) {
	options := a.session.Options()
	if len(options) == 0 {
		return a, nil
	}
	if a.session.Busy() {
		a.setStatus("Still loading, please wait.")
		return a, nil
	}
	a.cursor = (a.cursor + delta + len(options)) % len(options)
	return a.startCycle(a.cursorUserID())
}

func (a App) startCycle(userID domain.UserID) (tea.Model, tea.Cmd) {
	c, err := a.session.Begin(userID)
	if err != nil {
		if errors.Is(err, domain.ErrCycleInFlight) {
			a.setStatus("Still loading, please wait.")
		} else {
			a.setError(err.Error())
		}
		return a, nil
	}
	a.status = ""
	return a, tea.Batch(a.spinner.Tick, a.runCycle(c))
}

func (a App) clickFocused() (tea.Model, tea.Cmd) {
	trigger := a.focusedTrigger()
	if trigger == nil {
		return a, nil
	}
	raw, _ := trigger.Data(feed.PostIDKey)
	postID, err := feed.ParsePostID(raw)
	if err != nil {
		a.setError(err.Error())
		return a, nil
	}
	if _, err := a.session.Click(postID); err != nil {
		a.setError(err.Error())
		return a, nil
	}
	a.syncViewport(true)
	return a, nil
}

func (a App) cursorUserID() domain.UserID {
	options := a.session.Options()
	if a.cursor < 0 || a.cursor >= len(options) {
		return feed.FallbackUserID
	}
	value, _ := options[a.cursor].Attr("value")
	return feed.ParseSelection(value)
}

func (a App) optionIndex(userID domain.UserID) int {
	if userID <= 0 {
		return -1
	}
	for i, opt := range a.session.Options() {
		value, _ := opt.Attr("value")
		if feed.ParseSelection(value) == userID {
			return i
		}
	}
	return -1
}

func (a App) focusedTrigger() *dom.Node {
	triggers := a.session.Triggers()
	if a.focus < 0 || a.focus >= len(triggers) {
		return nil
	}
	return triggers[a.focus]
}

// syncViewport re-renders the container into the viewport and, when follow
// is set, scrolls the focused trigger into view.
func (a *App) syncViewport(follow bool) {
	content := a.renderContainer()
	a.viewport.SetContent(content)
	if !follow {
		return
	}
	line := common.LineIndex(content, focusMarker)
	if line < 0 {
		return
	}
	switch {
	case line < a.viewport.YOffset:
		a.viewport.SetYOffset(line)
	case line >= a.viewport.YOffset+a.viewport.Height:
		a.viewport.SetYOffset(line - a.viewport.Height + 1)
	}
}

func (a App) renderContainer() string {
	root := a.session.Root()
	if root.Len() == 0 {
		placeholder := dom.New("div")
		placeholder.Append(feed.BuildNoContent(feed.DefaultText))
		return renderTree(placeholder, nil, a.contentWidth())
	}
	return renderTree(root, a.focusedTrigger(), a.contentWidth())
}

func (a App) contentWidth() int {
	if a.viewport.Width > 0 {
		return a.viewport.Width
	}
	return 80
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.statusErr = true
}

// View renders the header, selection control, feed and status bar.
func (a App) View() string {
	var b strings.Builder

	title := common.AppTitleStyle.Render("threadfeed")
	tagline := common.TaglineStyle.Render(" posts and comments by employee")
	b.WriteString(title + tagline + "\n\n")

	b.WriteString(renderSelection(a.session.Selection(), a.cursor, a.session.Busy()))
	if a.loadingUsers || a.session.Busy() {
		b.WriteString(" " + a.spinner.View())
	}
	b.WriteString("\n")

	if a.loadingUsers {
		b.WriteString("  Loading employees...\n")
	} else {
		b.WriteString(a.viewport.View() + "\n")
	}

	status := a.keys.HelpLine()
	if a.status != "" {
		if a.statusErr {
			status = common.ErrorStyle.Render(a.status) + "  " + status
		} else {
			status = a.status + "  " + status
		}
	}
	b.WriteString(common.StatusBarStyle.Render(status))
	return b.String()
}

func isValidation(err error) bool {
	var v *domain.ValidationError
	return errors.As(err, &v)
}
