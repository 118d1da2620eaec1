package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/threadfeed/tui/common"
	"github.com/CrestNiraj12/threadfeed/tui/dom"
	"github.com/CrestNiraj12/threadfeed/tui/feed"
)

// focusMarker prefixes the focused trigger control. The app scrolls the
// viewport to the line carrying it.
const focusMarker = "▸"

// renderer turns a dom tree into styled terminal text.
type renderer struct {
	focused *dom.Node
}

// renderTree renders root at the given width. Hidden sections are skipped.
func renderTree(root *dom.Node, focused *dom.Node, width int) string {
	if width < 20 {
		width = 20
	}
	r := renderer{focused: focused}
	out := strings.Join(r.children(root, width), "\n")
	return common.ClampLinesToWidth(out, width)
}

func (r renderer) children(n *dom.Node, width int) []string {
	var blocks []string
	for _, c := range n.Children() {
		if s, ok := r.node(c, width); ok {
			blocks = append(blocks, s)
		}
	}
	return blocks
}

func (r renderer) node(n *dom.Node, width int) (string, bool) {
	if n.HasClass(feed.HiddenClass) {
		return "", false
	}
	text := ansi.Strip(n.Text())

	switch n.Tag() {
	case "article":
		if _, isPost := n.Data(feed.PostIDKey); isPost {
			// border and padding take four cells
			body := strings.Join(r.children(n, width-4), "\n")
			return common.PostCardStyle.Width(width - 2).Render(body), true
		}
		body := strings.Join(r.children(n, width-6), "\n")
		return common.CommentStyle.Width(width - 4).Render(body), true
	case "section":
		blocks := r.children(n, width)
		if len(blocks) == 0 {
			return common.MutedStyle.Render("No comments."), true
		}
		return strings.Join(blocks, "\n"), true
	case "h2":
		return common.PostTitleStyle.Width(width).Render(text), true
	case "h3":
		return common.CommentTitleStyle.Width(width).Render(text), true
	case "button":
		label := "[" + text + "]"
		if n == r.focused {
			return focusMarker + common.ButtonFocusedStyle.Render(label), true
		}
		return " " + common.ButtonStyle.Render(label), true
	case "p":
		if text == "" {
			return "", false
		}
		return paragraphStyle(n).Width(width).Render(text), true
	default:
		if text != "" {
			return common.ContentStyle.Width(width).Render(text), true
		}
		blocks := r.children(n, width)
		if len(blocks) == 0 {
			return "", false
		}
		return strings.Join(blocks, "\n"), true
	}
}

func paragraphStyle(n *dom.Node) lipgloss.Style {
	switch {
	case n.HasClass("author"):
		if n.HasClass("placeholder") {
			return common.MutedStyle
		}
		return common.AuthorStyle
	case n.HasClass("tagline"):
		return common.TaglineStyle
	case n.HasClass("placeholder"), n.HasClass("default-text"):
		return common.MutedStyle
	case strings.HasPrefix(n.Text(), "Post ID: "), strings.HasPrefix(n.Text(), "From: "):
		return common.MutedStyle
	default:
		return common.ContentStyle
	}
}

// renderSelection renders the selection control as a single line with the
// option at cursor.
func renderSelection(selection *dom.Node, cursor int, busy bool) string {
	label := common.SelectLabelStyle.Render("Employee:")
	options := selection.Children()
	if len(options) == 0 {
		return label + " " + common.MutedStyle.Render("(no users)")
	}
	if cursor < 0 || cursor >= len(options) {
		cursor = 0
	}
	name := "‹ " + ansi.Strip(options[cursor].Text()) + " ›"
	if busy {
		return label + " " + common.SelectDisabledStyle.Render(name)
	}
	return label + " " + common.SelectStyle.Render(name)
}
