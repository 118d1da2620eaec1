package feed

import (
	"fmt"
	"strconv"

	"github.com/CrestNiraj12/threadfeed/domain"
	"github.com/CrestNiraj12/threadfeed/tui/dom"
)

const (
	// PostIDKey is the data attribute tagging trigger controls and comment
	// sections with their post. It is the only addressing key between them.
	PostIDKey = "post-id"

	// HiddenClass collapses a comment section.
	HiddenClass = "hide"

	// ClickEvent is the event type trigger controls listen for.
	ClickEvent = "click"

	ShowLabel     = "Show Comments"
	HideLabel     = "Hide Comments"
	UnknownAuthor = "unknown"

	// DefaultText is shown when no posts are rendered.
	DefaultText = "Select an Employee to display their posts."
)

// FormatPostID renders a post id for a data attribute.
func FormatPostID(id domain.PostID) string {
	return strconv.Itoa(int(id))
}

// ParsePostID is the exact inverse of FormatPostID. Values that would not
// round-trip ("007", "+7", " 7") and non-positive ids are rejected.
func ParsePostID(raw string) (domain.PostID, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || strconv.Itoa(n) != raw {
		return 0, fmt.Errorf("post id %q: %w", raw, domain.ErrAbsentInput)
	}
	return domain.PostID(n), nil
}

// BuildCommentSubtree renders one article per comment into a fragment.
// No comments yields an empty fragment.
func BuildCommentSubtree(comments []domain.Comment) *dom.Node {
	frag := dom.NewFragment()
	for _, c := range comments {
		article := dom.New("article")
		article.Append(
			dom.NewText("h3", c.Name),
			dom.NewText("p", c.Body),
			dom.NewText("p", "From: "+c.Email),
		)
		frag.Append(article)
	}
	return frag
}

// BuildCommentsUnavailable is the placeholder for a failed comments fetch.
func BuildCommentsUnavailable() *dom.Node {
	frag := dom.NewFragment()
	frag.Append(dom.NewText("p", "Comments unavailable.", "placeholder"))
	return frag
}

// BuildPostSubtree assembles a post article with its trigger control and a
// collapsed comment section. A nil author renders a placeholder label.
func BuildPostSubtree(post domain.Post, author *domain.User, comments *dom.Node) *dom.Node {
	id := FormatPostID(post.ID)

	article := dom.New("article")
	article.SetData(PostIDKey, id)

	authorLine := dom.NewText("p", "Author: "+UnknownAuthor, "author", "placeholder")
	tagline := dom.NewText("p", "", "tagline")
	if author != nil {
		authorLine = dom.NewText("p", fmt.Sprintf("Author: %s with %s", author.Name, author.Company.Name), "author")
		tagline.SetText(author.Company.CatchPhrase)
	}

	button := dom.NewText("button", ShowLabel)
	button.SetData(PostIDKey, id)

	section := dom.New("section")
	section.SetData(PostIDKey, id)
	section.AddClass("comments")
	section.AddClass(HiddenClass)
	section.Append(comments)

	article.Append(
		dom.NewText("h2", post.Title),
		dom.NewText("p", post.Body),
		dom.NewText("p", "Post ID: "+id),
		authorLine,
		tagline,
		button,
		section,
	)
	return article
}

// BuildSelectOptions renders one option per user: value is the id, text
// the display name.
func BuildSelectOptions(users []domain.User) []*dom.Node {
	options := make([]*dom.Node, 0, len(users))
	for _, u := range users {
		opt := dom.NewText("option", u.Name)
		opt.SetAttr("value", strconv.Itoa(int(u.ID)))
		options = append(options, opt)
	}
	return options
}

// BuildNoContent is the placeholder shown instead of an empty container.
func BuildNoContent(text string) *dom.Node {
	return dom.NewText("p", text, "default-text")
}

// isTrigger matches trigger controls.
var isTrigger = dom.All(dom.ByTag("button"), dom.HasAttr("data-"+PostIDKey))

// isSection matches comment sections.
var isSection = dom.All(dom.ByTag("section"), dom.HasAttr("data-"+PostIDKey))
