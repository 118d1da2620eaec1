package domain

// UserID identifies a remote user.
type UserID int

// PostID identifies a remote post. It is the sole addressing key between
// trigger controls, comment sections and the toggle registry.
type PostID int

// CommentID identifies a remote comment.
type CommentID int

// ResourceKind names a remote resource collection.
type ResourceKind string

const (
	KindUsers    ResourceKind = "users"
	KindPosts    ResourceKind = "posts"
	KindComments ResourceKind = "comments"
)

// Company is the employer attached to a user.
type Company struct {
	Name        string
	CatchPhrase string
}

// User is a post author. Immutable once fetched.
type User struct {
	ID       UserID
	Name     string
	Username string
	Email    string
	Company  Company
}

// Post is a single feed entry owned by a user.
type Post struct {
	ID     PostID
	UserID UserID
	Title  string
	Body   string
}

// Comment belongs to a post.
type Comment struct {
	ID     CommentID
	PostID PostID
	Name   string // Display name of the comment author
	Email  string
	Body   string
}
