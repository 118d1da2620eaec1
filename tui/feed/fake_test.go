package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/CrestNiraj12/threadfeed/domain"
)

var errTransport = errors.New("connection reset")

// fakeResources is a scripted app.ResourceClient that records call order.
type fakeResources struct {
	mu          sync.Mutex
	posts       map[domain.UserID][]domain.Post
	postsErr    error
	users       map[domain.UserID]domain.User
	failAuthor  map[int]bool // 1-based GetUser call numbers that fail
	comments    map[domain.PostID][]domain.Comment
	failComment map[domain.PostID]bool
	calls       []string
	authorCalls int
}

func newFakeResources() *fakeResources {
	return &fakeResources{
		posts:       make(map[domain.UserID][]domain.Post),
		users:       make(map[domain.UserID]domain.User),
		failAuthor:  make(map[int]bool),
		comments:    make(map[domain.PostID][]domain.Comment),
		failComment: make(map[domain.PostID]bool),
	}
}

// withUser seeds a user owning posts with the given ids, two comments each.
func (f *fakeResources) withUser(id domain.UserID, postIDs ...domain.PostID) *fakeResources {
	f.users[id] = domain.User{
		ID:      id,
		Name:    fmt.Sprintf("User %d", id),
		Company: domain.Company{Name: "Romaguera-Crona", CatchPhrase: "Multi-layered client-server neural-net"},
	}
	for _, pid := range postIDs {
		f.posts[id] = append(f.posts[id], domain.Post{
			ID:     pid,
			UserID: id,
			Title:  fmt.Sprintf("title %d", pid),
			Body:   fmt.Sprintf("body %d", pid),
		})
		for i := 1; i <= 2; i++ {
			f.comments[pid] = append(f.comments[pid], domain.Comment{
				ID:     domain.CommentID(int(pid)*10 + i),
				PostID: pid,
				Name:   fmt.Sprintf("commenter %d.%d", pid, i),
				Email:  fmt.Sprintf("c%d@example.test", i),
				Body:   "nice",
			})
		}
	}
	return f
}

func (f *fakeResources) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeResources) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeResources) ListUsers(context.Context) ([]domain.User, error) {
	f.record("users")
	out := make([]domain.User, 0, len(f.users))
	for id := domain.UserID(1); len(out) < len(f.users); id++ {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeResources) ListPosts(_ context.Context, userID domain.UserID) ([]domain.Post, error) {
	f.record(fmt.Sprintf("posts:%d", userID))
	if userID <= 0 {
		return nil, domain.ErrAbsentInput
	}
	if f.postsErr != nil {
		return nil, f.postsErr
	}
	return f.posts[userID], nil
}

func (f *fakeResources) GetUser(_ context.Context, userID domain.UserID) (domain.User, error) {
	f.record(fmt.Sprintf("user:%d", userID))
	f.authorCalls++
	if f.failAuthor[f.authorCalls] {
		return domain.User{}, &domain.FetchError{Kind: domain.KindUsers, ID: int(userID), Err: errTransport}
	}
	u, ok := f.users[userID]
	if !ok {
		return domain.User{}, &domain.FetchError{Kind: domain.KindUsers, ID: int(userID), Err: errors.New("404")}
	}
	return u, nil
}

func (f *fakeResources) ListComments(_ context.Context, postID domain.PostID) ([]domain.Comment, error) {
	f.record(fmt.Sprintf("comments:%d", postID))
	if f.failComment[postID] {
		return nil, &domain.FetchError{Kind: domain.KindComments, ID: int(postID), Err: errTransport}
	}
	return f.comments[postID], nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
