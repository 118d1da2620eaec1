package app

import (
	"context"

	"github.com/CrestNiraj12/threadfeed/domain"
)

// ResourceClient fetches the remote resources a feed is composed from.
// Implementations make exactly one attempt per call. A non-positive id
// yields domain.ErrAbsentInput without I/O; transport and decode failures
// yield *domain.FetchError.
type ResourceClient interface {
	// ListUsers returns every user, used to populate the selection control.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// ListPosts returns the posts owned by userID, in source order.
	ListPosts(ctx context.Context, userID domain.UserID) ([]domain.Post, error)

	// GetUser returns a single user.
	GetUser(ctx context.Context, userID domain.UserID) (domain.User, error)

	// ListComments returns the comments on postID.
	ListComments(ctx context.Context, postID domain.PostID) ([]domain.Comment, error)
}
