package placeholder

import (
	"context"
	"fmt"

	"github.com/CrestNiraj12/threadfeed/app"
	"github.com/CrestNiraj12/threadfeed/domain"
)

// resourceService implements app.ResourceClient on top of Client.
type resourceService struct {
	client *Client
}

// NewResourceService creates an app.ResourceClient backed by the API.
func NewResourceService(client *Client) app.ResourceClient {
	return &resourceService{client: client}
}

// Wire shapes use pointers for identifiers so a missing field is detected
// instead of decoding to zero.

type wireCompany struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
}

type wireUser struct {
	ID       *int         `json:"id"`
	Name     string       `json:"name"`
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Company  *wireCompany `json:"company"`
}

type wirePost struct {
	ID     *int   `json:"id"`
	UserID *int   `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type wireComment struct {
	ID     *int   `json:"id"`
	PostID *int   `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

func (s *resourceService) ListUsers(ctx context.Context) ([]domain.User, error) {
	var raw []wireUser
	if err := s.client.FetchAll(ctx, domain.KindUsers, &raw); err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(raw))
	for i, w := range raw {
		u, err := decodeUser(w)
		if err != nil {
			return nil, fmt.Errorf("users[%d]: %w", i, err)
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *resourceService) ListPosts(ctx context.Context, userID domain.UserID) ([]domain.Post, error) {
	var raw []wirePost
	if err := s.client.FetchCollection(ctx, domain.KindPosts, int(userID), &raw); err != nil {
		return nil, err
	}
	posts := make([]domain.Post, 0, len(raw))
	for i, w := range raw {
		p, err := decodePost(w)
		if err != nil {
			return nil, fmt.Errorf("posts[%d]: %w", i, err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (s *resourceService) GetUser(ctx context.Context, userID domain.UserID) (domain.User, error) {
	var raw wireUser
	if err := s.client.FetchSingle(ctx, domain.KindUsers, int(userID), &raw); err != nil {
		return domain.User{}, err
	}
	u, err := decodeUser(raw)
	if err != nil {
		return domain.User{}, err
	}
	if u.ID != userID {
		return domain.User{}, &domain.ValidationError{
			Kind:   domain.KindUsers,
			Reason: fmt.Sprintf("requested user %d, got %d", userID, u.ID),
		}
	}
	return u, nil
}

func (s *resourceService) ListComments(ctx context.Context, postID domain.PostID) ([]domain.Comment, error) {
	var raw []wireComment
	if err := s.client.FetchCollection(ctx, domain.KindComments, int(postID), &raw); err != nil {
		return nil, err
	}
	comments := make([]domain.Comment, 0, len(raw))
	for i, w := range raw {
		c, err := decodeComment(w)
		if err != nil {
			return nil, fmt.Errorf("comments[%d]: %w", i, err)
		}
		if c.PostID != postID {
			return nil, &domain.ValidationError{
				Kind:   domain.KindComments,
				Reason: fmt.Sprintf("comment %d belongs to post %d, want %d", c.ID, c.PostID, postID),
			}
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func decodeUser(w wireUser) (domain.User, error) {
	if w.ID == nil {
		return domain.User{}, &domain.ValidationError{Kind: domain.KindUsers, Reason: "missing id"}
	}
	u := domain.User{
		ID:       domain.UserID(*w.ID),
		Name:     sanitizeText(w.Name),
		Username: sanitizeText(w.Username),
		Email:    sanitizeText(w.Email),
	}
	if w.Company != nil {
		u.Company = domain.Company{
			Name:        sanitizeText(w.Company.Name),
			CatchPhrase: sanitizeText(w.Company.CatchPhrase),
		}
	}
	return u, domain.ValidateUser(u)
}

func decodePost(w wirePost) (domain.Post, error) {
	if w.ID == nil || w.UserID == nil {
		return domain.Post{}, &domain.ValidationError{Kind: domain.KindPosts, Reason: "missing id or userId"}
	}
	p := domain.Post{
		ID:     domain.PostID(*w.ID),
		UserID: domain.UserID(*w.UserID),
		Title:  sanitizeText(w.Title),
		Body:   sanitizeText(w.Body),
	}
	return p, domain.ValidatePost(p)
}

func decodeComment(w wireComment) (domain.Comment, error) {
	if w.ID == nil || w.PostID == nil {
		return domain.Comment{}, &domain.ValidationError{Kind: domain.KindComments, Reason: "missing id or postId"}
	}
	c := domain.Comment{
		ID:     domain.CommentID(*w.ID),
		PostID: domain.PostID(*w.PostID),
		Name:   sanitizeText(w.Name),
		Email:  sanitizeText(w.Email),
		Body:   sanitizeText(w.Body),
	}
	return c, domain.ValidateComment(c)
}
