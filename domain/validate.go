package domain

import "fmt"

// ValidateUser checks a decoded user before it enters the pipeline.
func ValidateUser(u User) error {
	if u.ID <= 0 {
		return &ValidationError{Kind: KindUsers, Reason: fmt.Sprintf("non-positive id %d", u.ID)}
	}
	if u.Name == "" {
		return &ValidationError{Kind: KindUsers, Reason: fmt.Sprintf("user %d has no name", u.ID)}
	}
	return nil
}

// ValidatePost checks a decoded post.
func ValidatePost(p Post) error {
	if p.ID <= 0 {
		return &ValidationError{Kind: KindPosts, Reason: fmt.Sprintf("non-positive id %d", p.ID)}
	}
	if p.UserID <= 0 {
		return &ValidationError{Kind: KindPosts, Reason: fmt.Sprintf("post %d has no owner", p.ID)}
	}
	return nil
}

// ValidateComment checks a decoded comment.
func ValidateComment(c Comment) error {
	if c.ID <= 0 {
		return &ValidationError{Kind: KindComments, Reason: fmt.Sprintf("non-positive id %d", c.ID)}
	}
	if c.PostID <= 0 {
		return &ValidationError{Kind: KindComments, Reason: fmt.Sprintf("comment %d has no post", c.ID)}
	}
	return nil
}

// ValidateOwnedPosts enforces the posts-fetch contract of a refresh cycle:
// a non-empty collection of valid posts, all owned by userID.
func ValidateOwnedPosts(userID UserID, posts []Post) error {
	if len(posts) == 0 {
		return &ValidationError{Kind: KindPosts, Reason: fmt.Sprintf("user %d has no posts", userID)}
	}
	for _, p := range posts {
		if err := ValidatePost(p); err != nil {
			return err
		}
		if p.UserID != userID {
			return &ValidationError{
				Kind:   KindPosts,
				Reason: fmt.Sprintf("post %d owned by user %d, want %d", p.ID, p.UserID, userID),
			}
		}
	}
	return nil
}
