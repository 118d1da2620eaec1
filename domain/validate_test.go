package domain

import (
	"errors"
	"testing"
)

func TestValidateOwnedPosts(t *testing.T) {
	tests := []struct {
		name    string
		posts   []Post
		wantErr bool
	}{
		{name: "owned", posts: []Post{{ID: 1, UserID: 7}, {ID: 2, UserID: 7}}},
		{name: "empty", posts: nil, wantErr: true},
		{name: "foreign owner", posts: []Post{{ID: 1, UserID: 7}, {ID: 2, UserID: 8}}, wantErr: true},
		{name: "missing id", posts: []Post{{ID: 0, UserID: 7}}, wantErr: true},
		{name: "missing owner", posts: []Post{{ID: 3}}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateOwnedPosts(7, tc.posts)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if err == nil {
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestValidateUserAndComment(t *testing.T) {
	if err := ValidateUser(User{ID: 1, Name: "Leanne"}); err != nil {
		t.Fatalf("valid user rejected: %v", err)
	}
	if err := ValidateUser(User{ID: 1}); err == nil {
		t.Fatalf("nameless user accepted")
	}
	if err := ValidateComment(Comment{ID: 1, PostID: 1}); err != nil {
		t.Fatalf("valid comment rejected: %v", err)
	}
	if err := ValidateComment(Comment{ID: 1}); err == nil {
		t.Fatalf("orphan comment accepted")
	}
}

func TestFetchError_Unwraps(t *testing.T) {
	cause := errors.New("boom")
	err := error(&FetchError{Kind: KindPosts, ID: 3, Err: cause})
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}
	if got := err.Error(); got != "fetch posts 3: boom" {
		t.Fatalf("unexpected message: %q", got)
	}
}
