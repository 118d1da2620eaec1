package placeholder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/CrestNiraj12/threadfeed/domain"
	"github.com/CrestNiraj12/threadfeed/infra/auth"
	"github.com/CrestNiraj12/threadfeed/infra/metrics"
)

// filterParams maps a collection to the query parameter that scopes it.
var filterParams = map[domain.ResourceKind]string{
	domain.KindPosts:    "userId",
	domain.KindComments: "postId",
}

// Client is a thin HTTP wrapper for a JSONPlaceholder-compatible API.
// Every call is a single attempt. No per-request timeout is applied:
// a hung remote call blocks until ctx is cancelled.
type Client struct {
	baseURL       string
	tokenProvider auth.TokenProvider
	http          *http.Client
	limiter       *rate.Limiter
}

// NewClient creates a resource API client. A nil limiter disables pacing.
func NewClient(baseURL string, tp auth.TokenProvider, limiter *rate.Limiter) *Client {
	if tp == nil {
		tp = auth.Anonymous{}
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Client{
		baseURL:       baseURL,
		tokenProvider: tp,
		http:          &http.Client{},
		limiter:       limiter,
	}
}

// NewLimiter paces requests to perSecond with a burst of one.
// A non-positive rate means unlimited.
func NewLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}

// FetchAll decodes an unfiltered collection of kind into out.
func (c *Client) FetchAll(ctx context.Context, kind domain.ResourceKind, out any) error {
	return c.fetch(ctx, kind, 0, "/"+string(kind), true, out)
}

// FetchCollection decodes the collection of kind scoped to filterID into out.
func (c *Client) FetchCollection(ctx context.Context, kind domain.ResourceKind, filterID int, out any) error {
	if filterID <= 0 {
		metrics.ObserveFetch(string(kind), "absent")
		return fmt.Errorf("%s filter %d: %w", kind, filterID, domain.ErrAbsentInput)
	}
	param, ok := filterParams[kind]
	if !ok {
		return &domain.FetchError{Kind: kind, ID: filterID, Err: errors.New("collection cannot be filtered")}
	}
	q := url.Values{param: []string{strconv.Itoa(filterID)}}
	return c.fetch(ctx, kind, filterID, "/"+string(kind)+"?"+q.Encode(), true, out)
}

// FetchSingle decodes the record of kind identified by id into out.
func (c *Client) FetchSingle(ctx context.Context, kind domain.ResourceKind, id int, out any) error {
	if id <= 0 {
		metrics.ObserveFetch(string(kind), "absent")
		return fmt.Errorf("%s %d: %w", kind, id, domain.ErrAbsentInput)
	}
	return c.fetch(ctx, kind, id, "/"+string(kind)+"/"+strconv.Itoa(id), false, out)
}

func (c *Client) fetch(ctx context.Context, kind domain.ResourceKind, id int, path string, collection bool, out any) error {
	data, err := c.get(ctx, path)
	if err != nil {
		metrics.ObserveFetch(string(kind), "error")
		return &domain.FetchError{Kind: kind, ID: id, Err: err}
	}

	trimmed := bytes.TrimSpace(data)
	if collection && (len(trimmed) == 0 || trimmed[0] != '[') {
		metrics.ObserveFetch(string(kind), "invalid")
		return &domain.ValidationError{Kind: kind, Reason: "response is not a collection"}
	}
	if !collection && (len(trimmed) == 0 || trimmed[0] != '{') {
		metrics.ObserveFetch(string(kind), "invalid")
		return &domain.ValidationError{Kind: kind, Reason: "response is not a record"}
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		metrics.ObserveFetch(string(kind), "error")
		return &domain.FetchError{Kind: kind, ID: id, Err: fmt.Errorf("decoding: %w", err)}
	}
	metrics.ObserveFetch(string(kind), "ok")
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	token, err := c.tokenProvider.AccessToken()
	if err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API GET %s returned %d: %s", path, resp.StatusCode, string(data))
	}

	return data, nil
}
