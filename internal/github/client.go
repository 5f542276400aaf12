// Package github is the read-only client for the GitHub REST API. It wraps
// go-github with a client-side rate limiter, a bounded per-call timeout and
// the error taxonomy the aggregator's degradation policy is built on.
package github

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-github/v57/github"
	"golang.org/x/time/rate"

	"github.com/vukan322/devwidgets/internal/core"
)

const (
	// requestsPerSecond is deliberately conservative: the authenticated
	// REST quota is 5000/h and a single run issues a few dozen calls.
	requestsPerSecond = 8

	pageSize = 100
)

// Client issues read-only requests against the hosting API. It keeps no
// state between calls beyond the shared transport and limiter.
type Client struct {
	api     *github.Client
	http    *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// NewClient builds a client. token may be empty, which leaves requests
// unauthenticated (and rate limited to 60/h by the API).
func NewClient(token string, timeout time.Duration) *Client {
	httpClient := &http.Client{Timeout: timeout}
	api := github.NewClient(httpClient)
	if token != "" {
		api = api.WithAuthToken(token)
	}
	return &Client{
		api:     api,
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		timeout: timeout,
	}
}

// FetchProfile returns the user's account snapshot.
func (c *Client) FetchProfile(ctx context.Context, username string) (core.Profile, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return core.Profile{}, mapError("fetch profile", "user "+username, err)
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	user, _, err := c.api.Users.Get(ctx, username)
	if err != nil {
		return core.Profile{}, mapError("fetch profile", "user "+username, err)
	}

	name := user.GetName()
	if name == "" {
		name = user.GetLogin()
	}
	return core.Profile{
		Username:    user.GetLogin(),
		Name:        name,
		AvatarURL:   user.GetAvatarURL(),
		CreatedAt:   user.GetCreatedAt().Time,
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
	}, nil
}

// FetchRepositories lists the repositories the user owns, most recently
// pushed first, following pagination to the end.
func (c *Client) FetchRepositories(ctx context.Context, username string) ([]core.Repository, error) {
	opts := &github.RepositoryListOptions{
		Type:        "owner",
		Sort:        "pushed",
		ListOptions: github.ListOptions{PerPage: pageSize},
	}

	var all []core.Repository
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, mapError("fetch repositories", "user "+username, err)
		}
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		repos, resp, err := c.api.Repositories.List(callCtx, username, opts)
		cancel()
		if err != nil {
			return nil, mapError("fetch repositories", "user "+username, err)
		}

		for _, r := range repos {
			all = append(all, core.Repository{
				Name:     r.GetName(),
				FullName: r.GetFullName(),
				Owner:    r.GetOwner().GetLogin(),
				Size:     int64(r.GetSize()) * 1024, // API reports kilobytes
				Language: r.GetLanguage(),
				Topics:   r.Topics,
				Stars:    r.GetStargazersCount(),
				Forks:    r.GetForksCount(),
				PushedAt: r.GetPushedAt().Time,
			})
		}

		if resp.NextPage == 0 {
			return all, nil
		}
		opts.Page = resp.NextPage
	}
}

// FetchCommits returns up to limit commits authored by author in the given
// repository, newest first. An empty repository yields an empty list.
func (c *Client) FetchCommits(ctx context.Context, owner, repo, author string, limit int) ([]core.CommitEvent, error) {
	if limit <= 0 {
		return nil, nil
	}

	perPage := limit
	if perPage > pageSize {
		perPage = pageSize
	}
	opts := &github.CommitsListOptions{
		Author:      author,
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	resource := fmt.Sprintf("commits of %s/%s", owner, repo)

	var events []core.CommitEvent
	for len(events) < limit {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, mapError("fetch commits", resource, err)
		}
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		commits, resp, err := c.api.Repositories.ListCommits(callCtx, owner, repo, opts)
		cancel()
		if err != nil {
			// 409 means the repository has no commits at all.
			var ghErr *github.ErrorResponse
			if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusConflict {
				return nil, nil
			}
			return nil, mapError("fetch commits", resource, err)
		}

		for _, commit := range commits {
			if len(events) == limit {
				break
			}
			events = append(events, core.CommitEvent{
				Repo:      fmt.Sprintf("%s/%s", owner, repo),
				Timestamp: commit.GetCommit().GetAuthor().GetDate().Time,
				Count:     1,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return events, nil
}

// FetchContributors returns the full contributor list of a repository.
func (c *Client) FetchContributors(ctx context.Context, owner, repo string) ([]core.Contributor, error) {
	opts := &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: pageSize},
	}
	resource := fmt.Sprintf("contributors of %s/%s", owner, repo)

	var all []core.Contributor
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, mapError("fetch contributors", resource, err)
		}
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		contribs, resp, err := c.api.Repositories.ListContributors(callCtx, owner, repo, opts)
		cancel()
		if err != nil {
			return nil, mapError("fetch contributors", resource, err)
		}

		for _, contrib := range contribs {
			all = append(all, core.Contributor{
				Username:  contrib.GetLogin(),
				AvatarURL: contrib.GetAvatarURL(),
				Commits:   contrib.GetContributions(),
			})
		}

		if resp.NextPage == 0 {
			return all, nil
		}
		opts.Page = resp.NextPage
	}
}

// FetchAvatar downloads an avatar and returns it as a data URI suitable for
// embedding directly into SVG markup.
func (c *Client) FetchAvatar(ctx context.Context, avatarURL string) (string, error) {
	if avatarURL == "" {
		return "", nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, avatarURL, nil)
	if err != nil {
		return "", fmt.Errorf("new avatar request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", mapError("fetch avatar", "avatar", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &HTTPError{StatusCode: resp.StatusCode, URL: avatarURL}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read avatar body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}

// mapError translates transport and API failures into the client's error
// taxonomy at the boundary, so callers never see raw library errors.
func mapError(op, resource string, err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &RateLimitError{ResetAt: rateErr.Rate.Reset.Time}
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		reset := time.Time{}
		if abuseErr.RetryAfter != nil {
			reset = time.Now().Add(*abuseErr.RetryAfter)
		}
		return &RateLimitError{ResetAt: reset}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Op: op, Err: err}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &TimeoutError{Op: op, Err: err}
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		reqURL := ""
		if ghErr.Response.Request != nil && ghErr.Response.Request.URL != nil {
			reqURL = ghErr.Response.Request.URL.String()
		}
		if ghErr.Response.StatusCode == http.StatusNotFound {
			return &NotFoundError{Resource: resource}
		}
		return &HTTPError{StatusCode: ghErr.Response.StatusCode, URL: reqURL}
	}

	return fmt.Errorf("%s: %w", op, err)
}
