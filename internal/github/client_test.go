package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a Client at a local fake of the API.
func newTestClient(t *testing.T, handler http.Handler, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("", timeout)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	c.api.BaseURL = base
	return c
}

func TestFetchProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"login": "octocat",
			"name": "The Octocat",
			"avatar_url": "https://example.test/a.png",
			"created_at": "2011-01-25T18:44:36Z",
			"public_repos": 8,
			"followers": 9001
		}`)
	})

	c := newTestClient(t, mux, 2*time.Second)
	profile, err := c.FetchProfile(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, "octocat", profile.Username)
	assert.Equal(t, "The Octocat", profile.Name)
	assert.Equal(t, 8, profile.PublicRepos)
	assert.Equal(t, 9001, profile.Followers)
	assert.Equal(t, 2011, profile.CreatedAt.Year())
}

func TestFetchProfileFallsBackToLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/ghost", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"login": "ghost"}`)
	})

	c := newTestClient(t, mux, 2*time.Second)
	profile, err := c.FetchProfile(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, "ghost", profile.Name)
}

func TestFetchProfileNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/nobody", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	})

	c := newTestClient(t, mux, 2*time.Second)
	_, err := c.FetchProfile(context.Background(), "nobody")
	require.Error(t, err)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Contains(t, notFound.Resource, "nobody")
}

func TestFetchProfileRateLimited(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/busy", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Limit", "60")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", fmt.Sprint(time.Now().Add(time.Hour).Unix()))
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message": "API rate limit exceeded"}`)
	})

	c := newTestClient(t, mux, 2*time.Second)
	_, err := c.FetchProfile(context.Background(), "busy")
	require.Error(t, err)

	var rateLimited *RateLimitError
	assert.True(t, errors.As(err, &rateLimited))
}

func TestFetchProfileTimeout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		fmt.Fprint(w, `{"login": "slow"}`)
	})

	c := newTestClient(t, mux, 50*time.Millisecond)
	_, err := c.FetchProfile(context.Background(), "slow")
	require.Error(t, err)

	var timeout *TimeoutError
	assert.True(t, errors.As(err, &timeout), "got %T: %v", err, err)
}

func TestFetchRepositoriesPaginates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `[{"name": "beta", "full_name": "octocat/beta", "owner": {"login": "octocat"}, "size": 2, "language": "Python"}]`)
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<http://%s/users/octocat/repos?page=2>; rel="next"`, r.Host))
		fmt.Fprint(w, `[{"name": "alpha", "full_name": "octocat/alpha", "owner": {"login": "octocat"}, "size": 10, "language": "Go", "topics": ["cli"], "stargazers_count": 3}]`)
	})

	c := newTestClient(t, mux, 2*time.Second)
	repos, err := c.FetchRepositories(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 2)

	assert.Equal(t, "octocat/alpha", repos[0].FullName)
	assert.Equal(t, int64(10*1024), repos[0].Size, "API kilobytes become bytes")
	assert.Equal(t, []string{"cli"}, repos[0].Topics)
	assert.Equal(t, 3, repos[0].Stars)
	assert.Equal(t, "octocat/beta", repos[1].FullName)
}

func TestFetchCommitsHonorsLimit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octocat/alpha/commits", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "octocat", r.URL.Query().Get("author"))
		fmt.Fprint(w, `[
			{"sha": "a1", "commit": {"author": {"date": "2026-08-01T10:00:00Z"}}},
			{"sha": "a2", "commit": {"author": {"date": "2026-07-30T10:00:00Z"}}},
			{"sha": "a3", "commit": {"author": {"date": "2026-07-29T10:00:00Z"}}}
		]`)
	})

	c := newTestClient(t, mux, 2*time.Second)
	events, err := c.FetchCommits(context.Background(), "octocat", "alpha", "octocat", 2)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "octocat/alpha", events[0].Repo)
	assert.Equal(t, 1, events[0].Count)
	assert.Equal(t, time.August, events[0].Timestamp.Month())
}

func TestFetchCommitsEmptyRepository(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octocat/empty/commits", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"message": "Git Repository is empty."}`)
	})

	c := newTestClient(t, mux, 2*time.Second)
	events, err := c.FetchCommits(context.Background(), "octocat", "empty", "octocat", 30)
	require.NoError(t, err, "an empty repository is not an error")
	assert.Empty(t, events)
}

func TestFetchContributors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octocat/alpha/contributors", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"login": "ada", "contributions": 41, "avatar_url": "https://example.test/ada.png"},
			{"login": "bob", "contributions": 7}
		]`)
	})

	c := newTestClient(t, mux, 2*time.Second)
	contribs, err := c.FetchContributors(context.Background(), "octocat", "alpha")
	require.NoError(t, err)
	require.Len(t, contribs, 2)

	assert.Equal(t, "ada", contribs[0].Username)
	assert.Equal(t, 41, contribs[0].Commits)
	assert.Equal(t, "https://example.test/ada.png", contribs[0].AvatarURL)
}

func TestFetchContributorsHTTPError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octocat/broken/contributors", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, `{"message": "upstream broke"}`)
	})

	c := newTestClient(t, mux, 2*time.Second)
	_, err := c.FetchContributors(context.Background(), "octocat", "broken")
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
}

func TestFetchAvatarDataURI(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/avatar.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewClient("", 2*time.Second)
	uri, err := c.FetchAvatar(context.Background(), srv.URL+"/avatar.png")
	require.NoError(t, err)
	assert.Contains(t, uri, "data:image/png;base64,")
}
