// Package release checks GitHub for published releases of the experiment,
// so a lab machine can warn when it is running outdated task code.
package release

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	moterrors "github.com/bitesizing/motlab/errors"
)

// Canonical repository for the experiment code.
const (
	DefaultOwner = "bitesizing"
	DefaultRepo  = "mot-task"
)

// Release describes a published release.
type Release struct {
	Tag         string
	Name        string
	URL         string
	PublishedAt time.Time
}

// Client looks up releases for one repository.
type Client struct {
	gh    *github.Client
	owner string
	repo  string
}

// NewClient creates a release client for owner/repo. token may be empty:
// anonymous lookups work for public repositories, a personal access token
// just raises the rate limit.
func NewClient(token, owner, repo string) *Client {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(context.Background(), ts)
	}
	return &Client{
		gh:    github.NewClient(hc),
		owner: owner,
		repo:  repo,
	}
}

// NewDefaultClient creates an anonymous client for the canonical
// experiment repository.
func NewDefaultClient() *Client {
	return NewClient("", DefaultOwner, DefaultRepo)
}

// SetBaseURL points the client at a different API endpoint. Used in tests.
func (c *Client) SetBaseURL(baseURL string) error {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	parsed, err := c.gh.BaseURL.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("parse base URL: %w", err)
	}
	c.gh.BaseURL = parsed
	return nil
}

// Latest returns the most recent published release. A repository with no
// releases yields errors.ErrNoRelease.
func (c *Client) Latest(ctx context.Context) (*Release, error) {
	rel, resp, err := c.gh.Repositories.GetLatestRelease(ctx, c.owner, c.repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%s/%s: %w", c.owner, c.repo, moterrors.ErrNoRelease)
		}
		return nil, fmt.Errorf("get latest release: %w", err)
	}

	return &Release{
		Tag:         rel.GetTagName(),
		Name:        rel.GetName(),
		URL:         rel.GetHTMLURL(),
		PublishedAt: rel.GetPublishedAt().Time,
	}, nil
}

// CheckForUpdate reports whether a newer release than current is published.
// current and the release tag are compared as dotted numeric versions; a
// leading "v" is ignored.
func (c *Client) CheckForUpdate(ctx context.Context, current string) (*Release, bool, error) {
	latest, err := c.Latest(ctx)
	if err != nil {
		return nil, false, err
	}
	return latest, CompareVersions(latest.Tag, current) > 0, nil
}

// CompareVersions compares two dotted numeric versions, returning -1, 0 or 1.
// Missing components count as zero, so "1.2" equals "1.2.0".
func CompareVersions(a, b string) int {
	as := strings.Split(strings.TrimPrefix(a, "v"), ".")
	bs := strings.Split(strings.TrimPrefix(b, "v"), ".")

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(as) {
			av = numericPrefix(as[i])
		}
		if i < len(bs) {
			bv = numericPrefix(bs[i])
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// numericPrefix parses the leading digits of a version component, so
// "3-rc1" counts as 3. A component with no digits counts as zero.
func numericPrefix(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return v
}
