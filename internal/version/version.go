// Package version looks up the latest winres release.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

const (
	// ReleasesURL is the default GitHub endpoint for the latest release. Forks
	// and mirrors pass their own with "winres version --check --releases-url".
	ReleasesURL = "https://api.github.com/repos/surge-downloader/winres/releases/latest"
	// RequestTimeout bounds a single lookup.
	RequestTimeout = 10 * time.Second
)

// Release describes the latest published release relative to a build.
type Release struct {
	Current string
	Latest  string
	URL     string
	Newer   bool
}

type githubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Checker queries a releases endpoint.
type Checker struct {
	URL    string
	Client *http.Client
}

// NewChecker returns a Checker for url, or ReleasesURL when url is empty.
func NewChecker(url string) *Checker {
	if url == "" {
		url = ReleasesURL
	}
	return &Checker{
		URL:    url,
		Client: &http.Client{Timeout: RequestTimeout},
	}
}

// Latest fetches the latest release and compares it with current.
func (c *Checker) Latest(ctx context.Context, current string) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "winres-version-check")
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch latest release: %s", resp.Status)
	}

	var gh githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&gh); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	rel := &Release{
		Current: current,
		Latest:  gh.TagName,
		URL:     gh.HTMLURL,
	}
	if IsDevelopment(current) {
		return rel, nil
	}
	if rel.Newer, err = IsNewer(gh.TagName, current); err != nil {
		return nil, err
	}
	return rel, nil
}

// IsDevelopment reports whether current is a local build that has no
// release to compare against.
func IsDevelopment(current string) bool {
	switch strings.ToLower(strings.TrimSpace(current)) {
	case "", "dev", "devel", "unknown":
		return true
	}
	return false
}

// IsNewer reports whether latest is a higher semantic version than current,
// pre-release ordering included. A leading "v" is accepted on both.
func IsNewer(latest, current string) (bool, error) {
	lat, err := parseSemver(latest)
	if err != nil {
		return false, fmt.Errorf("latest version %q: %w", latest, err)
	}
	cur, err := parseSemver(current)
	if err != nil {
		return false, fmt.Errorf("current version %q: %w", current, err)
	}
	return lat.GreaterThan(cur), nil
}

func parseSemver(raw string) (*semver.Version, error) {
	v := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	if v == "" {
		return nil, semver.ErrInvalidSemVer
	}
	return semver.NewVersion(v)
}
