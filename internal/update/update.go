// Package update checks GitHub releases for a newer modal binary and can
// replace the running executable with it.
package update

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	selfupdate "github.com/creativeprojects/go-selfupdate"

	"github.com/justinpbarnett/modal/internal/logging"
)

// DefaultRepo is the release repository.
const DefaultRepo = "justinpbarnett/modal"

const (
	checkTimeout = 10 * time.Second
	applyTimeout = 2 * time.Minute
)

// ErrDevBuild is returned by Apply for builds without a release version.
var ErrDevBuild = errors.New("cannot update a development build")

// Release is a published version.
type Release struct {
	Version      string
	URL          string
	ReleaseNotes string
}

func isDev(v string) bool { return v == "" || v == "dev" }

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("creating release source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("creating updater: %w", err)
	}
	return updater, nil
}

// CheckForUpdate returns the latest release when it is newer than
// current, and nil for dev builds, unparseable versions or when current
// is up to date.
func CheckForUpdate(ctx context.Context, current, repo string) (*Release, error) {
	if isDev(current) {
		return nil, nil
	}
	cur, err := parseSemver(current)
	if err != nil {
		logging.Logger().Debug("skipping update check", "version", current, "error", err)
		return nil, nil
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("detecting latest release: %w", err)
	}
	if !found {
		return nil, nil
	}
	lv, err := semver.NewVersion(latest.Version())
	if err != nil || !lv.GreaterThan(cur) {
		return nil, nil
	}
	return &Release{
		Version:      latest.Version(),
		URL:          latest.URL,
		ReleaseNotes: latest.ReleaseNotes,
	}, nil
}

// Apply replaces the running executable with the latest release.
func Apply(ctx context.Context, current, repo string) (*Release, error) {
	if isDev(current) {
		return nil, ErrDevBuild
	}
	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, applyTimeout)
	defer cancel()

	rel, err := updater.UpdateSelf(ctx, strings.TrimPrefix(current, "v"), selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("updating: %w", err)
	}
	logging.Logger().Info("updated", "from", current, "to", rel.Version())
	return &Release{
		Version:      rel.Version(),
		URL:          rel.URL,
		ReleaseNotes: rel.ReleaseNotes,
	}, nil
}

// Summary is the line `modal version` prints after the version.
func Summary(current string, rel *Release) string {
	switch {
	case isDev(current):
		return "development build"
	case rel == nil:
		return "up to date"
	}
	return fmt.Sprintf("update available: %s (%s)", rel.Version, rel.URL)
}

// CompareVersions returns -1, 0 or 1 as current is older than, equal to
// or newer than latest. Unparseable versions sort before valid ones.
func CompareVersions(current, latest string) int {
	cv, errC := parseSemver(current)
	lv, errL := parseSemver(latest)
	switch {
	case errC != nil && errL != nil:
		return 0
	case errC != nil:
		return -1
	case errL != nil:
		return 1
	}
	return cv.Compare(lv)
}

// parseSemver accepts an optional "v" prefix; git-describe suffixes such
// as "0.1.0-3-gabcdef" parse as prereleases.
func parseSemver(s string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(s, "v"))
}
