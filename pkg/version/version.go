// Package version provides the semantic version value used to identify releases,
// augmented with the release metadata sourced from the issue tracker.
package version

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Version is a semantic version plus release metadata. It is immutable once
// constructed and ordered by standard semantic-version comparison.
type Version struct {
	base        *semver.Version
	released    bool
	releaseDate *time.Time
}

// Parse parses a semantic version string into a Version.
func Parse(s string) (*Version, error) {
	base, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidVersion, s, err)
	}
	return &Version{base: base}, nil
}

// MustParse parses a semantic version string and panics on failure.
func MustParse(s string) *Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// New creates a Version from its numeric parts.
func New(major, minor, patch uint64) *Version {
	return &Version{base: semver.New(major, minor, patch, "", "")}
}

// WithRelease returns a copy of the version carrying release metadata.
func (v *Version) WithRelease(released bool, releaseDate *time.Time) *Version {
	return &Version{
		base:        v.base,
		released:    released,
		releaseDate: releaseDate,
	}
}

// Major returns the major part of the version.
func (v *Version) Major() uint64 { return v.base.Major() }

// Minor returns the minor part of the version.
func (v *Version) Minor() uint64 { return v.base.Minor() }

// Patch returns the patch part of the version.
func (v *Version) Patch() uint64 { return v.base.Patch() }

// Prerelease returns the prerelease part of the version.
func (v *Version) Prerelease() string { return v.base.Prerelease() }

// Build returns the build metadata part of the version.
func (v *Version) Build() string { return v.base.Metadata() }

// Released reports whether the tracker marks this version as released.
func (v *Version) Released() bool { return v.released }

// ReleaseDate returns the release date recorded in the tracker, if any.
func (v *Version) ReleaseDate() *time.Time { return v.releaseDate }

// String renders the version in semantic-version form, suitable as a map key.
func (v *Version) String() string { return v.base.String() }

// Compare compares two versions per semantic-version ordering.
func (v *Version) Compare(other *Version) int { return v.base.Compare(other.base) }

// Equal reports whether two versions compare equal.
func (v *Version) Equal(other *Version) bool { return v.Compare(other) == 0 }

// LessThan reports whether v orders before other.
func (v *Version) LessThan(other *Version) bool { return v.Compare(other) < 0 }

// GreaterThan reports whether v orders after other.
func (v *Version) GreaterThan(other *Version) bool { return v.Compare(other) > 0 }

// SortDescending sorts versions in place from newest to oldest.
func SortDescending(versions []*Version) {
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].GreaterThan(versions[j])
	})
}

// versionJSON is the serialized form used by the tracker result cache.
type versionJSON struct {
	Version     string     `json:"version"`
	Released    bool       `json:"released"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (v *Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(versionJSON{
		Version:     v.String(),
		Released:    v.released,
		ReleaseDate: v.releaseDate,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Version) UnmarshalJSON(data []byte) error {
	var serialized versionJSON
	if err := json.Unmarshal(data, &serialized); err != nil {
		return err
	}
	base, err := semver.NewVersion(serialized.Version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidVersion, serialized.Version, err)
	}
	v.base = base
	v.released = serialized.Released
	v.releaseDate = serialized.ReleaseDate
	return nil
}
