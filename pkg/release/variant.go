package release

import (
	"fmt"

	"github.com/lerenn/release-manager/pkg/version"
)

// Kind identifies the release variant.
type Kind int

// Release variants.
const (
	KindMajor Kind = iota
	KindMinor
	KindPatch
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindMajor:
		return "major"
	case KindMinor:
		return "minor"
	case KindPatch:
		return "patch"
	default:
		return "unknown"
	}
}

// variant resolves the behavior that differs between release kinds: the
// maintenance branch naming rule and which versions are eligible siblings for
// previous/next navigation.
type variant interface {
	kind() Kind
	branch(v *version.Version, mainline string) string
	siblings(all []*version.Version) []*version.Version
}

// selectVariant dispatches on the version numbers. Pre-1.0 minor releases are
// treated as major releases.
func selectVariant(v *version.Version) variant {
	switch {
	case v.Patch() == 0 && (v.Minor() == 0 || v.Major() == 0):
		return majorVariant{}
	case v.Patch() == 0:
		return minorVariant{}
	default:
		return patchVariant{}
	}
}

// isMajor reports whether a version identifies a major release.
func isMajor(v *version.Version) bool {
	return v.Patch() == 0 && (v.Minor() == 0 || v.Major() == 0)
}

type majorVariant struct{}

func (majorVariant) kind() Kind { return KindMajor }

func (majorVariant) branch(_ *version.Version, mainline string) string {
	return mainline
}

// siblings of a major release are the major releases only.
func (majorVariant) siblings(all []*version.Version) []*version.Version {
	var filtered []*version.Version
	for _, v := range all {
		if isMajor(v) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

type minorVariant struct{}

func (minorVariant) kind() Kind { return KindMinor }

func (minorVariant) branch(v *version.Version, _ string) string {
	return fmt.Sprintf("maint-%d.x.x", v.Major())
}

// siblings of a minor release are the major and minor releases.
func (minorVariant) siblings(all []*version.Version) []*version.Version {
	var filtered []*version.Version
	for _, v := range all {
		if v.Patch() == 0 {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

type patchVariant struct{}

func (patchVariant) kind() Kind { return KindPatch }

func (patchVariant) branch(v *version.Version, _ string) string {
	return fmt.Sprintf("maint-%d.%d.x", v.Major(), v.Minor())
}

// siblings of a patch release are all versions.
func (patchVariant) siblings(all []*version.Version) []*version.Version {
	return all
}
