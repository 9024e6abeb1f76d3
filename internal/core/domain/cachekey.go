package domain

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Wildcard matches any single key segment in a pattern.
const Wildcard = "*"

// CacheKey is an ordered tuple of strings identifying a cached resource or
// resource collection, e.g. ["projects"] or ["personas", projectID].
// Keys form a prefix hierarchy: a pattern matches every key it is a
// (wildcard-aware) prefix of.
type CacheKey []string

// NewCacheKey builds a key from its segments.
func NewCacheKey(parts ...string) CacheKey {
	return CacheKey(parts)
}

// Canonical key constructors. Collections use the bare kind segment;
// individual resources append their id.
func KeyProjects() CacheKey                 { return CacheKey{"projects"} }
func KeyProject(id string) CacheKey         { return CacheKey{"projects", id} }
func KeyPersonas(projectID string) CacheKey { return CacheKey{"personas", projectID} }
func KeyFocusGroups(projectID string) CacheKey {
	return CacheKey{"focus-groups", projectID}
}
func KeyDashboard() CacheKey { return CacheKey{"dashboard", "summary"} }

// Wildcard patterns covering every nested key of a kind.
func KeyAllPersonas() CacheKey    { return CacheKey{"personas", Wildcard} }
func KeyAllFocusGroups() CacheKey { return CacheKey{"focus-groups", Wildcard} }
func KeyAllDashboard() CacheKey   { return CacheKey{"dashboard", Wildcard} }

// String returns the canonical slash-joined form used for map indexing.
func (k CacheKey) String() string {
	return strings.Join(k, "/")
}

// Hash returns a stable 64-bit hash of the canonical form. Used by the
// coordinator's per-key-set lock table.
func (k CacheKey) Hash() uint64 {
	return xxhash.Sum64String(k.String())
}

// Equal reports whether two keys are segment-for-segment identical.
func (k CacheKey) Equal(other CacheKey) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// Matches reports whether the key is covered by the given pattern.
// A pattern covers a key when it is no longer than the key and every
// pattern segment equals the corresponding key segment or is the wildcard.
// The pattern ["personas", "*"] therefore covers ["personas", "p1"], and
// the pattern ["dashboard"] covers ["dashboard"] and ["dashboard", "jobs"].
func (k CacheKey) Matches(pattern CacheKey) bool {
	if len(pattern) > len(k) {
		return false
	}
	for i, seg := range pattern {
		if seg != Wildcard && seg != k[i] {
			return false
		}
	}
	return true
}
