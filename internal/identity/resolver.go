package identity

import (
	"regexp"
	"strings"

	"github.com/crewhq/crewhq-backend/internal/auth/token"
)

// handleMaxLen caps derived handles so they stay mention- and URL-safe.
const handleMaxLen = 32

var handleDisallowed = regexp.MustCompile(`[^a-z0-9_.-]+`)

// Handle derives a mention-safe slug from a display name: lowercase, runs
// of disallowed characters collapsed to a single "-", trimmed and truncated.
// Deriving a handle from its own output returns it unchanged.
func Handle(name string) string {
	h := strings.ToLower(name)
	h = handleDisallowed.ReplaceAllString(h, "-")
	h = strings.Trim(h, "-")
	if len(h) > handleMaxLen {
		h = strings.Trim(h[:handleMaxLen], "-")
	}
	return h
}

// candidateDisplayName picks the first non-empty human name field from the
// claims, falling back to email and finally the subject itself.
func candidateDisplayName(claims *token.Claims) string {
	for _, v := range []string{claims.Name, claims.Nickname, claims.PreferredUsername, claims.Email} {
		if v != "" {
			return v
		}
	}
	return claims.Subject
}

// meaningful reports whether a display name candidate is a real human-
// readable value: non-empty, not the raw subject, and not shaped like a
// provider-qualified subject identifier (e.g. "google-oauth2|1234").
func meaningful(candidate, subject string) bool {
	if candidate == "" || candidate == subject {
		return false
	}
	return !strings.Contains(candidate, "|")
}

// Resolve computes the profile values to persist and show for a verified
// claim set, given the profile currently on file (nil when none exists).
//
// Precedence: a meaningful candidate always wins; a non-meaningful one
// never overwrites a stored profile, but on first write the candidate is
// stored regardless so the profile is never blank. The handle follows the
// display name, re-derived only when the display name actually changed.
// Email and picture keep their stored values when the claim is absent.
func Resolve(claims *token.Claims, existing *Profile) Resolved {
	candidate := candidateDisplayName(claims)
	ok := meaningful(candidate, claims.Subject)

	r := Resolved{
		Email:          claims.Email,
		PictureURL:     claims.Picture,
		NameMeaningful: ok,
	}

	if existing == nil {
		r.DisplayName = candidate
		r.Handle = Handle(candidate)
		return r
	}

	if ok && candidate != existing.DisplayName {
		r.DisplayName = candidate
		r.Handle = Handle(candidate)
	} else {
		r.DisplayName = existing.DisplayName
		r.Handle = existing.Handle
	}
	if r.Email == "" {
		r.Email = existing.Email
	}
	if r.PictureURL == "" {
		r.PictureURL = existing.PictureURL
	}
	return r
}
