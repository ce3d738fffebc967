package service

import (
	"Chronicle/internal/model"
	"time"
)

// PostVisibleAt reports whether a post is publicly visible at the given
// instant: the post is published, its category (when set) is published, and
// its publish date is not in the future. This is the single point decision
// behind every listing and the detail fetch; the SQL counterpart lives in
// the post repository's visibility scope. now must be read per request,
// never cached at startup.
func PostVisibleAt(p *model.Post, now time.Time) bool {
	if p == nil || !p.IsPublished || p.PubDate.After(now) {
		return false
	}
	if p.Category != nil && !p.Category.IsPublished {
		return false
	}
	return true
}

// AccessDecision is the outcome of the ownership guard.
type AccessDecision int

const (
	Allowed AccessDecision = iota
	OwnerMismatch
	Unauthenticated
)

// AuthorizeOwner is the one guard for every Post and Comment mutation:
// the resource's author must equal the current viewer.
func AuthorizeOwner(authorID, viewerID uint64) AccessDecision {
	if viewerID == 0 {
		return Unauthenticated
	}
	if authorID != viewerID {
		return OwnerMismatch
	}
	return Allowed
}
