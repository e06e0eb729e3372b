package handlers

import (
	"context"

	"github.com/fleetra/site/cache"
	"github.com/fleetra/site/submission"
)

// Relay forwards a decoded submission to the downstream APIs.
type Relay interface {
	Ready() bool
	Submit(ctx context.Context, sub submission.Submission) (submission.Response, error)
}

var (
	relay     Relay
	pageCache *cache.Cache[[]byte]
)

// SetRelay installs the form relay used by the submit endpoint.
func SetRelay(r Relay) {
	relay = r
}

// SetPageCache installs the cache for rendered page bodies. Pages render
// uncached until it is set.
func SetPageCache(c *cache.Cache[[]byte]) {
	pageCache = c
}
