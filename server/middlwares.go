package server

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/solidground/facade/internal/ezhttp"
	"github.com/solidground/facade/internal/httperr"
)

func cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/assets/") || strings.HasPrefix(r.URL.Path, "/uploads/") {
			w.Header().Set(ezhttp.HeaderCacheControl, "public, max-age=86400")
		} else {
			w.Header().Set(ezhttp.HeaderCacheControl, "no-cache")
		}
		next.ServeHTTP(w, r)
	})
}

// RateLimit only throttles mutating methods. Reads are served from flat files
// and are cheap enough to leave alone.
func (s *Server) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			remoteAddr := strings.SplitN(r.RemoteAddr, ":", 2)[0]
			if slices.Contains(s.cfg.RateLimit.Whitelist, remoteAddr) {
				next.ServeHTTP(w, r)
				return
			}
			if slices.Contains(s.cfg.RateLimit.Blacklist, remoteAddr) {
				retryAfter := fmt.Sprintf("%.0f", s.cfg.RateLimit.Duration.Seconds())
				w.Header().Set(ezhttp.HeaderRetryAfter, retryAfter)
				s.error(w, r, httperr.TooManyRequests(ErrRateLimit))
				return
			}
			if s.rateLimitHandler != nil {
				s.rateLimitHandler(next).ServeHTTP(w, r)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// writeETag sets a strong ETag over body and answers If-None-Match with a
// 304. Returns true when the response is done.
func writeETag(w http.ResponseWriter, r *http.Request, body []byte) bool {
	etag := fmt.Sprintf("%q", fmt.Sprintf("%016x", xxhash.Sum64(body)))
	w.Header().Set(ezhttp.HeaderETag, etag)
	if match := r.Header.Get(ezhttp.HeaderIfNoneMatch); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}
