package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const maxBaseNameLen = 50

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9-_]`)

// GenerateObjectKey builds a collision-resistant storage key from the
// original filename: sanitized base name, millisecond timestamp and a short
// random suffix. Repeated uploads of the same file never contend for a key.
func GenerateObjectKey(originalFilename string) string {
	ext := "jpg"
	base := originalFilename
	if idx := strings.LastIndex(originalFilename, "."); idx >= 0 {
		if idx < len(originalFilename)-1 {
			ext = originalFilename[idx+1:]
		}
		base = originalFilename[:idx]
	}

	base = unsafeChars.ReplaceAllString(base, "-")
	if len(base) > maxBaseNameLen {
		base = base[:maxBaseNameLen]
	}

	return fmt.Sprintf("%s-%d-%s.%s", base, time.Now().UnixMilli(), randomSuffix(), ext)
}

func randomSuffix() string {
	b := make([]byte, 3)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// URLResolver recognizes URLs that point into the managed storage namespace
// and extracts object keys from them. Delete and view-presigning must agree
// on what "ours" means, so both go through this one predicate.
type URLResolver struct {
	hosts map[string]bool
}

func NewURLResolver(hosts ...string) *URLResolver {
	m := make(map[string]bool, len(hosts))
	for _, h := range hosts {
		if h == "" {
			continue
		}
		// accept full endpoint URLs as well as bare hosts
		if strings.Contains(h, "://") {
			if u, err := url.Parse(h); err == nil && u.Host != "" {
				m[u.Host] = true
				m[u.Hostname()] = true
				continue
			}
		}
		m[h] = true
	}
	return &URLResolver{hosts: m}
}

// IsManaged reports whether the URL's host belongs to the configured storage.
func (r *URLResolver) IsManaged(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return r.hosts[u.Hostname()] || r.hosts[u.Host]
}

// ObjectKey extracts the storage key from a managed URL: the final path
// segment with any query string stripped. Returns false for URLs outside the
// managed namespace or without a path.
func (r *URLResolver) ObjectKey(rawURL string) (string, bool) {
	if !r.IsManaged(rawURL) {
		return "", false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	segments := strings.Split(u.Path, "/")
	key := segments[len(segments)-1]
	if key == "" {
		return "", false
	}
	return key, true
}
