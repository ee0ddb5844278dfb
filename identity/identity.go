// Package identity derives stable item identifiers so that the same article
// seen across independent fetches maps to the same database row.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// hashLen is the number of hex characters kept from the URL hash. 64 bits is
// an accepted collision tradeoff for compact ids; widen here if needed.
const hashLen = 16

// maxGUIDLen is the longest raw GUID reused verbatim. Anything longer is
// assumed to be a URL or other unbounded token and goes through the hash path.
const maxGUIDLen = 16

// GUID is an origin-asserted item identifier as carried by a feed.
type GUID struct {
	Value       string
	IsPermaLink bool
}

// Derive builds a stable id from the source name, an optional origin GUID and
// the canonical article URL. Identical inputs always yield identical ids. The
// source slug prefix keeps two sources from colliding even when they share a
// URL or GUID space.
func Derive(sourceName string, guid *GUID, url string) string {
	slug := Slug(sourceName)

	var token string
	switch {
	case guid == nil:
		token = "hash-" + hashURL(url)
	case guid.IsPermaLink || len(guid.Value) > maxGUIDLen:
		// Permalink GUIDs are just URLs and long GUIDs are unbounded,
		// neither is trustworthy as a compact token.
		token = "hash-" + hashURL(url)
	default:
		sanitized := sanitizeGUID(guid.Value)
		if sanitized == "" {
			token = "hash-" + hashURL(url)
		} else {
			token = "guid-" + sanitized
		}
	}

	return slug + "-" + token
}

// Slug lowercases a source name and replaces spaces with hyphens.
func Slug(sourceName string) string {
	return strings.ReplaceAll(strings.ToLower(sourceName), " ", "-")
}

func hashURL(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])[:hashLen]
}

// sanitizeGUID keeps alphanumerics, '-' and '_', truncated to maxGUIDLen.
func sanitizeGUID(guid string) string {
	var b strings.Builder
	for _, r := range guid {
		if b.Len() >= maxGUIDLen {
			break
		}
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
