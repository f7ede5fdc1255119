package service

import (
	"fmt"
	"strings"

	"github.com/pcharbonneau/muniboard/internal/domain"
)

// slugify normalizes a user-supplied identifier into the canonical slug form
// used for all municipality-scoped IDs: lowercase, hyphen-separated, ASCII
// letters and digits only. "Saint-Lambert Est" becomes "saint-lambert-est".
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphens
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// requireSlug slugifies s and rejects inputs that normalize to nothing.
func requireSlug(field, s string) (string, error) {
	slug := slugify(s)
	if slug == "" {
		return "", fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	return slug, nil
}
