package normalize

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining diacritical marks,
// so "Tétouan" becomes "Tetouan" before slug collapsing. Transformers carry
// internal buffers and are not safe to share, so each call builds its own.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Slugify converts a display string into a URL-safe slug: lowercase,
// diacritics stripped, every run of non [a-z0-9] collapsed to a single
// hyphen, leading/trailing hyphens trimmed. Idempotent, total, and safe for
// concurrent use.
func Slugify(text string) string {
	lowered := strings.ToLower(text)

	stripped, _, err := transform.String(stripMarks(), lowered)
	if err != nil {
		// Transform only fails on malformed UTF-8; the collapsing pass
		// below handles those bytes as separators anyway.
		stripped = lowered
	}

	var b strings.Builder
	b.Grow(len(stripped))
	pendingHyphen := false
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// ParseList splits a comma-separated cell into trimmed, non-empty segments.
// Empty or whitespace-only input yields an empty list.
func ParseList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ParseBool reads the loose truthy tokens the spreadsheet uses. Only
// "true", "yes" and "1" (any casing) are true; everything else, including
// the empty cell, is false.
func ParseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// ParseNumber parses a cell as a float, falling back to def when the cell
// is empty or unparseable.
func ParseNumber(raw string, def float64) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return def
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(n) {
		return def
	}
	return n
}
