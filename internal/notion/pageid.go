package notion

import "strings"

// PageURLBase is the public URL prefix Notion uses for pages.
const PageURLBase = "https://www.notion.so/"

// PageURL builds the canonical public URL for a page identifier:
// the base URL followed by the identifier with hyphens stripped.
// Inverse of PageIDFromURL.
func PageURL(pageID string) string {
	return PageURLBase + strings.ReplaceAll(pageID, "-", "")
}

// PageIDFromURL recovers the hyphenated page identifier from a page URL.
// The identifier is the trailing 32 hex characters of the last path
// segment, regrouped as 8-4-4-4-12. Returns ErrMalformedPageURL when the
// URL does not end in a valid identifier.
func PageIDFromURL(rawURL string) (string, error) {
	seg := rawURL
	if i := strings.LastIndex(seg, "/"); i >= 0 {
		seg = seg[i+1:]
	}
	if i := strings.IndexAny(seg, "?#"); i >= 0 {
		seg = seg[:i]
	}
	if len(seg) < 32 {
		return "", ErrMalformedPageURL
	}

	hexPart := seg[len(seg)-32:]
	for _, r := range hexPart {
		if !isHexChar(r) {
			return "", ErrMalformedPageURL
		}
	}

	return hexPart[0:8] + "-" + hexPart[8:12] + "-" + hexPart[12:16] + "-" + hexPart[16:20] + "-" + hexPart[20:32], nil
}

func isHexChar(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
