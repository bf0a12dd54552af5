package prefs

import (
	"fmt"
	"strings"
)

// NormalizeURL turns address-bar input into the URL to load and the text to
// show. https:// is added when no scheme is given, unsafe characters are
// percent-encoded, and any google.com address maps to the embeddable home page.
func NormalizeURL(raw string) (url, display string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", false
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	url = encodeURI(raw)
	if strings.Contains(url, "google.com") {
		return HomeURL, HomeDisplayURL, true
	}
	return url, url, true
}

// encodeURI escapes every byte outside the URI reserved and unreserved sets.
func encodeURI(s string) string {
	const keep = ";,/?:@&=+$-_.!~*'()#"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case strings.IndexByte(keep, c) >= 0:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
