package util

import (
	"net/url"
	"strings"
)

var trackingParams = map[string]bool{
	"gclid": true, "fbclid": true, "msclkid": true, "mkt_tok": true,
	"trk": true, "trackingid": true, "refid": true,
}

func isTrackingParam(key string) bool {
	k := strings.ToLower(key)
	return trackingParams[k] || strings.HasPrefix(k, "utm_") || strings.HasPrefix(k, "mc_")
}

// CanonicalURL lowercases scheme and host, drops fragments and tracking
// parameters, and encodes the query in key order. LinkedIn links keep only
// currentJobId, which is all that identifies the posting.
func CanonicalURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if raw == "" || err != nil {
		return raw
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	in := u.Query()
	out := url.Values{}
	linkedin := strings.HasSuffix(u.Hostname(), "linkedin.com")
	for k, vals := range in {
		switch {
		case linkedin && k != "currentJobId":
		case isTrackingParam(k):
		default:
			out[k] = vals
		}
	}
	// Encode sorts by key.
	u.RawQuery = out.Encode()
	return u.String()
}

// HostOf returns the lowercase host of raw without a leading "www.".
func HostOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
