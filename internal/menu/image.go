package menu

import "strings"

// ImageURL maps a raw image reference to something an <img> tag can load.
// Empty references fall back to placeholder, absolute http(s) references pass
// through, and anything else is treated as a path relative to the API root.
func ImageURL(apiBaseURL, placeholder, ref string) string {
	if ref == "" {
		return placeholder
	}
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	return apiBaseURL + ref
}
