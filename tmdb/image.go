package tmdb

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidImagePath is returned by ImageURL for a poster path that is not a
// single absolute path segment such as "/abc123.jpg".
var ErrInvalidImagePath = errors.New("tmdb: invalid image path")

// ImageURL joins the CDN prefix base with a provider poster path. An empty
// path yields an empty URL and no error.
func ImageURL(base, posterPath string) (string, error) {
	posterPath = strings.TrimSpace(posterPath)
	if posterPath == "" {
		return "", nil
	}

	b, err := url.Parse(base)
	if err != nil || (b.Scheme != "http" && b.Scheme != "https") || b.Host == "" {
		return "", fmt.Errorf("tmdb: image base %q is not an absolute http(s) url", base)
	}

	p, err := url.Parse(posterPath)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidImagePath, posterPath, err)
	}
	if p.Scheme != "" || p.Host != "" || p.RawQuery != "" || p.Fragment != "" ||
		!strings.HasPrefix(p.Path, "/") || strings.Count(p.Path, "/") != 1 {
		return "", fmt.Errorf("%w: %q", ErrInvalidImagePath, posterPath)
	}
	switch p.Path[1:] {
	case "", ".", "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidImagePath, posterPath)
	}

	return strings.TrimRight(base, "/") + p.EscapedPath(), nil
}
