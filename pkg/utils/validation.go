package utils

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrURLRequired = errors.New("a URL is required for links")
	ErrURLInvalid  = errors.New("URL must be an absolute http(s) address")
)

// ValidateURL trims raw and checks it is an absolute http or https URL
// with a host. The trimmed value is returned.
func ValidateURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrURLRequired
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return "", ErrURLInvalid
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return s, nil
	}
	return "", ErrURLInvalid
}

// CleanTags trims tags and drops blank entries, keeping order and duplicates
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
