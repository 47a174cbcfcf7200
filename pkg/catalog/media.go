package catalog

import (
	"regexp"

	"resource-catalog/pkg/models"
)

var videoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([^&]+)`),
	regexp.MustCompile(`youtu\.be/([^?]+)`),
	regexp.MustCompile(`vimeo\.com/(\d+)`),
	regexp.MustCompile(`(?i)\.mp4$`),
	regexp.MustCompile(`(?i)\.webm$`),
	regexp.MustCompile(`(?i)\.ogg$`),
}

var youtubeID = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&\n?#]+)`)

// IsVideoURL reports whether url points at a playable video
func IsVideoURL(url string) bool {
	for _, p := range videoPatterns {
		if p.MatchString(url) {
			return true
		}
	}
	return false
}

// VideoThumbnail returns the preview image for YouTube links, or "" when none exists
func VideoThumbnail(url string) string {
	m := youtubeID.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return "https://img.youtube.com/vi/" + m[1] + "/maxresdefault.jpg"
}

// EmbedURL returns the YouTube player URL for url, or url itself
func EmbedURL(url string) string {
	m := youtubeID.FindStringSubmatch(url)
	if m == nil {
		return url
	}
	return "https://www.youtube.com/embed/" + m[1] + "?autoplay=1&rel=0"
}

// IsVideo reports whether r is a link to a video
func IsVideo(r models.Resource) bool {
	return r.Type == models.ResourceTypeLink && r.URL != nil && IsVideoURL(*r.URL)
}

// TypeIcon is the fallback glyph shown when no thumbnail is available
func TypeIcon(t models.ResourceType) string {
	switch t {
	case models.ResourceTypeLink:
		return "🔗"
	case models.ResourceTypeDocument:
		return "📄"
	default:
		return "📁"
	}
}
