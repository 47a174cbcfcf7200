package catalog

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBucket is where staged files are uploaded unless configured otherwise
const DefaultBucket = "resources"

// GenerateObjectName builds a collision resistant blob name:
// <unix millis>-<8 hex chars><lowercased extension of original>
func GenerateObjectName(original string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), suffix, ext)
}
