// Package imagex handles the inline image format used on the wire:
// "data:<content-type>;base64,<payload>". It is shared by the blob service,
// the sync engine and the CLI.
package imagex

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/adventures/internal/common"
)

var inlineRe = regexp.MustCompile(`^data:([A-Za-z0-9.+/-]+);base64,(.+)$`)

// IsInline reports whether the reference is an inline payload rather than
// a URL.
func IsInline(ref string) bool {
	return strings.HasPrefix(ref, "data:")
}

// ParseInline splits an inline payload into its content type and decoded
// bytes. Anything that does not match the self-describing format, including
// broken base64, fails with common.ErrInvalidImageFormat.
func ParseInline(payload string) (string, []byte, error) {
	matches := inlineRe.FindStringSubmatch(payload)
	if len(matches) != 3 {
		return "", nil, fmt.Errorf("%w: not a base64 data url", common.ErrInvalidImageFormat)
	}

	data, err := base64.StdEncoding.DecodeString(matches[2])
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", common.ErrInvalidImageFormat, err)
	}

	return matches[1], data, nil
}

// EncodeInline builds an inline payload from raw bytes.
func EncodeInline(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Extension derives a file extension from a content type, defaulting to
// "jpg" when the type carries no subtype.
func Extension(contentType string) string {
	parts := strings.SplitN(contentType, "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "jpg"
	}
	return parts[1]
}
