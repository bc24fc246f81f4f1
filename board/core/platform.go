// ABOUTME: Platform identifies the short-form video network a script targets.
// ABOUTME: IG is the default; the tag class used by the views is the lower-cased code.
package core

import (
	"fmt"
	"strings"
)

// Platform is the target network for a script.
type Platform string

const (
	PlatformInstagram Platform = "IG"
	PlatformTikTok    Platform = "TT"
	PlatformYouTube   Platform = "YT"
	PlatformFacebook  Platform = "FB"
)

// Platforms lists every supported platform in form order.
var Platforms = []Platform{PlatformInstagram, PlatformTikTok, PlatformYouTube, PlatformFacebook}

// ParsePlatform converts a raw string into a Platform, rejecting unknown codes.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlatform, s)
	}
	return p, nil
}

// Valid reports whether p is a supported platform code.
func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// Class returns the lower-cased code used for tag styling.
func (p Platform) Class() string {
	return strings.ToLower(string(p))
}
