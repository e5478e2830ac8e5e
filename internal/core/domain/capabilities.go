package domain

import "strings"

// PartnerCapabilities describes which media types a sales agent accepts.
// A nil flag means the partner never declared it.
type PartnerCapabilities struct {
	SalesAgentID    string
	SupportsVideo   *bool
	SupportsDisplay *bool
	SupportsAudio   *bool
	SupportsNative  *bool
	SupportsCTV     *bool
}

// PartnerCandidate is a sales agent seen in recent tactic activity together
// with its (possibly empty) capability row.
type PartnerCandidate struct {
	SalesAgentID string
	Name         string
	Capabilities PartnerCapabilities
}

// MediaType returns the lower-cased part of format before the first slash.
func MediaType(format string) string {
	if i := strings.IndexByte(format, '/'); i >= 0 {
		format = format[:i]
	}
	return strings.ToLower(format)
}

// IsCompatible reports whether a partner with caps can receive a creative
// of the given format. Video, audio, native and ctv require an explicit
// true flag. Display and unknown media types are allowed unless the
// partner explicitly disabled display.
func IsCompatible(format string, caps PartnerCapabilities) bool {
	switch MediaType(format) {
	case "video":
		return isTrue(caps.SupportsVideo)
	case "audio":
		return isTrue(caps.SupportsAudio)
	case "native":
		return isTrue(caps.SupportsNative)
	case "ctv":
		return isTrue(caps.SupportsCTV)
	default:
		return caps.SupportsDisplay == nil || *caps.SupportsDisplay
	}
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
