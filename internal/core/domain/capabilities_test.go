package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func flag(b bool) *bool { return &b }

func TestMediaType(t *testing.T) {
	assert.Equal(t, "video", MediaType("video/standard"))
	assert.Equal(t, "ctv", MediaType("CTV/Premium"))
	assert.Equal(t, "banner", MediaType("banner"))
	assert.Equal(t, "", MediaType("/weird"))
}

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name   string
		format string
		caps   PartnerCapabilities
		want   bool
	}{
		{"video supported", "video/standard", PartnerCapabilities{SupportsVideo: flag(true)}, true},
		{"video disabled", "video/standard", PartnerCapabilities{SupportsVideo: flag(false)}, false},
		{"video undeclared", "video/standard", PartnerCapabilities{}, false},
		{"audio supported", "audio/spot", PartnerCapabilities{SupportsAudio: flag(true)}, true},
		{"audio undeclared", "audio/spot", PartnerCapabilities{SupportsDisplay: flag(true)}, false},
		{"native supported", "native/feed", PartnerCapabilities{SupportsNative: flag(true)}, true},
		{"native disabled", "native/feed", PartnerCapabilities{SupportsNative: flag(false)}, false},
		{"ctv supported", "ctv/premium", PartnerCapabilities{SupportsCTV: flag(true)}, true},
		{"ctv undeclared", "ctv/premium", PartnerCapabilities{SupportsVideo: flag(true)}, false},
		{"display undeclared", "display/banner", PartnerCapabilities{}, true},
		{"display enabled", "display/banner", PartnerCapabilities{SupportsDisplay: flag(true)}, true},
		{"display disabled", "display/banner", PartnerCapabilities{SupportsDisplay: flag(false)}, false},
		{"unknown prefix allowed", "html5/interstitial", PartnerCapabilities{}, true},
		{"unknown prefix disabled display", "html5/interstitial", PartnerCapabilities{SupportsDisplay: flag(false)}, false},
		{"missing slash", "banner", PartnerCapabilities{}, true},
		{"case insensitive", "VIDEO/standard", PartnerCapabilities{SupportsVideo: flag(true)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCompatible(tt.format, tt.caps))
		})
	}
}

// TestIsCompatibleExhaustive walks every tri-state flag combination and
// checks each media type against the flag it is governed by.
func TestIsCompatibleExhaustive(t *testing.T) {
	states := []*bool{nil, flag(true), flag(false)}
	formats := []string{"video/x", "display/x", "audio/x", "native/x", "ctv/x", "unknown/x"}

	for _, v := range states {
		for _, d := range states {
			for _, a := range states {
				for _, n := range states {
					for _, c := range states {
						caps := PartnerCapabilities{SupportsVideo: v, SupportsDisplay: d, SupportsAudio: a, SupportsNative: n, SupportsCTV: c}
						for _, f := range formats {
							var want bool
							switch MediaType(f) {
							case "video":
								want = v != nil && *v
							case "audio":
								want = a != nil && *a
							case "native":
								want = n != nil && *n
							case "ctv":
								want = c != nil && *c
							default:
								want = d == nil || *d
							}
							got := IsCompatible(f, caps)
							if got != want {
								t.Fatalf("IsCompatible(%q, %+v) = %v, want %v", f, caps, got, want)
							}
							// deterministic
							assert.Equal(t, got, IsCompatible(f, caps))
						}
					}
				}
			}
		}
	}
}
