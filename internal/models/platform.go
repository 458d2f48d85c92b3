package models

// Platform identifies one of the supported social networks.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
)

// Platforms lists every supported platform id.
var Platforms = []Platform{
	PlatformTwitter,
	PlatformFacebook,
	PlatformLinkedIn,
	PlatformInstagram,
	PlatformTikTok,
}

// IsValid reports whether p is a member of the supported platform set.
func (p Platform) IsValid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}
