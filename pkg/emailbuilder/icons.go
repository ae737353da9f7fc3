package emailbuilder

// socialIconBasePath is where the bundled icon set is served from
const socialIconBasePath = "/assets/social-icons"

// socialIconFiles maps network names onto the bundled icon set. Unknown
// networks fall back to a generic glyph.
var socialIconFiles = map[string]string{
	"facebook":  "facebook.png",
	"instagram": "instagram.png",
	"whatsapp":  "whatsapp.png",
	"twitter":   "x.png",
	"linkedin":  "linkedin.png",
	"youtube":   "youtube.png",
	"reddit":    "reddit.png",
	"pinterest": "pinterest.png",
	"tiktok":    "tiktok.png",
	"telegram":  "telegram.png",
	"discord":   "discord.png",
	"github":    "github.png",
	"snapchat":  "snapchat.png",
}

// genericSocialIconFile is the placeholder glyph for unrecognized networks
const genericSocialIconFile = "globe.png"

// DefaultSocialURL returns the conventional profile URL used when a network
// is added without an address.
func DefaultSocialURL(network string) string {
	urls := map[string]string{
		"facebook":  "https://facebook.com",
		"instagram": "https://instagram.com",
		"whatsapp":  "https://whatsapp.com",
		"twitter":   "https://twitter.com",
		"linkedin":  "https://linkedin.com",
		"youtube":   "https://youtube.com",
		"reddit":    "https://reddit.com",
		"pinterest": "https://pinterest.com",
		"tiktok":    "https://tiktok.com",
		"telegram":  "https://t.me",
		"discord":   "https://discord.com",
		"github":    "https://github.com",
		"snapchat":  "https://snapchat.com",
	}
	if u, ok := urls[network]; ok {
		return u
	}
	return "https://"
}

// KnownSocialNetworks lists the networks of the bundled icon set
func KnownSocialNetworks() []string {
	return []string{
		"facebook", "instagram", "whatsapp", "twitter", "linkedin",
		"youtube", "reddit", "pinterest", "tiktok", "telegram",
		"discord", "github", "snapchat",
	}
}

// ResolveSocialIcon resolves a social link to a static icon source and alt
// text. Custom entries use their uploaded icon when present and an empty
// source otherwise, which callers render as a placeholder glyph. Unknown
// networks resolve to the bundled generic icon.
func ResolveSocialIcon(link SocialLink) (src, alt string) {
	if link.Network == "custom" {
		return link.IconSrc, "custom"
	}
	if file, ok := socialIconFiles[link.Network]; ok {
		return socialIconBasePath + "/" + file, link.Network
	}
	return socialIconBasePath + "/" + genericSocialIconFile, link.Network
}
