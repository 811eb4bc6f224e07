package share

import (
	"fmt"
	"net/url"
	"strings"
)

type Platform string

const (
	PlatformTwitter  Platform = "twitter"
	PlatformFacebook Platform = "facebook"
	PlatformLinkedIn Platform = "linkedin"
	PlatformTelegram Platform = "telegram"
)

// Platforms is the display order of the share buttons.
func Platforms() []Platform {
	return []Platform{PlatformTwitter, PlatformFacebook, PlatformLinkedIn, PlatformTelegram}
}

func ParsePlatform(v string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(v)))
	for _, known := range Platforms() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown share platform %q", v)
}

func (p Platform) Label() string {
	switch p {
	case PlatformTwitter:
		return "🐦 Twitter"
	case PlatformFacebook:
		return "📘 Facebook"
	case PlatformLinkedIn:
		return "💼 LinkedIn"
	case PlatformTelegram:
		return "✈️ Telegram"
	default:
		return string(p)
	}
}

// Content is the message posted with a share. An empty league name means the
// platform itself is being shared.
func Content(leagueName, shareURL string) string {
	if strings.TrimSpace(leagueName) != "" {
		return fmt.Sprintf("Check out this amazing trading league: %s! Join me on Pump69 and let's compete together! %s", leagueName, shareURL)
	}
	return fmt.Sprintf("Join me on Pump69 - the ultimate trading platform! Compete in leagues and win amazing prizes! %s", shareURL)
}

// IntentURL is the page opened after a successful share. Only twitter and
// facebook have one.
func IntentURL(p Platform, content, shareURL string) (string, bool) {
	switch p {
	case PlatformTwitter:
		return "https://twitter.com/intent/tweet?text=" + encodeComponent(content), true
	case PlatformFacebook:
		return "https://facebook.com/sharer/sharer.php?u=" + encodeComponent(shareURL), true
	default:
		return "", false
	}
}

func encodeComponent(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

// Result is the answer of the share collaborator.
type Result struct {
	Success   bool     `json:"success"`
	Platform  Platform `json:"platform" validate:"required"`
	SharedURL string   `json:"sharedUrl" validate:"required_if=Success true"`
}
