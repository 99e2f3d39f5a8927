// Package affiliate builds Amazon affiliate links and the disclosure text that
// must accompany them.
package affiliate

import (
	"fmt"
	"net/url"
	"strings"
)

// DisclosureLine is the FTC / Amazon Associates disclosure appended to every
// caption that carries an affiliate link.
const DisclosureLine = "As an Amazon Associate I earn from qualifying purchases. #ad"

// BuildLink constructs an Amazon search URL for the product, tagged with the
// affiliate id when one is provided.
func BuildLink(productName, affiliateTag string) string {
	query := url.Values{}
	query.Set("k", productName)
	if affiliateTag != "" {
		query.Set("tag", affiliateTag)
	}
	return "https://www.amazon.com/s?" + query.Encode()
}

// FormatForPlatform returns the link-plus-disclosure block appended to a
// platform caption. Link-hostile platforms point at the bio instead of
// embedding the raw URL.
func FormatForPlatform(platform, link string) string {
	switch strings.ToLower(platform) {
	case "tiktok", "instagram":
		return fmt.Sprintf("\n\n🔗 Link in bio!\n%s", DisclosureLine)
	case "twitter":
		return fmt.Sprintf("\n\n%s\n%s", link, DisclosureLine)
	default:
		return fmt.Sprintf("\n\nShop here: %s\n%s", link, DisclosureLine)
	}
}
