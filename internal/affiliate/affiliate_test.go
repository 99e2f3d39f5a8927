package affiliate

import (
	"strings"
	"testing"
)

func TestBuildLink(t *testing.T) {
	link := BuildLink("Glow Serum 2000", "promo-20")
	if !strings.HasPrefix(link, "https://www.amazon.com/s?") {
		t.Errorf("unexpected link base: %q", link)
	}
	if !strings.Contains(link, "k=Glow+Serum+2000") {
		t.Errorf("product not encoded: %q", link)
	}
	if !strings.Contains(link, "tag=promo-20") {
		t.Errorf("affiliate tag missing: %q", link)
	}
}

func TestBuildLinkWithoutTag(t *testing.T) {
	link := BuildLink("Glow Serum", "")
	if strings.Contains(link, "tag=") {
		t.Errorf("empty tag rendered: %q", link)
	}
}

func TestFormatForPlatform(t *testing.T) {
	link := "https://www.amazon.com/s?k=x"

	cases := []struct {
		platform string
		want     string
	}{
		{"tiktok", "Link in bio"},
		{"instagram", "Link in bio"},
		{"twitter", link},
		{"youtube", "Shop here"},
		{"facebook", "Shop here"},
	}
	for _, c := range cases {
		got := FormatForPlatform(c.platform, link)
		if !strings.Contains(got, c.want) {
			t.Errorf("%s block missing %q: %q", c.platform, c.want, got)
		}
		if !strings.Contains(got, DisclosureLine) {
			t.Errorf("%s block missing disclosure: %q", c.platform, got)
		}
	}
}
