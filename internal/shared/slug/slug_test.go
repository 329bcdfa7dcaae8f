package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Vitamin D Benefits", "vitamin-d-benefits"},
		{"punctuation collapsed", "Omega-3: What's the Evidence?", "omega-3-what-s-the-evidence"},
		{"multiple spaces", "Best   Magnesium  Brands", "best-magnesium-brands"},
		{"leading and trailing junk", "  --Probiotics 101!  ", "probiotics-101"},
		{"uppercase", "FAQ About CoQ10", "faq-about-coq10"},
		{"non-ascii stripped", "Café au lait", "caf-au-lait"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.title))
		})
	}
}

func TestMake_LongTitleTrimmedOnWordBoundary(t *testing.T) {
	title := strings.Repeat("supplement ", 30)
	got := Make(title)

	assert.LessOrEqual(t, len(got), MaxLength)
	assert.True(t, IsValid(got), "trimmed slug must stay valid: %q", got)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestIsValid(t *testing.T) {
	valid := []string{"a", "vitamin-d", "omega-3-guide", "coq10"}
	for _, s := range valid {
		assert.True(t, IsValid(s), s)
	}

	invalid := []string{"", "-leading", "trailing-", "double--hyphen", "Upper", "with space", "with/slash", "..", strings.Repeat("a", MaxLength+1)}
	for _, s := range invalid {
		assert.False(t, IsValid(s), s)
	}
}
