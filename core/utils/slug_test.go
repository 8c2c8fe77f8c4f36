package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Simple", "Burger", "burger"},
		{"Spaces", "The Golden Spoon", "the-golden-spoon"},
		{"Mixed separators", "fish_and/chips", "fish-and-chips"},
		{"Punctuation dropped", "Café! — №1", "caf-1"},
		{"Collapsed hyphens", "a  -  b", "a-b"},
		{"Leading trailing", "  -bar-  ", "bar"},
		{"Empty falls back", "!!!", "menu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugWithSuffix(t *testing.T) {
	s := SlugWithSuffix("burger")
	assert.Regexp(t, `^burger-\d{4}$`, s)
}

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"12.99", "12.99", false},
		{" 2.5 ", "2.5", false},
		{"2,50", "2.50", false},
		{"007", "7", false},
		{"0", "0", false},
		{"", "", true},
		{"12.999", "", true},
		{".99", "", true},
		{"12.", "", true},
		{"abc", "", true},
		{"-5", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizePrice(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
