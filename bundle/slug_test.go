package bundle

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces", "Sales Automation Tools", "sales_automation_tools"},
		{"punctuation runs", "Go --- the good parts!!", "go_the_good_parts"},
		{"already clean", "kubernetes", "kubernetes"},
		{"leading trailing junk", "  ...Hello World?  ", "hello_world"},
		{"digits kept", "Top 10 CLIs of 2024", "top_10_clis_of_2024"},
		{"empty", "", ""},
		{"only junk", "!!!???", ""},
		{"unicode collapses", "café über alles", "caf_ber_alles"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("abcde ", 20)
	got := Slugify(long)
	assert.LessOrEqual(t, len(got), 60)
	assert.False(t, strings.HasSuffix(got, "_"), "no trailing underscore after truncation")
}

func TestSlugifyShape(t *testing.T) {
	// Output must contain only [a-z0-9_], no doubled or edge underscores.
	valid := regexp.MustCompile(`^$|^[a-z0-9](?:_?[a-z0-9])*$`)
	inputs := []string{
		"Hello, World!",
		"__private__",
		"a--b__c//d",
		"MiXeD CaSe 42",
		strings.Repeat("x_", 100),
	}
	for _, in := range inputs {
		got := Slugify(in)
		assert.Regexp(t, valid, got, "input %q", in)
		assert.LessOrEqual(t, len(got), 60)
	}
}
