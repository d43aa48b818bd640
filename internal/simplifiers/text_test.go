package simplifiers

import (
	"strings"
	"testing"
)

func TestNormalizeUnicode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "NFC normalization combines characters",
			input: "e\u0301", // é as two characters
			want:  "é",       // é as single character
		},
		{
			name:  "compatibility characters are kept",
			input: "x² ﬁle",
			want:  "x² ﬁle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeUnicode(tt.input); got != tt.want {
				t.Errorf("NormalizeUnicode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripCitations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "numeric markers",
			input: "Paris is a city[12] in France[3].",
			want:  "Paris is a city in France.",
		},
		{
			name:  "non-numeric brackets are kept",
			input: "a[note 1] b[a] c[]",
			want:  "a[note 1] b[a] c[]",
		},
		{
			name:  "adjacent markers",
			input: "claim[1][2][345].",
			want:  "claim.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCitations(tt.input); got != tt.want {
				t.Errorf("StripCitations() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCondense(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "clean input is only trimmed",
			input: "  Paris is a city.\nIt is in France.  ",
			want:  "Paris is a city.\nIt is in France.",
		},
		{
			name:  "citations removed without extra whitespace",
			input: "Paris is a city[12] in France[3].",
			want:  "Paris is a city in France.",
		},
		{
			name:  "blank runs become pilcrow markers",
			input: "Intro.\n\nMore.\n\n\n\nLast.",
			want:  "Intro. ¶ More. ¶ Last.",
		},
		{
			name:  "single newlines are kept",
			input: "Intro.\nMore.",
			want:  "Intro.\nMore.",
		},
		{
			name:  "trailing marker is trimmed",
			input: "Intro.\n\nMore.\n\n",
			want:  "Intro. ¶ More.",
		},
		{
			name:  "trailing marker after citation",
			input: "Intro.[4]\n\n",
			want:  "Intro.",
		},
		{
			name:  "text ending in other characters is untouched",
			input: "Intro. ¶ More!",
			want:  "Intro. ¶ More!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Condense(tt.input); got != tt.want {
				t.Errorf("Condense() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCondenseIsSingleLineForParagraphs(t *testing.T) {
	input := strings.Join([]string{"One[1].", "Two.", "Three[22]."}, "\n\n")
	got := Condense(input)
	if strings.Contains(got, "\n") {
		t.Errorf("Condense() left a newline: %q", got)
	}
	if got != "One. ¶ Two. ¶ Three." {
		t.Errorf("Condense() = %q", got)
	}
}
