package utils

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "keeps everything when limit non-positive",
			input:  "hello world",
			limit:  0,
			expect: "hello world",
		},
		{
			name:   "shorter than limit",
			input:  "hello",
			limit:  10,
			expect: "hello",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "hello world",
			limit:  5,
			expect: "hello...",
		},
		{
			name:   "counts runes, not bytes",
			input:  "छात्रवृत्ति योजना",
			limit:  4,
			expect: "छात्...",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "  spaced  ",
			limit:  5,
			expect: "space...",
		},
		{
			name:   "flattens line breaks",
			input:  "Merit-based\n  scholarship\tfor engineers",
			limit:  0,
			expect: "Merit-based scholarship for engineers",
		},
		{
			name:   "limit applies after flattening",
			input:  "a\n\n\nbcdef",
			limit:  3,
			expect: "a b...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
