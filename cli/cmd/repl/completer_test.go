package repl

import "testing"

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		cursor int
		word   string
		start  int
		end    int
	}{
		{
			name:   "cursor at end of word",
			input:  "coun",
			cursor: 4,
			word:   "coun",
			start:  0,
			end:    4,
		},
		{
			name:   "cursor mid-word extends both directions",
			input:  "count",
			cursor: 2,
			word:   "count",
			start:  0,
			end:    5,
		},
		{
			name:   "word after assignment",
			input:  "x = cou",
			cursor: 7,
			word:   "cou",
			start:  4,
			end:    7,
		},
		{
			name:   "cursor on boundary yields empty word",
			input:  "x = ",
			cursor: 4,
			word:   "",
			start:  4,
			end:    4,
		},
		{
			name:   "digits delimit words",
			input:  "x1y",
			cursor: 1,
			word:   "x",
			start:  0,
			end:    1,
		},
		{
			name:   "word inside call parentheses",
			input:  "print(cou)",
			cursor: 9,
			word:   "cou",
			start:  6,
			end:    9,
		},
		{
			name:   "cursor past end is clamped",
			input:  "abc",
			cursor: 99,
			word:   "abc",
			start:  0,
			end:    3,
		},
		{
			name:   "empty input",
			input:  "",
			cursor: 0,
			word:   "",
			start:  0,
			end:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)

			if word != tt.word || start != tt.start || end != tt.end {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.word, tt.start, tt.end)
			}
		})
	}
}
