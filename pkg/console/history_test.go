package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_Record(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "adjacent duplicates collapse",
			input: []string{"help", "help"},
			want:  []string{"help"},
		},
		{
			name:  "non adjacent duplicates kept",
			input: []string{"help", "list", "help"},
			want:  []string{"help", "list", "help"},
		},
		{
			name:  "empty lines dropped",
			input: []string{"", "list", "", "list", ""},
			want:  []string{"list"},
		},
		{
			name:  "lines kept verbatim",
			input: []string{"add  word  ", "add word"},
			want:  []string{"add  word  ", "add word"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory()
			for _, line := range tt.input {
				h.Record(line)
			}

			var got []string
			for i, e := range h.All() {
				assert.Equal(t, i+1, e.Index)
				got = append(got, e.Line)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), h.Len())
		})
	}
}

func TestHistory_Get(t *testing.T) {
	h := NewHistory()
	h.Record("first")
	h.Record("second")

	tests := []struct {
		n      int
		want   string
		wantOK bool
	}{
		{n: 1, want: "first", wantOK: true},
		{n: 2, want: "second", wantOK: true},
		{n: 0},
		{n: -1},
		{n: 3},
	}

	for _, tt := range tests {
		got, ok := h.Get(tt.n)
		assert.Equal(t, tt.wantOK, ok, "index %d", tt.n)
		assert.Equal(t, tt.want, got, "index %d", tt.n)
	}
}
