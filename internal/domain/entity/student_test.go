package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantLast  string
	}{
		{name: "first and last", input: "Jane Doe", wantFirst: "Jane", wantLast: "Doe"},
		{name: "single token", input: "Jane", wantFirst: "Jane", wantLast: ""},
		{name: "three tokens", input: "Jane van Doe", wantFirst: "Jane", wantLast: "van Doe"},
		{name: "surrounding whitespace", input: "  Jane Doe  ", wantFirst: "Jane", wantLast: "Doe"},
		{name: "empty", input: "", wantFirst: "", wantLast: ""},
		{name: "whitespace only", input: "   ", wantFirst: "", wantLast: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitName(tt.input)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

func TestJoinName(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
		want  string
	}{
		{name: "first and last", first: "Jane", last: "Doe", want: "Jane Doe"},
		{name: "empty last has no trailing space", first: "Jane", last: "", want: "Jane"},
		{name: "empty first has no leading space", first: "", last: "Doe", want: "Doe"},
		{name: "both empty", first: "", last: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinName(tt.first, tt.last))
		})
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	// Profile reads expose first/last; recombining them must reproduce the
	// stored name exactly.
	for _, name := range []string{"Jane Doe", "Jane", "Jane van Doe"} {
		s := &Student{Name: name}
		assert.Equal(t, name, JoinName(s.FirstName(), s.LastName()))
	}
}
