package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	assert.Equal(t, 3, ToInt(3))
	assert.Equal(t, 7, ToInt(int64(7)))
	assert.Equal(t, 2, ToInt(2.9))
	assert.Equal(t, 12, ToInt(" 12 "))
	assert.Equal(t, 5, ToInt([]byte("5")))
	assert.Equal(t, 0, ToInt("abc"))
	assert.Equal(t, 0, ToInt(struct{}{}))
}

func TestToBool(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{true, true},
		{false, false},
		{1, true},
		{0, false},
		{uint(1), true},
		{"1", true},
		{"TRUE", true},
		{"on", true},
		{"Yes", true},
		{"", false},
		{"off", false},
		{"2", false},
		{[]byte("true"), true},
		{nil, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToBool(tt.in), "ToBool(%v)", tt.in)
	}
}
