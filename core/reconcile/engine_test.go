package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonReciprocating(t *testing.T) {
	tests := []struct {
		name      string
		following []string
		followers []string
		want      []string
	}{
		{
			name:      "Basic",
			following: []string{"alice", "bob", "carol"},
			followers: []string{"bob"},
			want:      []string{"alice", "carol"},
		},
		{
			name:      "EmptyFollowing",
			following: []string{},
			followers: []string{"x"},
			want:      []string{},
		},
		{
			name:      "EmptyFollowers",
			following: []string{"x"},
			followers: []string{},
			want:      []string{"x"},
		},
		{
			name:      "NilInputs",
			following: nil,
			followers: nil,
			want:      []string{},
		},
		{
			name:      "FullReciprocity",
			following: []string{"a", "b"},
			followers: []string{"b", "a", "c"},
			want:      []string{},
		},
		{
			name:      "OrderPreserved",
			following: []string{"zed", "amy", "kim", "bob"},
			followers: []string{"kim"},
			want:      []string{"zed", "amy", "bob"},
		},
		{
			name:      "DuplicatesKept",
			following: []string{"dup", "x", "dup"},
			followers: []string{"x"},
			want:      []string{"dup", "dup"},
		},
		{
			name:      "CaseSensitive",
			following: []string{"Alice"},
			followers: []string{"alice"},
			want:      []string{"Alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NonReciprocating(tt.following, tt.followers)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNonReciprocating_Properties(t *testing.T) {
	a := []string{"alice", "bob", "carol"}
	b := []string{"bob", "dave"}

	t.Run("Idempotent", func(t *testing.T) {
		assert.Equal(t, NonReciprocating(a, b), NonReciprocating(a, b))
	})

	t.Run("Asymmetric", func(t *testing.T) {
		assert.NotEqual(t, NonReciprocating(a, b), NonReciprocating(b, a))
		assert.Equal(t, []string{"dave"}, NonReciprocating(b, a))
	})

	t.Run("InputsUntouched", func(t *testing.T) {
		NonReciprocating(a, b)
		assert.Equal(t, []string{"alice", "bob", "carol"}, a)
		assert.Equal(t, []string{"bob", "dave"}, b)
	})
}

func TestReconcile(t *testing.T) {
	following := []string{"alice", "bob", "carol", "alice"}
	followers := []string{"bob", "dave"}

	t.Run("OneDirection", func(t *testing.T) {
		result := Reconcile(following, followers, Options{})
		assert.Equal(t, []string{"alice", "carol", "alice"}, result.NotFollowingBack)
		assert.Nil(t, result.NotFollowedBack)
		assert.Equal(t, Summary{
			Following:          4,
			Followers:          2,
			NotFollowingBack:   3,
			NotFollowedBack:    0,
			DuplicateFollowing: 1,
		}, result.Summary)
	})

	t.Run("BothDirections", func(t *testing.T) {
		result := Reconcile(following, followers, Options{Both: true})
		assert.Equal(t, []string{"alice", "carol", "alice"}, result.NotFollowingBack)
		assert.Equal(t, []string{"dave"}, result.NotFollowedBack)
		assert.Equal(t, 1, result.Summary.NotFollowedBack)
	})

	t.Run("ConverseEmptyIsNotNil", func(t *testing.T) {
		result := Reconcile([]string{"a"}, []string{"a"}, Options{Both: true})
		assert.NotNil(t, result.NotFollowedBack)
		assert.Empty(t, result.NotFollowedBack)
		assert.Empty(t, result.NotFollowingBack)
	})
}

func TestCountDuplicates(t *testing.T) {
	assert.Equal(t, 0, countDuplicates(nil))
	assert.Equal(t, 0, countDuplicates([]string{"a", "b"}))
	assert.Equal(t, 3, countDuplicates([]string{"a", "a", "a", "b", "b"}))
}
