package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ConversationID_Commutative(t *testing.T) {
	pairs := [][2]string{
		{"u1", "u2"},
		{"alice", "bob"},
		{"zz", "aa"},
		{"a0f3", "99bd"},
	}

	for _, pair := range pairs {
		assert.Equal(t, ConversationID(pair[0], pair[1]), ConversationID(pair[1], pair[0]))
	}

	assert.Equal(t, "u1--u2", ConversationID("u2", "u1"))
}

func Test_ConversationID_CollisionFree(t *testing.T) {
	ids := []string{"u1", "u2", "u3", "alice", "bob", "carol"}

	seen := make(map[string][2]string)
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			chatID := ConversationID(a, b)
			if prev, ok := seen[chatID]; ok {
				t.Fatalf("pair (%s,%s) collides with (%s,%s) on %s", a, b, prev[0], prev[1], chatID)
			}
			seen[chatID] = [2]string{a, b}
		}
	}
}

func Test_ParseConversationID(t *testing.T) {
	t.Run("happy path - round trip", func(t *testing.T) {
		id1, id2, err := ParseConversationID(ConversationID("u2", "u1"))
		require.NoError(t, err)
		assert.Equal(t, "u1", id1)
		assert.Equal(t, "u2", id2)
	})

	t.Run("sad path - missing separator", func(t *testing.T) {
		_, _, err := ParseConversationID("u1u2")
		require.Error(t, err)
	})

	t.Run("sad path - empty half", func(t *testing.T) {
		_, _, err := ParseConversationID("u1--")
		require.Error(t, err)
	})
}
