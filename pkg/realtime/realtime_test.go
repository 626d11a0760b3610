package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ChannelKey(t *testing.T) {
	assert.Equal(t, "user__u1__incoming_friend_requests", ChannelKey("user:u1:incoming_friend_requests"))
	assert.Equal(t, "chat__u1--u2", ChannelKey("chat:u1--u2"))
	assert.Equal(t, "plain", ChannelKey("plain"))
}

func Test_ChannelKey_Idempotent(t *testing.T) {
	// Once the first pass removed all colons, a second pass is a no-op.
	keys := []string{
		"user:u1:incoming_friend_requests",
		"chat:u1--u2",
		"already__transformed",
	}
	for _, key := range keys {
		once := ChannelKey(key)
		assert.Equal(t, once, ChannelKey(once))
	}
}

func Test_ChannelBuilders(t *testing.T) {
	assert.Equal(t, ChannelKey("user:u1:incoming_friend_requests"), RequestsChannel("u1"))
	assert.Equal(t, ChannelKey("chat:u1--u2"), ChatChannel("u1--u2"))
}
