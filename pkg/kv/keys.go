package kv

import "fmt"

// Key templates. Every component addressing the store goes through these;
// a divergent key string breaks cross-component addressing silently.

func UserKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

func UserEmailKey(email string) string {
	return fmt.Sprintf("user:email:%s", email)
}

func FriendsKey(id string) string {
	return fmt.Sprintf("user:%s:friends", id)
}

func IncomingRequestsKey(id string) string {
	return fmt.Sprintf("user:%s:incoming_friend_requests", id)
}

func ChatMessagesKey(chatID string) string {
	return fmt.Sprintf("chat:%s:messages", chatID)
}
