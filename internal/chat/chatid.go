package chat

import (
	"sort"
	"strings"

	"friendzone/pkg/errors"
)

// chatIDSeparator joins the two participant IDs of a conversation.
const chatIDSeparator = "--"

// ConversationID derives the canonical conversation key for a pair of
// users: sort the two IDs, join with "--". Commutative, so every caller
// addressing the same pair lands on the same key. Equal IDs are not a
// supported input (self-chat does not exist).
func ConversationID(id1, id2 string) string {
	ids := []string{id1, id2}
	sort.Strings(ids)
	return ids[0] + chatIDSeparator + ids[1]
}

// ParseConversationID splits a conversation key back into its two
// participant IDs.
func ParseConversationID(chatID string) (string, string, error) {
	parts := strings.Split(chatID, chatIDSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.ErrInvalidChatID
	}
	return parts[0], parts[1], nil
}
