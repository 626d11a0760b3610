// Package client is the Go client for the friendzone API: REST operations
// plus a realtime subscription that maintains an ordered local view of a
// conversation.
package client

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Message mirrors the server's wire format for a chat message.
type Message struct {
	ID        string `json:"id"`
	SenderID  string `json:"senderId"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// User mirrors the server's wire format for a user record.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

// IncomingRequest is a pending friend request as listed by the server and
// as carried on the realtime channel.
type IncomingRequest struct {
	SenderID    string `json:"senderId"`
	SenderEmail string `json:"senderEmail"`
}

type Client struct {
	http    *resty.Client
	baseURL string
	token   string
}

func New(baseURL, token string) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json")
	return &Client{http: http, baseURL: baseURL, token: token}
}

type apiError struct {
	Status int
	Reason string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Reason)
}

func (c *Client) post(path string, body any) error {
	resp, err := c.http.R().SetBody(body).Post(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return &apiError{Status: resp.StatusCode(), Reason: string(resp.Body())}
	}
	return nil
}

// AddFriend sends a friend request to the user behind the email.
func (c *Client) AddFriend(email string) error {
	return c.post("/api/friends/add", map[string]string{"email": email})
}

// AcceptFriend accepts the pending request from the given user.
func (c *Client) AcceptFriend(requesterID string) error {
	return c.post("/api/friends/accept", map[string]string{"id": requesterID})
}

// SendMessage posts a message into the conversation.
func (c *Client) SendMessage(chatID, text string) (*Message, error) {
	var msg Message
	resp, err := c.http.R().
		SetBody(map[string]string{"text": text, "chatId": chatID}).
		SetResult(&msg).
		Post("/api/message/send")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &apiError{Status: resp.StatusCode(), Reason: string(resp.Body())}
	}
	return &msg, nil
}

// Friends returns the session user's friends.
func (c *Client) Friends() ([]User, error) {
	var friends []User
	resp, err := c.http.R().SetResult(&friends).Get("/api/friends")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &apiError{Status: resp.StatusCode(), Reason: string(resp.Body())}
	}
	return friends, nil
}

// FriendRequests returns the session user's pending incoming requests.
func (c *Client) FriendRequests() ([]IncomingRequest, error) {
	var requests []IncomingRequest
	resp, err := c.http.R().SetResult(&requests).Get("/api/friends/requests")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &apiError{Status: resp.StatusCode(), Reason: string(resp.Body())}
	}
	return requests, nil
}

// Messages returns a conversation's history, most recent first.
func (c *Client) Messages(chatID string) ([]Message, error) {
	var messages []Message
	resp, err := c.http.R().
		SetResult(&messages).
		Get(fmt.Sprintf("/api/chat/%s/messages", chatID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &apiError{Status: resp.StatusCode(), Reason: string(resp.Body())}
	}
	return messages, nil
}
