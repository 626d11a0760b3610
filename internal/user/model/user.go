package models

// User is created and owned by the external identity provider; this system
// only reads it. ID is opaque and globally unique, Email is unique.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}
