// Package models defines the data types exchanged with the Eye Glaze backend
// and the ML prediction service.
package models

import "strings"

// User is the identity record held for the duration of a session.
// It exists in memory only between a successful login/register and logout;
// the persisted copy is the sole source of truth across restarts.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Age   int    `json:"age,omitempty"`
}

// DisplayNameFromEmail derives a display name from the local part of an
// email address, matching how the backend-facing username doubles as email.
func DisplayNameFromEmail(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
