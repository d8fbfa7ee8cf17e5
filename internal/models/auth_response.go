package models

// UserInfo is the public view of a user returned by login and profile
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"` // JWT, valid for the configured window
	User    UserInfo `json:"user"`
}

// ProfileResponse represents the response for the profile endpoint
type ProfileResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}
