package entity

// User is the authenticated operator's profile.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is what the backend returns on login/signup.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
