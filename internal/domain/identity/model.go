package identity

// User is an account in the user collection. Passwords are stored in
// plain text alongside the account record; the password field is left
// empty wherever a user is exposed outside the repository.
type User struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// Sanitized returns a copy of the user with the password stripped.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
