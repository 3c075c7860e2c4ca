package models

// User is the identity the remote auth service returns on login.
type User struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
}

// Credentials is the login payload forwarded to the remote auth service.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterInput is the signup payload forwarded to the remote auth service.
type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
}
