package apiclient

// CreateUserRequest for account creation. Optional profile fields are
// omitted from the wire entirely when blank, never sent as "".
type CreateUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Title     string `json:"title,omitempty"`
	Hobby     string `json:"hobby,omitempty"`
}

// LoginRequest for authentication.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userIDResponse mirrors the service's create/login success payload.
type userIDResponse struct {
	UserID int64 `json:"user_id"`
}

// UserInfo is the profile snapshot returned by the user detail endpoint.
// Optional fields are nil when the service stores nothing for them.
type UserInfo struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Title     *string `json:"title"`
	Hobby     *string `json:"hobby"`
}

// errorPayload matches the service's error envelope.
type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
