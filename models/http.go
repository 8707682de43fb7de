package models

// SignupRequest is the body of POST /signup and POST /admin/signup.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=254"`

	// Password is limited to 72 bytes, the maximum input length of bcrypt.
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// SigninRequest is the body of POST /signin and POST /admin/signin.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is the JSON body of POST /user/update. Only the fields
// present in payload.info are applied.
type UpdateUserRequest struct {
	Payload *UpdateUserPayload `json:"payload"`
}

// UpdateUserPayload wraps the profile fields of [UpdateUserRequest].
type UpdateUserPayload struct {
	Info *UserUpdate `json:"info"`
}

// AuthResult is returned by signup and signin: a freshly issued token and
// the public view of the account.
type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`

	// Message is set by admin signup only.
	Message string `json:"message,omitempty"`
}

// UserResponse is the body of profile and profile update responses.
type UserResponse struct {
	User PublicUser `json:"user"`
}

// MessageResponse is the body of responses that carry only a human-readable
// message (signout, errors).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request. Errors holds field-level
// details for validation failures and is omitted otherwise.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}
