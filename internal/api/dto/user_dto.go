package dto

// UserRegisterRequest payload for new users.
type UserRegisterRequest struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

// UserEmailRequest payload for approve/reject actions keyed by email.
type UserEmailRequest struct {
	Email string `json:"email"`
}
