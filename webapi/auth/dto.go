package auth

// LoginInput starts a session: the phone number is the only credential input.
type LoginInput struct {
	Celular string `json:"celular" validate:"required,len=10,numeric"`
}

// OTPInput verifies the one-time code sent after login.
type OTPInput struct {
	Celular string `json:"celular" validate:"required,len=10,numeric"`
	Otp     string `json:"otp" validate:"required,len=6"`
}

// TokenOutput carries the issued bearer token.
type TokenOutput struct {
	Token string `json:"token"`
}
