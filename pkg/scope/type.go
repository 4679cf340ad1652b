package scope

// Manager verifies and issues access tokens.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

// Payload is the identity carried by an access token.
type Payload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`

	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Id        string `json:"jti,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}
