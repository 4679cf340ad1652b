package scope

import (
	"encoding/base64"
	"encoding/json"

	"analytics-srv/internal/model"
)

// NewScope builds the request scope from a verified token payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

// CreateScopeHeader encodes a scope for service-to-service calls.
func CreateScopeHeader(scope model.Scope) (string, error) {
	jsonData, err := json.Marshal(scope)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(jsonData), nil
}

// ParseScopeHeader decodes a header produced by CreateScopeHeader.
func ParseScopeHeader(scopeHeader string) (model.Scope, error) {
	jsonData, err := base64.StdEncoding.DecodeString(scopeHeader)
	if err != nil {
		return model.Scope{}, err
	}

	var scope model.Scope
	if err := json.Unmarshal(jsonData, &scope); err != nil {
		return model.Scope{}, err
	}
	return scope, nil
}
