package adapter

const (
	verifiedMessage = "User verified"
	adminRole       = "admin"
)

// IdentityResponse is the legacy auth-verification response.
type IdentityResponse struct {
	Message string       `json:"message"`
	User    IdentityUser `json:"user"`
}

type IdentityUser struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	IsSubscribed bool   `json:"isSubscribed"`
	IsAdmin      bool   `json:"isAdmin"`
}

// Identity adapts the auth service's token verification response. Shapes it
// does not recognize are returned as-is.
func Identity(raw any) any {
	m, ok := raw.(map[string]any)
	if !ok {
		return raw
	}

	if truthy(m["message"]) && truthy(m["user"]) {
		return raw
	}

	user, ok := m["user"].(map[string]any)
	if !truthy(m["valid"]) || !ok {
		return raw
	}

	return IdentityResponse{
		Message: verifiedMessage,
		User: IdentityUser{
			UserID:       userIDKeys.text(user),
			Email:        emailKeys.text(user),
			Name:         nameKeys.text(user),
			IsSubscribed: subscribedKeys.flag(user),
			IsAdmin:      toText(user["role"]) == adminRole || truthy(user["isAdmin"]),
		},
	}
}
