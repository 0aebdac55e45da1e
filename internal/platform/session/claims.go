package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotJWT = errors.New("token is not a JWT")

// Claims is what the portal can learn from a backend token without its
// signing key.
type Claims struct {
	UserID         string    `json:"userId"`
	Email          string    `json:"email,omitempty"`
	Role           string    `json:"role,omitempty"`
	OrganizationID string    `json:"organizationId,omitempty"`
	ExpiresAt      time.Time `json:"expiresAt,omitempty"`
	IssuedAt       time.Time `json:"issuedAt,omitempty"`
}

func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Inspect decodes the payload of a JWT without verifying it. The backend
// remains the only judge of validity.
func Inspect(token string) (Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, errors.Join(ErrNotJWT, err)
	}
	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrNotJWT
	}

	out := Claims{
		UserID:         firstString(mc, "id", "userId", "uid", "_id", "sub"),
		Email:          firstString(mc, "email"),
		Role:           firstString(mc, "role", "roleName"),
		OrganizationID: firstString(mc, "organizationId", "orgId", "tid"),
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	return out, nil
}

func firstString(mc jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		if v, ok := mc[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
