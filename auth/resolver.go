package auth

import (
	"fmt"

	"github.com/JahvoL/mall-end/models"
	"github.com/JahvoL/mall-end/repository"
	"github.com/JahvoL/mall-end/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// Resolver derives the calling user from the `token` request header.
//
// The token is decoded without signature verification: the API gateway
// in front of this service rejects requests whose token fails
// verification, so by the time a request lands here the claims are
// trusted. aud[0] carries the username.
type Resolver struct {
	users repository.UserRepository
}

// NewResolver creates a Resolver backed by the given user lookup.
func NewResolver(users repository.UserRepository) *Resolver {
	return &Resolver{users: users}
}

// Resolve returns the caller, or (nil, nil) when the request is
// anonymous: no token header, or no user matches the token's subject.
// A token that cannot be decoded is an error.
func (r *Resolver) Resolve(c *gin.Context) (*models.User, error) {
	tokenString := c.GetHeader("token")
	if tokenString == "" {
		return nil, nil
	}

	username, err := subjectOf(tokenString)
	if err != nil {
		utils.LogError("Failed to decode token: %v", err)
		return nil, utils.TokenError(err)
	}

	user, err := r.users.FindByUsername(username)
	if err != nil {
		return nil, utils.StorageError(err)
	}
	return user, nil
}

// subjectOf extracts aud[0] from an encoded token. There is no
// fallback claim.
func subjectOf(tokenString string) (string, error) {
	token, _, err := new(jwt.Parser).ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("unexpected claims type %T", token.Claims)
	}

	// The aud claim encodes as a bare string for a single audience
	// and as an array otherwise.
	switch aud := claims["aud"].(type) {
	case string:
		if aud == "" {
			return "", fmt.Errorf("token has empty audience")
		}
		return aud, nil
	case []interface{}:
		if len(aud) == 0 {
			return "", fmt.Errorf("token has empty audience")
		}
		if s, ok := aud[0].(string); ok {
			return s, nil
		}
		return "", fmt.Errorf("token audience is not a string")
	default:
		return "", fmt.Errorf("token has no audience claim")
	}
}
