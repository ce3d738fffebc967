package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultJWTSecret  string = "ChronicleDevSecret"
	JWTExpirationTime        = time.Hour * 24
)

// UserClaims carries the viewer identity inside the token.
type UserClaims struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
