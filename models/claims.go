package models

import "github.com/golang-jwt/jwt/v5"

// AuthClaims is the payload of the access tokens issued by the auth
// service. The registered Subject claim is the opaque user identifier
// every stored document is keyed by.
type AuthClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}
