package connection

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
)

// Authentication adds credentials to an outgoing request.
type Authentication interface {
	Authenticate(req *http.Request) error
}

type basicAuth struct {
	user     string
	password string
}

// BasicAuth authenticates with a user name and password.
func BasicAuth(user, password string) Authentication {
	return basicAuth{user: user, password: password}
}

func (a basicAuth) Authenticate(req *http.Request) error {
	req.SetBasicAuth(a.user, a.password)
	return nil
}

type bearerToken string

// BearerToken authenticates with a token issued by the server.
func BearerToken(token string) Authentication {
	return bearerToken(token)
}

func (t bearerToken) Authenticate(req *http.Request) error {
	req.Header.Set("Authorization", "bearer "+string(t))
	return nil
}

// jwtAuth mints short lived tokens signed with the server's JWT secret.
type jwtAuth struct {
	secret []byte
	user   string
	ttl    time.Duration
	now    func() time.Time
}

// JWTSecret authenticates with tokens signed by the server's JWT secret. Without a user the
// tokens identify a superuser.
func JWTSecret(secret, user string) Authentication {
	return jwtAuth{secret: []byte(secret), user: user, ttl: time.Hour, now: time.Now}
}

func (a jwtAuth) Authenticate(req *http.Request) error {
	token, err := a.sign()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "bearer "+token)
	return nil
}

func (a jwtAuth) sign() (string, error) {
	now := a.now()
	claims := jwt.MapClaims{
		"iss":       "arangodb",
		"server_id": "arangodoc",
		"iat":       now.Unix(),
		"exp":       now.Add(a.ttl).Unix(),
	}
	if a.user != "" {
		claims["preferred_username"] = a.user
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return token, nil
}
