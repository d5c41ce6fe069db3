package routes

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// GetJwt signs a token that lets clientID upload matches.
func GetJwt(signingKey string, tokenExpirationSeconds uint16, clientID string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["client_id"] = clientID
	claims["exp"] = time.Now().Add(time.Second * time.Duration(tokenExpirationSeconds)).Unix()

	tokenString, err := token.SignedString([]byte(signingKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
