package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/rejdeboer/tagpro-telemetry/pkg/httperrors"
	"github.com/rs/zerolog"
)

type contextKey string

const clientIDKey contextKey = "client_id"

// ClientID returns the id of the authenticated client that sent the request.
func ClientID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(clientIDKey).(string)
	return id, ok
}

func WithAuth(signingKey string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := zerolog.Ctx(ctx)

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httperrors.Write(w, "please provide an 'Authorization' header", http.StatusUnauthorized)
				log.Error().Msg("received request without auth header")
				return
			}

			authHeaderParts := strings.Split(authHeader, " ")
			if len(authHeaderParts) != 2 || authHeaderParts[0] != "Bearer" {
				httperrors.Write(w, "please provide a valid bearer token in the auth header", http.StatusUnauthorized)
				log.Error().Str("header", authHeader).Msg("malformed auth header")
				return
			}

			claims, err := verifyAndGetClaims(authHeaderParts[1], signingKey)
			if err != nil {
				httperrors.Write(w, "invalid jwt token", http.StatusUnauthorized)
				log.Error().Err(err).Msg("invalid jwt token")
				return
			}

			clientID, ok := claims["client_id"].(string)
			if !ok || clientID == "" {
				httperrors.Write(w, "invalid jwt token", http.StatusUnauthorized)
				log.Error().Msg("jwt token without client id")
				return
			}

			ctx = context.WithValue(ctx, clientIDKey, clientID)
			log.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("client_id", clientID)
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func verifyAndGetClaims(token string, verificationSecret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(verificationSecret), nil
	})
	if err != nil {
		return nil, err
	}

	return claims, nil
}
