package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"gridiron/models"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const OperatorContextKey contextKey = "operator"

type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

var jwtSecret []byte

func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

func GenerateToken(op *models.Operator, expiration time.Duration) (string, error) {
	claims := &Claims{
		Role: op.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   op.Name,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

// AuthMiddleware accepts a token from the Authorization header or the
// token cookie and stores the operator in the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var tokenString string
		authHeader := r.Header.Get("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		// Fall back to the cookie
		if tokenString == "" {
			if cookie, err := r.Cookie("token"); err == nil {
				tokenString = cookie.Value
			}
		}

		if tokenString == "" {
			unauthorized(w, "missing token")
			return
		}

		claims, err := ValidateToken(tokenString)
		if err != nil {
			unauthorized(w, "invalid token")
			return
		}

		op := &models.Operator{Name: claims.Subject, Role: claims.Role}
		ctx := context.WithValue(r.Context(), OperatorContextKey, op)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			op := GetOperatorFromContext(r.Context())
			if op == nil {
				unauthorized(w, "unauthorized")
				return
			}

			for _, role := range roles {
				if op.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeError(w, http.StatusForbidden, "forbidden")
		})
	}
}

func GetOperatorFromContext(ctx context.Context) *models.Operator {
	op, ok := ctx.Value(OperatorContextKey).(*models.Operator)
	if !ok {
		return nil
	}
	return op
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
	writeError(w, http.StatusUnauthorized, msg)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
