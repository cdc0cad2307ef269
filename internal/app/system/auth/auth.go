package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/rollcall/internal/app/system/httpjson"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Claims & context helpers                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// Claims is the verified identity payload carried by a bearer token.
// It is extracted and validated once at the boundary; handlers never touch
// the raw token.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type ctxKey string

const claimsKey ctxKey = "claims"

// CurrentClaims returns the verified claims & "found?" flag.
func CurrentClaims(r *http.Request) (*Claims, bool) {
	c, ok := r.Context().Value(claimsKey).(*Claims)
	return c, ok
}

func withClaims(r *http.Request, c *Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), claimsKey, c))
}

// WithTestClaims injects claims directly for handler tests, bypassing the
// token middleware.
func WithTestClaims(r *http.Request, c *Claims) *http.Request {
	return withClaims(r, c)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Verifier                                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// Verifier validates bearer tokens and loads claims into request context.
type Verifier struct {
	secret []byte
	log    *zap.Logger
}

// NewVerifier builds a Verifier for an HS256 signing secret.
func NewVerifier(secret string, logger *zap.Logger) (*Verifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is empty; provide ≥32 random chars")
	}
	return &Verifier{secret: []byte(secret), log: logger}, nil
}

// bearerToken pulls the token out of "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", false
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// Verify parses and validates a raw token string, returning its claims.
func (v *Verifier) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		// Reject tokens whose alg was swapped away from HMAC.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("token has no userId claim")
	}
	return claims, nil
}

// LoadClaims injects verified claims into context when a valid bearer token
// is presented. Requests without a valid token pass through with no claims;
// RequireSignedIn / RequireRole decide whether that matters.
func (v *Verifier) LoadClaims(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tok, ok := bearerToken(r); ok {
			claims, err := v.Verify(tok)
			if err != nil {
				v.log.Debug("bearer token rejected", zap.Error(err))
			} else {
				r = withClaims(r, claims)
			}
		}
		next.ServeHTTP(w, r)
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| Route middleware                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

// RequireSignedIn ensures there are verified claims in context (set by
// LoadClaims). Otherwise it answers 401 with a JSON message and never
// reaches the handler.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentClaims(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		httpjson.Error(w, http.StatusUnauthorized, "invalid or missing token")
	})
}

// RequireRole ensures the claims carry one of the allowed roles.
// No claims → 401; wrong role → 403. The store is never touched for either.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, ok := CurrentClaims(r)
			if !ok {
				httpjson.Error(w, http.StatusUnauthorized, "invalid or missing token")
				return
			}
			if _, has := set[strings.ToLower(c.Role)]; !has {
				httpjson.Error(w, http.StatusForbidden, "Admin only")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Token minting (dev tooling)                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// Mint signs a bearer token for the given user id and role. Production
// tokens come from the external identity provider; this exists for the
// mktoken CLI and for tests.
func Mint(secret, userID, role string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt secret is empty")
	}
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
