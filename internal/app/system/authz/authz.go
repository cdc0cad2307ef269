// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/dalemusser/rollcall/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCtx returns the caller's role (lowercased), Mongo ObjectID, and a
// found flag. If no claims are present or the user id is malformed, it
// returns "visitor", NilObjectID, false — callers can trust that ok=true
// means a valid, authenticated user with a valid ObjectID.
func UserCtx(r *http.Request) (role string, userID primitive.ObjectID, ok bool) {
	c, ok := auth.CurrentClaims(r)
	if !ok {
		return "visitor", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(c.UserID)
	if err != nil {
		// Malformed user ID in the token - fail closed.
		return "visitor", primitive.NilObjectID, false
	}
	return strings.ToLower(c.Role), userID, true
}

// IsAdmin reports whether the current request's caller is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, ok := UserCtx(r)
	return ok && role == "admin"
}
