package middleware

import (
	"net/http"

	"github.com/codewithgaurave/hrms-console-go/internal/domain/user"
	"github.com/codewithgaurave/hrms-console-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// ManagerOnly requires manager or HR role
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrForbidden)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrForbidden)
			return
		}

		identity := user.Identity{Role: user.Role(roleStr)}
		if !identity.IsManager() {
			response.HandleError(w, user.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
