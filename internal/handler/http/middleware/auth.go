package middleware

import (
	"net/http"

	"github.com/codewithgaurave/hrms-console-go/internal/domain/user"
	"github.com/codewithgaurave/hrms-console-go/internal/handler/http/response"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/hrapi"
	"github.com/go-chi/jwtauth/v5"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			// The same bearer token authenticates us against the HR
			// backend; stash it for the upstream client.
			ctx := hrapi.WithToken(r.Context(), jwtauth.TokenFromHeader(r))

			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
