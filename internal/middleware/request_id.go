package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type requestIdKey int

const RequestIdKey requestIdKey = 0

// RequestId assigns every request a uuid, echoed in the X-Request-Id
// header for log correlation. An inbound X-Request-Id is trusted as-is.
func RequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), RequestIdKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestId returns the request id, empty if the middleware didn't run.
func GetRequestId(r *http.Request) string {
	id, _ := r.Context().Value(RequestIdKey).(string)
	return id
}
