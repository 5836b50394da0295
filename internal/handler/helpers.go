package handler

import (
	"fmt"
	"net/http"
	"strconv"
)

func parseIntParam(value, name string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, value)
	}
	return id, nil
}

// parsePagination reads limit/offset query params; zero values mean
// "service default". Bad values fall back silently, lists are not worth a 400.
func parsePagination(r *http.Request) (limit, offset int) {
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			limit = v
		}
	}
	if s := r.URL.Query().Get("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			offset = v
		}
	}
	return limit, offset
}
