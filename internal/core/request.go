// AngelaMos | 2026
// request.go

package core

import (
	"net/http"
	"strconv"
	"strings"
)

// QueryInt reads an integer query parameter, falling back to def when it
// is absent or malformed.
func QueryInt(r *http.Request, key string, def int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return def
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return def
	}

	return parsed
}

func QueryFloat(r *http.Request, key string, def float64) float64 {
	val := r.URL.Query().Get(key)
	if val == "" {
		return def
	}

	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return def
	}

	return parsed
}

func QueryBool(r *http.Request, key string) bool {
	switch strings.ToLower(r.URL.Query().Get(key)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
