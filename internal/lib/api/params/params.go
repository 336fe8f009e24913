package params

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// Path returns the decoded URL parameter key. chi matches on the raw path
// when the request carries escaped separators, so the value may still be encoded.
func Path(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value, nil
	}

	decoded, err := url.PathUnescape(value)
	if err != nil {
		return "", fmt.Errorf("path param %s: %w", key, err)
	}

	return decoded, nil
}
