package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx resty response into one of the package's
// sentinel errors, or a generic wrapped error for unclassified statuses.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrUsernameTaken
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrBadRequest
	default:
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode(), resp.String())
	}
}
