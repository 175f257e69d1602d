package ezhttp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/viper"
)

const (
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderAuthorization      = "Authorization"
	HeaderETag               = "ETag"
	HeaderIfNoneMatch        = "If-None-Match"
	HeaderCacheControl       = "Cache-Control"
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
	HeaderRetryAfter         = "Retry-After"
)

const (
	ContentTypeCSS  = "text/css; charset=UTF-8"
	ContentTypeJSON = "application/json"
)

type ErrorResponse struct {
	Message   string `json:"message"`
	Status    int    `json:"status"`
	Path      string `json:"path"`
	RequestID string `json:"request_id"`
}

var defaultClient = &http.Client{
	Timeout: 10 * time.Second,
}

func Do(method string, path string, token string, contentType string, body io.Reader) (*http.Response, error) {
	server := viper.GetString("server")
	rq, err := http.NewRequest(method, server+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		rq.Header.Set(HeaderContentType, contentType)
	}
	if token != "" {
		rq.Header.Set(HeaderAuthorization, "Bearer "+token)
	}
	return defaultClient.Do(rq)
}

func Get(path string) (*http.Response, error) {
	return Do(http.MethodGet, path, "", "", nil)
}

func Post(path string, token string, body io.Reader) (*http.Response, error) {
	return Do(http.MethodPost, path, token, ContentTypeJSON, body)
}

func Put(path string, token string, body io.Reader) (*http.Response, error) {
	return Do(http.MethodPut, path, token, ContentTypeJSON, body)
}

func Delete(path string, token string) (*http.Response, error) {
	return Do(http.MethodDelete, path, token, "", nil)
}

func ProcessBody(action string, rs *http.Response, body any) error {
	if rs.StatusCode >= http.StatusOK && rs.StatusCode < http.StatusMultipleChoices {
		if err := json.NewDecoder(rs.Body).Decode(body); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}
	var errRs ErrorResponse
	if err := json.NewDecoder(rs.Body).Decode(&errRs); err != nil {
		return fmt.Errorf("failed to decode error response: %w", err)
	}
	return fmt.Errorf("failed to %s: %s", action, errRs.Message)
}
