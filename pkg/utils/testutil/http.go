package testutil

import (
	"io"
	"net/http"
	"strings"
)

// HTTPClientFunc is a function based implementation of Do(*http.Request)
type HTTPClientFunc func(req *http.Request) (*http.Response, error)

func (f HTTPClientFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// NewResponse builds a response with a string body
func NewResponse(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Status:     http.StatusText(code),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
