package httpclient

import (
	"net/http"
	"net/http/cookiejar"
	"time"
)

// NewDefaultHTTPClient creates a simple HTTP client with a timeout
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

// NewSessionClient creates an HTTP client that keeps cookies between requests,
// so a site sees a search and the follow-up page as one visit.
func NewSessionClient(timeout time.Duration) *http.Client {
	jar, err := cookiejar.New(nil)
	if err != nil {
		// cookiejar.New only fails on a bad PublicSuffixList, and none is passed
		return NewDefaultHTTPClient(timeout)
	}

	return &http.Client{
		Jar:     jar,
		Timeout: timeout,
	}
}
