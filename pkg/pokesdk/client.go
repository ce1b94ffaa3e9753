package pokesdk

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client talks to a PokéSort server. It keeps cookies between calls, so a
// successful SignIn authenticates every later request until SignOut.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client with a fresh cookie jar and a 10s timeout.
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("pokesdk: cookie jar: %w", err)
	}

	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
			// Gate redirects are surfaced to the caller instead of followed.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}
