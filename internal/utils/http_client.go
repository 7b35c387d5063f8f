package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(15*time.Second, token)
//	resp, err := client.R().SetBody(req).Post("https://cms.example.com/graphql")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client sending and accepting JSON.
// A zero timeout leaves resty's default in place; an empty token sends no
// Authorization header.
func NewHTTPClient(timeout time.Duration, token string) *HTTPClient {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if token != "" {
		client.SetAuthToken(token)
	}

	return &HTTPClient{Client: client}
}
