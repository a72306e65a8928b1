package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with its own connection pool.
// A positive timeout bounds every request made through the client.
//
// Retries are disabled; a failed request is reported to the caller as is.
//
// Example usage:
//
//	client := utils.NewHTTPClient(30 * time.Second)
//	resp, err := client.R().
//	    SetFormData(map[string]string{"client_id": id}).
//	    Post("https://ims-na1.example.com/ims/exchange/jwt")
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().SetRetryCount(0)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
