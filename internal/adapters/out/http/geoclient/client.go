// Package geoclient implements the vendor location port against the
// remote geo service HTTP API.
package geoclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

const serviceName = "geo"

// Client resolves vendor addresses over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a location client for the geo service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: baseURL,
	}
}

type locationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationOf fetches the vendor's address. Any failure to obtain usable
// coordinates fails with a MicroserviceCommunicationError; vendor creation
// is blocked on it.
func (c *Client) LocationOf(ctx context.Context, vendorID kernel.UUID) (kernel.Location, error) {
	reqURL, err := url.JoinPath(c.baseURL, "api", "vendors", vendorID.String(), "location")
	if err != nil {
		return kernel.Location{}, errs.NewMicroserviceCommunicationErrorWithCause(serviceName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return kernel.Location{}, errs.NewMicroserviceCommunicationErrorWithCause(serviceName, err)
	}

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return kernel.Location{}, errs.NewMicroserviceCommunicationErrorWithCause(serviceName, err)
	}

	if resp.StatusCode != http.StatusOK {
		return kernel.Location{}, errs.NewMicroserviceCommunicationError(serviceName)
	}

	var body locationResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return kernel.Location{}, errs.NewMicroserviceCommunicationErrorWithCause(serviceName, err)
	}

	location, err := kernel.NewLocation(body.Latitude, body.Longitude)
	if err != nil {
		return kernel.Location{}, errs.NewMicroserviceCommunicationErrorWithCause(serviceName, err)
	}

	return location, nil
}
