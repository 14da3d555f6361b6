// Package usersclient implements the role lookup port against the remote
// users service HTTP API.
package usersclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/role"
	"fooddelivery/internal/pkg/errs"
)

const serviceName = "users"

// Client resolves user roles over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a role lookup client for the users service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: baseURL,
	}
}

type roleResponse struct {
	Role string `json:"role"`
}

// RoleOf fetches the user's role.
//
// A reachable service answering with an unrecognized role string resolves
// to role.RoleUnknown without error; anything that prevents reading a role
// at all (transport failure, bad status, missing field) fails with a
// MicroserviceCommunicationError.
func (c *Client) RoleOf(ctx context.Context, userID kernel.UUID) (role.Role, error) {
	reqURL, err := url.JoinPath(c.baseURL, "api", "users", userID.String(), "role")
	if err != nil {
		return role.RoleUnknown, errs.NewMicroserviceCommunicationErrorWithCause(serviceName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return role.RoleUnknown, errs.NewMicroserviceCommunicationErrorWithCause(serviceName, err)
	}

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return role.RoleUnknown, errs.NewMicroserviceCommunicationErrorWithCause(serviceName, err)
	}

	if resp.StatusCode != http.StatusOK {
		return role.RoleUnknown, errs.NewMicroserviceCommunicationError(serviceName)
	}

	var body roleResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return role.RoleUnknown, errs.NewMicroserviceCommunicationErrorWithCause(serviceName, err)
	}

	if body.Role == "" {
		return role.RoleUnknown, errs.NewMicroserviceCommunicationError(serviceName)
	}

	return role.ParseRole(body.Role), nil
}
