// Package ordersclient implements the order status notifier port against
// the remote orders service HTTP API.
//
// Pushes are best-effort from the caller's point of view: a failed push is
// queued in memory and retried by a background job, it never rolls back
// local state.
package ordersclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

const serviceName = "orders"

// Client pushes order status changes over HTTP and keeps the ones that
// failed for retry.
type Client struct {
	client  *http.Client
	baseURL string

	mu      sync.Mutex
	pending []statusPush
}

type statusPush struct {
	OrderID kernel.UUID
	UserID  kernel.UUID
	Status  order.Status
}

// NewClient creates a status notifier for the orders service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: baseURL,
	}
}

type statusRequest struct {
	UserID string `json:"userId"`
	Status string `json:"status"`
}

// PushStatus sends the status change to the orders service. On failure the
// push is queued for retry and the error is returned so the caller can log
// it; callers must not treat it as a failure of the local change.
func (c *Client) PushStatus(ctx context.Context, orderID, userID kernel.UUID, status order.Status) error {
	if err := c.send(ctx, orderID, userID, status); err != nil {
		c.enqueue(orderID, userID, status)
		return err
	}
	return nil
}

// RetryPending resends every queued push. Pushes that fail again go back
// on the queue. Returns the number of pushes that went through.
func (c *Client) RetryPending(ctx context.Context) int {
	c.mu.Lock()
	batch := c.pending
	c.pending = nil
	c.mu.Unlock()

	sent := 0
	for _, p := range batch {
		if err := c.send(ctx, p.OrderID, p.UserID, p.Status); err != nil {
			c.enqueue(p.OrderID, p.UserID, p.Status)
			continue
		}
		sent++
	}
	return sent
}

// PendingCount reports the number of pushes awaiting retry.
func (c *Client) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *Client) send(ctx context.Context, orderID, userID kernel.UUID, status order.Status) error {
	reqURL, err := url.JoinPath(c.baseURL, "api", "orders", orderID.String(), "status")
	if err != nil {
		return errs.NewMicroserviceCommunicationErrorWithCause(serviceName, err)
	}

	body, err := json.Marshal(statusRequest{
		UserID: userID.String(),
		Status: status.String(),
	})
	if err != nil {
		return errs.NewMicroserviceCommunicationErrorWithCause(serviceName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return errs.NewMicroserviceCommunicationErrorWithCause(serviceName, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return errs.NewMicroserviceCommunicationErrorWithCause(serviceName, err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return errs.NewMicroserviceCommunicationError(serviceName)
	}

	return nil
}

func (c *Client) enqueue(orderID, userID kernel.UUID, status order.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, statusPush{
		OrderID: orderID,
		UserID:  userID,
		Status:  status,
	})
}
