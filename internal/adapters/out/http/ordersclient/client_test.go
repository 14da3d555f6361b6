package ordersclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"fooddelivery/internal/adapters/out/http/ordersclient"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_PushStatus(t *testing.T) {
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders/"+orderID.String()+"/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, userID.String(), body["userId"])
		assert.Equal(t, "ON_TRANSIT", body["status"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := ordersclient.NewClient(server.URL)
	err := client.PushStatus(context.Background(), orderID, userID, order.OnTransit)
	require.NoError(t, err)
	assert.Zero(t, client.PendingCount())
}

func TestClient_PushStatus_FailureQueuesForRetry(t *testing.T) {
	var failing atomic.Bool
	failing.Store(true)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := ordersclient.NewClient(server.URL)
	err := client.PushStatus(context.Background(), kernel.NewUUID(), kernel.NewUUID(), order.Delivered)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrMicroserviceCommunication)
	assert.Equal(t, 1, client.PendingCount())

	// Still failing: the push goes back on the queue.
	assert.Zero(t, client.RetryPending(context.Background()))
	assert.Equal(t, 1, client.PendingCount())

	failing.Store(false)
	assert.Equal(t, 1, client.RetryPending(context.Background()))
	assert.Zero(t, client.PendingCount())
}
