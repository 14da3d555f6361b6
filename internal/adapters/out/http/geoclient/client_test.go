package geoclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fooddelivery/internal/adapters/out/http/geoclient"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LocationOf(t *testing.T) {
	vendorID := kernel.NewUUID()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vendors/"+vendorID.String()+"/location", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latitude":52.37,"longitude":4.89}`))
	}))
	defer server.Close()

	client := geoclient.NewClient(server.URL)
	location, err := client.LocationOf(context.Background(), vendorID)
	require.NoError(t, err)
	assert.InDelta(t, 52.37, location.Latitude(), 0.0001)
	assert.InDelta(t, 4.89, location.Longitude(), 0.0001)
}

func TestClient_LocationOf_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := geoclient.NewClient(server.URL)
	_, err := client.LocationOf(context.Background(), kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrMicroserviceCommunication)
}

func TestClient_LocationOf_OutOfRangeCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"latitude":200,"longitude":4.89}`))
	}))
	defer server.Close()

	client := geoclient.NewClient(server.URL)
	_, err := client.LocationOf(context.Background(), kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrMicroserviceCommunication)
}
