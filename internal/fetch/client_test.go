package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingBody = `{
	"data": [
		{"id": 1, "nombre": "Luna", "tipo": "perro", "region": "Biobío", "comuna": "Concepción", "esterilizado": 1, "vacunas": 1},
		{"id": 2, "nombre": "Rocky", "tipo": "gato", "region": "Maule", "comuna": "Talca", "esterilizado": 0, "vacunas": 1}
	],
	"meta": {"last_page": 1, "total": 2}
}`

func TestLoad(t *testing.T) {
	var gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listingBody))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	animals, err := client.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, animals, 2)
	assert.Equal(t, "Luna", animals[0].Name)
	assert.Equal(t, "Biobío", animals[0].Region)
	assert.True(t, animals[0].Sterilized.Bool())
	assert.False(t, animals[1].Sterilized.Bool())
	assert.Len(t, gotRequestID, 26, "each load cycle sends a ULID request id")
}

func TestLoadPreservesOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":9},{"id":3},{"id":7}],"meta":{"last_page":1,"total":3}}`))
	}))
	defer server.Close()

	animals, err := NewClient(server.URL).Load(context.Background())

	require.NoError(t, err)
	ids := []int{animals[0].ID, animals[1].ID, animals[2].ID}
	assert.Equal(t, []int{9, 3, 7}, ids, "source order is preserved, no re-sort")
}

func TestLoadBadStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "server error", status: http.StatusInternalServerError},
		{name: "not found", status: http.StatusNotFound},
		{name: "rate limited", status: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			animals, err := NewClient(server.URL).Load(context.Background())

			require.ErrorIs(t, err, ErrBadResponse)
			assert.Nil(t, animals, "no partial dataset on failure")
		})
	}
}

func TestLoadMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html>gateway timeout</html>"},
		{name: "missing data field", body: `{"meta":{"last_page":1,"total":0}}`},
		{name: "wrong data type", body: `{"data":{"id":1},"meta":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			animals, err := NewClient(server.URL).Load(context.Background())

			require.ErrorIs(t, err, ErrMalformedPayload)
			assert.Nil(t, animals)
		})
	}
}

func TestLoadNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // connection refused from here on

	animals, err := NewClient(server.URL).Load(context.Background())

	require.ErrorIs(t, err, ErrNetwork)
	assert.Nil(t, animals)
}

func TestLoadTruncatedListingStillReturnsData(t *testing.T) {
	// Truncation is detected and logged, not treated as a failure.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":1}],"meta":{"last_page":4,"total":400}}`))
	}))
	defer server.Close()

	animals, err := NewClient(server.URL).Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, animals, 1)
}

func TestLoadEmptyListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[],"meta":{"last_page":1,"total":0}}`))
	}))
	defer server.Close()

	animals, err := NewClient(server.URL).Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, animals)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("")
	assert.Equal(t, DefaultEndpoint, client.Endpoint)
	require.NotNil(t, client.HTTPClient)
	assert.Equal(t, defaultTimeout, client.HTTPClient.Timeout)
}
