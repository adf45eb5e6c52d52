package cli

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionsCommand(t *testing.T) {
	server := newListingServer(t)

	out, err := runCommand(t, server.URL, "regions")

	require.NoError(t, err)
	// Canonical north-to-south order: Maule before Biobío.
	maule := strings.Index(out, "Maule (1)")
	biobio := strings.Index(out, "Biobío (2)")
	require.GreaterOrEqual(t, maule, 0)
	require.GreaterOrEqual(t, biobio, 0)
	assert.Less(t, maule, biobio)
}

func TestRegionsEmptyListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[],"meta":{"last_page":1,"total":0}}`))
	}))
	t.Cleanup(server.Close)

	out, err := runCommand(t, server.URL, "regions")

	require.NoError(t, err)
	assert.Contains(t, out, "No regions with adoptable animals")
}

func TestRegionsServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	_, err := runCommand(t, server.URL, "regions")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not load the animal listing")
}
