// test/e2e/e2e_test.go
package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-signup/internal/common/logger"
	"activity-signup/internal/models"
	"activity-signup/internal/registry"
	"activity-signup/internal/server"
)

// startServer brings up the full HTTP stack against a freshly seeded registry.
func startServer(t *testing.T) (*httptest.Server, *registry.Registry) {
	t.Helper()

	reg, err := registry.FromSeed(logger.NewTestLogger(t))
	require.NoError(t, err)

	srv, err := server.New(server.Config{Address: ":0"}, reg, nil, nil, logger.NewTestLogger(t))
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, reg
}

func activityURL(base, activity, op, email string) string {
	return fmt.Sprintf("%s/activities/%s/%s?email=%s",
		base, url.PathEscape(activity), op, url.QueryEscape(email))
}

func do(t *testing.T, method, target string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, target, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func fetchListing(t *testing.T, base string) map[string]models.Activity {
	t.Helper()

	resp, body := do(t, http.MethodGet, base+"/activities")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing map[string]models.Activity
	require.NoError(t, json.Unmarshal(body, &listing))
	return listing
}

func TestEndToEnd_SignupLifecycle(t *testing.T) {
	ts, _ := startServer(t)
	email := "e2e@mergington.edu"
	activity := "Chess Club"

	// Seeded listing is intact.
	listing := fetchListing(t, ts.URL)
	require.Contains(t, listing, activity)
	require.NotContains(t, listing[activity].Participants, email)
	initialCount := len(listing[activity].Participants)

	// Sign up.
	resp, body := do(t, http.MethodPost, activityURL(ts.URL, activity, "signup", email))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), email)
	assert.Contains(t, string(body), activity)

	listing = fetchListing(t, ts.URL)
	assert.Contains(t, listing[activity].Participants, email)
	assert.Len(t, listing[activity].Participants, initialCount+1)

	// Duplicate signup fails without changing state.
	resp, body = do(t, http.MethodPost, activityURL(ts.URL, activity, "signup", email))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "already signed up")
	assert.Len(t, fetchListing(t, ts.URL)[activity].Participants, initialCount+1)

	// Unregister.
	resp, body = do(t, http.MethodDelete, activityURL(ts.URL, activity, "unregister", email))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), email)

	listing = fetchListing(t, ts.URL)
	assert.NotContains(t, listing[activity].Participants, email)

	// Unregister again fails.
	resp, body = do(t, http.MethodDelete, activityURL(ts.URL, activity, "unregister", email))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "not registered")

	// Sign up once more round-trips.
	resp, _ = do(t, http.MethodPost, activityURL(ts.URL, activity, "signup", email))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, fetchListing(t, ts.URL)[activity].Participants, email)
}

func TestEndToEnd_UnknownActivity(t *testing.T) {
	ts, _ := startServer(t)

	resp, body := do(t, http.MethodPost, activityURL(ts.URL, "Nonexistent Club", "signup", "a@mergington.edu"))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "Activity not found")

	resp, body = do(t, http.MethodDelete, activityURL(ts.URL, "Nonexistent Club", "unregister", "a@mergington.edu"))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "Activity not found")
}

func TestEndToEnd_RootRedirect(t *testing.T) {
	ts, _ := startServer(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "/static/index.html", resp.Header.Get("Location"))
}

func TestEndToEnd_SeedIsolatedPerServer(t *testing.T) {
	// Two servers never share registry state.
	ts1, _ := startServer(t)
	ts2, _ := startServer(t)

	resp, _ := do(t, http.MethodPost, activityURL(ts1.URL, "Math Club", "signup", "isolated@mergington.edu"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, fetchListing(t, ts1.URL)["Math Club"].Participants, "isolated@mergington.edu")
	assert.NotContains(t, fetchListing(t, ts2.URL)["Math Club"].Participants, "isolated@mergington.edu")
}
