package http_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postAdminForm(t *testing.T, router http.Handler, uniqueID, finalURL string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{}
	form.Set("unique_id", uniqueID)
	form.Set("final_url", finalURL)
	req := httptest.NewRequest("POST", "/admin/form", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// TestAdminForm_Get_RendersForm verifies the empty form page
func TestAdminForm_Get_RendersForm(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest("GET", "/admin/form", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Create or Update Redirect")
	assert.Contains(t, rr.Body.String(), `name="unique_id"`)
	assert.Contains(t, rr.Body.String(), `name="final_url"`)
}

// TestAdminForm_Post_RegistersAndRendersResult verifies form registration
func TestAdminForm_Post_RegistersAndRendersResult(t *testing.T) {
	router := newTestRouter(t, "https://short.example.com")

	rr := postAdminForm(t, router, "my order", "https://example.com")

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "created")
	assert.Contains(t, body, "https://short.example.com/my-order")
	assert.Contains(t, body, "data:image/png;base64,")

	// The registration is visible to the redirect route
	req := httptest.NewRequest("GET", "/my-order", nil)
	follow := httptest.NewRecorder()
	router.ServeHTTP(follow, req)
	assert.Equal(t, http.StatusFound, follow.Code)
	assert.Equal(t, "https://example.com", follow.Header().Get("Location"))
}

// TestAdminForm_Post_MissingFinalURL_RendersError verifies inline validation feedback
func TestAdminForm_Post_MissingFinalURL_RendersError(t *testing.T) {
	router := newTestRouter(t, "")

	rr := postAdminForm(t, router, "abc", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "final_url is required")
}

// TestAdminEntries_Empty_ShowsPlaceholder verifies the empty listing state
func TestAdminEntries_Empty_ShowsPlaceholder(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest("GET", "/admin/entries", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "No entries registered yet.")
}

// TestAdminEntries_ListsSortedByUniqueID verifies the listing page content and order
func TestAdminEntries_ListsSortedByUniqueID(t *testing.T) {
	router := newTestRouter(t, "https://short.example.com")

	for _, id := range []string{"charlie", "alpha", "bravo"} {
		rr := postAdminForm(t, router, id, "https://example.com/"+id)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	req := httptest.NewRequest("GET", "/admin/entries", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "https://short.example.com/alpha")
	assert.Contains(t, body, "https://short.example.com/bravo")
	assert.Contains(t, body, "https://short.example.com/charlie")

	// Rows appear in unique-ID order
	alpha := strings.Index(body, ">alpha<")
	bravo := strings.Index(body, ">bravo<")
	charlie := strings.Index(body, ">charlie<")
	require.NotEqual(t, -1, alpha)
	require.NotEqual(t, -1, bravo)
	require.NotEqual(t, -1, charlie)
	assert.Less(t, alpha, bravo)
	assert.Less(t, bravo, charlie)
}
