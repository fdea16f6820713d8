package category

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCategories(t *testing.T) {
	h := NewHandler([]string{"pizza", " sushi ", "", "Pizza", "10 kebab", "2 tacos"}, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()
	h.GetCategories(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp CategoriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"pizza", "sushi", "10 kebab", "2 tacos"}, resp.Categories)
}
