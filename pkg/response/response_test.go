package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeta(t *testing.T) {
	assert.Equal(t, 3, NewMeta(1, 10, 21).TotalPages)
	assert.Equal(t, 2, NewMeta(1, 10, 20).TotalPages)
	assert.Equal(t, 0, NewMeta(1, 10, 0).TotalPages)
	assert.Equal(t, 0, NewMeta(1, 0, 5).TotalPages)
}

func TestErrorDefaultsToStatusText(t *testing.T) {
	rec := httptest.NewRecorder()
	Conflict(rec, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Conflict", body.Message)
}
