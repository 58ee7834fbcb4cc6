package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalingHandler_GetToken(t *testing.T) {
	handler := NewSignalingHandler()

	req := httptest.NewRequest(http.MethodGet, "/signaling/token", nil)
	rec := httptest.NewRecorder()
	handler.GetToken(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SignalingTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "demo-token", resp.Token)
}
