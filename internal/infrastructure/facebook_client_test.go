package infrastructure

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphSendMessage(t *testing.T) {
	var gotToken string
	var gotPayload map[string]map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("access_token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewGraphClient("page-token")
	client.baseURL = server.URL

	require.NoError(t, client.SendMessage("user-1", "hello there"))
	assert.Equal(t, "page-token", gotToken)
	assert.Equal(t, "user-1", gotPayload["recipient"]["id"])
	assert.Equal(t, "hello there", gotPayload["message"]["text"])
}

func TestGraphSendFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewGraphClient("page-token")
	client.baseURL = server.URL
	assert.Error(t, client.SendMessage("user-1", "hello"))
}
