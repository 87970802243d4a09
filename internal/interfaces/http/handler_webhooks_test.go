package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project_cloudi/internal/entities"
)

func TestSmsWebhookRespondsWithTwiml(t *testing.T) {
	env := newTestEnv(t)

	w := postForm(env.router, "/webhook/sms", url.Values{"Body": {"hi"}, "From": {"+15550001111"}})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "<Response>")
	assert.Contains(t, body, "<Message>")
	assert.Contains(t, body, "Hey there!")

	var logs []entities.SmsRecord
	require.NoError(t, env.store.List("sms_logs.json", &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "+15550001111", logs[0].Phone)
	assert.Equal(t, "hi", logs[0].Message)

	var history []entities.SmsHistoryRecord
	require.NoError(t, env.store.List("sms_history.json", &history))
	require.Len(t, history, 1)
	assert.Equal(t, "hi", history[0].Question)
	assert.Contains(t, history[0].Answer, "Hey there!")
}

func TestWhatsAppWebhookRepliesViaTwilio(t *testing.T) {
	env := newTestEnv(t)

	w := postForm(env.router, "/webhook/whatsapp", url.Values{"Body": {"hi"}, "From": {"whatsapp:+15550002222"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())

	require.Len(t, env.twilio.whatsappTo, 1)
	assert.Equal(t, "+15550002222", env.twilio.whatsappTo[0], "the whatsapp: prefix is stripped before sending")
	assert.Contains(t, env.twilio.whatsappMsgs[0], "Hey there!")
}

func TestFacebookVerifyHandshake(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/webhook/facebook?hub.verify_token=verify-me&hub.challenge=12345", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12345", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/webhook/facebook?hub.verify_token=wrong&hub.challenge=12345", nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFacebookWebhookRepliesToSender(t *testing.T) {
	env := newTestEnv(t)

	payload := `{"entry":[{"messaging":[{"sender":{"id":"psid-1"},"message":{"text":"hi"}}]}]}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/facebook", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, env.facebook.to, 1)
	assert.Equal(t, "psid-1", env.facebook.to[0])
	assert.Contains(t, env.facebook.msgs[0], "Hey there!")
}

func TestFacebookWebhookAcknowledgesMalformedPayload(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/webhook/facebook", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "Meta retries anything that is not a 200")
	assert.Empty(t, env.facebook.to)
}

func TestInstagramVerifyRequiresSubscribeMode(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/webhook/instagram?hub.mode=subscribe&hub.verify_token=verify-me&hub.challenge=777", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "777", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/webhook/instagram?hub.verify_token=verify-me&hub.challenge=777", nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestInstagramWebhookAcknowledgesEvents(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/webhook/instagram", strings.NewReader(`{"object":"instagram"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "EVENT_RECEIVED", w.Body.String())
}
