package http

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"project_cloudi/internal/entities"
)

const (
	smsLog        = "sms_logs.json"
	smsHistoryLog = "sms_history.json"
)

// twimlResponse is the reply envelope Twilio renders back to the SMS sender.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// HandleSmsWebhook answers an inbound Twilio SMS with TwiML. Webhook
// failures must not look like server errors to Twilio, so every exit is 200.
func (h *Handler) HandleSmsWebhook(c *gin.Context) {
	body := SanitizeString(c.PostForm("Body"))
	phone := c.PostForm("From")

	reply, _ := h.resolver.Resolve(c.Request.Context(), body, entities.MoodFormal)

	h.appendRecord(smsLog, entities.SmsRecord{
		Phone:     phone,
		Message:   body,
		Timestamp: entities.RecordTimestamp(h.now()),
	})
	h.appendRecord(smsHistoryLog, entities.SmsHistoryRecord{
		From:      phone,
		Question:  body,
		Answer:    reply,
		Timestamp: entities.RecordTimestamp(h.now()),
	})
	h.analytics.RecordChat(entities.MoodFormal, "sms")

	c.XML(http.StatusOK, twimlResponse{Message: reply})
}

// HandleWhatsAppWebhook resolves an inbound WhatsApp message and sends the
// reply back out through Twilio.
func (h *Handler) HandleWhatsAppWebhook(c *gin.Context) {
	body := SanitizeString(c.PostForm("Body"))
	phone := strings.TrimPrefix(c.PostForm("From"), "whatsapp:")

	reply, _ := h.resolver.Resolve(c.Request.Context(), body, entities.MoodFormal)
	if err := h.twilio.SendWhatsApp(phone, reply); err != nil {
		h.logger.Error("whatsapp reply failed", zap.Error(err), zap.String("to", phone))
	}
	h.analytics.RecordChat(entities.MoodFormal, "whatsapp")

	c.String(http.StatusOK, "ok")
}

// facebookEvent is the slice of Meta's webhook envelope the bot reads.
type facebookEvent struct {
	Entry []struct {
		Messaging []struct {
			Sender struct {
				ID string `json:"id"`
			} `json:"sender"`
			Message struct {
				Text string `json:"text"`
			} `json:"message"`
		} `json:"messaging"`
	} `json:"entry"`
}

// HandleFacebookVerify answers Meta's GET challenge handshake.
func (h *Handler) HandleFacebookVerify(c *gin.Context) {
	if h.verifyToken != "" && c.Query("hub.verify_token") == h.verifyToken {
		c.String(http.StatusOK, c.Query("hub.challenge"))
		return
	}
	c.String(http.StatusForbidden, "Invalid")
}

// HandleFacebookWebhook resolves an inbound Messenger text and replies via
// the graph API. Malformed payloads are logged and acknowledged anyway so
// Meta does not retry them.
func (h *Handler) HandleFacebookWebhook(c *gin.Context) {
	var event facebookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		h.logger.Warn("malformed facebook webhook payload", zap.Error(err))
		c.String(http.StatusOK, "ok")
		return
	}

	for _, entry := range event.Entry {
		for _, messaging := range entry.Messaging {
			text := SanitizeString(messaging.Message.Text)
			if text == "" || messaging.Sender.ID == "" {
				continue
			}
			reply, _ := h.resolver.Resolve(c.Request.Context(), text, entities.MoodFormal)
			if h.facebook == nil {
				h.logger.Warn("facebook channel disabled, dropping reply")
				continue
			}
			if err := h.facebook.SendMessage(messaging.Sender.ID, reply); err != nil {
				h.logger.Error("facebook reply failed", zap.Error(err))
			}
			h.analytics.RecordChat(entities.MoodFormal, "facebook")
		}
	}
	c.String(http.StatusOK, "ok")
}

// HandleInstagramVerify answers the Instagram variant of the handshake.
func (h *Handler) HandleInstagramVerify(c *gin.Context) {
	if h.verifyToken != "" && c.Query("hub.mode") == "subscribe" && c.Query("hub.verify_token") == h.verifyToken {
		c.String(http.StatusOK, c.Query("hub.challenge"))
		return
	}
	c.String(http.StatusForbidden, "Forbidden")
}

// HandleInstagramWebhook acknowledges inbound Instagram events without
// resolving them. Inbound Instagram messaging is not handled yet; events are
// logged for later inspection only.
func (h *Handler) HandleInstagramWebhook(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err == nil {
		h.logger.Info("instagram event received", zap.Any("payload", payload))
	}
	c.String(http.StatusOK, "EVENT_RECEIVED")
}

func (h *Handler) appendRecord(log string, record any) {
	if err := h.store.Append(log, record); err != nil {
		h.logger.Warn("failed to append record", zap.String("log", log), zap.Error(err))
	}
}