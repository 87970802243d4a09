package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"project_cloudi/internal/entities"
	"project_cloudi/internal/infrastructure"
	"project_cloudi/internal/interfaces"
	"project_cloudi/internal/usecases"
)

const (
	sessionCookie = "cloudi_session"
	feedbackLog   = "feedback.json"
)

// SmsSender is the outbound Twilio surface the webhooks need.
type SmsSender interface {
	SendMessage(to, content string) error
	SendWhatsApp(phone, content string) error
}

type Handler struct {
	resolver      *usecases.Resolver
	sessions      *infrastructure.SessionManager
	analytics     *usecases.AnalyticsRecorder
	store         interfaces.RecordStore
	twilio        SmsSender
	facebook      interfaces.Messenger
	verifyToken   string
	sessionSecret []byte
	logger        *zap.Logger
	now           func() time.Time
}

func NewHandler(
	resolver *usecases.Resolver,
	sessions *infrastructure.SessionManager,
	analytics *usecases.AnalyticsRecorder,
	store interfaces.RecordStore,
	twilio SmsSender,
	facebook interfaces.Messenger,
	verifyToken string,
	sessionSecret string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		resolver:      resolver,
		sessions:      sessions,
		analytics:     analytics,
		store:         store,
		twilio:        twilio,
		facebook:      facebook,
		verifyToken:   verifyToken,
		sessionSecret: []byte(sessionSecret),
		logger:        logger,
		now:           time.Now,
	}
}

// SetupRoutes registers every channel and admin route.
func SetupRoutes(r *gin.Engine, h *Handler, admin *AdminHandler, middleware *Middleware) {
	r.Use(SecurityHeaders())
	r.Use(RequestSizeLimiter(1 << 20))

	r.GET("/", h.Home)
	r.POST("/chat", h.HandleChat)
	r.GET("/reset", h.HandleReset)
	r.POST("/submit-feedback", h.HandleFeedback)

	r.POST("/webhook/sms", h.HandleSmsWebhook)
	r.POST("/webhook/whatsapp", h.HandleWhatsAppWebhook)
	r.GET("/webhook/facebook", h.HandleFacebookVerify)
	r.POST("/webhook/facebook", h.HandleFacebookWebhook)
	r.GET("/webhook/instagram", h.HandleInstagramVerify)
	r.POST("/webhook/instagram", h.HandleInstagramWebhook)

	r.POST("/admin/login", admin.Login)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AuthRequired())
	{
		adminGroup.GET("/analytics", admin.Analytics)
		adminGroup.GET("/sms-logs", admin.SmsLogs)
		adminGroup.POST("/sms-logs/clear", admin.ClearSmsLogs)
	}
}

// Home reports the greeting banner and how many turns this session holds.
func (h *Handler) Home(c *gin.Context) {
	session := h.session(c)
	c.JSON(http.StatusOK, gin.H{
		"intro_message":      "Hi, I'm Cloudi ☁️!",
		"sub_message":        "Ask anything about internships, IAC, domains, docs...",
		"conversation_count": len(session.History()),
	})
}

// HandleChat is the web form channel: resolve, remember the turn, return the
// styled answer plus the capped running history.
func (h *Handler) HandleChat(c *gin.Context) {
	var form struct {
		Message     string `form:"message" json:"message"`
		Personality string `form:"personality" json:"personality"`
	}
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	session := h.session(c)
	mood := entities.ResolveMood(form.Personality, session.Mood())
	session.SetMood(mood)

	message := SanitizeString(form.Message)
	answer, branch := h.resolver.Resolve(c.Request.Context(), message, mood)
	if branch == usecases.BranchValidation {
		c.JSON(http.StatusOK, gin.H{
			"question": message,
			"answer":   answer,
			"error":    true,
			"history":  session.History(),
		})
		return
	}

	h.analytics.RecordChat(mood, "web")
	session.AppendTurn(entities.ConversationTurn{
		Question:  message,
		Answer:    answer,
		Timestamp: h.now().Format("15:04"),
	})

	c.JSON(http.StatusOK, gin.H{
		"question":  message,
		"answer":    answer,
		"is_casual": branch == usecases.BranchCasual,
		"history":   session.History(),
	})
}

// HandleReset clears the session's conversation history.
func (h *Handler) HandleReset(c *gin.Context) {
	session := h.session(c)
	session.ClearHistory()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// HandleFeedback appends a feedback record and bumps the counters. A broken
// feedback log never surfaces past an apologetic message.
func (h *Handler) HandleFeedback(c *gin.Context) {
	var form struct {
		Question string `form:"question" json:"question"`
		Answer   string `form:"answer" json:"answer"`
		Feedback string `form:"feedback" json:"feedback"`
	}
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	rec := entities.FeedbackRecord{
		Question:  SanitizeString(form.Question),
		Answer:    SanitizeString(form.Answer),
		Feedback:  SanitizeString(form.Feedback),
		Timestamp: entities.RecordTimestamp(h.now()),
	}
	if err := h.store.Append(feedbackLog, rec); err != nil {
		h.logger.Error("failed to save feedback", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"status": "Oops! Couldn't save your feedback. Please try again."})
		return
	}
	h.analytics.RecordFeedback(rec.Feedback)
	c.JSON(http.StatusOK, gin.H{"status": "✅ Thanks for your feedback! It really helps me improve."})
}

// session returns the caller's session, minting one (and its signed cookie)
// when the cookie is absent or fails verification.
func (h *Handler) session(c *gin.Context) *infrastructure.Session {
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		if id, ok := h.verifySessionToken(cookie); ok {
			if session := h.sessions.Get(id); session != nil {
				return session
			}
		}
	}

	session := h.sessions.Create()
	token, err := h.signSessionToken(session.ID)
	if err != nil {
		h.logger.Error("failed to sign session token", zap.Error(err))
		return session
	}
	c.SetCookie(sessionCookie, token, int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
	return session
}

func (h *Handler) signSessionToken(sessionID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"iat": h.now().Unix(),
	})
	return token.SignedString(h.sessionSecret)
}

func (h *Handler) verifySessionToken(tokenString string) (string, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return h.sessionSecret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sid, ok := claims["sid"].(string)
	return sid, ok && sid != ""
}
