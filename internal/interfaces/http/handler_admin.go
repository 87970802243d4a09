package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"project_cloudi/internal/entities"
	"project_cloudi/internal/interfaces"
	"project_cloudi/internal/usecases"
)

// AdminHandler serves the operator surface: login, analytics, SMS logs.
// The configured password is hashed once at construction; only the hash is
// kept in memory afterwards.
type AdminHandler struct {
	username     string
	passwordHash []byte
	jwtSecret    []byte
	analytics    *usecases.AnalyticsRecorder
	store        interfaces.RecordStore
	logger       *zap.Logger
}

func NewAdminHandler(username, password, jwtSecret string, analytics *usecases.AnalyticsRecorder, store interfaces.RecordStore, logger *zap.Logger) *AdminHandler {
	var hash []byte
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("failed to hash admin password, admin login disabled", zap.Error(err))
		} else {
			hash = h
		}
	}
	return &AdminHandler{
		username:     username,
		passwordHash: hash,
		jwtSecret:    []byte(jwtSecret),
		analytics:    analytics,
		store:        store,
		logger:       logger,
	}
}

// Login checks credentials and issues a 24h admin token.
func (a *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Username string `form:"username" json:"username"`
		Password string `form:"password" json:"password"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if a.username == "" || len(a.passwordHash) == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin login is not configured"})
		return
	}
	if req.Username != a.username ||
		bcrypt.CompareHashAndPassword(a.passwordHash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong username or password! 🔐"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  a.username,
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(a.jwtSecret)
	if err != nil {
		a.logger.Error("failed to sign admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": signed})
}

// Analytics returns the usage counters and the most requested personality.
func (a *AdminHandler) Analytics(c *gin.Context) {
	snapshot := a.analytics.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"analytics":                snapshot,
		"most_popular_personality": snapshot.MostPopularPersonality(),
	})
}

// SmsLogs returns the retained SMS records, newest first.
func (a *AdminHandler) SmsLogs(c *gin.Context) {
	var logs []entities.SmsRecord
	if err := a.store.List(smsLog, &logs); err != nil {
		a.logger.Error("failed to read sms logs", zap.Error(err))
		logs = nil
	}
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs, "total_logs": len(logs)})
}

// ClearSmsLogs empties the SMS log file.
func (a *AdminHandler) ClearSmsLogs(c *gin.Context) {
	if err := a.store.Clear(smsLog); err != nil {
		a.logger.Error("failed to clear sms logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "SMS logs cleared! 🗑️"})
}
