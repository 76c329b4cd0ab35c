package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ariebrainware/fitbuddy-api/model"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SecurityEventType represents different types of security events
type SecurityEventType string

const (
	EventRegisterSuccess SecurityEventType = "REGISTER_SUCCESS"
	EventLoginSuccess    SecurityEventType = "LOGIN_SUCCESS"
	EventLoginFailure    SecurityEventType = "LOGIN_FAILURE"
	EventPasswordUpgrade SecurityEventType = "PASSWORD_UPGRADED"
	EventUserDeleted     SecurityEventType = "USER_DELETED"
	EventEndpointCall    SecurityEventType = "ENDPOINT_CALL"
)

// SecurityEvent represents a security event to be logged. It never carries a
// password in any form.
type SecurityEvent struct {
	EventType SecurityEventType
	UserID    string
	Name      string
	IP        string
	UserAgent string
	RequestID string
	Message   string
	Details   map[string]interface{}
}

var (
	securityLogger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "security").Logger()
	securityDB     *gorm.DB
)

// SetSecurityLoggerDB sets a gorm DB instance used by the security logger.
// Call this during application startup after DB initialization.
func SetSecurityLoggerDB(db *gorm.DB) {
	securityDB = db
}

// SetSecurityLogger replaces the zerolog logger security events are written to.
func SetSecurityLogger(l zerolog.Logger) {
	securityLogger = l.With().Str("component", "security").Logger()
}

// maxLogValueLen is in bytes; values are cut on a rune boundary at or below it.
const maxLogValueLen = 200

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	if len(value) > maxLogValueLen {
		cut := maxLogValueLen
		for cut > 0 && !utf8.RuneStart(value[cut]) {
			cut--
		}
		value = value[:cut] + "..."
	}
	return value
}

// LogSecurityEvent writes a security event to the log and, when a DB has been
// set, persists it to the security_logs table. Persistence is best-effort.
func LogSecurityEvent(event SecurityEvent) {
	entry := securityLogger.Info().
		Str("event", sanitizeLogValue(string(event.EventType))).
		Str("user_id", sanitizeLogValue(event.UserID)).
		Str("name", sanitizeLogValue(event.Name)).
		Str("ip", sanitizeLogValue(event.IP)).
		Str("user_agent", sanitizeLogValue(event.UserAgent)).
		Str(RequestIDKey, sanitizeLogValue(event.RequestID))
	if len(event.Details) > 0 {
		// only the count; details are stored structured in the DB
		entry = entry.Int("details_count", len(event.Details))
	}
	entry.Msg(sanitizeLogValue(event.Message))

	if securityDB == nil {
		return
	}

	var details datatypes.JSON
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}

	row := model.SecurityLog{
		EventType: string(event.EventType),
		UserID:    sanitizeLogValue(event.UserID),
		Name:      sanitizeLogValue(event.Name),
		IP:        sanitizeLogValue(event.IP),
		UserAgent: sanitizeLogValue(event.UserAgent),
		RequestID: sanitizeLogValue(event.RequestID),
		Message:   sanitizeLogValue(event.Message),
		Details:   details,
	}
	if err := securityDB.Create(&row).Error; err != nil {
		securityLogger.Warn().Err(err).Msg("failed to persist security event")
	}
}

// ClientParams identifies the caller of an authentication request.
type ClientParams struct {
	UserID    uint
	Name      string
	IP        string
	UserAgent string
	RequestID string
	Reason    string
}

func (p ClientParams) userID() string {
	if p.UserID == 0 {
		return ""
	}
	return fmt.Sprintf("%d", p.UserID)
}

// LogRegisterSuccess logs a new account
func LogRegisterSuccess(p ClientParams) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventRegisterSuccess,
		UserID:    p.userID(),
		Name:      p.Name,
		IP:        p.IP,
		UserAgent: p.UserAgent,
		RequestID: p.RequestID,
		Message:   "User registered successfully",
	})
}

// LogLoginSuccess logs a successful login event
func LogLoginSuccess(p ClientParams) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventLoginSuccess,
		UserID:    p.userID(),
		Name:      p.Name,
		IP:        p.IP,
		UserAgent: p.UserAgent,
		RequestID: p.RequestID,
		Message:   "User logged in successfully",
	})
}

// LogLoginFailure logs a failed login attempt. The reason is recorded
// server-side only; clients always get the same response.
func LogLoginFailure(p ClientParams) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventLoginFailure,
		UserID:    p.userID(),
		Name:      p.Name,
		IP:        p.IP,
		UserAgent: p.UserAgent,
		RequestID: p.RequestID,
		Message:   fmt.Sprintf("Login failed: %s", p.Reason),
	})
}

// LogPasswordUpgrade logs a stored password being rehashed with current parameters
func LogPasswordUpgrade(p ClientParams) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventPasswordUpgrade,
		UserID:    p.userID(),
		Name:      p.Name,
		IP:        p.IP,
		RequestID: p.RequestID,
		Message:   "Upgraded password hash to Argon2id",
	})
}

// LogUserDeleted logs an account removal
func LogUserDeleted(p ClientParams) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventUserDeleted,
		UserID:    p.userID(),
		IP:        p.IP,
		UserAgent: p.UserAgent,
		RequestID: p.RequestID,
		Message:   "User deleted",
	})
}

// SecurityLogger returns the logger security events are written to.
func SecurityLogger() zerolog.Logger {
	return securityLogger
}
