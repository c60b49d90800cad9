package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
)

const (
	ContextUserID   = "userID"
	ContextSalonID  = "salonID"
	ContextUserRole = "userRole"
)

const tokenTTL = 24 * time.Hour

// IssueToken assina o JWT do painel; sub e salonId viajam como string uuid.
func IssueToken(secret string, userID, salonID uuid.UUID, role string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":     userID.String(),
		"salonId": salonID.String(),
		"role":    role,
		"exp":     now.Add(tokenTTL).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_code": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_code": "invalid_authorization_header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_code": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_code": "invalid_token_claims"})
			return
		}

		sub, _ := claims["sub"].(string)
		salon, _ := claims["salonId"].(string)
		role, _ := claims["role"].(string)

		userID, err1 := uuid.Parse(sub)
		salonID, err2 := uuid.Parse(salon)
		if err1 != nil || err2 != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_code": "invalid_token_payload"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextSalonID, salonID)
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// --------------------------------------------------
// Context helpers
// --------------------------------------------------

func SalonID(c *gin.Context) uuid.UUID {
	return c.MustGet(ContextSalonID).(uuid.UUID)
}

func UserID(c *gin.Context) *uuid.UUID {
	id, ok := c.Get(ContextUserID)
	if !ok {
		return nil
	}
	uid := id.(uuid.UUID)
	return &uid
}
