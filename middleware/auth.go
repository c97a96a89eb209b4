package middleware

import (
	"errors"
	"strings"

	"blindboard-backend/db"
	"blindboard-backend/models"
	"blindboard-backend/permissions"
	"blindboard-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"gorm.io/gorm"
)

const (
	ContextUserID  = "user_id"
	ContextRole    = "role"
	ContextSession = "session"
)

// extractClaims pulls the JWT out of the Authorization header. Mobile
// clients sometimes send the token quoted or without the Bearer prefix, so
// the header is normalized before parsing. Returns nil claims when no valid
// token is present; the gate then treats the request as a guest.
func extractClaims(c *gin.Context) jwt.MapClaims {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}

	authHeader = strings.Trim(authHeader, "\"' ")
	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		authHeader = "Bearer " + authHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil
	}

	claims, err := utils.DecodeJWT(strings.Trim(parts[1], "\"' "))
	if err != nil {
		return nil
	}
	return claims
}

// sessionFromRequest rebuilds the permission session from the user row on
// every request. The token only establishes identity; role, status and
// company verification are read fresh so a revoked tier or a completed
// verification takes effect immediately. A suspended or deleted account
// classifies as guest.
func sessionFromRequest(c *gin.Context) (permissions.Session, string) {
	claims := extractClaims(c)
	if claims == nil {
		return permissions.Session{}, ""
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return permissions.Session{}, ""
	}

	var user models.User
	err := db.DB.Preload("Company").First(&user, "id = ?", userID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogError(err, "Error loading user for session in sessionFromRequest")
		}
		return permissions.Session{}, ""
	}

	if user.Status != models.UserActive {
		return permissions.Session{}, ""
	}

	session := permissions.Session{
		IsAuthenticated: true,
		Role:            user.Role,
		CompanyVerified: user.CompanyVerified,
	}
	if user.Company != nil {
		session.Company = &permissions.CompanyRef{
			ID:   user.Company.ID,
			Slug: user.Company.Slug,
			Name: user.Company.Name,
		}
	}
	return session, user.ID
}

// RequireAccess gates a route group at the given access level. On denial it
// answers with the gate's decision (title, description, remedy) in the error
// envelope: 401 for guests, 403 for authenticated users below the level.
func RequireAccess(required permissions.Access) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, userID := sessionFromRequest(c)

		decision := permissions.Authorize(session, required)
		if !decision.Allowed {
			status := 403
			code := utils.CodeForbidden
			if decision.Tier == permissions.TierGuest {
				status = 401
				code = utils.CodeUnauthorized
			}
			c.AbortWithStatusJSON(status, utils.Response{
				Success: false,
				Error: &utils.APIError{
					Code:    code,
					Message: decision.Title,
					Details: gin.H{
						"description": decision.Description,
						"remedy":      decision.Remedy,
					},
				},
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, session.Role)
		c.Set(ContextSession, session)
		c.Next()
	}
}

// OptionalAuth resolves the session without gating, for public routes whose
// handlers still branch on tier (company board visibility).
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, userID := sessionFromRequest(c)
		if userID != "" {
			c.Set(ContextUserID, userID)
			c.Set(ContextRole, session.Role)
		}
		c.Set(ContextSession, session)
		c.Next()
	}
}

// CurrentSession returns the session resolved by RequireAccess/OptionalAuth,
// or the guest session when neither ran.
func CurrentSession(c *gin.Context) permissions.Session {
	if v, exists := c.Get(ContextSession); exists {
		if s, ok := v.(permissions.Session); ok {
			return s
		}
	}
	return permissions.Session{}
}
