package handlers

import (
	"github.com/maddiejones03/Workah/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// sessionUser is the snapshot written into the session at login.
type sessionUser struct {
	ID        uint
	Email     string
	Name      string
	Role      models.UserRole
	CompanyID uint // zero for teens
}

func currentSession(c *gin.Context) (sessionUser, bool) {
	sess := sessions.Default(c)

	uid, ok := sess.Get("user_id").(uint)
	if !ok || uid == 0 {
		return sessionUser{}, false
	}

	su := sessionUser{ID: uid}
	su.Email, _ = sess.Get("email").(string)
	su.Name, _ = sess.Get("name").(string)
	if roleStr, ok := sess.Get("role").(string); ok {
		su.Role = models.UserRole(roleStr)
	}
	su.CompanyID, _ = sess.Get("company_id").(uint)

	return su, true
}

func saveSession(c *gin.Context, user *models.User) error {
	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("email", user.Email)
	sess.Set("name", user.FirstName)
	sess.Set("role", string(user.Role))
	if user.CompanyID != nil {
		sess.Set("company_id", *user.CompanyID)
	}
	return sess.Save()
}
