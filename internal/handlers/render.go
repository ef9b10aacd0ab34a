package handlers

import (
	"github.com/maddiejones03/Workah/internal/models"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and passes the current user through to every
// template, when middleware.InjectUser put one on the context.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if uVal, ok := c.Get("CurrentUser"); ok {
		switch u := uVal.(type) {
		case models.User:
			data["CurrentUser"] = u
			data["CurrentUserName"] = u.FirstName
			data["CurrentUserRole"] = string(u.Role)
		case *models.User:
			data["CurrentUser"] = u
			data["CurrentUserName"] = u.FirstName
			data["CurrentUserRole"] = string(u.Role)
		}
	}

	c.HTML(status, tmpl, data)
}
