package handlers

import (
	"net/http"
	"strings"

	"github.com/maddiejones03/Workah/internal/database"

	"github.com/gin-gonic/gin"
)

// ShowApply renders the application form for any listing. Applications
// are intake-only: nothing is stored.
func ShowApply(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid job id")
		return
	}

	job, err := database.ListingByID(id)
	if err != nil {
		notFoundOrError(c, err)
		return
	}

	render(c, http.StatusOK, "apply.html", gin.H{"job": job})
}

func Apply(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid job id")
		return
	}

	job, err := database.ListingByID(id)
	if err != nil {
		notFoundOrError(c, err)
		return
	}

	render(c, http.StatusOK, "apply_done.html", gin.H{
		"job":     job,
		"message": strings.TrimSpace(c.PostForm("message")),
	})
}
