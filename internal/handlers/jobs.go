package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/maddiejones03/Workah/internal/database"
	"github.com/maddiejones03/Workah/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dashboard lists the listings owned by the session's company.
func Dashboard(c *gin.Context) {
	su, ok := currentSession(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	jobs, err := database.ListingsByCompany(su.CompanyID)
	if err != nil {
		log.Printf("failed to load dashboard listings: %v", err)
		c.String(http.StatusInternalServerError, "Server Error")
		return
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{"jobs": jobs})
}

func ShowAddJob(c *gin.Context) {
	render(c, http.StatusOK, "job_form.html", gin.H{
		"job":    nil,
		"action": "/jobs/add",
		"error":  "",
	})
}

func AddJob(c *gin.Context) {
	su, ok := currentSession(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		render(c, http.StatusBadRequest, "job_form.html", gin.H{
			"job":    nil,
			"action": "/jobs/add",
			"error":  "Title is required",
		})
		return
	}

	imagePath, err := saveUpload(c)
	if err != nil {
		log.Printf("image upload failed: %v", err)
		c.String(http.StatusInternalServerError, "Server Error")
		return
	}

	listing := models.Listing{
		Title:       title,
		Description: strings.TrimSpace(c.PostForm("description")),
		Location:    strings.TrimSpace(c.PostForm("location")),
		Pay:         strings.TrimSpace(c.PostForm("pay")),
		AgeRange:    strings.TrimSpace(c.PostForm("age_range")),
		ImagePath:   imagePath,
		CompanyID:   su.CompanyID,
	}

	if err := database.CreateListing(&listing); err != nil {
		// an already-saved upload is left behind here, same as the
		// upstream behavior
		log.Printf("failed to create listing: %v", err)
		c.String(http.StatusInternalServerError, "Server Error")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

func ShowEditJob(c *gin.Context) {
	su, ok := currentSession(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid job id")
		return
	}

	job, err := database.ListingByOwner(id, su.CompanyID)
	if err != nil {
		notFoundOrError(c, err)
		return
	}

	render(c, http.StatusOK, "job_form.html", gin.H{
		"job":    job,
		"action": "/jobs/edit/" + c.Param("id"),
		"error":  "",
	})
}

func EditJob(c *gin.Context) {
	su, ok := currentSession(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid job id")
		return
	}

	fields := map[string]interface{}{
		"title":       strings.TrimSpace(c.PostForm("title")),
		"description": strings.TrimSpace(c.PostForm("description")),
		"location":    strings.TrimSpace(c.PostForm("location")),
		"pay":         strings.TrimSpace(c.PostForm("pay")),
		"age_range":   strings.TrimSpace(c.PostForm("age_range")),
	}

	// only touch the stored image when a new one came in
	imagePath, err := saveUpload(c)
	if err != nil {
		log.Printf("image upload failed: %v", err)
		c.String(http.StatusInternalServerError, "Server Error")
		return
	}
	if imagePath != "" {
		fields["image_path"] = imagePath
	}

	if err := database.UpdateListing(id, su.CompanyID, fields); err != nil {
		notFoundOrError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

func DeleteJob(c *gin.Context) {
	su, ok := currentSession(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid job id")
		return
	}

	if err := database.DeleteListing(id, su.CompanyID); err != nil {
		notFoundOrError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

func parseID(s string) (uint, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// notFoundOrError collapses a wrong id and a wrong owner into the same
// 404, so nothing about other companies' listings leaks.
func notFoundOrError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.String(http.StatusNotFound, "Job not found or unauthorized")
		return
	}
	log.Printf("listing store error: %v", err)
	c.String(http.StatusInternalServerError, "Server Error")
}
