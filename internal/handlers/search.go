package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/maddiejones03/Workah/internal/database"

	"github.com/gin-gonic/gin"
)

// Index is the landing page: the full listing set joined with company
// names, narrowed by whatever filters came in on the query string.
func Index(c *gin.Context) {
	q := database.SearchQuery{
		Search:   strings.TrimSpace(c.Query("search")),
		Location: strings.TrimSpace(c.Query("location")),
		Age:      strings.TrimSpace(c.Query("age")),
	}

	jobs, err := database.SearchListings(q)
	if err != nil {
		log.Printf("search failed: %v", err)
		c.String(http.StatusInternalServerError, "Server Error")
		return
	}

	isSearch := q.Search != "" || q.Location != "" || q.Age != ""
	if isSearch {
		log.Printf("search performed. term=%q location=%q age=%q results=%d",
			q.Search, q.Location, q.Age, len(jobs))
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"jobs": jobs,
		"searchParams": gin.H{
			"search":   q.Search,
			"location": q.Location,
			"age":      q.Age,
		},
		"isSearch": isSearch,
	})
}
