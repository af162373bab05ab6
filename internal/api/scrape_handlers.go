package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fetscr/internal/history"
	"fetscr/internal/search"
)

type ScrapeRequest struct {
	Query string `json:"query"`
	Pages int    `json:"pages"`
}

// POST /scrape
//
// Runs the paginated aggregation for the authenticated caller, caps
// the delivered results, and appends one history record whose
// result_count equals exactly the delivered count.
func ScrapeHandler(agg *search.Aggregator, hist history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var req ScrapeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing query"})
			return
		}
		query := strings.TrimSpace(req.Query)
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing query"})
			return
		}

		results, err := agg.Run(c.Request.Context(), query, req.Pages)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		limited := search.CapResults(results)
		if limited == nil {
			limited = []search.Result{}
		}

		// The scrape itself succeeded at this point; a failed history
		// write still surfaces as a generic failure.
		if err := hist.Append(c.Request.Context(), userId, query, len(limited)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(limited),
			"results": limited,
		})
	}
}

// GET /my-scrapes
func MyScrapesHandler(hist history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")
		events, err := hist.ByUser(c.Request.Context(), userId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		if events == nil {
			events = []history.QueryEvent{}
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"history": events,
		})
	}
}
