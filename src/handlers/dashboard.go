package handlers

import (
	"net/http"
	"strconv"

	"github.com/digitalfiroj/studio-site-server/src/database"
	"github.com/digitalfiroj/studio-site-server/src/services"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregate counts and notification log for
// the admin dashboard header
type DashboardHandler struct {
	db     *database.Database
	notify *services.NotifyService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(db *database.Database, notify *services.NotifyService) *DashboardHandler {
	return &DashboardHandler{
		db:     db,
		notify: notify,
	}
}

// StatsResponse represents the dashboard counters
type StatsResponse struct {
	QuizLeads       int `json:"quiz_leads"`
	ContactMessages int `json:"contact_messages"`
	Notifications   int `json:"notifications"`
	PortfolioItems  int `json:"portfolio_items"`
}

// HandleStats returns row counts for the dashboard header
func (dh *DashboardHandler) HandleStats(c *gin.Context) {
	ctx := c.Request.Context()

	var stats StatsResponse
	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM quiz_leads`, &stats.QuizLeads},
		{`SELECT COUNT(*) FROM contact_messages`, &stats.ContactMessages},
		{`SELECT COUNT(*) FROM email_notifications`, &stats.Notifications},
		{`SELECT COUNT(*) FROM portfolios`, &stats.PortfolioItems},
	}

	for _, count := range counts {
		if err := dh.db.QueryRow(ctx, count.query).Scan(count.dest); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
			return
		}
	}

	c.JSON(http.StatusOK, stats)
}

// HandleListNotifications returns recorded email notification attempts
func (dh *DashboardHandler) HandleListNotifications(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	notifications, err := dh.notify.GetNotifications(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"total":         len(notifications),
	})
}
