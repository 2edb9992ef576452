package logic

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sobriety-backend/internal/analysis"
	"sobriety-backend/internal/db"
)

type checkInRequest struct {
	UserID      string `json:"user_id"`
	Status      string `json:"status"`
	Date        string `json:"date"`          // day-key or timestamp; defaults to today
	CheckInTime string `json:"check_in_time"` // defaults to the time of the request
}

// CheckInHandler records a clean, relapse or skipped day.
func (h *Handler) CheckInHandler(c *gin.Context) {
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.UserID) == "" {
		c.JSON(400, gin.H{"error": "user_id required"})
		return
	}
	userID := strings.TrimSpace(req.UserID)
	status := analysis.Status(strings.ToLower(strings.TrimSpace(req.Status)))
	if !status.Valid() {
		c.JSON(400, gin.H{"error": "status must be one of clean, relapse, skipped"})
		return
	}

	now := h.now()
	day := analysis.StartOfDay(now)
	if req.Date != "" {
		t, err := analysis.ParseTimestamp(req.Date)
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid date"})
			return
		}
		day = analysis.StartOfDay(t)
	}
	switch dist := analysis.DayDistance(day, now); {
	case dist < 0:
		c.JSON(400, gin.H{"error": "date is in the future"})
		return
	case dist > h.retroactiveDays:
		c.JSON(400, gin.H{"error": "date is outside the retroactive window"})
		return
	}

	submitted := now
	if req.CheckInTime != "" {
		t, err := analysis.ParseTimestamp(req.CheckInTime)
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid check_in_time"})
			return
		}
		submitted = t
	}

	ctx := c.Request.Context()
	log := h.logger(c).With(zap.String("user_id", userID))

	existing, err := h.store.FetchCheckIns(ctx, userID)
	if err != nil {
		log.Error("fetch check-ins failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	key := analysis.DayKey(day)
	for _, r := range existing {
		if r.Status == status && analysis.DayKey(r.Date) == key {
			c.JSON(400, gin.H{"error": "already checked in with this status"})
			return
		}
	}

	row := db.CheckIn{
		UserID:      userID,
		Date:        day,
		Status:      string(status),
		CheckInTime: submitted.UTC(),
	}
	if err := h.store.CreateCheckIn(ctx, &row); err != nil {
		if errors.Is(err, db.ErrDuplicateCheckIn) {
			c.JSON(400, gin.H{"error": "already checked in with this status"})
			return
		}
		log.Error("create check-in failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	h.cache.Invalidate(ctx, userID)
	log.Info("check-in recorded", zap.String("date", key), zap.String("status", string(status)))

	c.JSON(200, gin.H{
		"message": "check-in recorded",
		"id":      row.ID,
		"date":    key,
		"status":  status,
	})
}

// CalendarHandler returns one effective status per day plus totals.
func (h *Handler) CalendarHandler(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		c.JSON(400, gin.H{"error": "user_id required"})
		return
	}
	records, err := h.store.FetchCheckIns(c.Request.Context(), userID)
	if err != nil {
		h.logger(c).Error("fetch check-ins failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}

	days := analysis.NormalizeDailyStatuses(records)
	calendar := make(map[string]analysis.Status, len(days))
	totals := map[analysis.Status]int{}
	for _, d := range days {
		calendar[d.Date] = d.Status
		totals[d.Status]++
	}

	c.JSON(200, gin.H{
		"days":          days,
		"calendar":      calendar,
		"total_clean":   totals[analysis.StatusClean],
		"total_relapse": totals[analysis.StatusRelapse],
		"total_skipped": totals[analysis.StatusSkipped],
	})
}

// todayStart is midnight UTC of the handler's current day.
func (h *Handler) todayStart() time.Time {
	return analysis.StartOfDay(h.now())
}
