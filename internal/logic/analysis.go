package logic

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sobriety-backend/internal/analysis"
)

// AnalysisHandler returns streaks, trend, insights and milestones for a user.
func (h *Handler) AnalysisHandler(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		userID = strings.TrimSpace(c.Query("user_id"))
	}
	if userID == "" {
		c.JSON(400, gin.H{"error": "user id required"})
		return
	}

	res, err := h.analyze(c.Request.Context(), userID, h.now())
	if err != nil {
		h.logger(c).Error("analysis failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, res)
}

// StatusHandler is the dashboard summary: whether today still needs a check-in
// and how far the user is towards the next milestone.
func (h *Handler) StatusHandler(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		c.JSON(400, gin.H{"error": "user id required"})
		return
	}
	records, err := h.store.FetchCheckIns(c.Request.Context(), userID)
	if err != nil {
		h.logger(c).Error("fetch check-ins failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}

	now := h.now()
	streaks := analysis.CalculateStreaks(records, now)
	c.JSON(200, gin.H{
		"needsCheckIn":      analysis.NeedsCheckIn(records, now),
		"currentStreak":     streaks.Current,
		"longestStreak":     streaks.Longest,
		"milestoneProgress": analysis.MilestoneProgress(streaks.Current),
		"quote":             analysis.QuoteOfTheDay(now),
	})
}

// SummaryHandler reports totals across all users.
func (h *Handler) SummaryHandler(c *gin.Context) {
	var clean, relapse, skipped, users int64

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		clean, err = h.store.CountCheckIns(ctx, analysis.StatusClean)
		return err
	})
	g.Go(func() (err error) {
		relapse, err = h.store.CountCheckIns(ctx, analysis.StatusRelapse)
		return err
	})
	g.Go(func() (err error) {
		skipped, err = h.store.CountCheckIns(ctx, analysis.StatusSkipped)
		return err
	})
	g.Go(func() (err error) {
		users, err = h.store.CountUsers(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.logger(c).Error("summary failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}

	c.JSON(200, gin.H{
		"total_clean":   clean,
		"total_relapse": relapse,
		"total_skipped": skipped,
		"user_count":    users,
	})
}

func (h *Handler) QuoteHandler(c *gin.Context) {
	now := h.now()
	c.JSON(200, gin.H{
		"date":  analysis.DayKey(now),
		"quote": analysis.QuoteOfTheDay(now),
	})
}
