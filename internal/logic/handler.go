package logic

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sobriety-backend/internal/analysis"
	"sobriety-backend/internal/cache"
	"sobriety-backend/internal/common"
	"sobriety-backend/internal/db"
)

// Store is the persistence the handlers need; *db.Store implements it.
type Store interface {
	FetchCheckIns(ctx context.Context, userID string) ([]analysis.CheckInRecord, error)
	CreateCheckIn(ctx context.Context, c *db.CheckIn) error
	CountCheckIns(ctx context.Context, status analysis.Status) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	CountUserChatsSince(ctx context.Context, userID string, since time.Time) (int64, error)
	CreateChatRecord(ctx context.Context, r *db.ChatRecord) error
	ListChatRecords(ctx context.Context, userID string) ([]db.ChatRecord, error)
	ListResources(ctx context.Context) ([]db.Resource, error)
	CreateResource(ctx context.Context, r *db.Resource) error
}

type Options struct {
	Store  Store
	Cache  *cache.AnalysisCache // optional
	Coach  Coach                // optional; nil disables /api/coach
	Logger *zap.Logger
	Now    func() time.Time

	TrendDays       int
	InsightLocation *time.Location
	RetroactiveDays int
	MaxChatPerDay   int
}

// Handler holds the dependencies shared by every endpoint.
type Handler struct {
	store Store
	cache *cache.AnalysisCache
	coach Coach
	log   *zap.Logger
	now   func() time.Time

	trendDays       int
	loc             *time.Location
	retroactiveDays int
	maxChatPerDay   int
}

func NewHandler(o Options) *Handler {
	h := &Handler{
		store:           o.Store,
		cache:           o.Cache,
		coach:           o.Coach,
		log:             o.Logger,
		now:             o.Now,
		trendDays:       o.TrendDays,
		loc:             o.InsightLocation,
		retroactiveDays: o.RetroactiveDays,
		maxChatPerDay:   o.MaxChatPerDay,
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	if h.now == nil {
		h.now = func() time.Time { return time.Now().UTC() }
	}
	if h.trendDays <= 0 {
		h.trendDays = analysis.DefaultTrendDays
	}
	if h.loc == nil {
		h.loc = time.UTC
	}
	if h.retroactiveDays <= 0 {
		h.retroactiveDays = common.RetroactiveDays
	}
	if h.maxChatPerDay <= 0 {
		h.maxChatPerDay = common.MaxChatPerDay
	}
	return h
}

func (h *Handler) logger(c *gin.Context) *zap.Logger {
	return h.log.With(zap.String("request_id", c.GetString(requestIDKey)))
}

// analyze returns the user's analysis as of now, served from cache when possible.
func (h *Handler) analyze(ctx context.Context, userID string, now time.Time) (analysis.Result, error) {
	day := analysis.DayKey(now)
	cached, gen, ok := h.cache.Get(ctx, userID, day)
	if ok {
		return *cached, nil
	}
	records, err := h.store.FetchCheckIns(ctx, userID)
	if err != nil {
		return analysis.Result{}, err
	}
	res := analysis.Analyze(records,
		analysis.WithNow(now),
		analysis.WithTrendDays(h.trendDays),
		analysis.WithLocation(h.loc),
	)
	h.cache.Set(ctx, userID, day, gen, res)
	return res, nil
}
