package logic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tmc/langchaingo/chains"
	langopenai "github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/memory"
	"go.uber.org/zap"

	"sobriety-backend/internal/analysis"
	"sobriety-backend/internal/common"
	"sobriety-backend/internal/db"
)

// ErrCoachDisabled is returned by NewCoach when no provider is configured.
var ErrCoachDisabled = errors.New("coach disabled")

// Coach produces a reply to the user's message. prompt carries the role
// instructions and the user's numbers; history is oldest first.
type Coach interface {
	Reply(ctx context.Context, prompt string, history []db.ChatRecord, content string) (string, error)
}

type CoachConfig struct {
	Provider string // "openai" (any OpenAI-compatible endpoint) or "tencent"

	Token   string
	Model   string
	BaseURL string

	SecretID  string
	SecretKey string
	Endpoint  string
	Region    string
}

func NewCoach(cfg CoachConfig) (Coach, error) {
	switch strings.ToLower(cfg.Provider) {
	case "":
		return nil, ErrCoachDisabled
	case "openai", "langchain":
		if cfg.Token == "" {
			return nil, errors.New("coach: HUNYUAN_TOKEN is empty")
		}
		return &LangchainCoach{
			token:   cfg.Token,
			model:   orDefault(cfg.Model, common.DefaultHunyuanModel),
			baseURL: orDefault(cfg.BaseURL, common.DefaultHunyuanBaseURL),
		}, nil
	case "tencent", "hunyuan":
		if cfg.SecretID == "" || cfg.SecretKey == "" {
			return nil, errors.New("coach: TENCENTCLOUD_SECRETID and TENCENTCLOUD_SECRETKEY are required")
		}
		return &HunyuanCoach{
			secretID:  cfg.SecretID,
			secretKey: cfg.SecretKey,
			model:     orDefault(cfg.Model, common.DefaultHunyuanModel),
			endpoint:  orDefault(cfg.Endpoint, common.DefaultHunyuanEndpoint),
			region:    orDefault(cfg.Region, "ap-guangzhou"),
		}, nil
	default:
		return nil, fmt.Errorf("coach: unknown provider %q", cfg.Provider)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// LangchainCoach talks to an OpenAI-compatible chat endpoint through a
// langchaingo conversation chain.
type LangchainCoach struct {
	token, model, baseURL string
}

func (lc *LangchainCoach) Reply(ctx context.Context, prompt string, history []db.ChatRecord, content string) (string, error) {
	chatMemory := memory.NewConversationWindowBuffer(common.CoachMemoryWindow)
	if err := chatMemory.ChatHistory.AddUserMessage(ctx, prompt); err != nil {
		return "", err
	}
	for _, h := range history {
		var err error
		if h.IsUser {
			err = chatMemory.ChatHistory.AddUserMessage(ctx, h.Content)
		} else {
			err = chatMemory.ChatHistory.AddAIMessage(ctx, h.Content)
		}
		if err != nil {
			return "", err
		}
	}

	llm, err := langopenai.New(
		langopenai.WithToken(lc.token),
		langopenai.WithModel(lc.model),
		langopenai.WithBaseURL(lc.baseURL))
	if err != nil {
		return "", fmt.Errorf("create llm: %w", err)
	}
	chain := chains.NewConversation(llm, chatMemory)
	return chains.Run(ctx, chain, content, chains.WithMaxTokens(common.CoachMaxTokens))
}

func coachPrompt(res analysis.Result) string {
	return fmt.Sprintf("%s\nThe user's current clean streak is %d days (longest %d). "+
		"Next milestone: %d days, %d to go. Strongest check-in time: %s. Relapses happen most on: %s.",
		common.CoachRolePrompt,
		res.CurrentStreak, res.LongestStreak,
		res.NextMilestoneDays, res.DaysToGo,
		res.Insights.StrongestTime, res.Insights.TriggerDay)
}

// ChatHandler replies with the user's streak in context.
func (h *Handler) ChatHandler(c *gin.Context) {
	var req struct {
		UserID  string `json:"user_id"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.Content) == "" {
		c.JSON(400, gin.H{"error": "user_id and content required"})
		return
	}
	if h.coach == nil {
		c.JSON(503, gin.H{"error": ErrCoachDisabled.Error()})
		return
	}
	if utf8.RuneCountInString(req.Content) > common.MaxRunesPerMsg {
		c.JSON(400, gin.H{"error": "message too long"})
		return
	}

	userID := strings.TrimSpace(req.UserID)
	ctx := c.Request.Context()
	log := h.logger(c).With(zap.String("user_id", userID))
	now := h.now()

	count, err := h.store.CountUserChatsSince(ctx, userID, h.todayStart())
	if err != nil {
		log.Error("count chats failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	if count >= int64(h.maxChatPerDay) {
		c.JSON(400, gin.H{"error": "daily chat limit reached"})
		return
	}

	history, err := h.store.ListChatRecords(ctx, userID)
	if err != nil {
		log.Error("list chats failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	if len(history) > common.CoachMemoryWindow {
		history = history[len(history)-common.CoachMemoryWindow:]
	}
	res, err := h.analyze(ctx, userID, now)
	if err != nil {
		log.Error("analysis failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}

	userMsg := db.ChatRecord{UserID: userID, Content: req.Content, IsUser: true, CreatedAt: now, MsgID: uuid.NewString()}
	if err := h.store.CreateChatRecord(ctx, &userMsg); err != nil {
		log.Error("save chat failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}

	reply, err := h.coach.Reply(ctx, coachPrompt(res), history, req.Content)
	if err != nil {
		log.Error("coach reply failed", zap.Error(err))
		c.JSON(502, gin.H{"error": "AI error"})
		return
	}
	aiMsg := db.ChatRecord{UserID: userID, Content: reply, IsUser: false, CreatedAt: h.now(), MsgID: uuid.NewString()}
	if err := h.store.CreateChatRecord(ctx, &aiMsg); err != nil {
		log.Warn("save coach reply failed", zap.Error(err))
	}
	c.JSON(200, gin.H{"reply": reply, "msg_id": aiMsg.MsgID})
}

// ChatHistoryHandler returns the user's conversation, oldest first.
func (h *Handler) ChatHistoryHandler(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		c.JSON(400, gin.H{"error": "user_id required"})
		return
	}
	records, err := h.store.ListChatRecords(c.Request.Context(), userID)
	if err != nil {
		h.logger(c).Error("list chats failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"records": records})
}
