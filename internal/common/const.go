package common

const (
	// CoachRolePrompt primes the recovery coach. The user's own numbers are appended per request.
	CoachRolePrompt = "You are a supportive addiction-recovery coach. Help the user stay sober one day at a time: " +
		"acknowledge progress, suggest concrete coping strategies for cravings and triggers, and encourage reaching " +
		"out to a sponsor, counselor or crisis line when they are at risk. Keep answers short and warm."

	DefaultHunyuanModel    = "hunyuan-turbos-latest"
	DefaultHunyuanBaseURL  = "https://api.hunyuan.cloud.tencent.com/v1"
	DefaultHunyuanEndpoint = "hunyuan.tencentcloudapi.com"

	MaxChatPerDay  = 10
	MaxRunesPerMsg = 200
	// CoachMaxTokens caps the length of a coach reply.
	CoachMaxTokens = 200
	// CoachMemoryWindow is how many past messages the coach sees.
	CoachMemoryWindow = 10

	// RetroactiveDays is how far back a check-in may be dated.
	RetroactiveDays = 5
)
