package logic

import (
	"context"
	"errors"
	"fmt"

	tccommon "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	hunyuan "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/hunyuan/v20230901"

	"sobriety-backend/internal/db"
)

// HunyuanCoach calls the Tencent Cloud Hunyuan ChatCompletions API through the
// official SDK.
type HunyuanCoach struct {
	secretID, secretKey string
	model               string
	endpoint, region    string
}

func (hc *HunyuanCoach) Reply(ctx context.Context, prompt string, history []db.ChatRecord, content string) (string, error) {
	credential := tccommon.NewCredential(hc.secretID, hc.secretKey)
	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = hc.endpoint
	client, err := hunyuan.NewClient(credential, hc.region, cpf)
	if err != nil {
		return "", fmt.Errorf("hunyuan client: %w", err)
	}

	req := hunyuan.NewChatCompletionsRequest()
	req.Model = tccommon.StringPtr(hc.model)
	req.Messages = hunyuanMessages(prompt, history, content)
	req.Stream = tccommon.BoolPtr(false)

	resp, err := client.ChatCompletionsWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("hunyuan chat completions: %w", err)
	}
	if resp == nil || resp.Response == nil {
		return "", errors.New("hunyuan: empty response")
	}
	for _, choice := range resp.Response.Choices {
		if choice != nil && choice.Message != nil && choice.Message.Content != nil {
			return *choice.Message.Content, nil
		}
	}
	return "", errors.New("hunyuan: no choices")
}

func hunyuanMessages(prompt string, history []db.ChatRecord, content string) []*hunyuan.Message {
	messages := make([]*hunyuan.Message, 0, len(history)+2)
	messages = append(messages, &hunyuan.Message{
		Role:    tccommon.StringPtr("system"),
		Content: tccommon.StringPtr(prompt),
	})
	for _, h := range history {
		role := "assistant"
		if h.IsUser {
			role = "user"
		}
		messages = append(messages, &hunyuan.Message{
			Role:    tccommon.StringPtr(role),
			Content: tccommon.StringPtr(h.Content),
		})
	}
	return append(messages, &hunyuan.Message{
		Role:    tccommon.StringPtr("user"),
		Content: tccommon.StringPtr(content),
	})
}
