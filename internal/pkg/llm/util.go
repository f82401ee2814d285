package llm

import (
	"context"
	"errors"

	"github.com/tmc/langchaingo/llms"
)

// FetchText 调用远端模型生成文本
func FetchText(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	if textLLM == nil {
		return "", errors.New("LLM 未配置")
	}

	if err := TextSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer TextSem.Release(1)

	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, userPrompt),
	}

	resp, err := textLLM.GenerateContent(ctx, content,
		llms.WithTemperature(temperature),
	)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("模型未返回内容")
	}

	return resp.Choices[0].Content, nil
}
