package llm

import (
	"Inkwell/internal/api/config"
	log "log/slog"

	"github.com/tmc/langchaingo/llms/openai"
)

var textLLM *openai.LLM

// InitLLM 初始化文本生成模型客户端
// 未配置凭证时不报错，内容服务会回退到本地模板
func InitLLM() error {
	llmCfg := config.Cfg.LLM

	if llmCfg.ApiKey == "" {
		log.Warn("LLM credential not configured, remote generation disabled")
		return nil
	}

	var err error
	textLLM, err = openai.New(
		openai.WithModel(llmCfg.TextModel),
		openai.WithToken(llmCfg.ApiKey),
		openai.WithBaseURL(llmCfg.URL),
	)
	if err != nil {
		log.Error("Cannot init text LLM", "err", err)
		return err
	}

	log.Info("Text LLM initialized", "model", llmCfg.TextModel)
	return nil
}

// Enabled 是否已配置远端模型
func Enabled() bool {
	return textLLM != nil
}
