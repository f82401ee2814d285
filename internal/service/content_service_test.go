package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/consts"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 未初始化 LLM 客户端时走本地模板，不发起任何网络请求

func TestGenerateBlankTitle(t *testing.T) {
	svc := NewContentService()

	_, err := svc.Generate(context.Background(), &dto.GenerateContentDTO{Title: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// 空标题在字段校验层就被拦下
	_, err = svc.Generate(context.Background(), &dto.GenerateContentDTO{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerateFallsBackToTemplateWithoutCredential(t *testing.T) {
	svc := NewContentService()

	result, err := svc.Generate(context.Background(), &dto.GenerateContentDTO{
		Title: "How to Bake Bread",
	})
	require.NoError(t, err)

	assert.Equal(t, consts.ContentSourceTemplate, result.Source)
	assert.NotEmpty(t, result.Content)
	assert.Contains(t, result.Content, "How to Bake Bread")
	// 未配置凭证不算降级，不附说明
	assert.Empty(t, result.Note)
}

func TestGenerateTemplateMatchesTopic(t *testing.T) {
	svc := NewContentService()

	result, err := svc.Generate(context.Background(), &dto.GenerateContentDTO{
		Title: "Taylor Swift",
	})
	require.NoError(t, err)
	assert.Contains(t, result.Content, "Career Highlights")

	result, err = svc.Generate(context.Background(), &dto.GenerateContentDTO{
		Title: "Machine Learning Basics",
	})
	require.NoError(t, err)
	assert.Contains(t, result.Content, "How It Works")
}

func TestImproveWithoutCredential(t *testing.T) {
	svc := NewContentService()

	_, err := svc.Improve(context.Background(), &dto.ImproveContentDTO{
		Content: "<p>some content</p>",
		Mode:    consts.ImproveModeEnhance,
	})
	assert.ErrorIs(t, err, ErrLLMNotConfigured)
}

func TestImproveEmptyContent(t *testing.T) {
	svc := NewContentService()

	_, err := svc.Improve(context.Background(), &dto.ImproveContentDTO{
		Content: "   ",
		Mode:    consts.ImproveModeEnhance,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Improve(context.Background(), &dto.ImproveContentDTO{Mode: consts.ImproveModeEnhance})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClassifyRemoteError(t *testing.T) {
	cases := []struct {
		name string
		msg  string
		want error
	}{
		{"invalid api key", "invalid API key provided", ErrLLMAuth},
		{"model not found", "model not found", ErrLLMUnavailable},
		{"http 404", "unexpected status: 404", ErrLLMUnavailable},
		{"quota exceeded", "quota exceeded for project", ErrLLMRateLimited},
		{"rate limit", "rate limit reached", ErrLLMRateLimited},
		{"http 429", "status code 429", ErrLLMRateLimited},
		{"anything else", "connection reset by peer", ErrLLMRemote},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyRemoteError(errors.New(tc.msg))
			assert.ErrorIs(t, got, tc.want)
			// 原始错误信息保留在包装链里
			assert.Contains(t, got.Error(), tc.msg)
		})
	}
}

func TestBuildImprovePromptModes(t *testing.T) {
	expand := buildImprovePrompt("<p>x</p>", consts.ImproveModeExpand)
	assert.Contains(t, expand, "EXPANSION REQUIREMENTS")

	simplify := buildImprovePrompt("<p>x</p>", consts.ImproveModeSimplify)
	assert.Contains(t, simplify, "SIMPLIFICATION REQUIREMENTS")

	enhance := buildImprovePrompt("<p>x</p>", consts.ImproveModeEnhance)
	assert.Contains(t, enhance, "ENHANCEMENT REQUIREMENTS")
}
