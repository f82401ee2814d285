package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/llm"
	"Inkwell/internal/pkg/util"
	"context"
	"fmt"
	log "log/slog"
	"strings"

	"github.com/pkg/errors"
)

const (
	// 远端生成结果低于该长度按失败处理，走本地模板
	minRemoteContentLength = 100

	generateTemperature = 0.7
	improveTemperature  = 0.6
)

const formattingRequirements = `
IMPORTANT FORMATTING REQUIREMENTS:
- Use proper HTML formatting with <h2> for main sections and <h3> for subsections
- Use <p> tags for paragraphs
- Use <ul> and <li> for bullet points
- Use <strong> for emphasis on important terms
- Use <em> for subtle emphasis
- Do NOT include the main title as it will be added separately
- Start directly with the content
- Make the content substantial (800-1200 words)
- Ensure factual accuracy and cite specific details where possible`

type ContentService interface {
	Generate(ctx context.Context, req *dto.GenerateContentDTO) (*dto.GenerateResultDTO, error)
	Improve(ctx context.Context, req *dto.ImproveContentDTO) (*dto.ImproveResultDTO, error)
}

type ContentServiceImpl struct{}

func NewContentService() ContentService {
	return &ContentServiceImpl{}
}

// Generate 按标题生成文章内容
// 优先调用远端模型，失败或结果过短时回退到本地模板，兜底永不失败
func (s *ContentServiceImpl) Generate(ctx context.Context, req *dto.GenerateContentDTO) (*dto.GenerateResultDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrInvalidInput
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}

	category := strings.TrimSpace(req.Category)
	topic := classifyTitle(title)

	if llm.Enabled() {
		content, err := llm.FetchText(ctx,
			"You are a professional blog writer producing well-structured HTML articles.",
			buildGeneratePrompt(title, category, req.Tags, topic),
			generateTemperature)
		if err == nil {
			content = strings.TrimSpace(content)
			if len(content) >= minRemoteContentLength {
				return &dto.GenerateResultDTO{
					Content: content,
					Source:  consts.ContentSourceRemote,
				}, nil
			}
			err = errors.New("生成内容过短")
		}
		log.WarnContext(ctx, "remote generation failed, falling back to template",
			"title", title, "err", err)
		return &dto.GenerateResultDTO{
			Content: renderTemplate(title, category, topic),
			Source:  consts.ContentSourceTemplate,
			Note:    "远端模型暂不可用，内容由本地模板生成",
		}, nil
	}

	return &dto.GenerateResultDTO{
		Content: renderTemplate(title, category, topic),
		Source:  consts.ContentSourceTemplate,
	}, nil
}

// Improve 改写已有内容，没有本地兜底
// 未配置模型凭证时直接报错，不发起网络请求
func (s *ContentServiceImpl) Improve(ctx context.Context, req *dto.ImproveContentDTO) (*dto.ImproveResultDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrInvalidInput
	}

	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrInvalidInput
	}

	if !llm.Enabled() {
		return nil, ErrLLMNotConfigured
	}

	content, err := llm.FetchText(ctx,
		"You are a professional blog editor. Return improved HTML content only.",
		buildImprovePrompt(req.Content, req.Mode),
		improveTemperature)
	if err != nil {
		return nil, classifyRemoteError(err)
	}

	return &dto.ImproveResultDTO{
		Content: strings.TrimSpace(content),
	}, nil
}

// classifyRemoteError 按错误信息归类远端故障
func classifyRemoteError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key"):
		return errors.Wrap(ErrLLMAuth, msg)
	case strings.Contains(msg, "not found"), strings.Contains(msg, "404"):
		return errors.Wrap(ErrLLMUnavailable, msg)
	case strings.Contains(msg, "quota"), strings.Contains(msg, "limit"), strings.Contains(msg, "429"):
		return errors.Wrap(ErrLLMRateLimited, msg)
	default:
		return errors.Wrap(ErrLLMRemote, msg)
	}
}

func buildGeneratePrompt(title, category string, tags []string, topic contentTopic) string {
	var b strings.Builder
	b.WriteString(topicInstructions(title, topic))
	b.WriteString("\n")
	b.WriteString(formattingRequirements)
	b.WriteString("\n\n")
	if category != "" {
		fmt.Fprintf(&b, "Category: %s\n", category)
	}
	if len(tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(tags, ", "))
	}
	b.WriteString("\nWrite engaging, factual, and well-researched content that provides real value to readers.")
	return b.String()
}

func topicInstructions(title string, topic contentTopic) string {
	switch topic {
	case topicPerson:
		return fmt.Sprintf(`Write a comprehensive biography about %s. Include:
- Early life and background
- Career highlights and major achievements
- Notable works, projects, or contributions
- Awards and recognition
- Current status and recent activities
- Impact and legacy

Make it factual, well-researched, and engaging.`, title)
	case topicTechnology:
		return fmt.Sprintf(`Write a comprehensive technical article about %s. Include:
- Clear explanation of the concept/technology
- How it works (technical details made accessible)
- Real-world applications and use cases
- Current trends and developments
- Benefits and challenges
- Future prospects

Make it informative, accurate, and suitable for both beginners and intermediate readers.`, title)
	case topicScience:
		return fmt.Sprintf(`Write a detailed scientific article about %s. Include:
- Scientific explanation of the concept
- Current research and findings
- Historical background and discoveries
- Practical applications
- Future research directions
- Why it matters to society

Make it scientifically accurate but accessible to general readers.`, title)
	case topicHealth:
		return fmt.Sprintf(`Write a comprehensive health and wellness article about %s. Include:
- Medical/scientific explanation
- Evidence-based information
- Practical tips and recommendations
- Risk factors and prevention
- Common myths vs facts
- When to consult healthcare professionals

Ensure all information is medically accurate and evidence-based.`, title)
	case topicBusiness:
		return fmt.Sprintf(`Write a comprehensive business article about %s. Include:
- Market analysis and current trends
- Key strategies and best practices
- Case studies and real examples
- Implementation steps
- Common challenges and solutions

Make it practical and actionable for business professionals.`, title)
	case topicList:
		return fmt.Sprintf(`Create a comprehensive ranked list for %s. Include:
- Clear ranking criteria and methodology
- Detailed description of each item
- Why each deserves their position
- Interesting facts or statistics
- Comparison between items

Make each entry substantial with specific details and facts.`, title)
	case topicHowTo:
		return fmt.Sprintf(`Write a detailed step-by-step guide for %s. Include:
- Prerequisites and requirements
- Detailed step-by-step instructions
- Tips and best practices
- Common mistakes to avoid
- Troubleshooting guide

Make it practical, actionable, and easy to follow.`, title)
	case topicQuestion:
		return fmt.Sprintf(`Answer the question "%s" comprehensively. Include:
- Direct, clear answer to the question
- Detailed explanation and context
- Supporting evidence and examples
- Multiple perspectives (if applicable)
- Practical implications

Make the answer thorough, factual, and well-researched.`, title)
	default:
		return fmt.Sprintf(`Write a comprehensive, informative article about %s. Include:
- Introduction and overview
- Key concepts and definitions
- Current state and developments
- Real-world applications or examples
- Benefits and challenges
- Future outlook

Make it engaging, informative, and well-structured.`, title)
	}
}

func buildImprovePrompt(content, mode string) string {
	switch mode {
	case consts.ImproveModeExpand:
		return fmt.Sprintf(`Take this blog content and significantly expand it with more details, examples, research, and insights:

%s

EXPANSION REQUIREMENTS:
- Add more depth and detail to each existing section
- Include specific examples, statistics, and case studies
- Add new relevant subsections where appropriate
- Expand on practical applications and real-world scenarios
- Maintain the original HTML structure but make it much more comprehensive
- Aim for 50-100%% more content while keeping it relevant and valuable

Return the expanded content in the same HTML format with proper <h2>, <h3>, <p>, <ul>, <li>, <strong>, and <em> tags.`, content)
	case consts.ImproveModeSimplify:
		return fmt.Sprintf(`Take this blog content and make it much simpler, clearer, and easier to understand:

%s

SIMPLIFICATION REQUIREMENTS:
- Replace complex words with simpler alternatives
- Break down complicated concepts into easy-to-understand explanations
- Use shorter sentences and paragraphs
- Remove jargon and technical terms (or explain them simply)
- Keep all the important information but make it digestible
- Maintain the HTML structure but improve readability

Return the simplified content in the same HTML format.`, content)
	default:
		return fmt.Sprintf(`Take this blog content and enhance it to make it more engaging, professional, and compelling:

%s

ENHANCEMENT REQUIREMENTS:
- Improve the writing style and flow
- Add engaging introductions and transitions
- Make the content more actionable and practical
- Improve the structure and organization
- Enhance with better formatting and emphasis
- Keep the same length but make it much more engaging

Return the enhanced content in the same HTML format with proper formatting.`, content)
	}
}
