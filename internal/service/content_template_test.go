package service

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var htmlTagPattern = regexp.MustCompile(`</?([a-z0-9]+)[^>]*>`)

var allowedTags = map[string]bool{
	"h2": true, "h3": true, "h4": true,
	"p": true, "ul": true, "li": true,
	"strong": true, "em": true,
}

var allTopics = []contentTopic{
	topicPerson, topicTechnology, topicScience, topicHealth,
	topicBusiness, topicList, topicHowTo, topicQuestion, topicGeneral,
}

func TestTemplatesUseAllowedTagsOnly(t *testing.T) {
	for _, topic := range allTopics {
		t.Run(string(topic), func(t *testing.T) {
			content := renderTemplate("Sample Title", "tech", topic)
			require.NotEmpty(t, content)

			for _, match := range htmlTagPattern.FindAllStringSubmatch(content, -1) {
				assert.True(t, allowedTags[match[1]], "unexpected tag <%s> in %s template", match[1], topic)
			}
		})
	}
}

func TestTemplatesNeverRenderH1(t *testing.T) {
	for _, topic := range allTopics {
		content := renderTemplate("Sample Title", "", topic)
		assert.NotContains(t, content, "<h1")
	}
}

func TestTemplatesInterpolateTitle(t *testing.T) {
	for _, topic := range allTopics {
		content := renderTemplate("Quantum Widgets", "", topic)
		assert.True(t,
			strings.Contains(content, "Quantum Widgets") || strings.Contains(content, "quantum widgets"),
			"template %s does not mention the title", topic)
	}
}

func TestTemplatesAreDistinctPerTopic(t *testing.T) {
	seen := make(map[string]contentTopic)
	for _, topic := range allTopics {
		content := renderTemplate("Same Title", "", topic)
		if prev, ok := seen[content]; ok {
			t.Fatalf("templates for %s and %s are identical", prev, topic)
		}
		seen[content] = topic
	}
}

func TestGeneralTemplateCategoryClosing(t *testing.T) {
	withCategory := renderTemplate("Some Topic", "science", topicGeneral)
	assert.Contains(t, withCategory, "science category")

	withoutCategory := renderTemplate("Some Topic", "", topicGeneral)
	assert.NotContains(t, withoutCategory, "category and provides")
}
