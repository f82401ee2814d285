package service

import (
	"strings"
)

type contentTopic string

const (
	topicPerson     contentTopic = "person"
	topicTechnology contentTopic = "technology"
	topicScience    contentTopic = "science"
	topicHealth     contentTopic = "health"
	topicBusiness   contentTopic = "business"
	topicList       contentTopic = "list"
	topicHowTo      contentTopic = "howto"
	topicQuestion   contentTopic = "question"
	topicGeneral    contentTopic = "general"
)

// 人物类标题特征词，具名人物加身份词
var personIndicators = []string{
	"thalapathy", "vijay", "ajith", "thala", "rajinikanth", "superstar",
	"kamal hassan", "suriya", "dhanush", "vikram",
	"shah rukh khan", "srk", "salman khan", "aamir khan", "akshay kumar", "hrithik roshan",
	"leonardo dicaprio", "brad pitt", "tom cruise", "will smith", "robert downey jr",
	"taylor swift", "ed sheeran", "justin bieber", "ariana grande", "drake", "beyonce",
	"elon musk", "jeff bezos", "bill gates", "mark zuckerberg", "steve jobs",
	"virat kohli", "ms dhoni", "messi", "ronaldo", "lebron james", "serena williams",
	"narendra modi", "joe biden", "donald trump", "barack obama",
	"biography", "life story", "actor", "actress", "singer", "musician",
	"athlete", "politician", "ceo", "founder",
}

var technologyKeywords = []string{
	"ai", "artificial intelligence", "machine learning", "programming",
	"coding", "software", "technology", "computer",
}

var scienceKeywords = []string{
	"science", "physics", "chemistry", "biology",
	"space", "research", "discovery", "theory",
}

var healthKeywords = []string{
	"health", "fitness", "diet", "exercise",
	"nutrition", "wellness", "medical", "disease",
}

var businessKeywords = []string{
	"business", "entrepreneur", "startup", "marketing",
	"finance", "investment", "economy", "company",
}

var listKeywords = []string{
	"top", "best", "list", "ranking", "famous", "greatest",
}

var howToKeywords = []string{
	"how to", "guide", "tutorial", "learn", "steps",
}

var questionKeywords = []string{
	"what", "why", "when", "where", "who", "which", "?",
}

// classifyTitle 按标题关键词给内容分类，自上而下首个命中生效
// 人物优先于列表，"Top 10 Movies by Taylor Swift" 按人物处理
func classifyTitle(title string) contentTopic {
	titleLower := strings.ToLower(title)

	containsAny := func(keywords []string) bool {
		for _, kw := range keywords {
			if strings.Contains(titleLower, kw) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny(personIndicators):
		return topicPerson
	case containsAny(technologyKeywords):
		return topicTechnology
	case containsAny(scienceKeywords):
		return topicScience
	case containsAny(healthKeywords):
		return topicHealth
	case containsAny(businessKeywords):
		return topicBusiness
	case containsAny(listKeywords):
		return topicList
	case containsAny(howToKeywords):
		return topicHowTo
	case containsAny(questionKeywords):
		return topicQuestion
	default:
		return topicGeneral
	}
}
