package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTitle(t *testing.T) {
	cases := []struct {
		title string
		want  contentTopic
	}{
		{"Taylor Swift", topicPerson},
		{"The Biography of a Startup CEO", topicPerson},
		{"Machine Learning in Production", topicTechnology},
		{"Why Programming Matters", topicTechnology},
		{"Space Exploration Milestones", topicScience},
		{"The Theory of Relativity Explained", topicScience},
		{"Nutrition Basics for Beginners", topicHealth},
		{"Fitness Routines That Stick", topicHealth},
		{"Marketing on a Budget", topicBusiness},
		{"Top 10 Hiking Trails", topicList},
		{"The Greatest Boxing Matches", topicList},
		{"How to Bake Bread", topicHowTo},
		{"A Beginner's Guide to Chess", topicHowTo},
		{"Learn Python in 10 Steps", topicHowTo},
		{"What Makes a Good Novel", topicQuestion},
		{"Is Remote Work Here to Stay?", topicQuestion},
		{"Gardening for City Dwellers", topicGeneral},

		// 人物优先于列表
		{"Top 10 Movies by Taylor Swift", topicPerson},
		// 技术优先于问答
		{"What is Artificial Intelligence", topicTechnology},
		// 商业优先于列表
		{"Best Startup Ideas", topicBusiness},
	}

	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			assert.Equal(t, tc.want, classifyTitle(tc.title))
		})
	}
}
