package service

import (
	"fmt"
	"strings"
)

// 本地模板生成器，远端模型不可用时兜底
// 输出只使用 h2/h3/h4/p/ul/li/strong/em 标签，标题由前端单独渲染，不写 h1

func renderTemplate(title, category string, topic contentTopic) string {
	switch topic {
	case topicPerson:
		return renderPersonTemplate(title)
	case topicTechnology:
		return renderTechnologyTemplate(title)
	case topicScience:
		return renderScienceTemplate(title)
	case topicHealth:
		return renderHealthTemplate(title)
	case topicBusiness:
		return renderBusinessTemplate(title)
	case topicList:
		return renderListTemplate(title)
	case topicHowTo:
		return renderHowToTemplate(title)
	case topicQuestion:
		return renderQuestionTemplate(title)
	default:
		return renderGeneralTemplate(title, category)
	}
}

func renderPersonTemplate(title string) string {
	return fmt.Sprintf(`<h2>Introduction</h2>
<p><strong>%[1]s</strong> is a prominent figure who has made significant contributions to their field. This overview explores their life, career, and lasting impact.</p>

<h3>Early Life and Background</h3>
<p>Understanding the early influences and formative experiences that shaped %[1]s's journey provides valuable insight into their later achievements.</p>

<h3>Career Highlights</h3>
<p>Throughout their career, %[1]s has achieved numerous milestones that have defined their professional legacy.</p>
<ul>
<li>Major career achievements and recognition</li>
<li>Notable projects and collaborations</li>
<li>Awards and honors received</li>
<li>Industry impact and influence</li>
</ul>

<h3>Notable Works and Contributions</h3>
<p>The body of work created by %[1]s demonstrates their talent, dedication, and unique perspective in their field.</p>

<h3>Current Projects and Future Endeavors</h3>
<p>Staying current with %[1]s's latest activities and upcoming projects shows their continued relevance and evolution.</p>

<h3>Legacy and Impact</h3>
<p>The lasting influence of %[1]s extends beyond their immediate work, inspiring others and shaping their industry for future generations.</p>

<p><em>For the most current and detailed information, consider researching recent interviews, official biographies, and verified news sources.</em></p>`, title)
}

func renderTechnologyTemplate(title string) string {
	return fmt.Sprintf(`<h2>Understanding %[1]s</h2>
<p><strong>%[1]s</strong> represents an important development in modern technology that is reshaping how we work, communicate, and solve problems.</p>

<h3>What is %[1]s?</h3>
<p>At its core, %[1]s is a technological innovation that addresses specific challenges and opens new possibilities for users and businesses alike.</p>

<h3>How It Works</h3>
<p>The underlying mechanisms and processes that power %[1]s involve systems designed for efficiency and reliability.</p>
<ul>
<li>Core technical components and architecture</li>
<li>Key algorithms and methodologies</li>
<li>Integration with existing systems</li>
<li>Performance optimization techniques</li>
</ul>

<h3>Real-World Applications</h3>
<p>The practical applications of %[1]s span multiple industries and use cases, demonstrating its versatility and value.</p>

<h3>Benefits and Challenges</h3>
<p>Organizations adopting %[1]s can expect several key benefits, alongside considerations that should be understood before implementation.</p>

<h3>Future Developments</h3>
<p>The evolution of %[1]s continues with ongoing research, development, and emerging trends that will shape its future applications.</p>

<h3>Getting Started</h3>
<p>For those interested in exploring %[1]s, official documentation, industry publications, and expert analysis are the best places to begin.</p>

<p><em>Technology evolves rapidly, so staying informed about the latest developments in %[1]s is recommended.</em></p>`, title)
}

func renderScienceTemplate(title string) string {
	return fmt.Sprintf(`<h2>The Science Behind %[1]s</h2>
<p><strong>%[1]s</strong> is a scientific topic with a rich history of discovery and an active frontier of ongoing research.</p>

<h3>Scientific Background</h3>
<p>The foundations of %[1]s rest on established principles that have been tested and refined through decades of study.</p>

<h3>Current Research and Findings</h3>
<p>Researchers around the world continue to investigate %[1]s, producing findings that deepen our understanding.</p>
<ul>
<li>Key experiments and observations</li>
<li>Leading researchers and institutions</li>
<li>Recent breakthroughs and publications</li>
<li>Open questions under active study</li>
</ul>

<h3>Practical Applications</h3>
<p>Beyond the laboratory, %[1]s has practical applications that affect technology, industry, and everyday life.</p>

<h3>Why It Matters</h3>
<p>Understanding %[1]s matters to society because it informs policy, drives innovation, and satisfies fundamental curiosity about how the world works.</p>

<h3>Future Research Directions</h3>
<p>The next decade of research into %[1]s promises new instruments, new methods, and potentially transformative discoveries.</p>

<p><em>Scientific understanding evolves with new evidence. Peer-reviewed journals and reputable science publications are the best sources for current findings on %[1]s.</em></p>`, title)
}

func renderHealthTemplate(title string) string {
	return fmt.Sprintf(`<h2>Understanding %[1]s</h2>
<p><strong>%[1]s</strong> is an important aspect of health and wellness that affects many people's daily lives and long-term well-being.</p>

<h3>What You Need to Know</h3>
<p>Having accurate, evidence-based information about %[1]s is essential for making informed decisions about your health and lifestyle.</p>

<h3>Key Factors and Considerations</h3>
<p>Several important factors influence %[1]s and understanding these can help you make better choices.</p>
<ul>
<li>Risk factors and prevention strategies</li>
<li>Lifestyle modifications and recommendations</li>
<li>Evidence-based approaches and treatments</li>
<li>When to consult healthcare professionals</li>
</ul>

<h3>Practical Tips and Strategies</h3>
<p>Implementing practical, sustainable approaches to %[1]s can lead to meaningful improvements in your overall health and quality of life.</p>

<h3>Common Myths vs. Facts</h3>
<p>Separating fact from fiction is crucial when it comes to health information, especially regarding %[1]s.</p>

<h3>Latest Research and Developments</h3>
<p>The field of health and medicine continues to evolve, with new research providing better understanding and treatment options for %[1]s.</p>

<p><em><strong>Important Note:</strong> This information is for educational purposes only and should not replace professional medical advice. Always consult with qualified healthcare providers for personalized guidance regarding %[1]s.</em></p>`, title)
}

func renderBusinessTemplate(title string) string {
	return fmt.Sprintf(`<h2>Mastering %[1]s</h2>
<p><strong>%[1]s</strong> is a critical aspect of modern business that can significantly impact success, growth, and competitive advantage.</p>

<h3>Strategic Overview</h3>
<p>Understanding the strategic importance of %[1]s helps businesses align their efforts with long-term goals and market opportunities.</p>

<h3>Key Components and Elements</h3>
<p>Successful implementation of %[1]s requires attention to several essential components that work together to drive results.</p>
<ul>
<li>Strategic planning and goal setting</li>
<li>Resource allocation and management</li>
<li>Performance metrics and measurement</li>
<li>Risk assessment and mitigation</li>
</ul>

<h3>Best Practices and Strategies</h3>
<p>Industry leaders have developed proven approaches to %[1]s that consistently deliver positive outcomes and sustainable growth.</p>

<h3>Measuring Success</h3>
<p>Establishing clear metrics for %[1]s enables businesses to track progress and make data-driven improvements.</p>

<h3>Common Challenges and Solutions</h3>
<p>Understanding potential obstacles and proven solutions helps businesses navigate the complexities of %[1]s more effectively.</p>

<h3>Future Trends and Opportunities</h3>
<p>Staying ahead of emerging trends in %[1]s positions businesses to capitalize on new opportunities.</p>

<p><em>Business success requires continuous learning. Stay informed about developments in %[1]s through professional networks and industry publications.</em></p>`, title)
}

func renderListTemplate(title string) string {
	return fmt.Sprintf(`<h2>%[1]s: Comprehensive Analysis</h2>
<p>This carefully curated list explores <strong>%[2]s</strong> based on thorough research, expert opinions, and proven track records.</p>

<h3>Selection Criteria</h3>
<p>Our ranking methodology considers multiple factors to ensure accuracy and relevance:</p>
<ul>
<li>Performance metrics and achievements</li>
<li>Expert reviews and professional opinions</li>
<li>User feedback and real-world results</li>
<li>Innovation and unique features</li>
</ul>

<h3>Top Selections</h3>

<h4>1. Leading Choice</h4>
<p>This top selection stands out for its exceptional performance, reliability, and overall value.</p>

<h4>2. Premium Option</h4>
<p>Offering advanced features and superior quality, this choice suits those seeking the highest level of performance.</p>

<h4>3. Best Value</h4>
<p>This selection provides an excellent balance of quality and affordability without compromising on essential features.</p>

<h4>4. Innovation Leader</h4>
<p>Known for cutting-edge features, this option represents the latest developments and emerging trends in the field.</p>

<h4>5. Reliable Standard</h4>
<p>A dependable choice that consistently delivers solid performance and has earned trust through years of positive results.</p>

<h3>Detailed Comparison</h3>
<p>Each option has unique strengths that make it suitable for different needs. Consider your specific requirements when making your selection.</p>

<h3>Making Your Choice</h3>
<p>To select the best option for your needs, consider your budget, specific requirements, and long-term goals.</p>

<p><em>This list reflects current conditions and is worth revisiting as the field develops.</em></p>`, title, strings.ToLower(title))
}

func renderHowToTemplate(title string) string {
	return fmt.Sprintf(`<h2>%[1]s: Complete Guide</h2>
<p>This guide will walk you through everything you need to know about <strong>%[2]s</strong>, from basic concepts to advanced techniques.</p>

<h3>Prerequisites and Requirements</h3>
<p>To successfully complete this process, prepare the following ahead of time:</p>
<ul>
<li>Essential tools and materials</li>
<li>Basic knowledge requirements</li>
<li>Time and resource commitments</li>
<li>Safety considerations where applicable</li>
</ul>

<h3>Step-by-Step Process</h3>
<p>Follow these steps in order. Each step builds on the previous one, so take your time and do not skip ahead.</p>

<h4>Step 1: Foundation</h4>
<p>Start with the basics and establish a solid foundation for the process.</p>

<h4>Step 2: Implementation</h4>
<p>Begin the main implementation phase, following best practices and proven methods.</p>

<h4>Step 3: Refinement</h4>
<p>Fine-tune your approach and make necessary adjustments for optimal results.</p>

<h4>Step 4: Completion</h4>
<p>Finalize the process and ensure everything meets your quality standards.</p>

<h3>Tips for Success</h3>
<p>These proven tips will help you avoid common mistakes and achieve better results more efficiently.</p>

<h3>Troubleshooting Common Issues</h3>
<p>If you encounter problems along the way, these solutions address the most common challenges people face.</p>

<h3>Next Steps</h3>
<p>After completing this process, consider follow-up actions to continue your progress and build on your success.</p>

<p><em>Mastery comes with practice. Keep refining your approach even if early results are imperfect.</em></p>`, title, strings.ToLower(title))
}

func renderQuestionTemplate(title string) string {
	return fmt.Sprintf(`<h2>Answering: %[1]s</h2>
<p>The question <strong>%[1]s</strong> deserves a clear, well-grounded answer. This article provides the direct answer along with the context needed to understand it.</p>

<h3>The Short Answer</h3>
<p>In brief, the answer depends on a few key factors explained below. Understanding these factors gives a far more useful picture than a one-line response.</p>

<h3>Background and Context</h3>
<p>To fully understand %[1]s, it helps to know the background and circumstances that make the question relevant.</p>
<ul>
<li>Key definitions and terminology</li>
<li>Historical context and origins</li>
<li>Common misconceptions</li>
<li>Why the question comes up</li>
</ul>

<h3>The Detailed Explanation</h3>
<p>A thorough look at the evidence and reasoning behind the answer, including the nuances that shorter treatments skip over.</p>

<h3>Different Perspectives</h3>
<p>Reasonable people approach %[1]s from different angles, and examining those perspectives leads to a more complete understanding.</p>

<h3>Practical Implications</h3>
<p>What the answer means in practice, and how it might affect decisions you make.</p>

<h3>Related Questions</h3>
<p>Questions closely connected to %[1]s that are worth exploring to round out your understanding.</p>

<p><em>For the most reliable answer, cross-reference multiple reputable sources and look for recent, well-supported information.</em></p>`, title)
}

func renderGeneralTemplate(title, category string) string {
	closing := fmt.Sprintf(`<p><em>This overview of %s provides a solid foundation for further exploration and learning.</em></p>`, title)
	if category != "" {
		closing = fmt.Sprintf(`<p><em>This content falls under the %s category and provides an introduction to %s. Continue exploring related topics to build your knowledge.</em></p>`, category, title)
	}

	return fmt.Sprintf(`<h2>Exploring %[1]s</h2>
<p><strong>%[1]s</strong> is a fascinating topic that deserves thorough exploration. This guide provides valuable insights and practical information.</p>

<h3>Overview and Introduction</h3>
<p>Understanding the fundamentals of %[1]s provides a solid foundation for deeper exploration and practical application.</p>

<h3>Key Concepts and Principles</h3>
<p>Several important concepts form the backbone of %[1]s, and grasping these principles is essential.</p>
<ul>
<li>Core definitions and terminology</li>
<li>Fundamental principles and theories</li>
<li>Historical context and development</li>
<li>Current relevance and applications</li>
</ul>

<h3>Practical Applications</h3>
<p>The real-world applications of %[1]s demonstrate its relevance and importance in various contexts.</p>

<h3>Different Perspectives</h3>
<p>Examining %[1]s from multiple angles provides a more complete and nuanced understanding of its significance.</p>

<h3>Current Trends and Developments</h3>
<p>The field surrounding %[1]s continues to evolve, with new research, innovations, and insights emerging regularly.</p>

<h3>Future Outlook</h3>
<p>Looking ahead, %[1]s is likely to continue developing and adapting to changing circumstances and new discoveries.</p>

%[2]s`, title, closing)
}
