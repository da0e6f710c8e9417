// Package fallback provides deterministic local substitutes for the remote
// AI provider: a canned question bank and a heuristic answer scorer. Both are
// pure functions of their inputs so degraded-mode behavior is reproducible.
package fallback

// questionBank maps role -> question type -> difficulty -> pre-authored
// questions, in display order.
var questionBank = map[string]map[string]map[string][]string{
	"software-engineer": {
		"technical": {
			"easy": {
				"Explain the difference between a stack and a queue data structure.",
				"What is the time complexity of searching in a sorted array?",
				"Describe the concept of inheritance in object-oriented programming.",
				"What is the difference between == and === in JavaScript?",
				"Explain what a RESTful API is and its key principles.",
			},
			"medium": {
				"Implement a function to check if a binary tree is balanced.",
				"Explain the concept of closure in JavaScript with an example.",
				"Describe the SOLID principles of object-oriented design.",
				"Compare and contrast promises and async/await in JavaScript.",
				"Explain the concept of database normalization and its benefits.",
			},
			"hard": {
				"Design a distributed system for a real-time chat application.",
				"Implement an LRU cache with O(1) time complexity for both get and put operations.",
				"Explain how you would design a scalable microservice architecture.",
				"Discuss strategies for handling race conditions in multi-threaded applications.",
				"Implement a solution for the traveling salesman problem.",
			},
		},
		"behavioral": {
			"easy": {
				"Tell me about a time when you had to learn a new technology quickly.",
				"How do you handle feedback from peers or managers?",
				"Describe a situation where you had to work with a difficult team member.",
				"What's your approach to maintaining a healthy work-life balance?",
				"How do you prioritize tasks when you have multiple deadlines?",
			},
			"medium": {
				"Describe a project where you had to implement a significant technical change.",
				"Tell me about a time when you had to make a difficult decision with limited information.",
				"How have you handled a situation where you disagreed with your manager's approach?",
				"Describe a time when you identified and resolved a technical debt issue.",
				"How do you approach mentoring junior developers on your team?",
			},
			"hard": {
				"Tell me about a time when you led a project that failed. What did you learn?",
				"Describe a situation where you had to make an ethical decision in your work.",
				"How have you handled conflicting priorities between business needs and technical quality?",
				"Tell me about a time when you had to influence senior leadership on a technical decision.",
				"Describe a situation where you had to resolve a critical production issue under pressure.",
			},
		},
	},
	"ai-engineer": {
		"technical": {
			"easy": {
				"Explain the difference between supervised and unsupervised learning.",
				"What is the purpose of regularization in machine learning models?",
				"Describe the process of feature engineering and why it's important.",
				"What are the common evaluation metrics for classification problems?",
				"Explain how a neural network learns through backpropagation.",
			},
			"medium": {
				"Describe the architecture of a transformer model and how it processes text data.",
				"How would you handle imbalanced datasets in a machine learning problem?",
				"Explain the concept of attention mechanisms in deep learning.",
				"Describe approaches to fine-tuning large language models for specific tasks.",
				"How would you design an evaluation framework for a conversational AI system?",
			},
			"hard": {
				"Design a recommendation system that balances exploration and exploitation.",
				"Explain how you would create an end-to-end ML pipeline for real-time predictions.",
				"How would you detect and mitigate bias in a large language model?",
				"Design an architecture for a multi-modal AI system that processes text, images, and audio.",
				"Describe your approach to optimizing inference latency in production ML systems.",
			},
		},
		"behavioral": {
			"easy": {
				"How do you stay updated with the latest developments in AI and machine learning?",
				"Describe a time when you had to explain a complex AI concept to a non-technical stakeholder.",
				"How do you approach validating the quality of data for an AI project?",
				"Tell me about a time when you had to balance model accuracy with computational efficiency.",
				"How do you collaborate with other teams when implementing AI solutions?",
			},
			"medium": {
				"Describe a situation where your AI solution had unexpected behavior in production.",
				"Tell me about a time when you had to make trade-offs between model interpretability and performance.",
				"How have you handled ethical considerations in an AI project?",
				"Describe your approach to setting realistic expectations with stakeholders about AI capabilities.",
				"Tell me about a time when you had to overcome limited data for an AI project.",
			},
			"hard": {
				"Describe a time when you led a complex AI project from concept to production.",
				"How have you handled a situation where an AI system made a critical error affecting users?",
				"Tell me about a time when you had to decide between building a custom model versus using an existing solution.",
				"Describe how you've handled the uncertainty and research aspects of implementing cutting-edge AI techniques.",
				"How have you balanced innovation with reliability in AI systems that serve critical business functions?",
			},
		},
	},
}

const (
	defaultRole       = "software-engineer"
	defaultType       = "technical"
	defaultDifficulty = "medium"
)

// Questions returns up to count canned questions for the given parameters,
// in bank order. Unknown roles resolve to software-engineer, unknown types
// (including "mixed") to technical and unknown difficulties to medium, so
// resolution always terminates at a real bank entry.
func Questions(role, questionType, difficulty string, count int) []string {
	byType, ok := questionBank[role]
	if !ok {
		byType = questionBank[defaultRole]
	}
	byDifficulty, ok := byType[questionType]
	if !ok {
		byDifficulty = byType[defaultType]
	}
	pool, ok := byDifficulty[difficulty]
	if !ok {
		pool = byDifficulty[defaultDifficulty]
	}

	if count < 0 {
		count = 0
	}
	if count > len(pool) {
		count = len(pool)
	}
	out := make([]string, count)
	copy(out, pool[:count])
	return out
}
