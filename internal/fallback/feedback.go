package fallback

import (
	"strings"

	"prepmate/server/internal/models"
)

// Scoring constants for the technical heuristic.
const (
	technicalBase         = 65
	technicalShortLen     = 100
	technicalShortPenalty = 15
	technicalShortFloor   = 40
	technicalLongLen      = 300
	technicalLongBonus    = 10
	technicalLongCeil     = 85
	technicalCodeBonus    = 5
	technicalCodeCeil     = 90
)

// Scoring constants for the behavioral heuristic.
const (
	behavioralBase         = 70
	behavioralShortLen     = 150
	behavioralShortPenalty = 10
	behavioralShortFloor   = 50
	behavioralLongLen      = 350
	behavioralLongBonus    = 10
	behavioralLongCeil     = 90
	behavioralStarBonus    = 10
	behavioralStarCeil     = 95
)

var codeMarkers = []string{"```", "function", "class", "for (", "if ("}

var (
	contextMarkers = []string{"situation", "context", "when I"}
	actionMarkers  = []string{"I did", "my approach", "I took"}
	resultMarkers  = []string{"result", "outcome", "learned"}
)

// Evaluate computes deterministic feedback for an answer. Technical
// questions score against code-likeness markers; any other type (behavioral,
// mixed) scores against the STAR heuristic. The bonus policies differ on
// purpose: technical adds a single bonus when any code marker is present,
// behavioral adds its bonus only when all three STAR marker categories
// appear together.
func Evaluate(answer, questionType string) models.FeedbackContent {
	if questionType == "technical" {
		return technicalFeedback(answer)
	}
	return behavioralFeedback(answer)
}

func technicalFeedback(answer string) models.FeedbackContent {
	length := len(answer)

	score := technicalBase
	if length < technicalShortLen {
		score = max(technicalShortFloor, score-technicalShortPenalty)
	} else if length > technicalLongLen {
		score = min(technicalLongCeil, score+technicalLongBonus)
	}

	hasCode := containsAny(answer, codeMarkers)
	if hasCode {
		score = min(technicalCodeCeil, score+technicalCodeBonus)
	}
	score = clampScore(score)

	strengths := []string{"Provided a response to the technical question"}
	if length > 200 {
		strengths = append(strengths, "Gave a detailed explanation")
	} else {
		strengths = append(strengths, "Attempted to address the question")
	}
	if hasCode {
		strengths = append(strengths, "Included code examples to illustrate the solution")
	} else {
		strengths = append(strengths, "Explained the concept")
	}

	var improvements []string
	if length < 150 {
		improvements = append(improvements, "Could provide more detailed explanations")
	}
	if !hasCode {
		improvements = append(improvements, "Consider including code examples to illustrate concepts")
	}
	improvements = append(improvements,
		"Focus on providing more specific technical details and examples",
		"Structure your answer with clear sections for better readability",
	)

	return models.FeedbackContent{
		OverallScore: score,
		Strengths:    strengths,
		Improvements: improvements,
		SuggestedAnswer: "A thorough answer would include explanations of key concepts, " +
			"code examples where appropriate, discussion of trade-offs, and real-world " +
			"applications or scenarios.",
	}
}

func behavioralFeedback(answer string) models.FeedbackContent {
	length := len(answer)

	score := behavioralBase
	if length < behavioralShortLen {
		score = max(behavioralShortFloor, score-behavioralShortPenalty)
	} else if length > behavioralLongLen {
		score = min(behavioralLongCeil, score+behavioralLongBonus)
	}

	hasContext := containsAny(answer, contextMarkers)
	hasAction := containsAny(answer, actionMarkers)
	hasResult := containsAny(answer, resultMarkers)
	if hasContext && hasAction && hasResult {
		score = min(behavioralStarCeil, score+behavioralStarBonus)
	}
	score = clampScore(score)

	strengths := []string{"Provided a response to the behavioral question"}
	if length > 250 {
		strengths = append(strengths, "Gave a detailed answer with context")
	} else {
		strengths = append(strengths, "Attempted to address the question")
	}
	if hasContext {
		strengths = append(strengths, "Included context/situation in the answer")
	}
	if hasAction {
		strengths = append(strengths, "Described actions taken")
	}
	if hasResult {
		strengths = append(strengths, "Mentioned results or outcomes")
	}

	var improvements []string
	if !hasContext {
		improvements = append(improvements, "Include more context about the specific situation")
	}
	if !hasAction {
		improvements = append(improvements, "Focus more on your specific actions and contributions")
	}
	if !hasResult {
		improvements = append(improvements, "Clearly state the outcomes and what you learned")
	}
	improvements = append(improvements, "Structure your answer using the STAR method (Situation, Task, Action, Result)")
	if length < 200 {
		improvements = append(improvements, "Provide more details about your experience")
	}

	return models.FeedbackContent{
		OverallScore: score,
		Strengths:    strengths,
		Improvements: improvements,
		SuggestedAnswer: "A strong behavioral answer typically follows the STAR method: " +
			"describing the Situation or Task, detailing the Actions you took, and sharing " +
			"the Results achieved. Include specific details and quantify results when possible.",
	}
}

// containsAny is a case-sensitive substring scan, matching the marker casing
// exactly (markers like "when I" rely on it).
func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
