// Package classifier assigns a topic tag and a priority level to inbound
// query text using fixed keyword lists. The lists and their precedence order
// are a contract: changing either changes classification for identical input.
package classifier

import (
	"strings"

	"github.com/spec-kit/query-service/internal/domain"
)

// Rules holds the keyword lists driving classification. Values are treated
// as immutable once handed to a Classifier.
type Rules struct {
	Complaint []string
	Request   []string
	Question  []string
	Feedback  []string
	Urgent    []string
}

// DefaultRules returns the stock keyword lists.
func DefaultRules() Rules {
	return Rules{
		Complaint: []string{"complaint", "disappointed", "unhappy", "poor", "terrible", "awful", "bad service", "refund", "cancel"},
		Request:   []string{"request", "please", "need", "want", "require", "order", "purchase", "buy"},
		Question:  []string{"?", "how", "what", "when", "where", "why", "who", "question", "help", "explain"},
		Feedback:  []string{"feedback", "suggestion", "improve", "recommend", "review", "opinion"},
		Urgent:    []string{"urgent", "asap", "immediately", "critical", "emergency", "broken", "down", "not working"},
	}
}

// Classifier maps free text to a tag and priority. It is pure and
// deterministic; it never fails.
type Classifier struct {
	rules Rules
}

// New builds a Classifier with the given rules.
func New(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Classify inspects the concatenated subject and message, case-insensitively.
// Tag precedence is complaint > request > question > feedback > other,
// regardless of where keywords occur in the text. An urgent keyword forces
// priority urgent for any tag; otherwise priority follows the tag.
func (c *Classifier) Classify(subject, message string) (domain.QueryTag, domain.QueryPriority) {
	text := strings.ToLower(subject + " " + message)

	tag := c.detectTag(text)
	priority := c.detectPriority(tag, text)
	return tag, priority
}

func (c *Classifier) detectTag(text string) domain.QueryTag {
	switch {
	case containsAny(text, c.rules.Complaint):
		return domain.TagComplaint
	case containsAny(text, c.rules.Request):
		return domain.TagRequest
	case containsAny(text, c.rules.Question):
		return domain.TagQuestion
	case containsAny(text, c.rules.Feedback):
		return domain.TagFeedback
	}
	return domain.TagOther
}

func (c *Classifier) detectPriority(tag domain.QueryTag, text string) domain.QueryPriority {
	if containsAny(text, c.rules.Urgent) {
		return domain.PriorityUrgent
	}
	switch tag {
	case domain.TagComplaint:
		return domain.PriorityHigh
	case domain.TagRequest:
		return domain.PriorityMedium
	case domain.TagQuestion, domain.TagFeedback:
		return domain.PriorityLow
	}
	return domain.PriorityMedium
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
