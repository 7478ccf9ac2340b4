package classifier

import (
	"testing"

	"github.com/spec-kit/query-service/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name             string
		subject          string
		message          string
		expectedTag      domain.QueryTag
		expectedPriority domain.QueryPriority
	}{
		{
			name:             "complaint with refund intent",
			subject:          "Very disappointed",
			message:          "I want a refund for this terrible product",
			expectedTag:      domain.TagComplaint,
			expectedPriority: domain.PriorityHigh,
		},
		{
			name:             "plain request",
			subject:          "New order",
			message:          "I would like to purchase two more licenses",
			expectedTag:      domain.TagRequest,
			expectedPriority: domain.PriorityMedium,
		},
		{
			name:             "question mark alone",
			subject:          "Billing cycle",
			message:          "Is the invoice monthly or yearly?",
			expectedTag:      domain.TagQuestion,
			expectedPriority: domain.PriorityLow,
		},
		{
			name:             "feedback with suggestion keywords",
			subject:          "Great service",
			message:          "I love it, just a suggestion to improve",
			expectedTag:      domain.TagFeedback,
			expectedPriority: domain.PriorityLow,
		},
		{
			name:             "no keywords at all",
			subject:          "Hello",
			message:          "Just checking in",
			expectedTag:      domain.TagOther,
			expectedPriority: domain.PriorityMedium,
		},
		{
			name:             "empty input",
			subject:          "",
			message:          "",
			expectedTag:      domain.TagOther,
			expectedPriority: domain.PriorityMedium,
		},
		{
			name:             "request beats question when both match",
			subject:          "Urgent: system is down!!",
			message:          "please help asap",
			expectedTag:      domain.TagRequest,
			expectedPriority: domain.PriorityUrgent,
		},
		{
			name:             "complaint beats request",
			subject:          "Cancel my subscription",
			message:          "I need this cancelled please",
			expectedTag:      domain.TagComplaint,
			expectedPriority: domain.PriorityHigh,
		},
		{
			name:             "urgent keyword overrides low priority tag",
			subject:          "How do I restart?",
			message:          "the service is broken",
			expectedTag:      domain.TagQuestion,
			expectedPriority: domain.PriorityUrgent,
		},
		{
			name:             "urgent keyword with no tag keywords",
			subject:          "Emergency",
			message:          "everything stopped",
			expectedTag:      domain.TagOther,
			expectedPriority: domain.PriorityUrgent,
		},
		{
			name:             "matching is case insensitive",
			subject:          "REFUND NOW",
			message:          "THIS IS URGENT",
			expectedTag:      domain.TagComplaint,
			expectedPriority: domain.PriorityUrgent,
		},
		{
			name:             "keyword in subject only",
			subject:          "feedback on the new layout",
			message:          "looks clean",
			expectedTag:      domain.TagFeedback,
			expectedPriority: domain.PriorityLow,
		},
	}

	c := New(DefaultRules())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tag, priority := c.Classify(tc.subject, tc.message)
			if tag != tc.expectedTag {
				t.Errorf("tag = %q, want %q", tag, tc.expectedTag)
			}
			if priority != tc.expectedPriority {
				t.Errorf("priority = %q, want %q", priority, tc.expectedPriority)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := New(DefaultRules())
	for i := 0; i < 10; i++ {
		tag, priority := c.Classify("please advise", "is it down?")
		if tag != domain.TagRequest || priority != domain.PriorityUrgent {
			t.Fatalf("iteration %d: got (%q, %q)", i, tag, priority)
		}
	}
}

func TestClassifyCustomRules(t *testing.T) {
	c := New(Rules{Urgent: []string{"mayday"}})
	tag, priority := c.Classify("mayday", "nothing else matches")
	if tag != domain.TagOther {
		t.Errorf("tag = %q, want %q", tag, domain.TagOther)
	}
	if priority != domain.PriorityUrgent {
		t.Errorf("priority = %q, want %q", priority, domain.PriorityUrgent)
	}
}
