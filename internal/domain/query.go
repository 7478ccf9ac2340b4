package domain

import "time"

// Channel identifies where a query arrived from.
type Channel string

const (
	ChannelEmail     Channel = "email"
	ChannelSocial    Channel = "social"
	ChannelChat      Channel = "chat"
	ChannelCommunity Channel = "community"
)

// Channels lists every valid channel value.
func Channels() []Channel {
	return []Channel{ChannelEmail, ChannelSocial, ChannelChat, ChannelCommunity}
}

// Valid reports whether the channel is one of the known values.
func (c Channel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelSocial, ChannelChat, ChannelCommunity:
		return true
	}
	return false
}

// QueryTag is the topic category assigned at creation by the classifier.
type QueryTag string

const (
	TagQuestion  QueryTag = "question"
	TagRequest   QueryTag = "request"
	TagComplaint QueryTag = "complaint"
	TagFeedback  QueryTag = "feedback"
	TagOther     QueryTag = "other"
)

// QueryTags lists every valid tag value.
func QueryTags() []QueryTag {
	return []QueryTag{TagQuestion, TagRequest, TagComplaint, TagFeedback, TagOther}
}

// QueryPriority enumerates urgency levels.
type QueryPriority string

const (
	PriorityLow    QueryPriority = "low"
	PriorityMedium QueryPriority = "medium"
	PriorityHigh   QueryPriority = "high"
	PriorityUrgent QueryPriority = "urgent"
)

// QueryPriorities lists every valid priority value.
func QueryPriorities() []QueryPriority {
	return []QueryPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// QueryStatus enumerates lifecycle states for queries.
type QueryStatus string

const (
	StatusNew        QueryStatus = "new"
	StatusAssigned   QueryStatus = "assigned"
	StatusInProgress QueryStatus = "in-progress"
	StatusResolved   QueryStatus = "resolved"
	StatusClosed     QueryStatus = "closed"
)

// QueryStatuses lists every valid status value.
func QueryStatuses() []QueryStatus {
	return []QueryStatus{StatusNew, StatusAssigned, StatusInProgress, StatusResolved, StatusClosed}
}

// Query is the aggregate for inbound audience messages. AssignedToName is a
// point-in-time snapshot of the team name; it survives renames and deletions
// of the referenced team.
type Query struct {
	ID             string
	Channel        Channel
	SenderName     string
	SenderEmail    string
	Subject        string
	Message        string
	Tag            QueryTag
	Priority       QueryPriority
	Status         QueryStatus
	AssignedTo     *string
	AssignedToName string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ResolvedAt     *time.Time
	// ResponseTime is minutes from creation to first resolution, computed
	// exactly once when ResolvedAt is first set.
	ResponseTime int
}
