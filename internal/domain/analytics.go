package domain

// AnalyticsSnapshot is a corpus-wide statistical summary computed fresh on
// each request. Distribution maps carry every enumeration value, zero when
// no records match.
type AnalyticsSnapshot struct {
	TotalQueries         int                   `json:"totalQueries"`
	ResolvedQueries      int                   `json:"resolvedQueries"`
	AvgResponseTime      int                   `json:"avgResponseTime"`
	QueryTypes           map[QueryTag]int      `json:"queryTypes"`
	StatusDistribution   map[QueryStatus]int   `json:"statusDistribution"`
	PriorityDistribution map[QueryPriority]int `json:"priorityDistribution"`
	ChannelDistribution  map[Channel]int       `json:"channelDistribution"`
	ResponseTimeByTag    map[QueryTag]int      `json:"responseTimeByTag"`
}
