package kafka

const (
	// TopicPostChanged is the default topic for post change events.
	TopicPostChanged = "analytics.post.changed"

	ConsumerGroupDashboardCache = "analytics-consumer-dashboard-cache"
)
