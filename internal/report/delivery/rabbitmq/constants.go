package rabbitmq

const (
	RoutingKeyGenerate     = "report.generate"
	RoutingKeyNotification = "report.notification"

	ConsumerTagReportWorker = "analytics-report-worker"
)
