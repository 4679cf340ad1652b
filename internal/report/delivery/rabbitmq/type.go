package rabbitmq

import "time"

// JobMessage is the wire form of a queued report run.
type JobMessage struct {
	RunID    string     `json:"run_id"`
	ReportID string     `json:"report_id"`
	Now      *time.Time `json:"now,omitempty"`
}

// NotificationMessage is picked up by the mailer to email one recipient.
type NotificationMessage struct {
	RunID     string `json:"run_id"`
	ReportID  string `json:"report_id"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	HTMLBody  string `json:"html_body"`
	CreatedAt string `json:"created_at"`
}

// Topology names the exchange and queues report messages flow through.
type Topology struct {
	Exchange          string
	ReportQueue       string
	NotificationQueue string
}
