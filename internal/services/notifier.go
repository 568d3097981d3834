package services

import (
	"log"
	"net/http"
	"time"
)

// Notifier sends a best-effort clear-previous-state notification. The
// contract is at-most-once per call, no retry: a failure is logged and
// swallowed, never surfaced to the caller.
type Notifier interface {
	NotifyClear()
}

type clearNotifier struct {
	url    string
	client *http.Client
}

func NewClearNotifier(url string, timeout time.Duration) Notifier {
	return &clearNotifier{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// NotifyClear implements Notifier. POST with no payload; the response body
// is ignored, only success or failure is observed.
func (n *clearNotifier) NotifyClear() {
	resp, err := n.client.Post(n.url, "application/json", nil)
	if err != nil {
		log.Printf("⚠️  Clear notification failed: %v\n", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		log.Printf("⚠️  Clear notification rejected: %s\n", resp.Status)
		return
	}
}

// loggedNotifier is used when no clear endpoint is configured.
type loggedNotifier struct{}

func (loggedNotifier) NotifyClear() {
	log.Println("ℹ️  Clear notification skipped: no endpoint configured")
}

func NewNoopNotifier() Notifier {
	return loggedNotifier{}
}
