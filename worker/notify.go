package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// NotifyJob carries one terminal give result to the configured notify URL.
// The prime is never part of this payload.
type NotifyJob struct {
	AttemptID    string `json:"attempt_id"`
	PaymentType  string `json:"payment_type"`
	Amount       int    `json:"amount"`
	Status       string `json:"status"`
	CardLastFour string `json:"card_lastfour,omitempty"`
	FailReason   string `json:"fail_reason,omitempty"`
}

var NotifyQueue = make(chan NotifyJob, 100)

// EnqueueNotify queues a result notification without blocking the payment
// flow. A full queue drops the notification with a log line.
func EnqueueNotify(job NotifyJob) {
	select {
	case NotifyQueue <- job:
	default:
		log.Println("notify queue full, dropping notification for attempt", job.AttemptID)
	}
}

// ProcessNotifyQueue delivers queued notifications with exponential backoff.
// Runs as a background goroutine; a missing notify URL drains the queue.
func ProcessNotifyQueue(notifyURL string) {
	for job := range NotifyQueue {
		if notifyURL == "" {
			continue
		}
		go func(job NotifyJob) {
			if err := sendNotifyWithRetry(notifyURL, job); err != nil {
				log.Printf("failed to send notification for attempt %s: %v", job.AttemptID, err)
			}
		}(job)
	}
}

func sendNotifyWithRetry(notifyURL string, job NotifyJob) error {
	jsonBody, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("error marshalling notify body: %v", err)
	}

	operation := func() (int, error) {
		client := &http.Client{Timeout: 15 * time.Second}
		resp, err := client.Post(notifyURL, "application/json", bytes.NewBuffer(jsonBody))
		if err != nil {
			return 0, err
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return resp.StatusCode, fmt.Errorf("notify endpoint responded with status %d", resp.StatusCode)
		}
		return resp.StatusCode, nil
	}

	_, err = backoff.Retry(context.TODO(), operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(5))
	return err
}
