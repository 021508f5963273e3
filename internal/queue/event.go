// Package queue defines message payloads exchanged over the message broker.
package queue

// OTPEmailEvent is published when a registration needs its one-time code
// delivered. It carries everything the mail worker needs so the worker
// never touches the primary database.
type OTPEmailEvent struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	Code        string `json:"code"`
	ExpiresAt   string `json:"expires_at"`
	RequestedAt string `json:"requested_at"`
}
