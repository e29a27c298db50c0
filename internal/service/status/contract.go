package status

import (
	"encoding/json"
	"time"
)

// Contract is the polling cadence clients follow. The server publishes it so
// staleness bounds can be tuned without shipping new clients; a push
// transport may later satisfy the same bounds.
type Contract struct {
	PollInterval         time.Duration
	MaxAttempts          int
	ChatInterval         time.Duration
	NotificationInterval time.Duration
}

// DefaultContract matches the configuration defaults.
var DefaultContract = Contract{
	PollInterval:         DefaultInterval,
	MaxAttempts:          DefaultMaxAttempts,
	ChatInterval:         5 * time.Second,
	NotificationInterval: 30 * time.Second,
}

// MaxWait is the longest a waiter following the contract blocks before
// reporting a timeout.
func (c Contract) MaxWait() time.Duration {
	return c.PollInterval * time.Duration(max(c.MaxAttempts-1, 0))
}

type contractJSON struct {
	PollIntervalMS         int64 `json:"poll_interval_ms"`
	MaxAttempts            int   `json:"max_attempts"`
	ChatIntervalMS         int64 `json:"chat_interval_ms"`
	NotificationIntervalMS int64 `json:"notification_interval_ms"`
}

func (c Contract) MarshalJSON() ([]byte, error) {
	return json.Marshal(contractJSON{
		PollIntervalMS:         c.PollInterval.Milliseconds(),
		MaxAttempts:            c.MaxAttempts,
		ChatIntervalMS:         c.ChatInterval.Milliseconds(),
		NotificationIntervalMS: c.NotificationInterval.Milliseconds(),
	})
}

// UnmarshalJSON fills zero fields from DefaultContract.
func (c *Contract) UnmarshalJSON(b []byte) error {
	var raw contractJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*c = DefaultContract
	if raw.PollIntervalMS > 0 {
		c.PollInterval = time.Duration(raw.PollIntervalMS) * time.Millisecond
	}
	if raw.MaxAttempts > 0 {
		c.MaxAttempts = raw.MaxAttempts
	}
	if raw.ChatIntervalMS > 0 {
		c.ChatInterval = time.Duration(raw.ChatIntervalMS) * time.Millisecond
	}
	if raw.NotificationIntervalMS > 0 {
		c.NotificationInterval = time.Duration(raw.NotificationIntervalMS) * time.Millisecond
	}
	return nil
}
