package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the rules env tags cannot express. All problems are
// reported together so a misconfigured deployment fails once, not once per
// field.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(len(c.Auth.JWTSecret) >= 32, "auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))

	check(c.Status.PollInterval > 0, "status.poll_interval must be > 0 (got %v)", c.Status.PollInterval)
	check(c.Status.MaxAttempts > 0, "status.max_attempts must be > 0 (got %d)", c.Status.MaxAttempts)
	check(c.Status.ChatInterval > 0, "status.chat_interval must be > 0 (got %v)", c.Status.ChatInterval)

	check(c.Notification.QueueSize > 0, "notification.queue_size must be > 0 (got %d)", c.Notification.QueueSize)
	check(c.Notification.Workers > 0, "notification.workers must be > 0 (got %d)", c.Notification.Workers)
	check(c.Notification.RetentionDays > 0, "notification.retention_days must be > 0 (got %d)", c.Notification.RetentionDays)

	check(len(c.Upload.Extensions()) > 0, "upload.allowed_extensions must list at least one extension")
	check(c.Upload.MaxBytes > 0, "upload.max_bytes must be > 0 (got %d)", c.Upload.MaxBytes)

	check(c.Queue.QueueURL == "" || strings.HasPrefix(c.Queue.QueueURL, "http"),
		"queue.queue_url must be an http(s) URL (got %q)", c.Queue.QueueURL)
	check(c.RateLimit.RequestsPerMinute >= 0, "rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)

	return errors.Join(errs...)
}
