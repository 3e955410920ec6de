package broker

import "errors"

var (
	ErrEmptyRedisURL   = errors.New("broker redis url not configured")
	ErrInvalidRedisURL = errors.New("invalid broker redis url")
	ErrEncodePayload   = errors.New("failed to encode task payload")
	ErrPublish         = errors.New("failed to publish task")
)
