// Package broker publishes sample units as asynq tasks so downstream case
// processing can pick them up from a redis backed queue.
package broker
