package cron

import (
	"fmt"
	"strconv"
)

// ConfigurationError is returned when a crontab record or one of its fields
// cannot be turned into a job.
type ConfigurationError struct {
	// Line is the 1-based line number in the crontab, 0 if unknown.
	Line int

	// Record is the raw crontab record, if known.
	Record string

	// Field names the offending field ("minute", "hour", "name"), if any.
	Field string

	// Value is the offending field value, if any.
	Value string

	Reason string
}

func (e *ConfigurationError) Error() string {
	msg := "wrong record in configuration file"
	if e.Line > 0 {
		msg += " at line " + strconv.Itoa(e.Line)
	}
	if e.Record != "" {
		msg += fmt.Sprintf(" %q", e.Record)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(": %s field %q", e.Field, e.Value)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// InputFormatError is returned when the reference time does not follow HH:MM.
type InputFormatError struct {
	Input string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("current time argument %q is not following HH:MM pattern", e.Input)
}

// ResourceNotFoundError is returned when the crontab path does not exist.
type ResourceNotFoundError struct {
	Path string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("config file path %q doesn't exist", e.Path)
}
