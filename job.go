package cron

import (
	"slices"

	"github.com/pkg/errors"
)

// Job is a named crontab entry together with every time of day it runs.
// A Job is immutable once built.
type Job struct {
	name        string
	minute      FieldSpec
	hour        FieldSpec
	occurrences []Occurrence
}

// NewJob expands the minute and hour specs into the job's daily occurrences.
func NewJob(name string, minute, hour FieldSpec) (*Job, error) {
	if name == "" {
		return nil, &ConfigurationError{Field: "name", Reason: "job name cannot be empty"}
	}

	minutes, err := Expand(minute, Minute)
	if err != nil {
		return nil, errors.Wrapf(err, "job %s", name)
	}
	hours, err := Expand(hour, Hour)
	if err != nil {
		return nil, errors.Wrapf(err, "job %s", name)
	}

	occurrences := make([]Occurrence, 0, len(hours)*len(minutes))
	for _, h := range hours {
		for _, m := range minutes {
			occurrences = append(occurrences, Occurrence{Hour: h, Minute: m})
		}
	}
	slices.SortFunc(occurrences, Occurrence.Compare)
	occurrences = slices.Compact(occurrences)

	if len(occurrences) == 0 {
		return nil, &ConfigurationError{Field: "name", Value: name, Reason: "job never runs"}
	}

	return &Job{
		name:        name,
		minute:      minute,
		hour:        hour,
		occurrences: occurrences,
	}, nil
}

// Name returns the job name.
func (j *Job) Name() string { return j.name }

// Occurrences returns a copy of the job's times of day, sorted ascending.
func (j *Job) Occurrences() []Occurrence {
	return slices.Clone(j.occurrences)
}

// Resolve returns the next run of the job at or after reference.
func (j *Job) Resolve(reference Occurrence) Result {
	at, today := Resolve(j.occurrences, reference)
	return Result{Job: j.name, At: at, Today: today}
}
