package cron

import (
	"slices"
	"time"

	robfig "github.com/robfig/cron"
)

// Schedule describes a job's duty cycle, see github.com/robfig/cron.
type Schedule = robfig.Schedule

var _ Schedule = (*Job)(nil)

// horizon bounds the search in Next: two days plus the hour a DST change
// can add.
const horizon = (2*24 + 1) * 60

// Next returns the first run of the job strictly later than t, in t's
// location. It makes a Job usable wherever a robfig/cron schedule is.
//
// Candidates are walked instant by instant, so a wall clock time repeated when
// clocks fall back matches twice and one skipped when they spring forward does
// not match at all, as with robfig's SpecSchedule. Returns the zero time if
// nothing matches within the horizon.
func (j *Job) Next(t time.Time) time.Time {
	next := t.Truncate(time.Minute).Add(time.Minute)

	for i := 0; i < horizon; i++ {
		if _, ok := slices.BinarySearchFunc(j.occurrences, At(next), Occurrence.Compare); ok {
			return next
		}
		next = next.Add(time.Minute)
	}
	return time.Time{}
}

// Expression returns the job as a standard five field cron expression.
func (j *Job) Expression() string {
	return j.minute.String() + " " + j.hour.String() + " * * *"
}
