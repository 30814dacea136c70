package cron

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"k8s.io/utils/clock"
)

// New is the constructor for Planner
func New(opts ...Option) (*Planner, error) {
	p := &Planner{
		log:      logr.Discard(),
		clock:    clock.RealClock{},
		location: time.Local,
	}

	for _, opt := range opts {
		err := opt(p)
		if err != nil {
			return nil, err
		}
	}

	if p.tab == nil {
		p.tab = NewMemoryTab()
	}
	return p, nil
}

// Planner resolves the next run of every job in its tab.
type Planner struct {
	tab      Tab
	log      logr.Logger
	clock    clock.PassiveClock
	location *time.Location
}

// Add a job to the planner
func (p *Planner) Add(job *Job) error {
	if err := p.tab.Put(job); err != nil {
		return errors.Wrap(err, "adding job")
	}
	p.log.V(1).Info("added job", "job", job.Name(), "expression", job.Expression(), "occurrences", len(job.occurrences))
	return nil
}

// Plan returns the next run of every job at or after reference, in the order
// the jobs were added.
func (p *Planner) Plan(reference Occurrence) ([]Result, error) {
	jobs, err := p.tab.All()
	if err != nil {
		return nil, errors.Wrap(err, "listing jobs")
	}

	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		r := job.Resolve(reference)
		p.log.V(1).Info("resolved job", "job", r.Job, "reference", reference.String(), "next", r.At.String(), "day", r.Day())
		results = append(results, r)
	}
	return results, nil
}

// Now returns the current time of day in the planner's location.
func (p *Planner) Now() Occurrence {
	return At(p.clock.Now().In(p.location))
}

// PlanNow calls Plan with the current time of day.
func (p *Planner) PlanNow() ([]Result, error) {
	return p.Plan(p.Now())
}

// Location returns the planner's location.
func (p *Planner) Location() *time.Location {
	return p.location
}
