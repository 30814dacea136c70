package cron

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"k8s.io/utils/clock"
)

// Option is a constructor function
type Option func(*Planner) error

// WithTab sets a storage backend for the planner
func WithTab(tab Tab) Option {
	return func(p *Planner) error {
		if tab == nil {
			return errors.New("tab cannot be nil")
		}
		p.tab = tab
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(log logr.Logger) Option {
	return func(p *Planner) error {
		p.log = log
		return nil
	}
}

// WithClock sets the clock used by Now. Used for manipulating time in tests.
func WithClock(c clock.PassiveClock) Option {
	return func(p *Planner) error {
		if c == nil {
			return errors.New("clock cannot be nil")
		}
		p.clock = c
		return nil
	}
}

// WithLocation sets the location.
//
// Location defaults to time.Local.
func WithLocation(location *time.Location) Option {
	return func(p *Planner) error {
		if location == nil {
			return errors.New("location cannot be nil")
		}
		p.location = location
		return nil
	}
}
