// Package crontab reads job definitions from a crontab file.
//
// Every record is "<minute> <hour> <job-name>", minute and hour being either
// "*" or a single value. Blank lines and lines starting with "#" are skipped.
package crontab

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	cron "github.com/kaiserkarel/nextcron"
)

const fieldsPerRecord = 3

// Load reads every job from the crontab at path. The first bad record aborts
// the load, nothing is returned for the records before it.
func Load(fs afero.Fs, path string) ([]*cron.Job, error) {
	ok, err := afero.Exists(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "checking %s", path)
	}
	if !ok {
		return nil, &cron.ResourceNotFoundError{Path: path}
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	return Read(f)
}

// Read parses every record from r.
func Read(r io.Reader) ([]*cron.Job, error) {
	var jobs []*cron.Job

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		record := scanner.Text()
		if skip(record) {
			continue
		}

		job, err := ParseRecord(record)
		if err != nil {
			var cerr *cron.ConfigurationError
			if errors.As(err, &cerr) {
				cerr.Line = line
				cerr.Record = record
			}
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &cron.ConfigurationError{Line: line + 1, Reason: "record too long"}
		}
		return nil, errors.Wrap(err, "reading crontab")
	}
	return jobs, nil
}

// ParseRecord turns a single crontab record into a job.
func ParseRecord(record string) (*cron.Job, error) {
	fields := strings.Fields(record)
	if len(fields) != fieldsPerRecord {
		return nil, &cron.ConfigurationError{
			Record: record,
			Reason: "expected <minute> <hour> <job-name>",
		}
	}

	minute, err := cron.ParseField(fields[0], cron.Minute)
	if err != nil {
		return nil, err
	}
	hour, err := cron.ParseField(fields[1], cron.Hour)
	if err != nil {
		return nil, err
	}
	return cron.NewJob(fields[2], minute, hour)
}

func skip(record string) bool {
	trimmed := strings.TrimSpace(record)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
