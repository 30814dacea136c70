package cron

// Result is the next run of a job relative to a reference time.
type Result struct {
	Job   string
	At    Occurrence
	Today bool
}

// Day returns "today" or "tomorrow".
func (r Result) Day() string {
	if r.Today {
		return "today"
	}
	return "tomorrow"
}

func (r Result) String() string {
	return r.At.String() + " " + r.Day() + " " + r.Job
}

// ByNextRun defines ordering for []Result, soonest run first. Use it with
// sort.Stable to keep crontab order between jobs running at the same time.
type ByNextRun []Result

func (b ByNextRun) Len() int { return len(b) }
func (b ByNextRun) Less(i, j int) bool {
	if b[i].Today != b[j].Today {
		return b[i].Today
	}
	return b[i].At.Before(b[j].At)
}
func (b ByNextRun) Swap(i, j int) { b[i], b[j] = b[j], b[i] }
