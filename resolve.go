package cron

// Resolve returns the first occurrence at or after reference and true. When
// every occurrence is earlier than reference, it returns the earliest one and
// false, meaning the job next runs tomorrow at that time.
//
// occurrences must be non-empty and sorted ascending.
func Resolve(occurrences []Occurrence, reference Occurrence) (Occurrence, bool) {
	for _, o := range occurrences {
		if !o.Before(reference) {
			return o, true
		}
	}
	return occurrences[0], false
}
