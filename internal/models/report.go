package models

// Report holds the aggregate figures of one run.
type Report struct {
	Route          Route
	Count          int
	Mean           float64
	Percentile     int64
	PercentileRank int
	Invalid        []int
	Negative       []int
}

// Empty reports whether no ticket contributed a duration.
func (r *Report) Empty() bool {
	return r.Count == 0
}
