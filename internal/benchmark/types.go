package benchmark

// Estimate is a single criterion statistic in nanoseconds.
type Estimate struct {
	ConfidenceInterval *ConfidenceInterval `json:"confidence_interval,omitempty"`
	PointEstimate      float64             `json:"point_estimate"`
	StandardError      float64             `json:"standard_error,omitempty"`
}

// ConfidenceInterval bounds an Estimate.
type ConfidenceInterval struct {
	ConfidenceLevel float64 `json:"confidence_level"`
	LowerBound      float64 `json:"lower_bound"`
	UpperBound      float64 `json:"upper_bound"`
}

// Estimates mirrors one criterion estimates.json file. Only the mean
// participates in threshold analysis; the other statistics are decoded so
// real result trees round-trip, and any further fields are ignored.
type Estimates struct {
	Mean         Estimate  `json:"mean"`
	Median       *Estimate `json:"median,omitempty"`
	MedianAbsDev *Estimate `json:"median_abs_dev,omitempty"`
	Slope        *Estimate `json:"slope,omitempty"`
	StdDev       *Estimate `json:"std_dev,omitempty"`
}

// Result is one loaded benchmark, named after its results subdirectory.
// Immutable after loading.
type Result struct {
	Name      string
	Estimates Estimates
}

// ResultSet maps benchmark name to its loaded result.
type ResultSet map[string]Result

// MeanMillis converts the mean point estimate from nanoseconds to
// milliseconds. A mean that was absent from the file decodes as zero and
// converts to zero.
func (r Result) MeanMillis() float64 {
	return r.Estimates.Mean.PointEstimate / 1e6
}
