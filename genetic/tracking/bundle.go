package tracking

// MetricBundle is a generic container for named metrics
// Keys are evaluator names, values are raw measurements
type MetricBundle map[string]float64

// Get returns metric value or default if not present
func (b MetricBundle) Get(key string, defaultVal float64) float64 {
	if v, ok := b[key]; ok {
		return v
	}
	return defaultVal
}
