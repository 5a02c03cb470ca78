package tracking

// GenerationStats summarizes the fitness of one scored generation
type GenerationStats struct {
	Iteration int
	Best      float64
	Worst     float64
	Average   float64
	Count     int
}

// Collector accumulates fitness values for the generation in progress
// and keeps the finalized history of previous generations
type Collector struct {
	sum     float64
	best    float64
	worst   float64
	count   int
	history []GenerationStats
}

// NewCollector creates a collector with room for capacity generations
func NewCollector(capacity int) *Collector {
	return &Collector{
		history: make([]GenerationStats, 0, max(capacity, 0)),
	}
}

// Collect records one individual's fitness
func (c *Collector) Collect(fitness float64) {
	if c.count == 0 || fitness > c.best {
		c.best = fitness
	}
	if c.count == 0 || fitness < c.worst {
		c.worst = fitness
	}
	c.sum += fitness
	c.count++
}

// Finalize closes the current generation, appends it to the history and returns it
func (c *Collector) Finalize(iteration int) GenerationStats {
	stats := GenerationStats{
		Iteration: iteration,
		Best:      c.best,
		Worst:     c.worst,
		Count:     c.count,
	}
	if c.count > 0 {
		stats.Average = c.sum / float64(c.count)
	}
	c.history = append(c.history, stats)

	c.sum, c.best, c.worst, c.count = 0, 0, 0, 0
	return stats
}

// History returns a copy of all finalized generations in order
func (c *Collector) History() []GenerationStats {
	out := make([]GenerationStats, len(c.history))
	copy(out, c.history)
	return out
}

// Reset clears accumulated state and history for reuse
func (c *Collector) Reset() {
	c.sum, c.best, c.worst, c.count = 0, 0, 0, 0
	c.history = c.history[:0]
}
