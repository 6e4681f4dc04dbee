package analytics

import (
	"math"
	"sort"
)

// counter tallies string keys while remembering first-seen order, so that
// ranked output stays deterministic when counts tie.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// entries returns the tallies in first-seen order.
func (c *counter) entries() []CountEntry {
	out := make([]CountEntry, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, CountEntry{Key: key, Count: c.counts[key]})
	}
	return out
}

// sortedEntries returns the tallies in ascending key order.
func (c *counter) sortedEntries() []CountEntry {
	out := c.entries()
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// rankedEntries returns the tallies by count descending, ties broken by
// first-seen order.
func (c *counter) rankedEntries() []CountEntry {
	out := c.entries()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// distributions converts the tallies to first-seen-ordered distributions
// over the given total.
func (c *counter) distributions(total int) []Distribution {
	entries := c.entries()
	out := make([]Distribution, 0, len(entries))
	for _, e := range entries {
		out = append(out, Distribution{Key: e.Key, Count: e.Count, Percentage: percentage(e.Count, total)})
	}
	return out
}

// round2 rounds to 2 decimal places, halves rounded away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percentage computes part/total as a percentage, returning 0 on a zero
// denominator.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(part) / float64(total) * 100)
}
