package mapreduce

import "github.com/dtnitsch/html-wordfreq/pkg/analytics"

// Map generates a word frequency map for a single document on disk.
// The returned map is never nil, even when err is set.
func Map(path string, a *analytics.Analytics) (map[string]int, error) {
	return a.TokenizeFile(path)
}

// Merge folds counts into consolidated, adding to existing entries.
func Merge(consolidated, counts map[string]int) {
	for word, count := range counts {
		consolidated[word] += count
	}
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		Merge(finalResults, counts)
	}

	return finalResults
}

// Total returns the sum of all counts.
func Total(counts map[string]int) int {
	total := 0
	for _, count := range counts {
		total += count
	}
	return total
}
