package mapreduce

import (
	"fmt"
	"sort"
)

// WordCount is one word and its aggregated count.
type WordCount struct {
	Word  string
	Count int
}

func toSlice(wordCounts map[string]int) []WordCount {
	ss := make([]WordCount, 0, len(wordCounts))
	for k, v := range wordCounts {
		ss = append(ss, WordCount{Word: k, Count: v})
	}
	return ss
}

// Alphabetical returns the entries ordered by ascending word (byte-wise).
func Alphabetical(wordCounts map[string]int) []WordCount {
	ss := toSlice(wordCounts)
	sort.Slice(ss, func(i, j int) bool {
		return ss[i].Word < ss[j].Word
	})
	return ss
}

// ByFrequency returns the entries ordered by descending count.
// Equal counts are ordered by ascending word so the output is reproducible.
func ByFrequency(wordCounts map[string]int) []WordCount {
	ss := toSlice(wordCounts)
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Count != ss[j].Count {
			return ss[i].Count > ss[j].Count
		}
		return ss[i].Word < ss[j].Word
	})
	return ss
}

// TopKeywords returns the top N keywords from aggregated word counts as formatted strings.
// Each string is formatted as "word:count" (e.g., "learning:1153").
func TopKeywords(wordCounts map[string]int, n int) []string {
	ss := ByFrequency(wordCounts)

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ss[i].Word, ss[i].Count)
	}

	return keywords
}
