package huffman

import (
	"slices"
	"sync"
)

// parallelThreshold is the input length above which CountParallel splits the work.
const parallelThreshold = 1 << 20

// FrequencyTable maps each distinct symbol to its number of occurrences.
// Symbols are remembered in first-occurrence order; that order is what the
// tree builder uses as insertion order.
type FrequencyTable struct {
	counts map[rune]int
	order  []rune
	total  int
}

// Count tallies symbols in a single pass.
func Count(symbols []rune) *FrequencyTable {
	ft := &FrequencyTable{counts: make(map[rune]int)}
	for _, s := range symbols {
		ft.add(s, 1)
	}
	return ft
}

// CountParallel tallies symbols using up to workers goroutines. Each worker
// counts one contiguous shard; shards are merged left to right so the result
// is identical to Count.
func CountParallel(symbols []rune, workers int) *FrequencyTable {
	if workers < 2 || len(symbols) < parallelThreshold {
		return Count(symbols)
	}
	shardLen := (len(symbols) + workers - 1) / workers
	var shards []*FrequencyTable
	var wg sync.WaitGroup
	for start := 0; start < len(symbols); start += shardLen {
		end := min(start+shardLen, len(symbols))
		shard := &FrequencyTable{counts: make(map[rune]int)}
		shards = append(shards, shard)
		wg.Add(1)
		go func(part []rune) {
			defer wg.Done()
			for _, s := range part {
				shard.add(s, 1)
			}
		}(symbols[start:end])
	}
	wg.Wait()

	out := &FrequencyTable{counts: make(map[rune]int)}
	for _, shard := range shards {
		for _, s := range shard.order {
			out.add(s, shard.counts[s])
		}
	}
	return out
}

func (ft *FrequencyTable) add(s rune, n int) {
	if _, ok := ft.counts[s]; !ok {
		ft.order = append(ft.order, s)
	}
	ft.counts[s] += n
	ft.total += n
}

// Count returns the number of occurrences of s, and whether s occurred at all.
func (ft *FrequencyTable) Count(s rune) (int, bool) {
	n, ok := ft.counts[s]
	return n, ok
}

// Len is the number of distinct symbols.
func (ft *FrequencyTable) Len() int { return len(ft.order) }

// Total is the sum of all counts, i.e. the length of the input.
func (ft *FrequencyTable) Total() int { return ft.total }

// Empty reports whether the table has no symbols.
func (ft *FrequencyTable) Empty() bool { return len(ft.order) == 0 }

// Symbols returns the symbols sorted by code point.
func (ft *FrequencyTable) Symbols() []rune {
	out := slices.Clone(ft.order)
	slices.Sort(out)
	return out
}

// Map returns a copy of the counts.
func (ft *FrequencyTable) Map() map[rune]int {
	out := make(map[rune]int, len(ft.counts))
	for s, n := range ft.counts {
		out[s] = n
	}
	return out
}
