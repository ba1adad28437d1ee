package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight per-frame CPU profiler. Sections accumulate under a dotted
// name; the frame loop resets totals once per frame and logs the top few.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Track starts timing a section and returns the stop function.
// Usage: defer profiling.Track("stream.Update")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the accumulated totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// SumWithPrefix totals every section whose name starts with prefix, so
// "meshing." covers all meshing sections at once.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, v := range totals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n most expensive sections of the current frame, e.g.
// "stream.Update:4.2ms, graphics.Render:2.1ms".
func TopN(n int) string {
	snap := Snapshot()
	type section struct {
		name string
		dur  time.Duration
	}
	list := make([]section, 0, len(snap))
	for k, v := range snap {
		list = append(list, section{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].dur > list[j].dur })
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ms := float64(list[i].dur.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms", list[i].name, ms))
	}
	return strings.Join(parts, ", ")
}
