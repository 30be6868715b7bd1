package radar

import (
	"fmt"
	"strings"
)

// TraceEntry is one recorded event from a headless radar run.
type TraceEntry struct {
	Tick     int
	View     string  // "compass", "tactical", "map", or "--" for global events
	Category string  // pulse, pool, placement, chunk
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] tactical pulse    new             id=7 angle=1.53
func (e TraceEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-8s %-9s %-16s %s",
		e.Tick, e.View, e.Category, e.Key, e.Value)
}

// TraceLog collects structured events while a scenario rig drives the views.
// It is unbounded and machine-readable; tests and the report tool filter it
// rather than scraping stdout.
type TraceLog struct {
	entries []TraceEntry
	verbose bool
}

// NewTraceLog creates a TraceLog. If verbose is true, per-tick placement
// counts and sweep positions are also recorded.
func NewTraceLog(verbose bool) *TraceLog {
	return &TraceLog{verbose: verbose}
}

// Add records a new entry.
func (l *TraceLog) Add(tick int, view, category, key, value string, numVal float64) {
	l.entries = append(l.entries, TraceEntry{
		Tick:     tick,
		View:     view,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (l *TraceLog) AddVerbose(tick int, view, category, key, value string, numVal float64) {
	if !l.verbose {
		return
	}
	l.Add(tick, view, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (l *TraceLog) Entries() []TraceEntry {
	return l.entries
}

// Filter returns entries matching the given view, category and/or key.
// Pass empty string to match any value for that field.
func (l *TraceLog) Filter(view, category, key string) []TraceEntry {
	var out []TraceEntry
	for _, e := range l.entries {
		if view != "" && e.View != view {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match view, category and key.
func (l *TraceLog) Count(view, category, key string) int {
	return len(l.Filter(view, category, key))
}

// FirstTick returns the tick of the earliest entry matching the filter, or
// -1 when none matches.
func (l *TraceLog) FirstTick(view, category, key string) int {
	for _, e := range l.entries {
		if view != "" && e.View != view {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		return e.Tick
	}
	return -1
}

// LastOf returns the most recent entry matching the filter, or false if none.
func (l *TraceLog) LastOf(view, category, key string) (TraceEntry, bool) {
	entries := l.Filter(view, category, key)
	if len(entries) == 0 {
		return TraceEntry{}, false
	}
	return entries[len(entries)-1], true
}

// Format returns the full log as a single string for t.Log output.
func (l *TraceLog) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
