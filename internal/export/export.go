// Package export collects configuration descriptions from runtime components
// for external reporting.
//
// A component's ExportTo hook writes ordered key/value pairs into an
// Exporter; the caller then renders the collected entries in the requested
// method. Collection order is preserved.
package export

import "strings"

// Method identifies how collected entries should be rendered.
type Method int

// Supported export methods.
const (
	// MethodKeyValue renders one "key=value" line per entry.
	MethodKeyValue Method = iota

	// MethodINI renders entries grouped under their [section] headers.
	MethodINI
)

// Entry is one exported key/value pair.
type Entry struct {
	Section string
	Key     string
	Value   string
}

// Exporter accumulates exported entries in collection order.
type Exporter struct {
	section string
	entries []Entry
}

// NewExporter creates an empty exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// BeginSection sets the section for subsequent Save calls.
func (e *Exporter) BeginSection(name string) {
	e.section = name
}

// Save records one key/value pair under the current section.
func (e *Exporter) Save(key, value string) {
	e.entries = append(e.entries, Entry{
		Section: e.section,
		Key:     key,
		Value:   value,
	})
}

// Entries returns the collected entries in collection order.
func (e *Exporter) Entries() []Entry {
	return e.entries
}

// Render writes out the collected entries in the given method.
func (e *Exporter) Render(m Method) string {
	var sb strings.Builder
	switch m {
	case MethodINI:
		section := ""
		for _, entry := range e.entries {
			if entry.Section != section {
				section = entry.Section
				sb.WriteString("[" + section + "]\n")
			}
			sb.WriteString(entry.Key + " = " + entry.Value + "\n")
		}
	default:
		for _, entry := range e.entries {
			sb.WriteString(entry.Key + "=" + entry.Value + "\n")
		}
	}
	return sb.String()
}
