// Package vertretung parses the school's substitution-plan page into
// canonical schedule events. The page is scraped best-effort: when a
// recognizable table is found its rows come back structured, otherwise the
// whole page degrades to a single raw-text entry.
package vertretung

// Row is one scraped substitution entry, either structured or raw text.
type Row interface {
	row()
}

// StructuredRow is a table row keyed by its column headers, tagged with the
// date string inferred for the plan.
type StructuredRow struct {
	Fields map[string]string
	Datum  string
}

// RawTextRow carries the page text when no table structure was detected.
type RawTextRow struct {
	Text  string
	Datum string
}

func (StructuredRow) row() {}
func (RawTextRow) row()    {}
