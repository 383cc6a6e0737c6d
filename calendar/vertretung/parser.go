package vertretung

import (
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"klassenbote/calendar"
)

// Parse scrapes the substitution-plan page. The first table whose header row
// contains at least one recognizable column becomes the structured row set;
// when no such table exists the visible page text is returned as a single
// raw-text row. An empty page yields no rows.
func Parse(r io.Reader, now time.Time) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	datum := findDatum(doc)
	rows := make([]Row, 0)

	doc.Find("table").EachWithBreak(func(i int, tbl *goquery.Selection) bool {
		headers := headerCells(tbl)
		if !recognizable(headers) {
			return true
		}
		tbl.Find("tr").Each(func(j int, tr *goquery.Selection) {
			if j == 0 {
				return
			}
			fields := make(map[string]string, len(headers))
			tr.Find("td").Each(func(k int, td *goquery.Selection) {
				if k >= len(headers) {
					return
				}
				key := canonicalField(headers[k])
				if key == "" {
					return
				}
				if v := strings.TrimSpace(td.Text()); v != "" {
					fields[key] = v
				}
			})
			if len(fields) > 0 {
				rows = append(rows, StructuredRow{Fields: fields, Datum: datum})
			}
		})
		return false
	})

	if len(rows) > 0 {
		return rows, nil
	}

	if text := squish(doc.Find("body").Text()); text != "" {
		rows = append(rows, RawTextRow{Text: text, Datum: datum})
	}
	return rows, nil
}

func headerCells(tbl *goquery.Selection) []string {
	headers := make([]string, 0, 8)
	tbl.Find("tr").First().Find("th, td").Each(func(i int, s *goquery.Selection) {
		headers = append(headers, strings.TrimSpace(s.Text()))
	})
	return headers
}

// recognizable requires at least one header to map to a known column, which
// separates a substitution table from layout tables.
func recognizable(headers []string) bool {
	for _, h := range headers {
		if canonicalField(h) != "" {
			return true
		}
	}
	return false
}

// findDatum looks for the plan date in the page headings: a weekday name or
// a DD.MM.YYYY pattern. The raw text is kept so Normalize can run the same
// fallback chain.
func findDatum(doc *goquery.Document) string {
	datum := ""
	doc.Find("h1, h2, h3, .mon_title, div.titel").EachWithBreak(func(i int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if _, ok := calendar.WeekdayFromName(text); ok {
			datum = text
			return false
		}
		if _, ok := calendar.FindDate(text); ok {
			datum = text
			return false
		}
		return true
	})
	return datum
}

func squish(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
