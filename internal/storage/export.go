package storage

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// ExportVocabCSV renders the vocabulary collection as CSV with the fixed
// column order text, ipa, translation, notes, examples. Examples are
// joined with " | ". Every value is double-quoted with embedded quotes
// doubled per CSV rules.
func ExportVocabCSV(doc AppData) string {
	var b strings.Builder
	b.WriteString("text,ipa,translation,notes,examples")

	for _, v := range doc.Vocab {
		examples := strings.Join(v.Examples, " | ")
		row := []string{
			csvEscape(v.Text),
			csvEscape(v.IPA),
			csvEscape(v.Translation),
			csvEscape(v.Notes),
			csvEscape(examples),
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(row, ","))
	}
	return b.String()
}

func csvEscape(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// ExportVocabHTML renders the vocabulary collection as a standalone HTML
// document with an embedded table and minimal print-friendly styling.
func ExportVocabHTML(doc AppData) string {
	var rows strings.Builder
	for _, v := range doc.Vocab {
		escaped := make([]string, 0, len(v.Examples))
		for _, e := range v.Examples {
			escaped = append(escaped, html.EscapeString(e))
		}
		examples := strings.Join(escaped, "<br/>")

		rows.WriteString(fmt.Sprintf(`
      <tr>
        <td class="cell">%s</td>
        <td class="cell">%s</td>
        <td class="cell">%s</td>
        <td class="cell">%s</td>
        <td class="cell examples">%s</td>
      </tr>`,
			html.EscapeString(v.Text),
			html.EscapeString(v.IPA),
			html.EscapeString(v.Translation),
			html.EscapeString(v.Notes),
			examples))
	}

	return fmt.Sprintf(`<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>LangLearn Vocabulary Export</title>
  <style>
    body{font-family:Inter,system-ui,Arial,Helvetica,sans-serif;margin:20px;color:#111}
    h1{font-size:20px;margin-bottom:6px}
    p{color:#555;margin-top:0;margin-bottom:12px}
    table{width:100%%;border-collapse:collapse}
    thead th{background:#f3f4f6;padding:10px;border:1px solid #e5e7eb;text-align:left}
    .cell{padding:10px;border:1px solid #e5e7eb;vertical-align:top}
    tbody tr:nth-child(even){background:#fbfbfb}
    .examples{white-space:pre-wrap}
    @media print{ body{margin:0} thead th{background:#eee !important} }
  </style>
</head>
<body>
  <h1>Vocabulary Export</h1>
  <p>Exported from LangLearn on %s</p>
  <table>
    <thead>
      <tr>
        <th>Text</th>
        <th>IPA</th>
        <th>Translation</th>
        <th>Notes</th>
        <th>Examples</th>
      </tr>
    </thead>
    <tbody>%s
    </tbody>
  </table>
</body>
</html>`, time.Now().Format("2006-01-02 15:04"), rows.String())
}
