// Package notes turns model-written study notes into a paginated PDF and
// into sanitised HTML.
//
// Parse classifies each non-blank line as a heading or body text:
//
//	doc := notes.Parse("Thermodynamics", text, time.Now())
//	path, err := doc.Save("./notes") // Thermodynamics_JEE_notes_20250307.pdf
//
// The PDF is Letter size with a centred blue title, a "Generated on" line,
// green headings and justified body text. RenderHTML is used by the HTTP
// API to return the same notes as HTML.
package notes
