package notes

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	margin       = 72.0
	bottomMargin = 36.0
	fontFamily   = "Helvetica"

	titleSize   = 24.0
	headingSize = 14.0
	bodySize    = 11.0
	bodyLine    = 14.0
)

type rgb struct{ r, g, b int }

var (
	titleColor   = rgb{0x1f, 0x77, 0xb4}
	headingColor = rgb{0x2c, 0xa0, 0x2c}
	bodyColor    = rgb{0x00, 0x00, 0x00}
	footerColor  = rgb{0x80, 0x80, 0x80}
)

// WritePDF renders the document as a Letter-size PDF.
//
// The core fonts only cover code page 1252; other characters are replaced
// by the font translator.
func (d *Document) WritePDF(w io.Writer) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, bottomMargin)
	pdf.SetTitle(d.Title(), true)
	pdf.SetCreator("studymap", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-bottomMargin + 6)
		pdf.SetFont(fontFamily, "I", 8)
		setColor(pdf, footerColor)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", titleSize)
	setColor(pdf, titleColor)
	pdf.MultiCell(0, titleSize*1.25, tr(d.Title()), "", "C", false)
	pdf.Ln(titleSize)

	pdf.SetFont(fontFamily, "B", bodySize)
	setColor(pdf, bodyColor)
	pdf.Write(bodyLine, "Generated on: ")
	pdf.SetFont(fontFamily, "", bodySize)
	pdf.Write(bodyLine, d.Generated.Format("January 02, 2006"))
	pdf.Ln(bodyLine)
	pdf.Ln(0.3 * margin)

	for _, b := range d.Blocks {
		switch b.Kind {
		case Heading:
			pdf.Ln(headingSize * 0.85)
			pdf.SetFont(fontFamily, "B", headingSize)
			setColor(pdf, headingColor)
			pdf.MultiCell(0, headingSize*1.3, tr(b.Text), "", "L", false)
			pdf.Ln(headingSize * 0.4)
		default:
			setColor(pdf, bodyColor)
			writeBody(pdf, tr, b)
			pdf.Ln(bodySize * 0.6)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// writeBody justifies plain paragraphs. Paragraphs with italic spans are
// written run by run, which fpdf can only align left.
func writeBody(pdf *fpdf.Fpdf, tr func(string) string, b Block) {
	if len(b.Runs) <= 1 && !hasItalic(b.Runs) {
		pdf.SetFont(fontFamily, "", bodySize)
		pdf.MultiCell(0, bodyLine, tr(b.Text), "", "J", false)
		return
	}
	for _, r := range b.Runs {
		style := ""
		if r.Italic {
			style = "I"
		}
		pdf.SetFont(fontFamily, style, bodySize)
		pdf.Write(bodyLine, tr(r.Text))
	}
	pdf.Ln(bodyLine)
}

func hasItalic(runs []Run) bool {
	for _, r := range runs {
		if r.Italic {
			return true
		}
	}
	return false
}

func setColor(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetTextColor(c.r, c.g, c.b)
}
