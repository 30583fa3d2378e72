// Package pdf renders summaries and history as PDF documents using gofpdf.
package pdf

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/resumer"
	"github.com/jung-kurt/gofpdf"
)

// Page geometry in millimetres on A4.
const (
	marginLeft   = 10.0
	marginTop    = 20.0
	contentWidth = 180.0
	ruleEnd      = 200.0
	footerY      = 285.0
	bottomMargin = 20.0
)

// DateLayout formats dates shown in exported documents.
const DateLayout = "2006-01-02 15:04"

type rgb struct{ r, g, b int }

var (
	colorPrimary = rgb{59, 130, 246}
	colorDark    = rgb{30, 58, 138}
	colorGray    = rgb{100, 100, 100}
	colorLight   = rgb{200, 200, 200}
	colorText    = rgb{0, 0, 0}
)

// document wraps a gofpdf document with the shared layout.
type document struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newDocument(title string, now time.Time) *document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginLeft)
	pdf.SetAutoPageBreak(true, bottomMargin)
	pdf.SetTitle(title, false)
	pdf.SetCreator("Page Resumer", false)
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.AliasNbPages("")
	pdf.SetFont("Helvetica", "", 11)

	d := &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(func() {
		d.style(9, colorGray)
		pdf.Text(marginLeft, footerY, fmt.Sprintf("Generated by Page Resumer | Page %d of {nb}", pdf.PageNo()))
	})
	pdf.AddPage()
	return d
}

func (d *document) style(size float64, c rgb) {
	d.pdf.SetFontSize(size)
	d.pdf.SetTextColor(c.r, c.g, c.b)
}

func (d *document) text(x, y float64, s string) {
	d.pdf.Text(x, y, d.tr(s))
}

// paragraph writes wrapped text at the current position.
func (d *document) paragraph(lineHeight float64, s string) {
	d.pdf.SetX(marginLeft)
	d.pdf.MultiCell(contentWidth, lineHeight, d.tr(s), "", "L", false)
}

func (d *document) rule(y, width float64, c rgb) {
	d.pdf.SetDrawColor(c.r, c.g, c.b)
	d.pdf.SetLineWidth(width)
	d.pdf.Line(marginLeft, y, ruleEnd, y)
}

func (d *document) output(w io.Writer) error {
	return d.pdf.Output(w)
}

// WriteSummary renders a single entry with its page metadata.
func WriteSummary(w io.Writer, entry *resumer.HistoryEntry, now time.Time) error {
	if entry == nil || entry.Content == "" {
		return resumer.Errorf(resumer.EINVALID, "no summary to export")
	}

	heading := "Page Resumer: Summary"
	if entry.Kind == resumer.KindQuestion {
		heading = "Page Resumer: Answer"
	}

	d := newDocument(heading, now)
	d.style(20, colorPrimary)
	d.text(marginLeft, 20, heading)

	meta := []string{
		"Page: " + titleOr(entry.Title, "Untitled Page"),
		"URL: " + entry.URL,
		"Date: " + now.Format(DateLayout),
	}
	if entry.Kind == resumer.KindQuestion {
		meta = append(meta, "Question: "+entry.Question)
	}

	d.style(12, colorDark)
	y := 30.0
	for _, line := range meta {
		d.text(marginLeft, y, line)
		y += 8
	}

	rule := y - 4
	d.rule(rule, 0.5, colorPrimary)

	d.style(11, colorText)
	d.pdf.SetY(rule + 6)
	d.paragraph(5, entry.Content)

	return d.output(w)
}

// WriteHistory renders entries in order, numbered from 1.
func WriteHistory(w io.Writer, entries []*resumer.HistoryEntry, now time.Time) error {
	if len(entries) == 0 {
		return resumer.Errorf(resumer.EINVALID, "no history to export")
	}

	d := newDocument("Page Resumer: History Export", now)
	d.style(20, colorPrimary)
	d.text(marginLeft, 20, "Page Resumer: History Export")

	d.style(12, colorDark)
	d.text(marginLeft, 30, "Exported on: "+now.Format(DateLayout))

	d.rule(40, 0.5, colorPrimary)
	d.pdf.SetY(46)

	for i, entry := range entries {
		if d.pdf.GetY() > 250 {
			d.pdf.AddPage()
		}

		d.style(14, colorPrimary)
		d.paragraph(7, resumer.EntryHeader(i, entry))

		d.style(10, colorGray)
		d.paragraph(8, "Date: "+entry.CreatedAt.Local().Format(DateLayout))

		d.style(11, colorText)
		d.paragraph(5, entry.Content)

		y := d.pdf.GetY() + 5
		d.rule(y, 0.2, colorLight)
		d.pdf.SetY(y + 10)
	}

	return d.output(w)
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9]`)

// SummaryFilename returns the default file name for an exported summary.
func SummaryFilename(entry *resumer.HistoryEntry, now time.Time) string {
	title := []rune(titleOr(entry.Title, "Untitled Page"))
	if len(title) > 30 {
		title = title[:30]
	}
	clean := unsafeChars.ReplaceAllString(strings.ToLower(string(title)), "_")
	return fmt.Sprintf("summary_%s_%s.pdf", clean, now.Format("2006-01-02"))
}

// HistoryFilename returns the default file name for an exported history.
func HistoryFilename(now time.Time) string {
	return fmt.Sprintf("page_resumer_history_%s.pdf", now.Format("2006-01-02"))
}

func titleOr(title, fallback string) string {
	if strings.TrimSpace(title) == "" {
		return fallback
	}
	return title
}
