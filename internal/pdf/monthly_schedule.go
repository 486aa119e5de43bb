package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimeters for A4 landscape.
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 10.0
	marginTop    = 10.0
	marginRight  = 10.0
	marginBottom = 14.0

	dateColWidth    = 20.0
	meetingColWidth = 26.0
	headerRowHeight = 10.0
	dataRowHeight   = 9.0
)

type colorRGB struct{ r, g, b int }

var (
	headerFill   = colorRGB{30, 64, 175}   // dark blue band behind column titles
	midweekFill  = colorRGB{219, 234, 254} // light blue
	midweekText  = colorRGB{30, 64, 175}
	weekendFill  = colorRGB{220, 252, 231} // light green
	weekendText  = colorRGB{22, 101, 52}
	gridLine     = colorRGB{160, 160, 160}
	mutedText    = colorRGB{110, 110, 110}
	headingText  = colorRGB{70, 70, 70}
	defaultBlack = colorRGB{0, 0, 0}
)

// RenderMonthlySchedule lays the projected matrix out as a paginated A4
// landscape grid: fixed date and meeting columns, one proportional column
// per responsibility, header band on every page and a footer with the page
// number and the total assignment count.
func RenderMonthlySchedule(model *MonthlySchedule) ([]byte, error) {
	doc := fpdf.New("L", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetMargins(marginLeft, marginTop, marginRight)
	doc.SetAutoPageBreak(false, marginBottom)

	r := &renderer{doc: doc, tr: tr, model: model}
	r.respColWidth = r.responsibilityColumnWidth()

	doc.SetHeaderFunc(r.drawBand)
	doc.SetFooterFunc(r.drawFooter)
	doc.AddPage()

	r.drawTableHeader()
	for i := range model.Rows {
		if r.y()+dataRowHeight > pageHeight-marginBottom {
			doc.AddPage()
			r.drawTableHeader()
		}
		r.drawRow(&model.Rows[i])
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type renderer struct {
	doc          *fpdf.Fpdf
	tr           func(string) string
	model        *MonthlySchedule
	respColWidth float64
}

func (r *renderer) y() float64 {
	return r.doc.GetY()
}

// responsibilityColumnWidth splits the width left of the two fixed columns
// evenly, so any number of responsibilities fits the page.
func (r *renderer) responsibilityColumnWidth() float64 {
	n := len(r.model.Columns)
	if n == 0 {
		return 0
	}
	usable := pageWidth - marginLeft - marginRight - dateColWidth - meetingColWidth
	return usable / float64(n)
}

func (r *renderer) setFill(c colorRGB) { r.doc.SetFillColor(c.r, c.g, c.b) }
func (r *renderer) setText(c colorRGB) { r.doc.SetTextColor(c.r, c.g, c.b) }
func (r *renderer) setDraw(c colorRGB) { r.doc.SetDrawColor(c.r, c.g, c.b) }

// drawBand renders the page header band: title, month and generation
// timestamp, flanked by a logo placeholder box.
func (r *renderer) drawBand() {
	doc := r.doc
	doc.SetY(marginTop)

	r.setDraw(colorRGB{220, 220, 220})
	doc.Rect(marginLeft, marginTop, 18, 14, "D")

	doc.SetFont("Helvetica", "B", 15)
	r.setText(headingText)
	doc.CellFormat(0, 6, r.tr("PROGRAMACIÓN DE RESPONSABILIDADES"), "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "B", 12)
	r.setText(midweekText)
	doc.CellFormat(0, 6, r.tr(strings.ToUpper(r.model.MonthName)), "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 7)
	r.setText(mutedText)
	generated := fmt.Sprintf("Generado el %s", r.model.GeneratedAt.Format("02/01/2006 15:04"))
	doc.CellFormat(0, 4, r.tr(generated), "", 1, "C", false, 0, "")

	doc.Ln(2)
	r.setText(defaultBlack)
}

// drawFooter renders the footer line on every page.
func (r *renderer) drawFooter() {
	doc := r.doc
	doc.SetY(-11)
	doc.SetFont("Helvetica", "", 7)
	r.setText(mutedText)

	third := (pageWidth - marginLeft - marginRight) / 3
	doc.CellFormat(third, 4, r.tr("Gestor de Congregación"), "", 0, "L", false, 0, "")
	doc.CellFormat(third, 4, fmt.Sprintf("Página %d", doc.PageNo()), "", 0, "C", false, 0, "")
	doc.CellFormat(third, 4, fmt.Sprintf("Total de asignaciones: %d", r.model.TotalAssignments()), "", 0, "R", false, 0, "")
	r.setText(defaultBlack)
}

// drawTableHeader renders the fixed and dynamic column titles.
func (r *renderer) drawTableHeader() {
	doc := r.doc
	y := doc.GetY()
	x := marginLeft

	r.setFill(headerFill)
	r.setDraw(gridLine)
	r.setText(colorRGB{255, 255, 255})

	doc.SetFont("Helvetica", "B", 8)
	r.headerCell(x, y, dateColWidth, []string{"FECHA"})
	x += dateColWidth
	r.headerCell(x, y, meetingColWidth, []string{"REUNIÓN"})
	x += meetingColWidth

	doc.SetFont("Helvetica", "B", 6.5)
	for _, column := range r.model.Columns {
		lines := []string{strings.ToUpper(column.Name)}
		if column.DepartmentName != "" {
			lines = append(lines, "("+column.DepartmentName+")")
		}
		r.headerCell(x, y, r.respColWidth, lines)
		x += r.respColWidth
	}

	doc.SetY(y + headerRowHeight)
	r.setText(defaultBlack)
}

// headerCell fills the cell box and centers up to two text lines inside it.
func (r *renderer) headerCell(x, y, w float64, lines []string) {
	doc := r.doc
	doc.Rect(x, y, w, headerRowHeight, "FD")

	lineHeight := 3.2
	textTop := y + (headerRowHeight-lineHeight*float64(len(lines)))/2
	for i, line := range lines {
		doc.SetXY(x, textTop+float64(i)*lineHeight)
		doc.CellFormat(w, lineHeight, r.tr(line), "", 0, "C", false, 0, "")
	}
}

// drawRow renders one meeting row: two-line date cell, colored meeting-type
// cell and one assignment cell per responsibility column.
func (r *renderer) drawRow(row *ScheduleRow) {
	doc := r.doc
	y := doc.GetY()
	x := marginLeft

	r.setDraw(gridLine)

	// Date cell: date on top, short day name below.
	r.setFill(colorRGB{255, 255, 255})
	doc.Rect(x, y, dateColWidth, dataRowHeight, "FD")
	doc.SetFont("Helvetica", "B", 8)
	doc.SetXY(x, y+1.2)
	doc.CellFormat(dateColWidth, 3.4, row.DateDisplay, "", 0, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 6.5)
	r.setText(mutedText)
	doc.SetXY(x, y+4.8)
	doc.CellFormat(dateColWidth, 3, r.tr(row.DayName), "", 0, "C", false, 0, "")
	r.setText(defaultBlack)
	x += dateColWidth

	// Meeting cell, two-tone by meeting type.
	if row.Midweek {
		r.setFill(midweekFill)
		r.setText(midweekText)
	} else {
		r.setFill(weekendFill)
		r.setText(weekendText)
	}
	doc.SetFont("Helvetica", "B", 8)
	doc.SetXY(x, y)
	doc.CellFormat(meetingColWidth, dataRowHeight, r.tr(row.MeetingDisplay), "1", 0, "CM", true, 0, "")
	r.setText(defaultBlack)
	x += meetingColWidth

	// One cell per responsibility; empty when unassigned.
	r.setFill(colorRGB{255, 255, 255})
	doc.SetFont("Helvetica", "", 7.5)
	for _, column := range r.model.Columns {
		doc.SetXY(x, y)
		doc.CellFormat(r.respColWidth, dataRowHeight, r.tr(row.Assignments[column.ResponsibilityID]), "1", 0, "CM", true, 0, "")
		x += r.respColWidth
	}

	doc.SetY(y + dataRowHeight)
}
