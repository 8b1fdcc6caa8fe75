package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
	"github.com/go-pdf/fpdf"
)

const (
	pageMargin   = 40.0
	lineHeight   = 14.0
	cellPadding  = 8.0
	totalsWidth  = 200.0
	footerHeight = 12.0
)

type rgb struct{ r, g, b int }

var (
	colorBrand  = rgb{37, 99, 235}
	colorText   = rgb{55, 65, 81}
	colorMuted  = rgb{107, 114, 128}
	colorBorder = rgb{225, 229, 233}
	colorHeadBg = rgb{249, 250, 251}
)

const (
	coreFamily = "Helvetica"
	utf8Family = "InvoiceSans"
)

type Renderer struct {
	seller Seller

	// TTF-шрифты; без них остаётся Helvetica с cp1252
	regularTTF []byte
	boldTTF    []byte
}

type RendererOption func(*Renderer)

// WithUTF8Font switches rendering to the given TrueType faces so that text
// outside cp1252 (Devanagari names, for example) is printed as is.
func WithUTF8Font(regular, bold []byte) RendererOption {
	return func(r *Renderer) {
		r.regularTTF = regular
		r.boldTTF = bold
	}
}

func NewRenderer(seller Seller, opts ...RendererOption) *Renderer {
	r := &Renderer{seller: seller}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render lays the order out on a single A4 page and serializes it to PDF.
// Nothing is returned unless serialization succeeds.
func (r *Renderer) Render(o entities.Order) ([]byte, error) {
	doc := Layout(o, r.seller)

	// Даты документа берутся из заказа, чтобы один и тот же заказ давал одинаковые байты
	stamp := o.CreatedAt.UTC()
	if o.CreatedAt.IsZero() {
		stamp = time.Unix(0, 0).UTC()
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)
	pdf.SetTitle("Invoice "+doc.Header.Number, true)
	pdf.SetAuthor(r.seller.Name, true)

	p := &painter{pdf: pdf, family: coreFamily, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	if len(r.regularTTF) > 0 {
		pdf.AddUTF8FontFromBytes(utf8Family, "", r.regularTTF)
		pdf.AddUTF8FontFromBytes(utf8Family, "B", r.boldTTF)
		// нечитаемый TTF не регистрируется, и SetFont ниже переводит pdf в ошибку
		p.family = utf8Family
		p.tr = func(s string) string { return s }
	}

	pdf.AddPage()
	p.header(doc.Header)
	p.parties(doc.BillTo, doc.ShipTo)
	p.table(doc.Columns, doc.Rows)
	p.totals(doc.Totals)
	p.footer(doc.Footer)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize invoice: %w", err)
	}
	return buf.Bytes(), nil
}

type painter struct {
	pdf    *fpdf.Fpdf
	family string
	tr     func(string) string
}

func (p *painter) font(style string, size float64, c rgb) {
	p.pdf.SetFont(p.family, style, size)
	p.pdf.SetTextColor(c.r, c.g, c.b)
}

func (p *painter) contentWidth() float64 {
	w, _ := p.pdf.GetPageSize()
	return w - 2*pageMargin
}

func (p *painter) header(h Header) {
	width := p.contentWidth()
	top := p.pdf.GetY()

	p.font("B", 24, colorBrand)
	p.pdf.CellFormat(width/2, 28, p.tr(h.Seller), "", 0, "LM", false, 0, "")

	p.pdf.SetXY(pageMargin+width/2, top)
	p.font("B", 20, colorText)
	p.pdf.CellFormat(width/2, 24, p.tr(h.Title), "", 2, "R", false, 0, "")
	p.font("", 10, colorText)
	p.pdf.CellFormat(width/2, lineHeight, p.tr(h.Number), "", 2, "R", false, 0, "")
	p.pdf.CellFormat(width/2, lineHeight, p.tr(h.DateStr), "", 1, "R", false, 0, "")

	y := p.pdf.GetY() + 20
	p.pdf.SetDrawColor(colorBorder.r, colorBorder.g, colorBorder.b)
	p.pdf.SetLineWidth(2)
	p.pdf.Line(pageMargin, y, pageMargin+width, y)
	p.pdf.SetLineWidth(1)
	p.pdf.SetY(y + 40)
}

func (p *painter) parties(left, right Party) {
	width := p.contentWidth()
	colWidth := width * 0.45
	top := p.pdf.GetY()

	p.party(left, pageMargin, top, colWidth)
	leftBottom := p.pdf.GetY()
	p.party(right, pageMargin+width-colWidth, top, colWidth)

	p.pdf.SetY(max(leftBottom, p.pdf.GetY()) + 30)
}

func (p *painter) party(party Party, x, y, width float64) {
	p.pdf.SetXY(x, y)
	p.font("B", 12, colorMuted)
	p.pdf.CellFormat(width, 20, p.tr(party.Title), "", 2, "L", false, 0, "")
	p.font("", 10, colorText)
	for _, line := range party.Lines {
		p.pdf.CellFormat(width, lineHeight, p.tr(line), "", 2, "L", false, 0, "")
	}
}

func (p *painter) table(columns []string, rows [][]string) {
	width := p.contentWidth()
	colWidth := width / float64(len(columns))
	rowHeight := 2*cellPadding + 10

	p.pdf.SetDrawColor(colorBorder.r, colorBorder.g, colorBorder.b)
	p.pdf.SetFillColor(colorHeadBg.r, colorHeadBg.g, colorHeadBg.b)
	p.pdf.SetY(p.pdf.GetY() + 20)

	p.font("B", 10, colorText)
	for i, col := range columns {
		ln := 0
		if i == len(columns)-1 {
			ln = 1
		}
		p.pdf.CellFormat(colWidth, rowHeight, p.tr(col), "1", ln, "LM", true, 0, "")
	}

	p.font("", 9, colorText)
	for _, row := range rows {
		for i, cell := range row {
			ln := 0
			if i == len(row)-1 {
				ln = 1
			}
			p.pdf.CellFormat(colWidth, rowHeight, p.tr(cell), "1", ln, "LM", false, 0, "")
		}
	}
}

func (p *painter) totals(rows [][2]string) {
	x := pageMargin + p.contentWidth() - totalsWidth
	p.pdf.SetY(p.pdf.GetY() + 20)

	for _, row := range rows {
		p.pdf.SetX(x)
		p.font("", 10, colorMuted)
		p.pdf.CellFormat(totalsWidth/2, lineHeight, p.tr(row[0]), "", 0, "L", false, 0, "")
		p.font("B", 10, colorText)
		p.pdf.CellFormat(totalsWidth/2, lineHeight, p.tr(row[1]), "", 1, "R", false, 0, "")
		p.pdf.Ln(4)
	}
}

func (p *painter) footer(lines []string) {
	width := p.contentWidth()
	y := p.pdf.GetY() + 40

	p.pdf.SetDrawColor(colorBorder.r, colorBorder.g, colorBorder.b)
	p.pdf.Line(pageMargin, y, pageMargin+width, y)
	p.pdf.SetY(y + 20)

	p.font("", 8, colorMuted)
	for _, line := range lines {
		p.pdf.CellFormat(width, footerHeight, p.tr(line), "", 1, "C", false, 0, "")
	}
}
