package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"billfold/internal/invoice"
)

// DefaultScale is the oversampling factor applied to the page layout so
// the exported raster holds up at print-ish pixel density.
const DefaultScale = 3

// Page geometry in logical units; everything is multiplied by the scale
// factor when drawn.
const (
	pageWidth = 520
	margin    = 36
	rowHeight = 26
)

// Renderer draws a document as the printable paper bill.
type Renderer struct {
	// Scale is the oversampling factor; zero means DefaultScale.
	Scale int
	// Currency prefixes every amount, e.g. "$".
	Currency string
}

// Render rasterizes the bill onto a white canvas and returns the image.
func (r Renderer) Render(doc invoice.Document) (image.Image, error) {
	scale := r.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	f := float64(scale)

	rows := len(doc.Items)
	height := 298 + rowHeight*rows

	dc := gg.NewContext(pageWidth*scale, height*scale)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	fs, err := newFaceSet(f)
	if err != nil {
		return nil, err
	}

	ink := func() { dc.SetRGB(0.13, 0.13, 0.15) }
	muted := func() { dc.SetRGB(0.45, 0.45, 0.48) }
	ink()

	right := float64(pageWidth - margin)
	inner := float64(pageWidth - 2*margin)
	colQty := float64(margin) + inner*0.62
	colPrice := float64(margin) + inner*0.80

	// Header: title left, meta right.
	dc.SetFontFace(fs.title)
	dc.DrawString("INVOICE", margin*f, 68*f)
	dc.SetFontFace(fs.regular)
	dc.DrawStringAnchored("Ref: "+doc.InvoiceNumber, right*f, 50*f, 1, 0)
	dc.DrawStringAnchored("Date: "+doc.Date, right*f, 70*f, 1, 0)

	dc.SetLineWidth(f)
	dc.DrawLine(margin*f, 88*f, right*f, 88*f)
	dc.Stroke()

	// Parties.
	mid := float64(pageWidth) / 2
	dc.SetFontFace(fs.label)
	muted()
	dc.DrawString("BILL TO", margin*f, 118*f)
	dc.DrawString("PAY TO", mid*f, 118*f)
	ink()
	dc.SetFontFace(fs.bold)
	dc.DrawString(doc.BillTo, margin*f, 138*f)
	dc.DrawString(doc.Recipient, mid*f, 138*f)

	// Item table.
	dc.SetFontFace(fs.label)
	muted()
	dc.DrawString("ITEM", margin*f, 186*f)
	dc.DrawStringAnchored("QTY", colQty*f, 186*f, 1, 0)
	dc.DrawStringAnchored("PRICE", colPrice*f, 186*f, 1, 0)
	dc.DrawStringAnchored("TOTAL", right*f, 186*f, 1, 0)
	ink()
	dc.DrawLine(margin*f, 194*f, right*f, 194*f)
	dc.Stroke()

	dc.SetFontFace(fs.regular)
	y := 194
	for _, it := range doc.Items {
		y += rowHeight
		desc := it.Description
		if desc == "" {
			desc = "Item"
		}
		price := invoice.CoerceAmount(it.Price)
		dc.DrawString(desc, margin*f, float64(y-7)*f)
		dc.DrawStringAnchored(formatQuantity(it.Quantity), colQty*f, float64(y-7)*f, 1, 0)
		dc.DrawStringAnchored(r.amount(price), colPrice*f, float64(y-7)*f, 1, 0)
		dc.DrawStringAnchored(r.amount(it.Quantity*price), right*f, float64(y-7)*f, 1, 0)
	}

	yRule := y + 8
	dc.DrawLine(margin*f, float64(yRule)*f, right*f, float64(yRule)*f)
	dc.Stroke()

	dc.SetFontFace(fs.bold)
	dc.DrawStringAnchored("Total:", colPrice*f, float64(yRule+26)*f, 1, 0)
	dc.DrawStringAnchored(r.amount(doc.Total()), right*f, float64(yRule+26)*f, 1, 0)

	dc.SetFontFace(fs.regular)
	muted()
	dc.DrawStringAnchored("Thank you for your business!", mid*f, float64(yRule+66)*f, 0.5, 0)

	return dc.Image(), nil
}

// Save writes the image to dir as Filename(invoiceNumber), creating the
// directory if needed, and returns the full path.
func (r Renderer) Save(img image.Image, dir, invoiceNumber string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, Filename(invoiceNumber))
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return path, nil
}

// Filename derives the export name from the invoice number.
func Filename(invoiceNumber string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '-'
		}
		return r
	}, strings.TrimSpace(invoiceNumber))
	return "invoice-" + clean + ".png"
}

func (r Renderer) amount(v float64) string {
	return r.Currency + fmt.Sprintf("%.2f", v)
}

func formatQuantity(q float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", q), "0"), ".")
}

type faceSet struct {
	title   font.Face
	bold    font.Face
	regular font.Face
	label   font.Face
}

func newFaceSet(scale float64) (faceSet, error) {
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return faceSet{}, fmt.Errorf("parse regular font: %w", err)
	}
	bld, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return faceSet{}, fmt.Errorf("parse bold font: %w", err)
	}

	face := func(src *sfnt.Font, size float64) (font.Face, error) {
		return opentype.NewFace(src, &opentype.FaceOptions{
			Size:    size * scale,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	var fs faceSet
	if fs.title, err = face(bld, 24); err != nil {
		return faceSet{}, fmt.Errorf("build title face: %w", err)
	}
	if fs.bold, err = face(bld, 13); err != nil {
		return faceSet{}, fmt.Errorf("build bold face: %w", err)
	}
	if fs.regular, err = face(reg, 13); err != nil {
		return faceSet{}, fmt.Errorf("build regular face: %w", err)
	}
	if fs.label, err = face(reg, 11); err != nil {
		return faceSet{}, fmt.Errorf("build label face: %w", err)
	}
	return fs, nil
}
