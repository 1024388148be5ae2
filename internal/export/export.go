// Package export renders a final snapshot of a list for writing out when a
// session ends. Nothing here is ever read back.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/idilsaglam/tada/internal/estimate"
	"github.com/idilsaglam/tada/internal/todo"
)

// Formats accepted by Estimate; Todo takes all but pdf.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

type estimateLine struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"`
	Price    string  `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

type estimateDoc struct {
	Items []estimateLine `json:"items"`
	Total float64        `json:"total"`
}

type todoLine struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
}

// Estimate renders rows and their total in format. money formats amounts in
// the pdf output.
func Estimate(rows []estimate.Row, format string, money func(float64) string) ([]byte, error) {
	doc := estimateDoc{Items: make([]estimateLine, 0, len(rows)), Total: estimate.Total(rows)}
	for _, r := range rows {
		doc.Items = append(doc.Items, estimateLine{
			ID:       uint64(r.ID),
			Name:     r.Value.Name,
			Quantity: r.Value.Quantity,
			Price:    r.Value.Price,
			Subtotal: estimate.Subtotal(r.Value),
		})
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		return marshal(doc)
	case FormatCSV:
		recs := [][]string{{"id", "name", "quantity", "price", "subtotal"}}
		for _, it := range doc.Items {
			recs = append(recs, []string{
				strconv.FormatUint(it.ID, 10), it.Name, it.Quantity, it.Price, formatFloat(it.Subtotal),
			})
		}
		recs = append(recs, []string{"", "total", "", "", formatFloat(doc.Total)})
		return writeCSV(recs)
	case FormatPDF:
		return estimatePDF(doc, money)
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}

// Todo renders tasks in format.
func Todo(rows []todo.Row, format string) ([]byte, error) {
	lines := make([]todoLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, todoLine{ID: uint64(r.ID), Title: r.Value.Title})
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		return marshal(lines)
	case FormatCSV:
		recs := [][]string{{"id", "title"}}
		for _, l := range lines {
			recs = append(recs, []string{strconv.FormatUint(l.ID, 10), l.Title})
		}
		return writeCSV(recs)
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}

// WriteFile writes b to path.
func WriteFile(path string, b []byte) error {
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func marshal(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

func writeCSV(recs [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(recs); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}
	return buf.Bytes(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func estimatePDF(doc estimateDoc, money func(float64) string) ([]byte, error) {
	if money == nil {
		money = formatFloat
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; map UTF-8 input so accented names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Estimate")
	pdf.Ln(12)

	widths := []float64{90, 25, 35, 40}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range []string{"Item", "Qty", "Price", "Subtotal"} {
		pdf.CellFormat(widths[i], 7, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, it := range doc.Items {
		pdf.CellFormat(widths[0], 6, tr(it.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, tr(it.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, tr(it.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, tr(money(it.Subtotal)), "", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], 8, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 8, tr(money(doc.Total)), "T", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
