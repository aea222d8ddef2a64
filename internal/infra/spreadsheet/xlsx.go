package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"art-collector/internal/domain/works"

	"github.com/xuri/excelize/v2"
)

const SheetName = "sheet1"

var Header = []any{
	"id", "title", "artist", "medium",
	"year_started", "year_finished",
	"size_x", "size_y", "size_z", "size_unit",
	"owners", "holders", "acquisition_date",
	"archival", "for_sale", "price", "currency",
	"description", "catalogue", "images", "created_at",
}

// XLSXWriter writes a collection as a single-sheet workbook.
type XLSXWriter struct{}

func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

func (XLSXWriter) WritePieces(path string, pieces []works.ArtPiece) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, p := range pieces {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := Row(p)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// Row flattens a piece into the column order of Header.
func Row(p works.ArtPiece) []any {
	return []any{
		p.ID, p.Title, p.Artist, p.Medium,
		intCell(p.Year.Started), intCell(p.Year.Finished),
		floatCell(p.Size.X), floatCell(p.Size.Y), floatCell(p.Size.Z), p.Size.Unit,
		parties(p.Owners), parties(p.Holders), dateCell(p.AcquisitionDate),
		p.Archival, p.ForSale, floatCell(p.Price.Amount), p.Price.Currency,
		p.Description, p.Catalogue, strings.Join(imageURLs(p), "; "), p.CreatedAt.Format(time.RFC3339),
	}
}

func intCell(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}

func floatCell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func dateCell(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func parties(list []works.Party) string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		fields := make([]string, 0, 3)
		for _, v := range []string{p.Name, p.ContactInfo, p.Status} {
			if v != "" {
				fields = append(fields, v)
			}
		}
		out = append(out, strings.Join(fields, ", "))
	}
	return strings.Join(out, "; ")
}

func imageURLs(p works.ArtPiece) []string {
	out := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		out = append(out, img.URL)
	}
	return out
}

// FileName is the download name of an export made at now.
func FileName(username string, now time.Time) string {
	return username + "-artCollection(" + strconv.Itoa(int(now.Month())) + "." + strconv.Itoa(now.Year()) + ").xlsx"
}
