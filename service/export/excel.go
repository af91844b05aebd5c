package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"

	entity "ativos.GO/model/entity"
	"ativos.GO/service/inventory"
)

// Writer produces .xlsx exports under the configured export directory.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

var assetHeader = []string{
	"Code", "Name", "Serial", "Category", "State", "Location",
	"Custodian", "Acquired", "Warranty until", "Value", "Supplier",
}

// WriteAssets writes the asset list to a timestamped workbook and
// returns its path. categoryNames maps category id to display name.
func (w *Writer) WriteAssets(assets []entity.Asset, categoryNames map[uint]string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Assets"
	f.SetSheetName("Sheet1", sheet)

	styleID, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2C3E50"}, Pattern: 1},
	})
	for i, h := range assetHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A1", "K1", styleID)

	for i, a := range assets {
		row := i + 2
		category := ""
		if a.CategoryID != nil {
			category = categoryNames[*a.CategoryID]
		}
		values := []interface{}{
			a.Code, a.Name, a.Serial, category, a.State, a.Location, a.Custodian,
			dateOrEmpty(a.AcquiredAt), dateOrEmpty(a.WarrantyUntil),
			floatOrEmpty(a.AcquisitionValue), strOrEmpty(a.Supplier),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}
	f.SetColWidth(sheet, "A", "K", 18)

	return w.save(f, fmt.Sprintf("assets_%s.xlsx", time.Now().Format("20060102_150405")))
}

// WriteInventoryReport writes the reconciliation result: one sheet with
// every item and its outcome, plus a summary sheet with the totals.
func (w *Writer) WriteInventoryReport(rep *inventory.Report) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Items"
	f.SetSheetName("Sheet1", sheet)

	headStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2C3E50"}, Pattern: 1},
	})
	header := []string{"Code", "Name", "Category", "Location", "Custodian", "Status", "Verified by", "Verified at", "Note"}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A1", "I1", headStyle)

	row := 2
	writeRows := func(rows []inventory.ReportRow, label string) {
		for _, r := range rows {
			confirmed := ""
			if r.ConfirmedAt != nil {
				confirmed = r.ConfirmedAt.Format("2006-01-02 15:04")
			}
			values := []interface{}{
				r.Code, r.Name, r.Category, r.Location, r.Custodian,
				label, r.ConfirmedBy, confirmed, r.Note,
			}
			for j, v := range values {
				cell, _ := excelize.CoordinatesToCellName(j+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}
	}
	writeRows(rep.Confirmed, "confirmed")
	writeRows(rep.NotFound, "not found")
	writeRows(rep.Pending, "pending")
	f.SetColWidth(sheet, "A", "I", 18)

	summary := "Summary"
	f.NewSheet(summary)
	inv := rep.Inventory
	lines := [][2]interface{}{
		{"Inventory", inv.Title},
		{"Status", inv.Status},
		{"Started at", inv.StartedAt.Format("2006-01-02 15:04")},
		{"Started by", inv.StartedBy},
		{"Total assets", inv.TotalAssets},
		{"Confirmed", fmt.Sprintf("%d (%.1f%%)", inv.TotalConfirmed, pct(inv.TotalConfirmed, inv.TotalAssets))},
		{"Not found", fmt.Sprintf("%d (%.1f%%)", inv.TotalNotFound, pct(inv.TotalNotFound, inv.TotalAssets))},
		{"Pending", inv.TotalAssets - inv.TotalConfirmed - inv.TotalNotFound},
	}
	if inv.CompletedAt != nil {
		lines = append(lines, [2]interface{}{"Completed at", inv.CompletedAt.Format("2006-01-02 15:04")})
	}
	for i, l := range lines {
		f.SetCellValue(summary, fmt.Sprintf("A%d", i+1), l[0])
		f.SetCellValue(summary, fmt.Sprintf("B%d", i+1), l[1])
	}
	f.SetColWidth(summary, "A", "B", 24)

	name := fmt.Sprintf("inventory_%d_%s.xlsx", inv.ID, time.Now().Format("20060102_150405"))
	return w.save(f, name)
}

func (w *Writer) save(f *excelize.File, name string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(w.dir, name)
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}

func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}

func dateOrEmpty(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return time.Time(*d).Format("2006-01-02")
}

func floatOrEmpty(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
