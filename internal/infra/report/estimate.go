package report

import (
	"bytes"
	"fmt"

	"github.com/Spok95/project-assistant/internal/domain/estimate"
	"github.com/xuri/excelize/v2"
)

var estimateHeader = []interface{}{
	"Material", "Unit", "Required", "On hand", "Missing", "Unit price", "Cost",
}

// EstimateXLSX выгружает расчёт нехватки в xlsx: заголовок, строка на материал и итог.
func EstimateXLSX(title string, res estimate.Result) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A2", &estimateHeader); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	row := 3
	for _, l := range res.Lines {
		excelRow := []interface{}{
			l.Name,
			string(l.Unit),
			l.Required,
			l.OnHand,
			l.Missing,
			l.UnitPrice.InexactFloat64(),
			l.Cost.InexactFloat64(),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		row++
	}

	total := []interface{}{"Total", "", "", "", "", "", res.Total.InexactFloat64()}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, cell, &total); err != nil {
		return nil, fmt.Errorf("total: %w", err)
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "G", 11)

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
