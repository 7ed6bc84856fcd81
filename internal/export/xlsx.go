package export

import (
	"fmt"

	"github.com/ChaseHampton/headstones/internal/record"
	excelize "github.com/xuri/excelize/v2"
)

const SheetName = "Headstones"

var columns = []string{
	"SequenceID", "PrimaryKey", "CemeteryName", "BurialSectionNumber", "Wall", "RowNumber",
	"GravesiteNumber", "MarkerType", "Emblem1", "Emblem2", "FrontImage", "BackImage",
	"FirstName", "MiddleName", "LastName", "Suffix", "BirthDate", "DeathDate", "AdditionalDecedents",
}

func row(h *record.Headstone) []interface{} {
	others := 0
	for i := range h.Others {
		if !h.Others[i].IsEmpty() {
			others++
		}
	}
	p := h.Primary
	return []interface{}{
		h.SequenceID, h.PrimaryKey, h.CemeteryName, h.BurialSectionNumber, h.WallID, h.RowNumber,
		h.GravesiteNumber, h.MarkerType, h.Emblem1, h.Emblem2, h.Image1FileName, h.Image2FileName,
		p.FirstName, p.MiddleName, p.LastName, p.Suffix, p.BirthDate, p.DeathDate, others,
	}
}

// WriteXLSX writes one sheet with a header row and a row per headstone.
func WriteXLSX(path string, headstones []*record.Headstone) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	for i, h := range headstones {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row(h)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write headstone %s: %w", h.SequenceID, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
