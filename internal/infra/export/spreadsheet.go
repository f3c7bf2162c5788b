// Package export renders report artifacts: spreadsheets and photo documents.
package export

import (
	"fieldops/internal/domain/entity"
	"fieldops/internal/domain/report"
	"fieldops/internal/errors"

	"github.com/xuri/excelize/v2"
)

const (
	// SpreadsheetContentType is the media type of rendered spreadsheets.
	SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetName      = "Records"
	dateTimeLayout = "02/01/2006 15:04"
	areaNumFmt     = 4 // #,##0.00
)

var spreadsheetHeader = []any{"City", "Date", "Service", "Location", "Area (m²)"}

// SpreadsheetRenderer writes records as an xlsx workbook.
type SpreadsheetRenderer struct{}

// NewSpreadsheetRenderer creates a spreadsheet renderer.
func NewSpreadsheetRenderer() *SpreadsheetRenderer {
	return &SpreadsheetRenderer{}
}

// Render writes a header row, one row per record, a blank row and a bold
// total-area row.
func (r *SpreadsheetRenderer) Render(records []entity.ServiceRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errors.Wrap(err, "rename sheet")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "create header style")
	}

	area, err := f.NewStyle(&excelize.Style{NumFmt: areaNumFmt})
	if err != nil {
		return nil, errors.Wrap(err, "create area style")
	}

	boldArea, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: areaNumFmt})
	if err != nil {
		return nil, errors.Wrap(err, "create total style")
	}

	if err := f.SetSheetRow(sheetName, "A1", &spreadsheetHeader); err != nil {
		return nil, errors.Wrap(err, "write header")
	}
	if err := f.SetCellStyle(sheetName, "A1", "E1", bold); err != nil {
		return nil, errors.Wrap(err, "style header")
	}

	row := 2
	for _, rec := range records {
		values := []any{
			rec.LocationCity,
			rec.StartTime.Format(dateTimeLayout),
			rec.ServiceType.String(),
			rec.LocationName,
			rec.Area(),
		}

		if err := f.SetSheetRow(sheetName, cell(1, row), &values); err != nil {
			return nil, errors.Wrapf(err, "write record %s", rec.ID)
		}
		if err := f.SetCellStyle(sheetName, cell(5, row), cell(5, row), area); err != nil {
			return nil, errors.Wrap(err, "style area")
		}
		row++
	}

	// Blank separator, then the total.
	row++
	total := []any{"Total", "", "", "", report.TotalArea(records)}
	if err := f.SetSheetRow(sheetName, cell(1, row), &total); err != nil {
		return nil, errors.Wrap(err, "write total")
	}
	if err := f.SetCellStyle(sheetName, cell(1, row), cell(4, row), bold); err != nil {
		return nil, errors.Wrap(err, "style total")
	}
	if err := f.SetCellStyle(sheetName, cell(5, row), cell(5, row), boldArea); err != nil {
		return nil, errors.Wrap(err, "style total")
	}

	if err := f.SetColWidth(sheetName, "A", "A", 18); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := f.SetColWidth(sheetName, "B", "C", 18); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := f.SetColWidth(sheetName, "D", "D", 32); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := f.SetColWidth(sheetName, "E", "E", 14); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, errors.WithStack(err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}

	return buf.Bytes(), nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
