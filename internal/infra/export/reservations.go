package export

import (
	"fmt"
	"io"

	"campfinder/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName  = "Reservations"
	dateLayout = "2006-01-02"
)

var headers = []string{
	"Reservation ID", "Campsite", "Guest", "Email",
	"Start", "End", "Nights", "People", "Total Price", "Status", "Created At",
}

// WriteReservations renders one row per reservation into an xlsx workbook.
func WriteReservations(w io.Writer, rows []*queries.ReservationView) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(SheetName); err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}
	_ = f.DeleteSheet("Sheet1")
	if index, err := f.GetSheetIndex(SheetName); err == nil {
		f.SetActiveSheet(index)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(SheetName, cell, h)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	_ = f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle)

	for r, v := range rows {
		values := []any{
			v.ID.String(),
			v.CampsiteName,
			v.UserName,
			v.UserEmail,
			v.StartDate.UTC().Format(dateLayout),
			v.EndDate.UTC().Format(dateLayout),
			v.Nights,
			v.NumberOfPeople,
			v.TotalPrice,
			v.Status,
			v.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		for c, val := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(SheetName, cell, val); err != nil {
				return fmt.Errorf("error writing cell %s: %w", cell, err)
			}
		}
	}

	_ = f.SetColWidth(SheetName, "A", "A", 38)
	_ = f.SetColWidth(SheetName, "B", "D", 25)
	_ = f.SetColWidth(SheetName, "E", lastCol, 14)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}
