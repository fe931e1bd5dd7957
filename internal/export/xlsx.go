package export

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/arcanaland/hearthlodge/internal/card"
	"github.com/arcanaland/hearthlodge/internal/threat"
)

const sheet = "Threats"

var headers = []string{"Class", "Type", "Name", "Cost", "Attack", "Health", "Damage", "Text"}

// ThreatsXLSX writes one row per threat, grouped by class and cheapest first,
// to a new workbook at path
func ThreatsXLSX(path string, target card.Minion, groups threat.Categorized) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.Wrap(err, "naming sheet")
	}

	f.SetCellValue(sheet, "A1", "Threats to")
	f.SetCellValue(sheet, "B1", target.String())

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, h)
	}

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A3", "H3", headerStyleID); err != nil {
		return err
	}

	row := 3
	for _, group := range groups {
		for _, c := range group.Cards {
			row++
			info := c.Info()
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), string(group.Class))
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), string(c.Kind()))
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), info.Name)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), info.Cost)
			switch v := c.(type) {
			case card.Minion:
				f.SetCellValue(sheet, fmt.Sprintf("E%d", row), v.Attack)
				f.SetCellValue(sheet, fmt.Sprintf("F%d", row), v.Health)
			case card.Weapon:
				f.SetCellValue(sheet, fmt.Sprintf("E%d", row), v.Power)
				f.SetCellValue(sheet, fmt.Sprintf("F%d", row), v.Durability)
			case card.Spell:
				f.SetCellValue(sheet, fmt.Sprintf("G%d", row), v.Damage)
			}
			if info.Text != "" {
				f.SetCellValue(sheet, fmt.Sprintf("H%d", row), info.Text)
			}
		}
	}

	if err := f.SetColWidth(sheet, "C", "C", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "H", "H", 60); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
