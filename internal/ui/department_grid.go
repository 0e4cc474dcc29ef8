package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/redsea-eng/englib/internal/model"
)

// deptLabel returns the localized display name of a department
func (ui *RootUI) deptLabel(dept model.Department) string {
	switch dept {
	case model.DepartmentElectrical:
		return ui.localization.GetText(KeyDeptElectrical)
	case model.DepartmentChemical:
		return ui.localization.GetText(KeyDeptChemical)
	case model.DepartmentCivil:
		return ui.localization.GetText(KeyDeptCivil)
	case model.DepartmentMechanical:
		return ui.localization.GetText(KeyDeptMechanical)
	case model.DepartmentBiomedical:
		return ui.localization.GetText(KeyDeptBiomedical)
	default:
		return string(dept)
	}
}

// makeHomeScreen builds the department tile grid
func (ui *RootUI) makeHomeScreen() fyne.CanvasObject {
	heading := widget.NewLabel(ui.localization.GetText(KeyChooseDepartment))
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter

	grid := container.NewGridWithColumns(DepartmentColumns)
	for _, dept := range model.Departments() {
		d := dept // capture for closure
		tile := widget.NewButton(IconGraduation+" "+ui.deptLabel(d), func() {
			if err := ui.router.SelectDepartment(d); err != nil {
				log.Printf("department selection refused: %v", err)
				return
			}
			ui.Render()
		})
		grid.Add(tile)
	}

	return container.NewVBox(heading, grid)
}
