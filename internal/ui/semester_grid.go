package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/redsea-eng/englib/internal/model"
)

// makeSemesterScreen builds the semester tile grid for the selected department
func (ui *RootUI) makeSemesterScreen() fyne.CanvasObject {
	dept, _, _ := ui.router.Selection()

	heading := widget.NewLabel(ui.localization.GetText(KeyChooseSemester))
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter
	deptLine := widget.NewLabel(ui.deptLabel(dept))
	deptLine.Alignment = fyne.TextAlignCenter

	grid := container.NewGridWithColumns(SemesterColumns)
	for n := model.MinSemester; n <= model.MaxSemester; n++ {
		semester := n // capture for closure
		tile := widget.NewButton(fmt.Sprintf(ui.localization.GetText(KeySemesterFormat), semester), func() {
			if err := ui.router.SelectSemester(semester); err != nil {
				log.Printf("semester selection refused: %v", err)
				return
			}
			ui.Render()
		})
		grid.Add(tile)
	}

	return container.NewVBox(heading, deptLine, grid)
}
