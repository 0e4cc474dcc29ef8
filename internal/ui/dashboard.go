package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// makeDashboardScreen builds the ROOT activity dashboard: counters, the
// most-downloaded ranking, and the activity log
func (ui *RootUI) makeDashboardScreen() fyne.CanvasObject {
	l := ui.localization
	snapshot := ui.stats.Snapshot()

	heading := widget.NewLabel(l.GetText(KeyDashboard))
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter

	cards := container.NewGridWithColumns(StatCardColumns,
		statCard(l.GetText(KeyActiveUsers), snapshot.ActiveUsers),
		statCard(l.GetText(KeyTotalStudents), snapshot.TotalStudents),
		statCard(l.GetText(KeyTotalProfessors), snapshot.TotalProfessors),
		statCard(l.GetText(KeyCurrentGuests), snapshot.CurrentGuests),
	)

	ranking := container.NewVBox()
	if len(snapshot.MostDownloaded) == 0 {
		ranking.Add(widget.NewLabel(l.GetText(KeyNoDownloads)))
	}
	for i, entry := range snapshot.MostDownloaded {
		ranking.Add(widget.NewLabel(fmt.Sprintf("%d. %s%s%d", i+1, entry.Name, MiddleDotSeparator, entry.Count)))
	}
	rankingCard := widget.NewCard(l.GetText(KeyMostDownloaded), "", ranking)

	logs := container.NewVBox()
	for _, line := range snapshot.RecentLogs {
		logs.Add(widget.NewLabel(line))
	}
	logsCard := widget.NewCard(l.GetText(KeyRecentActivity), "", container.NewVScroll(logs))

	return container.NewBorder(
		container.NewVBox(heading, cards),
		nil, nil, nil,
		container.NewGridWithColumns(2, rankingCard, logsCard),
	)
}

// statCard builds a single dashboard counter card
func statCard(label string, value int) fyne.CanvasObject {
	number := widget.NewLabel(fmt.Sprintf("%d", value))
	number.TextStyle = fyne.TextStyle{Bold: true}
	number.Alignment = fyne.TextAlignCenter
	return widget.NewCard(label, "", number)
}
