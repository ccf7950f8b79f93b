package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// BadgeEntries returns the localized list lines for badges, in the given order
func BadgeEntries(l *Localization, badges []int64) []string {
	entries := make([]string, 0, len(badges))
	for _, prime := range badges {
		entries = append(entries, l.Format(KeyBadgeEntry, prime))
	}
	return entries
}

// NewBadgeContent builds the badge dialog body: an empty state or one row per prime
func NewBadgeContent(l *Localization, badges []int64) fyne.CanvasObject {
	if len(badges) == 0 {
		title := widget.NewLabelWithStyle(l.GetText(KeyNoBadges), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
		hint := widget.NewLabelWithStyle(l.GetText(KeyNoBadgesHint), fyne.TextAlignCenter, fyne.TextStyle{})
		hint.Wrapping = fyne.TextWrapWord
		return container.NewVBox(title, hint)
	}

	entries := BadgeEntries(l, badges)
	detail := l.GetText(KeyBadgeEntryDetail)

	list := widget.NewList(
		func() int { return len(entries) },
		func() fyne.CanvasObject {
			primary := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
			secondary := widget.NewLabel("")
			return container.NewVBox(primary, secondary)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			box := item.(*fyne.Container)
			box.Objects[0].(*widget.Label).SetText(entries[id])
			box.Objects[1].(*widget.Label).SetText(detail)
		},
	)
	return list
}

// ShowBadgeDialog shows the discovered primes in ascending order
func ShowBadgeDialog(window fyne.Window, l *Localization, badges []int64) dialog.Dialog {
	d := dialog.NewCustom(
		l.GetText(KeyBadgeDialogTitle),
		l.GetText(KeyClose),
		NewBadgeContent(l, badges),
		window,
	)
	d.Resize(fyne.NewSize(BadgeDialogWidth, BadgeDialogHeight))
	d.Show()
	return d
}
