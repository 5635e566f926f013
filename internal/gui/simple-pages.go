package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (g *Gui) introPage(p *tview.Pages) tview.Primitive {
	textView := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)

	textView.SetText(`Welcome to Local Pokedex, it looks like this is the first time you're running it.

Local Pokedex looks up Pokemon species on PokeAPI and can rewrite their descriptions through the fun translations API. This wizard will walk you through setting up your configuration.

[::b]It is strongly recommended that you maximize this terminal window to avoid text being cut-off[-:-:-:-]

If you would like to exit the wizard early, please press the [red]esc key[-:-:-:-], otherwise please press [yellow]enter[-:-:-:-] to continue

`)

	textView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter:
			p.SwitchToPage("upstream-config")
		}
		return event
	})

	frame := tview.NewFrame(textView)
	frame.AddText("[red]ESC - exit[-:-:-:-] [yellow] Enter - continue", false, tview.AlignLeft, tcell.ColorYellow)
	frame.SetBorder(true).SetTitle("Local Pokedex")
	return frame
}

func (g *Gui) confirmationPage(p *tview.Pages) tview.Primitive {
	form := tview.NewForm()

	form.AddTextView("Upstream Settings", g.upstreamSummary(), 0, 0, true, true)
	form.AddTextView("HTTP Settings", fmt.Sprintf(`Listening Address: %s
Listening Port: %d
`, g.config.HTTP.ListeningAddr, g.config.HTTP.Port), 0, 0, true, true)
	form.AddTextView("Display Mode", g.displayModeName(), 0, 0, true, true)

	form.AddButton("Save", func() {
		g.saved = true
		g.Stop()
	})
	form.AddButton("Edit", func() {
		p.SwitchToPage("upstream-config")
	})

	frame := tview.NewFrame(form)
	frame.AddText("Please review the details below, and if all is good, press enter on the save button, otherwise, press the edit button to go back to the first page (with your data saved of course)", true, tview.AlignLeft, tcell.ColorYellow)
	frame.AddText("[red]ESC - exit[-:-:-:-] [yellow] Enter - submit [orange] (Shift+)Tab - switch buttons", false, tview.AlignLeft, tcell.ColorYellow)
	frame.SetBorder(true)
	frame.SetTitle("Local Pokedex - Settings Review")

	return frame
}

func (g *Gui) dashboardPage() tview.Primitive {
	settings := tview.NewTextView().SetDynamicColors(true)
	settings.SetText(fmt.Sprintf(`[::b]HTTP[-:-:-:-]
Listening on %s:%d

[::b]Upstream[-:-:-:-]
%s`, g.config.HTTP.ListeningAddr, g.config.HTTP.Port, g.upstreamSummary()))
	settings.SetBorder(true).SetTitle("Settings")

	g.logView = tview.NewTextView().
		SetDynamicColors(false).
		SetScrollable(true).
		SetMaxLines(1000).
		SetChangedFunc(func() {
			g.app.Draw()
		})
	g.logView.SetBorder(true).SetTitle("Logs")

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(settings, 9, 0, false).
		AddItem(g.logView, 0, 1, true)

	frame := tview.NewFrame(layout)
	frame.AddText("[red]ESC - stop the server", false, tview.AlignLeft, tcell.ColorYellow)
	frame.SetBorder(true).SetTitle("Local Pokedex")
	return frame
}

func (g *Gui) upstreamSummary() string {
	return fmt.Sprintf(`PokeAPI: %s
Translations: %s
Timeout: %ds
`, g.config.Upstream.PokeAPIBaseURL, g.config.Upstream.TranslationBaseURL, g.config.Upstream.TimeoutSeconds)
}

func (g *Gui) displayModeName() string {
	if g.config.FancyScreen {
		return "fancy"
	}
	return "simple"
}
