package gui

import (
	"errors"
	"io"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ErrAborted is returned by Start when the wizard was closed before the
// configuration was saved.
var ErrAborted = errors.New("setup wizard aborted")

type Gui struct {
	app     *tview.Application
	config  *models.Config
	wizard  bool
	saved   bool
	logView *tview.TextView
}

// New returns the set-up wizard when wizard is true, otherwise the "fancy
// screen" dashboard that shows the running configuration and logs.
func New(config *models.Config, wizard bool) *Gui {
	app := &Gui{
		app:    tview.NewApplication(),
		config: &models.Config{},
		wizard: wizard,
	}

	if config != nil {
		app.config = config
	}

	app.app.EnableMouse(true)

	app.Init()

	return app
}

func (g *Gui) Init() {
	pages := tview.NewPages()

	if g.wizard {
		pages.AddPage("setup", g.introPage(pages), true, true)
		pages.AddPage("upstream-config", g.upstreamConfigPage(pages), true, false)
		pages.AddPage("display-config", g.displayMode(pages), true, false)
	} else {
		pages.AddPage("dashboard", g.dashboardPage(), true, true)
	}

	pages.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			g.app.Stop()
		}
		return event
	})

	g.app.SetRoot(pages, true)
}

func (g *Gui) Start() error {
	err := g.app.Run()
	if err != nil {
		return err
	}

	if g.wizard && !g.saved {
		return ErrAborted
	}

	return nil
}

func (g *Gui) Stop() {
	g.app.Stop()
}

// GetLogOutput returns a writer that appends to the dashboard's log pane.
func (g *Gui) GetLogOutput() io.Writer {
	if g.logView == nil {
		return io.Discard
	}
	return g.logView
}
