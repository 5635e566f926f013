package gui

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (g *Gui) upstreamConfigPage(p *tview.Pages) tview.Primitive {
	form := tview.NewForm()

	fieldNames := []string{"PokeAPI URL", "Translations URL", "Timeout (seconds)"}
	values := []string{
		g.config.Upstream.PokeAPIBaseURL,
		g.config.Upstream.TranslationBaseURL,
		strconv.Itoa(g.config.Upstream.TimeoutSeconds),
	}

	form.AddInputField(fieldNames[0], values[0], 50, nil, func(text string) {
		values[0] = text
	})
	form.AddInputField(fieldNames[1], values[1], 50, nil, func(text string) {
		values[1] = text
	})
	form.AddInputField(fieldNames[2], values[2], 5, func(textToCheck string, lastChar rune) bool {
		if !unicode.IsDigit(lastChar) {
			return false
		}

		num, _ := strconv.Atoi(textToCheck)

		return num > 0 && num <= 300
	}, func(text string) {
		values[2] = text
	})

	frame := tview.NewFrame(form)
	frame.SetBorder(true)
	frame.SetTitle("Local Pokedex - Configuring Upstream APIs")

	defaultFrameDraw := func() {
		frame.Clear()
		frame.AddText("Please fill out the form below, the defaults point at the public PokeAPI and fun translations services", true, tview.AlignLeft, tcell.ColorYellow)
		frame.AddText("[red]ESC - exit[-:-:-:-] [yellow] Enter - next input/submit [orange] (Shift+)Tab - switch inputs", false, tview.AlignLeft, tcell.ColorYellow)
	}
	defaultFrameDraw()

	form.AddButton("Submit", func() {
		defaultFrameDraw()
		errors := []string{}

		for i, fieldName := range fieldNames {
			if values[i] == "" {
				errors = append(errors, fmt.Sprintf("%s: is required", fieldName))
			}
		}

		for i := range 2 {
			if values[i] == "" {
				continue
			}
			if err := checkBaseURL(values[i]); err != nil {
				errors = append(errors, fmt.Sprintf("%s: %s", fieldNames[i], err.Error()))
			}
		}

		timeout, err := strconv.Atoi(values[2])
		if values[2] != "" && (err != nil || timeout < 1 || timeout > 300) {
			errors = append(errors, "Timeout: input is out of range (1 - 300)")
		}

		if len(errors) > 0 {
			frame.AddText("Errors: ", true, tview.AlignLeft, tcell.ColorYellow)
			for _, v := range errors {
				frame.AddText(v, true, tview.AlignLeft, tcell.ColorRed)
			}
			return
		}

		g.config.Upstream = models.UpstreamConfig{
			PokeAPIBaseURL:     strings.TrimRight(values[0], "/"),
			TranslationBaseURL: strings.TrimRight(values[1], "/"),
			TimeoutSeconds:     timeout,
		}

		p.AddPage("http-config", g.httpConfigPage(p), true, false)
		p.SwitchToPage("http-config")
	})

	return frame
}

// checkBaseURL makes sure raw is an absolute http(s) URL whose host answers.
// Any HTTP status counts as reachable.
func checkBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("must be an absolute http(s) URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u.String(), http.NoBody)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("unreachable: %w", err)
	}
	resp.Body.Close()

	return nil
}

func (g *Gui) httpConfigPage(p *tview.Pages) tview.Primitive {
	form := tview.NewForm()
	frame := tview.NewFrame(form)

	chosenAddr := "0.0.0.0"
	chosenPort := "8080"

	if g.config.HTTP.ListeningAddr != "" {
		chosenAddr = g.config.HTTP.ListeningAddr
	}

	if g.config.HTTP.Port != 0 {
		chosenPort = fmt.Sprintf("%d", g.config.HTTP.Port)
	}

	defaultFrameDraw := func() {
		frame.Clear()
		frame.AddText("Please fill out the form below, with the address and port Local Pokedex should listen on", true, tview.AlignLeft, tcell.ColorYellow)
		frame.AddText("[red]ESC - exit[-:-:-:-] [yellow] Enter - next input/submit [orange] (Shift+)Tab - switch inputs", false, tview.AlignLeft, tcell.ColorYellow)
		if chosenAddr == "127.0.0.1" || chosenAddr == "localhost" || chosenAddr == "::1" {
			frame.AddText(fmt.Sprintf("Using %s (localhost) means only this machine can reach Local Pokedex", chosenAddr), true, tview.AlignLeft, tcell.ColorRed)
		}
	}

	defaultFrameDraw()
	availableAddresses := []string{"0.0.0.0"}

	ipHelpText := `
When selecting the listening address, 0.0.0.0 will have Local Pokedex listen on all IP addresses bound to your computer.
For most users, that is perfectly fine.

You may bind to a specific IP address by choosing it from the dropdown list.
Do keep in mind, that if the IP assignment changes, you will need to update the configuration file.
`

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		ipHelpText = fmt.Sprintf(`Due to an error, the application couldn't list the IPs assigned to your machine, as such it will fallback to using 0.0.0.0 (listening on all interfaces)
Error info: %s
`, err.Error())
	} else {
		for _, address := range addrs {
			if strings.HasPrefix(address.String(), "fe80") {
				continue
			}
			availableAddresses = append(availableAddresses, strings.Split(address.String(), "/")[0])
		}
	}

	index := slices.Index(availableAddresses, chosenAddr)
	if index == -1 {
		index = 0
	}

	form.AddTextView("IP Info", ipHelpText, 0, 0, true, true)
	form.AddDropDown("Listening Address", availableAddresses, index, func(option string, optionIndex int) {
		chosenAddr = availableAddresses[optionIndex]
		defaultFrameDraw()
	})
	form.AddTextView("Port Info", `When choosing the port, keep in mind the following:
1. the port must be between 1 and 65535
2. on certain platforms (such as Linux), ports 1-1023 are "privileged ports", meaning you need to be running the server as root [::b](STRONGLY NOT RECOMMENDED)[-:-:-:-] to bind to them.
The default port (8080) should be good for most users, if it's in use, try incrementing it.`, 0, 0, true, true)
	form.AddInputField("Port", chosenPort, 20, func(textToCheck string, lastChar rune) bool {
		if !unicode.IsDigit(lastChar) {
			return false
		}

		// Make sure the port is between 1 and 65535
		num, _ := strconv.Atoi(textToCheck)

		return num > 0 && num <= 65535
	}, func(text string) {
		chosenPort = text
	})

	form.AddButton("Submit", func() {
		defaultFrameDraw()
		if chosenPort == "" {
			frame.AddText("Errors: ", true, tview.AlignLeft, tcell.ColorYellow)
			frame.AddText("Port: Please enter a valid port number", true, tview.AlignLeft, tcell.ColorRed)
			return
		}

		addr := net.JoinHostPort(chosenAddr, chosenPort)
		l, err := net.Listen("tcp", addr)
		if err != nil {
			frame.AddText("Errors: ", true, tview.AlignLeft, tcell.ColorYellow)
			frame.AddText(err.Error(), true, tview.AlignLeft, tcell.ColorRed)
			return
		}
		l.Close()

		port, _ := strconv.Atoi(chosenPort)

		g.config.HTTP = models.HTTPConfig{
			ListeningAddr: chosenAddr,
			Port:          port,
		}

		p.SwitchToPage("display-config")
	})

	frame.SetBorder(true)
	frame.SetTitle("Local Pokedex - Configuring HTTP")

	return frame
}
