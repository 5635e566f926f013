package pokedex

import (
	"strings"

	"github.com/FlagBrew/local-pokedex/internal/models"
)

const caveHabitat = "cave"

// SelectStyle picks the translation voice for a record: legendary and cave
// dwelling Pokemon speak like Yoda, everyone else like Shakespeare.
func SelectStyle(mon models.Pokemon) models.Style {
	if mon.IsLegendary || strings.EqualFold(mon.HabitatName(), caveHabitat) {
		return models.StyleYoda
	}
	return models.StyleShakespeare
}
