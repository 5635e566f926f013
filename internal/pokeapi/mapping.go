package pokeapi

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/FlagBrew/local-pokedex/internal/models"
)

const descriptionLanguage = "en"

var flavorTextReplacer = strings.NewReplacer("\n", " ", "\f", " ")

// mapSpecies converts a species document into a record. Fields with an
// unexpected type are left at their zero value.
func mapSpecies(doc map[string]any) models.Pokemon {
	var mon models.Pokemon

	if n, ok := doc["id"].(json.Number); ok {
		if id, ok := integral(n); ok {
			mon.ID = &id
		}
	}

	if name, ok := doc["name"].(string); ok {
		mon.Name = name
	}

	if legendary, ok := doc["is_legendary"].(bool); ok {
		mon.IsLegendary = legendary
	}

	if habitat, ok := doc["habitat"].(map[string]any); ok {
		if name, ok := habitat["name"].(string); ok {
			mon.Habitat = &name
		}
	}

	mon.Description = englishFlavorText(doc["flavor_text_entries"])

	return mon
}

// integral accepts whole numbers written either as integers or as floats
// such as 150.0.
func integral(n json.Number) (int64, bool) {
	if id, err := n.Int64(); err == nil {
		return id, true
	}

	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// englishFlavorText returns the first English flavor text entry, with line
// and form feeds turned into spaces. Anything else yields "".
func englishFlavorText(v any) string {
	entries, ok := v.([]any)
	if !ok {
		return ""
	}

	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}

		language, ok := entry["language"].(map[string]any)
		if !ok {
			continue
		}

		if lang, ok := language["name"].(string); !ok || !strings.EqualFold(lang, descriptionLanguage) {
			continue
		}

		text, ok := entry["flavor_text"].(string)
		if !ok {
			continue
		}

		return flavorTextReplacer.Replace(text)
	}

	return ""
}
