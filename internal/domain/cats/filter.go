package cats

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Query son los dos criterios que elige el usuario.
// Vacío en cualquiera de ellos = sin restricción.
type Query struct {
	Text  string
	Trait string
}

// MatchesText: substring case-insensitive en nombre, color O raza.
func MatchesText(c Cat, text string) bool {
	return matchesText(cases.Fold(), c, text)
}

// MatchesTrait: pertenencia exacta (case-sensitive) a Personality.
// Ojo: a diferencia del texto, acá NO se normaliza mayúsculas.
func MatchesTrait(c Cat, trait string) bool {
	if trait == "" {
		return true
	}
	return slices.Contains(c.Personality, trait)
}

// Filter devuelve los gatos que pasan ambos tests, en el mismo orden que items.
// Nunca devuelve nil; cero resultados es un slice vacío.
func Filter(items []Cat, q Query) []Cat {
	// cases.Caser no es seguro para uso concurrente: uno por llamada.
	fold := cases.Fold()

	out := make([]Cat, 0, len(items))
	for _, c := range items {
		if matchesText(fold, c, q.Text) && MatchesTrait(c, q.Trait) {
			out = append(out, c)
		}
	}
	return out
}

// Traits arma el universo de rasgos: cada uno una sola vez, por orden de aparición.
func Traits(items []Cat) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)

	for _, c := range items {
		for _, t := range c.Personality {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

func matchesText(fold cases.Caser, c Cat, text string) bool {
	if text == "" {
		return true
	}
	needle := fold.String(text)

	matchesName := strings.Contains(fold.String(c.Name), needle)
	matchesColor := strings.Contains(fold.String(c.Color), needle)
	matchesBreed := strings.Contains(fold.String(c.Breed), needle)

	return matchesName || matchesColor || matchesBreed
}
