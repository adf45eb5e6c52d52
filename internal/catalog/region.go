package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RegionAll is the filter sentinel meaning "no region filter".
const RegionAll = "all"

// CanonicalRegions lists Chile's sixteen administrative regions north to
// south, using the spellings the listing API publishes. The filter menu is
// always ordered by this list, never by dataset order.
//
//nolint:gochecknoglobals // Fixed reference data shared by the whole package.
var CanonicalRegions = []string{
	"Arica y Parinacota",
	"Tarapacá",
	"Antofagasta",
	"Atacama",
	"Coquimbo",
	"Valparaíso",
	"Metropolitana",
	"O'Higgins",
	"Maule",
	"Ñuble",
	"Biobío",
	"Araucanía",
	"Los Ríos",
	"Los Lagos",
	"Aysén",
	"Magallanes",
}

// regionRank maps canonical region names to their position in
// CanonicalRegions, and normalized spellings to the canonical form.
//
//nolint:gochecknoglobals // Derived lookup tables for CanonicalRegions.
var (
	regionRank      = make(map[string]int, len(CanonicalRegions))
	regionByFolded  = make(map[string]string, len(CanonicalRegions))
	foldingOverride = map[string]string{
		// Common unaccented/abbreviated spellings users type on the CLI.
		"rm":           "Metropolitana",
		"santiago":     "Metropolitana",
		"ohiggins":     "O'Higgins",
		"o higgins":    "O'Higgins",
		"la araucania": "Araucanía",
	}
)

func init() {
	for i, r := range CanonicalRegions {
		regionRank[r] = i
		regionByFolded[foldRegion(r)] = r
	}
}

// foldRegion lowercases a region name and strips diacritics so "Biobío",
// "biobio", and "BIOBIO" compare equal.
func foldRegion(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// MatchRegion resolves a user-supplied region name to its canonical
// spelling. Matching is case- and accent-insensitive and accepts a few
// common aliases. An empty string and "all" resolve to RegionAll.
func MatchRegion(name string) (string, bool) {
	folded := foldRegion(name)
	if folded == "" || folded == RegionAll {
		return RegionAll, true
	}
	if canonical, ok := regionByFolded[folded]; ok {
		return canonical, true
	}
	if canonical, ok := foldingOverride[folded]; ok {
		return canonical, true
	}
	return "", false
}

// IsCanonicalRegion reports whether region is one of the sixteen canonical
// entries, spelled exactly as the API publishes it.
func IsCanonicalRegion(region string) bool {
	_, ok := regionRank[region]
	return ok
}
