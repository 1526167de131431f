package constants

import "strings"

// Jurisdiction codes are "GS-<subdivision tag>-<gp census code>". The two
// subdivision tags are fixed for the pilot district (Bhopal): Phanda and
// Berasia.
const (
	SubdivisionTagPhanda  = "PHN"
	SubdivisionTagBerasia = "BRS"

	GPCodePrefixPhanda  = "GS-" + SubdivisionTagPhanda + "-"
	GPCodePrefixBerasia = "GS-" + SubdivisionTagBerasia + "-"
)

// Gram-panchayat census codes per subdivision, keyed by upper-cased GP name.
var phandaGPCodes = map[string]string{
	"MENDORI":        "236194",
	"ARWALIYA":       "236101",
	"BARKHEDA":       "236112",
	"BILKHIRIYA":     "236118",
	"CHANDANPUR":     "236125",
	"DOBRA":          "236133",
	"GOL":            "236140",
	"ISLAMNAGAR":     "236147",
	"KHAJURI":        "236155",
	"KOLUA":          "236162",
	"MUGALIYACHAP":   "236170",
	"PHANDA KALAN":   "236177",
	"RATIBAD":        "236183",
	"SEMRI BAZYAFT":  "236188",
	"SUKHI SEWANIYA": "236199",
}

var berasiaGPCodes = map[string]string{
	"AMARPUR":        "134201",
	"BAGSI":          "134208",
	"BARKHEDI":       "134215",
	"DHAMARRA":       "134222",
	"GHATWAI":        "134229",
	"GUNGA":          "134236",
	"IMALIYA":        "134243",
	"JAMUSAR":        "134252",
	"KALARA":         "134259",
	"KHEJRA BARAMAD": "134266",
	"LAMBAKHEDA":     "134273",
	"NAZIRABAD":      "134280",
	"PARWALIYA":      "134287",
	"RUNAHA":         "134294",
	"TARAWALI":       "134299",
}

// SubdivisionTagForTehsil maps a declared tehsil name to the hardcoded
// subdivision tag; empty when the tehsil is not covered.
func SubdivisionTagForTehsil(tehsil string) string {
	switch strings.ToUpper(strings.TrimSpace(tehsil)) {
	case "PHANDA", "HUZUR":
		return SubdivisionTagPhanda
	case "BERASIA":
		return SubdivisionTagBerasia
	default:
		return ""
	}
}

// LookupGPCode resolves a gram-panchayat name (case-insensitive exact match)
// within a subdivision tag. Returns "" when the name is not in the table.
func LookupGPCode(tag, gramPanchayat string) string {
	name := strings.ToUpper(strings.TrimSpace(gramPanchayat))
	switch tag {
	case SubdivisionTagPhanda:
		return phandaGPCodes[name]
	case SubdivisionTagBerasia:
		return berasiaGPCodes[name]
	default:
		return ""
	}
}

// GPCodePrefixForTag returns the full jurisdiction-code prefix of a
// subdivision tag ("GS-PHN-" etc.), "" for an unknown tag.
func GPCodePrefixForTag(tag string) string {
	switch tag {
	case SubdivisionTagPhanda:
		return GPCodePrefixPhanda
	case SubdivisionTagBerasia:
		return GPCodePrefixBerasia
	default:
		return ""
	}
}
