// Package response interprets community replies to alert broadcasts.
package response

import (
	"strings"
	"unicode"

	"github.com/PreciousMuemi/forest-link/internal/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var keywords = map[string]models.ResponseKind{
	"SAFE":       models.ResponseSafe,
	"NEED HELP":  models.ResponseNeedHelp,
	"NEED_HELP":  models.ResponseNeedHelp,
	"HELP":       models.ResponseNeedHelp,
	"EVACUATING": models.ResponseEvacuating,
	"EVACUATION": models.ResponseEvacuating,
}

// Classification is the parsed intent of a reply. Note carries the incident reference
// for "#REF STATUS" replies and the raw text for unrecognised ones.
type Classification struct {
	Kind models.ResponseKind `json:"kind"`
	Note string              `json:"note,omitempty"`
}

// Classify maps a raw SMS/USSD body to a response kind.
func Classify(raw string) Classification {
	text := normalize(raw)

	if kind, ok := keywords[text]; ok {
		return Classification{Kind: kind}
	}

	if strings.HasPrefix(text, "#") {
		fields := strings.Fields(text)
		ref := strings.TrimPrefix(fields[0], "#")
		if ref != "" && len(fields) > 1 {
			if kind, ok := keywords[strings.Join(fields[1:], " ")]; ok {
				return Classification{Kind: kind, Note: ref}
			}
		}
	}

	return Classification{Kind: models.ResponseOther, Note: raw}
}

// normalize folds compatibility forms (full-width letters from some handsets), strips
// diacritics, collapses whitespace and upper-cases.
func normalize(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(strings.Join(strings.Fields(out), " "))
}
