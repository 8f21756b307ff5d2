package response

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/google/uuid"
)

var refPattern = regexp.MustCompile(`#([0-9A-Fa-f][0-9A-Fa-f-]{3,35})`)

// ExtractRef returns the first "#<hex id prefix>" reference in text, upper-cased.
// References shorter than four characters are ignored; alerts print eight.
func ExtractRef(text string) string {
	m := refPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[1])
}

// MatchesRef reports whether id starts with the short reference ref.
func MatchesRef(id uuid.UUID, ref string) bool {
	return ref != "" && strings.HasPrefix(strings.ToUpper(id.String()), strings.ToUpper(ref))
}

// ResolveTargetIncident picks the incident a reply from sender most plausibly refers to:
//  1. the latest broadcast that reached sender;
//  2. an incident whose id starts with a "#ref" in rawText;
//  3. the most recently created incident.
//
// Step 3 can misattribute replies while several incidents are open. ok is false only
// when nothing matches at all.
func ResolveTargetIncident(sender, rawText string, broadcasts []models.AlertBroadcast, incidents []models.Incident) (uuid.UUID, bool) {
	if sender != "" {
		sorted := append([]models.AlertBroadcast(nil), broadcasts...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SentAt.After(sorted[j].SentAt) })
		for _, b := range sorted {
			if b.HasRecipient(sender) {
				return b.IncidentID, true
			}
		}
	}

	if ref := ExtractRef(rawText); ref != "" {
		if inc, ok := newest(incidents, func(inc models.Incident) bool {
			return MatchesRef(inc.ID, ref)
		}); ok {
			return inc.ID, true
		}
	}

	if inc, ok := newest(incidents, func(models.Incident) bool { return true }); ok {
		return inc.ID, true
	}
	return uuid.Nil, false
}

func newest(incidents []models.Incident, match func(models.Incident) bool) (models.Incident, bool) {
	var (
		best  models.Incident
		found bool
	)
	for _, inc := range incidents {
		if !match(inc) {
			continue
		}
		if !found || inc.CreatedAt.After(best.CreatedAt) {
			best = inc
			found = true
		}
	}
	return best, found
}
