package stages

import (
	"encoding/json"
	"strings"
)

// DetectionMethod names which branch of the fallback chain produced a result.
type DetectionMethod string

const (
	// MethodParsed: the model reply was a valid JSON array of stage ids.
	MethodParsed DetectionMethod = "parsed"
	// MethodHeuristic: the reply was not valid JSON, but known stage ids
	// appeared literally in the text.
	MethodHeuristic DetectionMethod = "heuristic"
	// MethodEmpty: nothing usable; callers degrade to an unfiltered search.
	MethodEmpty DetectionMethod = "empty"
)

// Detection is the classifier outcome. An empty stage set is a defined,
// non-fatal condition, never an error.
type Detection struct {
	Method DetectionMethod
	Stages []string
}

// ParseDetection applies the fallback chain to a raw model reply:
// strict JSON parse, then literal id scan, then empty.
func ParseDetection(raw string) Detection {
	raw = strings.TrimSpace(raw)

	if ids, ok := parseJSONStages(raw); ok {
		return Detection{Method: MethodParsed, Stages: ids}
	}
	if ids := scanKnownIDs(raw); len(ids) > 0 {
		return Detection{Method: MethodHeuristic, Stages: ids}
	}
	return Detection{Method: MethodEmpty}
}

func parseJSONStages(raw string) ([]string, bool) {
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, false
	}
	// Unknown ids are discarded: they would only ever produce an empty
	// filtered search against the fixed catalog.
	known := make([]string, 0, len(ids))
	for _, id := range ids {
		if IsKnown(id) {
			known = append(known, id)
		}
	}
	return known, true
}

func scanKnownIDs(raw string) []string {
	var found []string
	for _, def := range Catalog {
		if strings.Contains(raw, def.ID) {
			found = append(found, def.ID)
		}
	}
	return found
}
