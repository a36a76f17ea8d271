package extract

import (
	"strconv"

	"revos/internal/domain"
)

// Tabular re-encodes a flat ElementInfo list grouped by value: properties
// whose rendered value is identical across every element are hoisted into
// Common once; the rest become name -> {elementID -> value} maps. This is a
// payload-size optimization only - the same data, not different filtering.
func Tabular(infos []domain.ElementInfo) domain.TabularResult {
	result := domain.TabularResult{
		ElementIDs: make([]int64, 0, len(infos)),
		Common:     map[string]string{},
		Varying:    map[string]map[string]string{},
	}
	if len(infos) == 0 {
		return result
	}

	// values[name][elementID] = rendered value, present[name] counts holders.
	values := map[string]map[string]string{}
	present := map[string]int{}
	for _, info := range infos {
		result.ElementIDs = append(result.ElementIDs, info.ID)
		idKey := strconv.FormatInt(info.ID, 10)

		row := map[string]string{
			"name":     info.Name,
			"category": string(info.Category),
		}
		if info.TypeName != "" {
			row["type name"] = info.TypeName
		}
		for name, v := range info.Parameters {
			row[name] = v.AsString()
		}
		for name, rendered := range row {
			if values[name] == nil {
				values[name] = map[string]string{}
			}
			values[name][idKey] = rendered
			present[name]++
		}
	}

	for name, perElement := range values {
		if present[name] == len(infos) && uniform(perElement) {
			for _, v := range perElement {
				result.Common[name] = v
				break
			}
			continue
		}
		result.Varying[name] = perElement
	}
	return result
}

func uniform(perElement map[string]string) bool {
	first := ""
	started := false
	for _, v := range perElement {
		if !started {
			first = v
			started = true
			continue
		}
		if v != first {
			return false
		}
	}
	return true
}
