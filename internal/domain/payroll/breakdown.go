package payroll

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Breakdown maps component names (basic, hra, pf, tds...) to amounts. The
// backend sends it either as an object or as a list of {name, amount}.
type Breakdown map[string]float64

func (b *Breakdown) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*b = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var lines []struct {
			Name   string  `json:"name"`
			Label  string  `json:"label"`
			Amount float64 `json:"amount"`
		}
		if err := json.Unmarshal(data, &lines); err != nil {
			return err
		}
		out := make(Breakdown, len(lines))
		for _, line := range lines {
			name := line.Name
			if name == "" {
				name = line.Label
			}
			out[name] += line.Amount
		}
		*b = out
		return nil
	}
	var out map[string]float64
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*b = out
	return nil
}

func (b Breakdown) Total() float64 {
	var total float64
	for _, amount := range b {
		total += amount
	}
	return total
}

// Names returns the component names in a stable order.
func (b Breakdown) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
