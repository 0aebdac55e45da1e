package payroll

import (
	"encoding/json"
	"testing"
)

func TestComputeTotals(t *testing.T) {
	earnings := Breakdown{"basic": 1000, "hra": 200, "bonus": 50}
	deductions := Breakdown{"pf": 100}

	gross, deducted, net := ComputeTotals(earnings, deductions)
	if gross != 1250 {
		t.Fatalf("expected gross 1250, got %v", gross)
	}
	if deducted != 100 {
		t.Fatalf("expected deductions 100, got %v", deducted)
	}
	if net != 1150 {
		t.Fatalf("expected net 1150, got %v", net)
	}
}

func TestSummarize(t *testing.T) {
	rows := []ReportRow{
		{Earnings: Breakdown{"basic": 500}, Deductions: Breakdown{"tds": 25}, NetPayable: 475},
		{Earnings: Breakdown{"basic": 800}, NetPayable: 810},
	}
	s := Summarize(rows)
	if s.Count != 2 || s.Gross != 1300 || s.Deductions != 25 || s.NetPayable != 1285 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestBreakdownUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    map[string]float64
	}{
		{name: "object", payload: `{"basic":1000,"hra":400}`, want: map[string]float64{"basic": 1000, "hra": 400}},
		{name: "list", payload: `[{"name":"pf","amount":120},{"label":"tds","amount":30},{"name":"pf","amount":5}]`, want: map[string]float64{"pf": 125, "tds": 30}},
		{name: "null", payload: `null`, want: nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var b Breakdown
			if err := json.Unmarshal([]byte(tc.payload), &b); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(b) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, b)
			}
			for k, v := range tc.want {
				if b[k] != v {
					t.Fatalf("%s: expected %v, got %v", k, v, b[k])
				}
			}
		})
	}
}

func TestBreakdownNamesSorted(t *testing.T) {
	names := Breakdown{"tds": 1, "basic": 2, "hra": 3}.Names()
	if len(names) != 3 || names[0] != "basic" || names[1] != "hra" || names[2] != "tds" {
		t.Fatalf("unexpected order %v", names)
	}
}

func TestItemsUnmarshal(t *testing.T) {
	var one Items
	if err := json.Unmarshal([]byte(`{"id":"p1","month":12,"year":2024}`), &one); err != nil {
		t.Fatalf("object: %v", err)
	}
	if len(one) != 1 || one[0].ID != "p1" {
		t.Fatalf("unexpected items %+v", one)
	}

	var many Items
	if err := json.Unmarshal([]byte(`[{"id":"p1"},{"id":"p2"}]`), &many); err != nil {
		t.Fatalf("array: %v", err)
	}
	if len(many) != 2 {
		t.Fatalf("unexpected items %+v", many)
	}
}
