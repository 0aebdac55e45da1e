package core

import (
	"encoding/json"
	"testing"
)

func TestEmployeeRefUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantID   string
		wantName string
	}{
		{name: "bare id", payload: `{"employee":"e1"}`, wantID: "e1"},
		{name: "populated", payload: `{"employee":{"id":"e2","firstName":"Jane","lastName":"Doe"}}`, wantID: "e2", wantName: "Jane Doe"},
		{name: "single name field", payload: `{"employee":{"id":"e3","name":"  Raj Patel "}}`, wantID: "e3", wantName: "Raj Patel"},
		{name: "null", payload: `{"employee":null}`},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var out struct {
				Employee EmployeeRef `json:"employee"`
			}
			if err := json.Unmarshal([]byte(tc.payload), &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if out.Employee.ID != tc.wantID {
				t.Fatalf("expected id %q, got %q", tc.wantID, out.Employee.ID)
			}
			if out.Employee.DisplayName() != tc.wantName {
				t.Fatalf("expected name %q, got %q", tc.wantName, out.Employee.DisplayName())
			}
			if out.Employee.Populated() != (tc.wantName != "") {
				t.Fatalf("unexpected Populated() for %s", tc.payload)
			}
		})
	}
}

func TestEmployeeRefRejectsNumbers(t *testing.T) {
	var ref EmployeeRef
	if err := json.Unmarshal([]byte(`42`), &ref); err == nil {
		t.Fatal("expected error for numeric employee reference")
	}
}

func TestEmployeeRef(t *testing.T) {
	emp := Employee{ID: "e1", FirstName: "Jane", LastName: "Doe", EmployeeCode: "EMP-1"}
	ref := emp.Ref()
	if ref.ID != "e1" || ref.EmployeeCode != "EMP-1" || ref.DisplayName() != "Jane Doe" {
		t.Fatalf("unexpected ref %+v", ref)
	}
}
