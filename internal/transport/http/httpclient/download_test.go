package httpclient

import (
	"net/http"
	"testing"
)

func TestDownloadFilename(t *testing.T) {
	tests := []struct {
		name     string
		header   http.Header
		fallback string
		want     string
	}{
		{
			name:     "content disposition wins",
			header:   http.Header{"Content-Disposition": {`attachment; filename="Active Employees.xlsx"`}},
			fallback: "employees",
			want:     "Active Employees.xlsx",
		},
		{
			name:     "directories are stripped",
			header:   http.Header{"Content-Disposition": {`attachment; filename="../../etc/payslip.pdf"`}},
			fallback: "payslip",
			want:     "payslip.pdf",
		},
		{
			name:     "extension from content type",
			header:   http.Header{"Content-Type": {"application/pdf"}},
			fallback: "payslip-e1-12-2024",
			want:     "payslip-e1-12-2024.pdf",
		},
		{
			name:     "xlsx content type with parameters",
			header:   http.Header{"Content-Type": {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet; charset=binary"}},
			fallback: "payroll-report",
			want:     "payroll-report.xlsx",
		},
		{
			name:     "fallback already has extension",
			header:   http.Header{"Content-Type": {"text/csv"}},
			fallback: "report.csv",
			want:     "report.csv",
		},
		{
			name:     "unknown content type",
			header:   http.Header{},
			fallback: "blob",
			want:     "blob",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d := &Download{StatusCode: http.StatusOK, Header: tc.header}
			if got := d.Filename(tc.fallback); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestServerMessage(t *testing.T) {
	cases := map[string]string{
		`{"message":"Employee not found"}`:             "Employee not found",
		`{"error":"invalid token"}`:                    "invalid token",
		`{"error":{"code":"x","message":"bad input"}}`: "bad input",
		`not json`: "",
		`{}`:       "",
	}
	for body, want := range cases {
		if got := serverMessage([]byte(body)); got != want {
			t.Fatalf("serverMessage(%s) = %q, want %q", body, got, want)
		}
	}
}
