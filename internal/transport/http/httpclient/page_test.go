package httpclient

import "testing"

func TestPageHasNext(t *testing.T) {
	tests := []struct {
		name string
		page Page[int]
		want bool
	}{
		{name: "total pages ahead", page: Page[int]{Page: 1, TotalPages: 3}, want: true},
		{name: "last page", page: Page[int]{Page: 3, TotalPages: 3}, want: false},
		{name: "derived from total", page: Page[int]{Page: 1, Limit: 10, Total: 11}, want: true},
		{name: "derived exact fit", page: Page[int]{Page: 2, Limit: 10, Total: 20}, want: false},
		{name: "unknown", page: Page[int]{}, want: false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.page.HasNext(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestPageOptionsApply(t *testing.T) {
	var q Query
	PageOptions{Page: 2}.Apply(&q)
	if q.String() != "?page=2" {
		t.Fatalf("unexpected query %q", q.String())
	}
}
