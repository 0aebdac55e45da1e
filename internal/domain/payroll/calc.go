package payroll

// Summary totals a set of payroll rows.
type Summary struct {
	Count      int     `json:"count"`
	Gross      float64 `json:"gross"`
	Deductions float64 `json:"deductions"`
	NetPayable float64 `json:"netPayable"`
}

func ComputeTotals(earnings, deductions Breakdown) (gross, deducted, net float64) {
	gross = earnings.Total()
	deducted = deductions.Total()
	return gross, deducted, gross - deducted
}

// Summarize adds up report rows. Net uses the backend's netPayable, which
// may include adjustments the breakdowns do not show.
func Summarize(rows []ReportRow) Summary {
	var s Summary
	for _, row := range rows {
		gross, deducted, _ := ComputeTotals(row.Earnings, row.Deductions)
		s.Count++
		s.Gross += gross
		s.Deductions += deducted
		s.NetPayable += row.NetPayable
	}
	return s
}
