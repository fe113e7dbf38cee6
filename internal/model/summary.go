package model

// CategoryShare is one row of the expense breakdown.
type CategoryShare struct {
	Category string
	Amount   float64
	Percent  float64 // 0-100, share of total expense
}

// Summary holds the aggregate over the whole ledger.
type Summary struct {
	TotalIncome       float64
	TotalExpense      float64
	NetBalance        float64
	ExpenseByCategory []CategoryShare // amount descending
	Transactions      int
}

// MonthTotal is the income and expense volume of one calendar month.
type MonthTotal struct {
	Month   string // YYYY-MM
	Income  float64
	Expense float64
}

// Net returns income minus expense.
func (m MonthTotal) Net() float64 {
	return m.Income - m.Expense
}
