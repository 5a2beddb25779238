package payroll

import (
	"github.com/shopspring/decimal"
)

// PayslipStatus enum
type PayslipStatus string

const (
	PayslipStatusDraft PayslipStatus = "draft"
	PayslipStatusFinal PayslipStatus = "final"
	PayslipStatusPaid  PayslipStatus = "paid"
)

// PayslipComponent is one allowance or deduction line on a slip.
type PayslipComponent struct {
	Name   string          `json:"name"`
	Type   string          `json:"type"` // allowance, deduction
	Amount decimal.Decimal `json:"amount"`
}

// Payslip is a backend-computed pay statement. The console renders it as-is;
// every amount is authoritative and never recalculated here.
type Payslip struct {
	ID          string             `json:"id"`
	EmployeeID  string             `json:"employee_id"`
	Period      string             `json:"period"` // YYYY-MM
	BaseSalary  decimal.Decimal    `json:"base_salary"`
	OvertimePay decimal.Decimal    `json:"overtime_pay"`
	Deductions  decimal.Decimal    `json:"deductions"`
	NetPay      decimal.Decimal    `json:"net_pay"`
	Components  []PayslipComponent `json:"components,omitempty"`
	Status      PayslipStatus      `json:"status"`
	IssuedAt    string             `json:"issued_at,omitempty"`
}
