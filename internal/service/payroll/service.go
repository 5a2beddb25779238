// Package payroll surfaces the caller's pay statements. Every amount on a
// slip is backend-computed and rendered as-is.
package payroll

import (
	"context"

	"github.com/codewithgaurave/hrms-console-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Backend is the slice of the HR API this service reads from.
type Backend interface {
	MyPayslips(ctx context.Context, year int) ([]payroll.Payslip, error)
	Payslip(ctx context.Context, id string) (payroll.Payslip, error)
}

type Service struct {
	api Backend
}

func NewService(api Backend) *Service {
	return &Service{api: api}
}

// YearResponse is one year of slips with the year's running totals summed
// from the backend figures.
type YearResponse struct {
	Year          int               `json:"year,omitempty"`
	Slips         []payroll.Payslip `json:"slips"`
	TotalNetPay   decimal.Decimal   `json:"total_net_pay"`
	TotalOvertime decimal.Decimal   `json:"total_overtime_pay"`
}

// MySlips returns the caller's pay statements for a year (all years when
// year is zero), with the year totals reduced from the per-slip amounts.
func (s *Service) MySlips(ctx context.Context, year int) (YearResponse, error) {
	slips, err := s.api.MyPayslips(ctx, year)
	if err != nil {
		return YearResponse{}, err
	}

	resp := YearResponse{Year: year, Slips: slips}
	for _, slip := range slips {
		resp.TotalNetPay = resp.TotalNetPay.Add(slip.NetPay)
		resp.TotalOvertime = resp.TotalOvertime.Add(slip.OvertimePay)
	}
	return resp, nil
}

// Slip returns one pay statement by id.
func (s *Service) Slip(ctx context.Context, id string) (payroll.Payslip, error) {
	return s.api.Payslip(ctx, id)
}
