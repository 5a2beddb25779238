package hrapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/codewithgaurave/hrms-console-go/internal/domain/payroll"
)

// MyPayslips fetches the caller's pay statements, newest first.
func (c *Client) MyPayslips(ctx context.Context, year int) ([]payroll.Payslip, error) {
	q := url.Values{}
	if year != 0 {
		q.Set("year", strconv.Itoa(year))
	}
	var slips []payroll.Payslip
	_, err := c.do(ctx, http.MethodGet, "/payroll/my-slips", q, nil, &slips)
	return slips, err
}

// Payslip fetches a single pay statement by id.
func (c *Client) Payslip(ctx context.Context, id string) (payroll.Payslip, error) {
	var slip payroll.Payslip
	_, err := c.do(ctx, http.MethodGet, "/payroll/slips/"+url.PathEscape(id), nil, nil, &slip)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusNotFound {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, err
	}
	return slip, nil
}
