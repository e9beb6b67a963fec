package fund_test

import (
	"strings"
	"testing"

	"github.com/ferdiebergado/fundlist/internal/fund"
)

func TestDecodeFunds(t *testing.T) {
	t.Parallel()

	const input = `[
		{"id": "f1", "name": "HDFC Flexi Cap Fund", "plan": "Direct", "option": "IDCW", "riskLevel": " HIGH ",
		 "nav": "10.5", "aum": "1000", "minInvestment": "100", "updatedAt": "2025-06-01T00:00:00Z"}
	]`

	funds, err := fund.DecodeFunds(strings.NewReader(input))
	if err != nil {
		t.Fatalf("fund.DecodeFunds() error = %v, want: nil", err)
	}
	if len(funds) != 1 {
		t.Fatalf("len(funds) = %d, want: 1", len(funds))
	}

	got := funds[0]
	if got.Plan != fund.PlanDirect || got.Option != fund.OptionIDCW || got.RiskLevel != "high" {
		t.Errorf("decoded enums = %q %q %q, want: %q %q %q",
			got.Plan, got.Option, got.RiskLevel, fund.PlanDirect, fund.OptionIDCW, "high")
	}
	if got.NAV.String() != "10.5" {
		t.Errorf("got.NAV = %s, want: 10.5", got.NAV)
	}
}

func TestDecodeFunds_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := fund.DecodeFunds(strings.NewReader(`{"id": "f1"}`)); err == nil {
		t.Error("fund.DecodeFunds(object) error = nil, want: error")
	}
}
