package fund_test

import (
	"time"

	"github.com/ferdiebergado/fundlist/internal/fund"
	"github.com/shopspring/decimal"
)

func ptr[T any](v T) *T {
	return &v
}

func ids(funds []fund.Fund) []string {
	out := make([]string, 0, len(funds))
	for _, f := range funds {
		out = append(out, f.ID)
	}
	return out
}

func testFunds() []fund.Fund {
	updated := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	return []fund.Fund{
		{
			ID: "f1", SchemeCode: "118955", Name: "HDFC Flexi Cap Fund", FundHouse: "HDFC Mutual Fund",
			Category: "Equity", SubCategory: "Flexi Cap", Plan: fund.PlanDirect, Option: fund.OptionGrowth,
			RiskLevel: "very_high", NAV: decimal.RequireFromString("1890.4521"),
			AUM: decimal.NewFromInt(50000), ExpenseRatio: 0.8, Returns1Y: ptr(20.1), Rating: ptr(5),
			MinInvestment: decimal.NewFromInt(100), UpdatedAt: updated,
		},
		{
			ID: "f2", SchemeCode: "120465", Name: "Axis Bluechip Fund", FundHouse: "Axis Mutual Fund",
			Category: "Equity", SubCategory: "Large Cap", Plan: fund.PlanRegular, Option: fund.OptionGrowth,
			RiskLevel: "very_high", NAV: decimal.RequireFromString("58.12"),
			AUM: decimal.NewFromInt(30000), ExpenseRatio: 1.6, Returns1Y: ptr(12.5), Rating: ptr(4),
			MinInvestment: decimal.NewFromInt(500), UpdatedAt: updated,
		},
		{
			ID: "f3", SchemeCode: "119091", Name: "HDFC Liquid Fund", FundHouse: "HDFC Mutual Fund",
			Category: "Debt", SubCategory: "Liquid", Plan: fund.PlanDirect, Option: fund.OptionGrowth,
			RiskLevel: "low_to_moderate", NAV: decimal.RequireFromString("4812.77"),
			AUM: decimal.NewFromInt(60000), ExpenseRatio: 0.2, Returns1Y: ptr(7.1),
			MinInvestment: decimal.NewFromInt(100), UpdatedAt: updated,
		},
		{
			ID: "f4", SchemeCode: "119609", Name: "SBI Equity Hybrid Fund", FundHouse: "SBI Mutual Fund",
			Category: "Hybrid", SubCategory: "Aggressive Hybrid", Plan: fund.PlanDirect, Option: fund.OptionIDCW,
			RiskLevel: "very_high", NAV: decimal.RequireFromString("301.5"),
			AUM: decimal.NewFromInt(70000), ExpenseRatio: 0.7, Returns1Y: ptr(15.0), Rating: ptr(4),
			MinInvestment: decimal.NewFromInt(1000), UpdatedAt: updated,
		},
		{
			ID: "f5", SchemeCode: "125494", Name: "Axis Short Duration Fund", FundHouse: "Axis Mutual Fund",
			Category: "Debt", SubCategory: "Short Duration", Plan: fund.PlanRegular, Option: fund.OptionIDCW,
			RiskLevel: "moderate", NAV: decimal.RequireFromString("27.9"),
			AUM: decimal.NewFromInt(8000), ExpenseRatio: 0.9, Rating: ptr(3),
			MinInvestment: decimal.NewFromInt(5000), UpdatedAt: updated,
		},
	}
}
