package fund

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ferdiebergado/fundlist/internal/query"
	"github.com/shopspring/decimal"
)

// Field names shared by filters, sort keys, facets and the JSON representation.
const (
	FieldID            = "id"
	FieldSchemeCode    = "schemeCode"
	FieldISIN          = "isin"
	FieldName          = "name"
	FieldFundHouse     = "fundHouse"
	FieldCategory      = "category"
	FieldSubCategory   = "subCategory"
	FieldPlan          = "plan"
	FieldOption        = "option"
	FieldRiskLevel     = "riskLevel"
	FieldNAV           = "nav"
	FieldAUM           = "aum"
	FieldExpenseRatio  = "expenseRatio"
	FieldReturns1Y     = "returns1y"
	FieldReturns3Y     = "returns3y"
	FieldReturns5Y     = "returns5y"
	FieldRating        = "rating"
	FieldMinInvestment = "minInvestment"
	FieldLaunchDate    = "launchDate"
	FieldUpdatedAt     = "updatedAt"
)

const (
	PlanDirect  = "direct"
	PlanRegular = "regular"

	OptionGrowth = "growth"
	OptionIDCW   = "idcw"
)

// Fund is a mutual fund scheme as stored in the funds collection.
type Fund struct {
	ID            string          `json:"id"`
	SchemeCode    string          `json:"schemeCode"`
	ISIN          string          `json:"isin,omitempty"`
	Name          string          `json:"name"`
	FundHouse     string          `json:"fundHouse"`
	Category      string          `json:"category"`
	SubCategory   string          `json:"subCategory,omitempty"`
	Plan          string          `json:"plan"`
	Option        string          `json:"option"`
	RiskLevel     string          `json:"riskLevel"`
	NAV           decimal.Decimal `json:"nav"`
	AUM           decimal.Decimal `json:"aum"`
	ExpenseRatio  float64         `json:"expenseRatio"`
	Returns1Y     *float64        `json:"returns1y"`
	Returns3Y     *float64        `json:"returns3y"`
	Returns5Y     *float64        `json:"returns5y"`
	Rating        *int            `json:"rating"`
	MinInvestment decimal.Decimal `json:"minInvestment"`
	LaunchDate    *time.Time      `json:"launchDate,omitempty"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

var _ query.Document = Fund{}

// Field implements query.Document.
//
//nolint:cyclop //One case per field.
func (f Fund) Field(name string) (any, bool) {
	switch name {
	case FieldID:
		return f.ID, true
	case FieldSchemeCode:
		return f.SchemeCode, true
	case FieldISIN:
		return f.ISIN, true
	case FieldName:
		return f.Name, true
	case FieldFundHouse:
		return f.FundHouse, true
	case FieldCategory:
		return f.Category, true
	case FieldSubCategory:
		return f.SubCategory, true
	case FieldPlan:
		return f.Plan, true
	case FieldOption:
		return f.Option, true
	case FieldRiskLevel:
		return f.RiskLevel, true
	case FieldNAV:
		return f.NAV, true
	case FieldAUM:
		return f.AUM, true
	case FieldExpenseRatio:
		return f.ExpenseRatio, true
	case FieldReturns1Y:
		return f.Returns1Y, true
	case FieldReturns3Y:
		return f.Returns3Y, true
	case FieldReturns5Y:
		return f.Returns5Y, true
	case FieldRating:
		return f.Rating, true
	case FieldMinInvestment:
		return f.MinInvestment, true
	case FieldLaunchDate:
		if f.LaunchDate == nil {
			return nil, false
		}
		return *f.LaunchDate, true
	case FieldUpdatedAt:
		return f.UpdatedAt, true
	default:
		return nil, false
	}
}

// normalize lowercases the enumerated fields so that every store holds them
// in the same form.
func (f *Fund) normalize() {
	f.Plan = strings.ToLower(strings.TrimSpace(f.Plan))
	f.Option = strings.ToLower(strings.TrimSpace(f.Option))
	f.RiskLevel = strings.ToLower(strings.TrimSpace(f.RiskLevel))
}

// DecodeFunds reads a JSON array of funds.
func DecodeFunds(r io.Reader) ([]Fund, error) {
	var funds []Fund
	if err := json.NewDecoder(r).Decode(&funds); err != nil {
		return nil, fmt.Errorf("decode funds: %w", err)
	}
	for i := range funds {
		funds[i].normalize()
	}
	return funds, nil
}
