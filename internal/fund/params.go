package fund

import (
	"slices"
	"strings"

	"github.com/ferdiebergado/fundlist/internal/query"
	"github.com/go-playground/validator/v10"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"

	defaultSortBy = FieldAUM
)

// searchFields are matched by the free-text search parameter.
var searchFields = []string{FieldName, FieldFundHouse, FieldCategory, FieldSubCategory, FieldSchemeCode}

// ListParams holds the query-string parameters of the fund list endpoint.
// List parameters accept repeated keys and comma-separated values.
type ListParams struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`

	Search string `form:"search" json:"search" validate:"max=100"`
	Fuzzy  bool   `form:"fuzzy" json:"fuzzy"`

	Category    []string `form:"category" json:"category" validate:"max=20,dive,max=64"`
	SubCategory []string `form:"subCategory" json:"subCategory" validate:"max=20,dive,max=64"`
	FundHouse   []string `form:"fundHouse" json:"fundHouse" validate:"max=20,dive,max=64"`
	//nolint:lll //Enumerated tag.
	RiskLevel []string `form:"riskLevel" json:"riskLevel" validate:"max=6,dive,oneof=low low_to_moderate moderate moderately_high high very_high"`
	Plan      string   `form:"plan" json:"plan" validate:"omitempty,oneof=direct regular"`
	Option    string   `form:"option" json:"option" validate:"omitempty,oneof=growth idcw"`

	MinAUM          *float64 `form:"minAum" json:"minAum" validate:"omitempty,gte=0"`
	MaxAUM          *float64 `form:"maxAum" json:"maxAum" validate:"omitempty,gte=0"`
	MinExpenseRatio *float64 `form:"minExpenseRatio" json:"minExpenseRatio" validate:"omitempty,gte=0,lte=10"`
	MaxExpenseRatio *float64 `form:"maxExpenseRatio" json:"maxExpenseRatio" validate:"omitempty,gte=0,lte=10"`
	MinReturn1Y     *float64 `form:"minReturn1y" json:"minReturn1y" validate:"omitempty,gte=-100,lte=1000"`
	MaxReturn1Y     *float64 `form:"maxReturn1y" json:"maxReturn1y" validate:"omitempty,gte=-100,lte=1000"`
	MinReturn3Y     *float64 `form:"minReturn3y" json:"minReturn3y" validate:"omitempty,gte=-100,lte=1000"`
	MaxReturn3Y     *float64 `form:"maxReturn3y" json:"maxReturn3y" validate:"omitempty,gte=-100,lte=1000"`
	MinReturn5Y     *float64 `form:"minReturn5y" json:"minReturn5y" validate:"omitempty,gte=-100,lte=1000"`
	MaxReturn5Y     *float64 `form:"maxReturn5y" json:"maxReturn5y" validate:"omitempty,gte=-100,lte=1000"`
	MinRating       *int     `form:"minRating" json:"minRating" validate:"omitempty,gte=1,lte=5"`

	//nolint:lll //Enumerated tag.
	SortBy    string `form:"sortBy" json:"sortBy" validate:"omitempty,oneof=name aum nav expenseRatio returns1y returns3y returns5y rating launchDate"`
	SortOrder string `form:"sortOrder" json:"sortOrder" validate:"omitempty,oneof=asc desc"`

	Facets *bool `form:"facets" json:"facets"`
}

// Normalize trims text, splits comma-separated lists, drops blanks and
// duplicates, and lowercases enumerated values.
func (p *ListParams) Normalize() {
	p.Search = strings.Join(strings.Fields(p.Search), " ")
	p.Category = splitList(p.Category, false)
	p.SubCategory = splitList(p.SubCategory, false)
	p.FundHouse = splitList(p.FundHouse, false)
	p.RiskLevel = splitList(p.RiskLevel, true)
	p.Plan = strings.ToLower(strings.TrimSpace(p.Plan))
	p.Option = strings.ToLower(strings.TrimSpace(p.Option))
	p.SortBy = strings.TrimSpace(p.SortBy)
	p.SortOrder = strings.ToLower(strings.TrimSpace(p.SortOrder))
}

func splitList(values []string, lower bool) []string {
	var out []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			item = strings.TrimSpace(item)
			if lower {
				item = strings.ToLower(item)
			}
			if item == "" || slices.ContainsFunc(out, func(s string) bool { return strings.EqualFold(s, item) }) {
				continue
			}
			out = append(out, item)
		}
	}
	return out
}

type bounds struct {
	min, max       *float64
	minKey, maxKey string
}

func (p ListParams) ranges() []bounds {
	return []bounds{
		{p.MinAUM, p.MaxAUM, "minAum", "maxAum"},
		{p.MinExpenseRatio, p.MaxExpenseRatio, "minExpenseRatio", "maxExpenseRatio"},
		{p.MinReturn1Y, p.MaxReturn1Y, "minReturn1y", "maxReturn1y"},
		{p.MinReturn3Y, p.MaxReturn3Y, "minReturn3y", "maxReturn3y"},
		{p.MinReturn5Y, p.MaxReturn5Y, "minReturn5y", "maxReturn5y"},
	}
}

// ValidateRanges is a struct-level rule rejecting any max bound below its min bound.
func ValidateRanges(sl validator.StructLevel) {
	p, ok := sl.Current().Interface().(ListParams)
	if !ok {
		return
	}

	for _, b := range p.ranges() {
		if b.min != nil && b.max != nil && *b.max < *b.min {
			sl.ReportError(*b.max, b.maxKey, b.maxKey, "gtefield", b.minKey)
		}
	}
}

// Filter builds the store filter described by p.
func (p ListParams) Filter() *query.Filter {
	var minRating *float64
	if p.MinRating != nil {
		r := float64(*p.MinRating)
		minRating = &r
	}

	var plan, option *query.Filter
	if p.Plan != "" {
		plan = query.Eq(FieldPlan, p.Plan)
	}
	if p.Option != "" {
		option = query.Eq(FieldOption, p.Option)
	}

	return query.And(
		query.Search(p.Search, p.Fuzzy, searchFields...),
		query.In(FieldCategory, p.Category...),
		query.In(FieldSubCategory, p.SubCategory...),
		query.In(FieldFundHouse, p.FundHouse...),
		query.In(FieldRiskLevel, p.RiskLevel...),
		plan,
		option,
		query.Range(FieldAUM, p.MinAUM, p.MaxAUM),
		query.Range(FieldExpenseRatio, p.MinExpenseRatio, p.MaxExpenseRatio),
		query.Range(FieldReturns1Y, p.MinReturn1Y, p.MaxReturn1Y),
		query.Range(FieldReturns3Y, p.MinReturn3Y, p.MaxReturn3Y),
		query.Range(FieldReturns5Y, p.MinReturn5Y, p.MaxReturn5Y),
		query.Range(FieldRating, minRating, nil),
	)
}

// Sort returns the effective sort. Names default to ascending, numbers to descending.
func (p ListParams) Sort() query.Sort {
	field := p.SortBy
	if field == "" {
		field = defaultSortBy
	}

	desc := field != FieldName
	switch p.SortOrder {
	case SortAsc:
		desc = false
	case SortDesc:
		desc = true
	}

	return query.Sort{Field: field, Desc: desc, Fold: field == FieldName}
}

// Window returns the clamped page window.
func (p ListParams) Window() query.Page {
	return query.NewPage(p.Page, p.Limit)
}

// WantFacets reports whether facet queries should run. Facets are on by default.
func (p ListParams) WantFacets() bool {
	return p.Facets == nil || *p.Facets
}

// AppliedFilters echoes the normalised filters that took effect.
type AppliedFilters struct {
	Search          string   `json:"search,omitempty"`
	Fuzzy           bool     `json:"fuzzy,omitempty"`
	Category        []string `json:"category,omitempty"`
	SubCategory     []string `json:"subCategory,omitempty"`
	FundHouse       []string `json:"fundHouse,omitempty"`
	RiskLevel       []string `json:"riskLevel,omitempty"`
	Plan            string   `json:"plan,omitempty"`
	Option          string   `json:"option,omitempty"`
	MinAUM          *float64 `json:"minAum,omitempty"`
	MaxAUM          *float64 `json:"maxAum,omitempty"`
	MinExpenseRatio *float64 `json:"minExpenseRatio,omitempty"`
	MaxExpenseRatio *float64 `json:"maxExpenseRatio,omitempty"`
	MinReturn1Y     *float64 `json:"minReturn1y,omitempty"`
	MaxReturn1Y     *float64 `json:"maxReturn1y,omitempty"`
	MinReturn3Y     *float64 `json:"minReturn3y,omitempty"`
	MaxReturn3Y     *float64 `json:"maxReturn3y,omitempty"`
	MinReturn5Y     *float64 `json:"minReturn5y,omitempty"`
	MaxReturn5Y     *float64 `json:"maxReturn5y,omitempty"`
	MinRating       *int     `json:"minRating,omitempty"`
	SortBy          string   `json:"sortBy"`
	SortOrder       string   `json:"sortOrder"`
}

// Applied returns the filters echoed back to the client.
func (p ListParams) Applied() AppliedFilters {
	s := p.Sort()
	return AppliedFilters{
		Search:          p.Search,
		Fuzzy:           p.Fuzzy && p.Search != "",
		Category:        p.Category,
		SubCategory:     p.SubCategory,
		FundHouse:       p.FundHouse,
		RiskLevel:       p.RiskLevel,
		Plan:            p.Plan,
		Option:          p.Option,
		MinAUM:          p.MinAUM,
		MaxAUM:          p.MaxAUM,
		MinExpenseRatio: p.MinExpenseRatio,
		MaxExpenseRatio: p.MaxExpenseRatio,
		MinReturn1Y:     p.MinReturn1Y,
		MaxReturn1Y:     p.MaxReturn1Y,
		MinReturn3Y:     p.MinReturn3Y,
		MaxReturn3Y:     p.MaxReturn3Y,
		MinReturn5Y:     p.MinReturn5Y,
		MaxReturn5Y:     p.MaxReturn5Y,
		MinRating:       p.MinRating,
		SortBy:          s.Field,
		SortOrder:       s.Direction(),
	}
}
