package repository

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v2"

	"mortgage-engine/domain"
)

//go:embed rates.yaml
var ratesYAML []byte

type rateRow struct {
	Product   domain.ProductType   `yaml:"product"`
	RateType  domain.RateType      `yaml:"rate_type"`
	FixedTerm int                  `yaml:"fixed_term"`
	Purpose   domain.Purpose       `yaml:"purpose"`
	Repayment domain.RepaymentType `yaml:"repayment"`
	Tier      domain.LVRTier       `yaml:"tier"`
	Rate      float64              `yaml:"rate"`
	Fee       float64              `yaml:"fee"`
	Name      string               `yaml:"name"`
}

type ownHomeRow struct {
	Name      string  `yaml:"name"`
	Rate      float64 `yaml:"rate"`
	TermYears int     `yaml:"term_years"`
	Fee       float64 `yaml:"fee"`
	Brand     string  `yaml:"brand"`
}

type ratesFile struct {
	Products  []rateRow          `yaml:"products"`
	Reverting map[string]float64 `yaml:"reverting"`
	OwnHome   ownHomeRow         `yaml:"own_home"`
}

type productKey struct {
	product   domain.ProductType
	rateType  domain.RateType
	fixedTerm int
	purpose   domain.Purpose
	repayment domain.RepaymentType
	tier      domain.LVRTier
}

// RateTable is the static lender rate table, loaded once from the
// embedded asset and immutable afterwards. Lookups are O(1) on the full
// composite key.
type RateTable struct {
	products  map[productKey]domain.RateEntry
	reverting map[string]float64
	ownHome   domain.SecondaryProduct
}

// NewRateTable parses the embedded rate table.
func NewRateTable() (*RateTable, error) {
	return NewRateTableFromYAML(ratesYAML)
}

// NewRateTableFromYAML parses a rate table supplied by the caller, in
// the same format as the embedded asset.
func NewRateTableFromYAML(data []byte) (*RateTable, error) {
	var file ratesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rate table: %w", err)
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("rate table has no products")
	}
	if file.OwnHome.Rate <= 0 || file.OwnHome.TermYears <= 0 {
		return nil, fmt.Errorf("rate table has no usable secondary product")
	}

	t := &RateTable{
		products:  make(map[productKey]domain.RateEntry, len(file.Products)),
		reverting: file.Reverting,
		ownHome: domain.SecondaryProduct{
			ProductName: file.OwnHome.Name,
			Rate:        file.OwnHome.Rate,
			TermYears:   file.OwnHome.TermYears,
			UpfrontFee:  file.OwnHome.Fee,
			Brand:       file.OwnHome.Brand,
		},
	}

	for _, row := range file.Products {
		key := productKey{
			product:   row.Product,
			rateType:  row.RateType,
			fixedTerm: row.FixedTerm,
			purpose:   row.Purpose,
			repayment: row.Repayment,
			tier:      row.Tier,
		}
		if _, dup := t.products[key]; dup {
			return nil, fmt.Errorf("rate table has duplicate entry for %s/%s/%d/%s/%s/%s",
				row.Product, row.RateType, row.FixedTerm, row.Purpose, row.Repayment, row.Tier)
		}
		t.products[key] = domain.RateEntry{
			ProductType:    row.Product,
			RateType:       row.RateType,
			FixedTermYears: row.FixedTerm,
			Purpose:        row.Purpose,
			RepaymentType:  row.Repayment,
			Tier:           row.Tier,
			Rate:           row.Rate,
			UpfrontFee:     row.Fee,
			ProductName:    row.Name,
		}
	}
	return t, nil
}

// FindProduct resolves an exact match across all six keys. The second
// return is false on a miss; the caller decides the fallback.
func (t *RateTable) FindProduct(
	product domain.ProductType,
	rateType domain.RateType,
	fixedTerm int,
	purpose domain.Purpose,
	repayment domain.RepaymentType,
	tier domain.LVRTier,
) (domain.RateEntry, bool) {
	entry, ok := t.products[productKey{
		product:   product,
		rateType:  rateType,
		fixedTerm: fixedTerm,
		purpose:   purpose,
		repayment: repayment,
		tier:      tier,
	}]
	return entry, ok
}

// RevertingRate returns the post-introductory variable rate for the
// given purpose and tier. Returns 0 when no entry exists; 0 is a
// sentinel, not an error.
func (t *RateTable) RevertingRate(purpose domain.Purpose, tier domain.LVRTier) float64 {
	return t.reverting[fmt.Sprintf("%s_%s", purpose, tier)]
}

// OwnHome returns the secondary-lender product definition.
func (t *RateTable) OwnHome() domain.SecondaryProduct {
	return t.ownHome
}
