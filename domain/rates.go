package domain

// ProductType names a lender product tier.
type ProductType string

const (
	ProductStraightUp ProductType = "STRAIGHT_UP"
	ProductPowerUp    ProductType = "POWER_UP"
	ProductTailored   ProductType = "TAILORED"
	ProductFixed      ProductType = "FIXED"
)

// RateType is the interest rate structure of a product.
type RateType string

const (
	RateVariable RateType = "VARIABLE"
	RateFixed    RateType = "FIXED"
)

// RepaymentType is how the loan is repaid.
type RepaymentType string

const (
	PrincipalAndInterest RepaymentType = "PRINCIPAL_AND_INTEREST"
	InterestOnly         RepaymentType = "INTEREST_ONLY"
)

// Purpose is the loan purpose.
type Purpose string

const (
	OwnerOccupied Purpose = "OWNER_OCCUPIED"
	Investor      Purpose = "INVESTOR"
)

// LVRTier is one of the six closed loan-to-value bands of the rate table.
type LVRTier string

const (
	Tier0To50   LVRTier = "0-50"
	Tier50To60  LVRTier = "50-60"
	Tier60To70  LVRTier = "60-70"
	Tier70To80  LVRTier = "70-80"
	Tier80To85  LVRTier = "80-85"
	TierAbove85 LVRTier = "85+"
)

// FindLVRTier maps an LVR to its band. Bands are closed on the upper
// bound: 0.80 is still "70-80", 0.8000001 is "80-85".
func FindLVRTier(lvr float64) LVRTier {
	switch {
	case lvr <= 0.50:
		return Tier0To50
	case lvr <= 0.60:
		return Tier50To60
	case lvr <= 0.70:
		return Tier60To70
	case lvr <= 0.80:
		return Tier70To80
	case lvr <= 0.85:
		return Tier80To85
	default:
		return TierAbove85
	}
}

// RateEntry is one immutable row of the static rate table.
type RateEntry struct {
	ProductType    ProductType   `json:"productType"`
	RateType       RateType      `json:"rateType"`
	FixedTermYears int           `json:"fixedTermYears"`
	Purpose        Purpose       `json:"purpose"`
	RepaymentType  RepaymentType `json:"repaymentType"`
	Tier           LVRTier       `json:"tier"`
	Rate           float64       `json:"rate"`
	UpfrontFee     float64       `json:"upfrontFee"`
	ProductName    string        `json:"productName"`
}

// SecondaryProduct is the single secondary-lender product used for the
// portion of a split loan above the primary lender's LVR ceiling. It has
// no tiering and no product-type decision.
type SecondaryProduct struct {
	ProductName string  `json:"productName"`
	Rate        float64 `json:"rate"`
	TermYears   int     `json:"termYears"`
	UpfrontFee  float64 `json:"upfrontFee"`
	Brand       string  `json:"brand"`
}

// State is an Australian state or territory for stamp duty purposes.
type State string

const (
	NSW State = "NSW"
	VIC State = "VIC"
	QLD State = "QLD"
	SA  State = "SA"
	WA  State = "WA"
	TAS State = "TAS"
	ACT State = "ACT"
	NT  State = "NT"
)

// Valid reports whether s is a known jurisdiction.
func (s State) Valid() bool {
	switch s {
	case NSW, VIC, QLD, SA, WA, TAS, ACT, NT:
		return true
	}
	return false
}
