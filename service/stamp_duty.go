package service

import (
	"github.com/shopspring/decimal"

	"mortgage-engine/domain"
)

// Transfer (stamp) duty is jurisdiction reference data: marginal bracket
// tables per state, plus first-home-buyer concessions for owner occupied
// purchases. Bracket math runs on decimals so duty is exact to the cent
// before it re-enters the float calculation.

type dutyBracket struct {
	lower float64         // bracket lower bound
	base  decimal.Decimal // duty accrued below lower
	rate  decimal.Decimal // marginal rate above lower
}

func bkt(lower, base float64, rate string) dutyBracket {
	return dutyBracket{
		lower: lower,
		base:  decimal.NewFromFloat(base),
		rate:  decimal.RequireFromString(rate),
	}
}

var transferDutyBrackets = map[domain.State][]dutyBracket{
	domain.NSW: {
		bkt(0, 0, "0.0125"),
		bkt(17_000, 212, "0.015"),
		bkt(35_000, 482, "0.0175"),
		bkt(94_000, 1_515, "0.035"),
		bkt(351_000, 10_530, "0.045"),
		bkt(1_168_000, 47_295, "0.055"),
	},
	domain.VIC: {
		bkt(0, 0, "0.014"),
		bkt(25_000, 350, "0.024"),
		bkt(130_000, 2_870, "0.06"),
		// flat on the whole value from here, expressed as base+marginal
		bkt(960_000, 52_800, "0.055"),
		bkt(2_000_000, 130_000, "0.065"),
	},
	domain.QLD: {
		bkt(0, 0, "0"),
		bkt(5_000, 0, "0.015"),
		bkt(75_000, 1_050, "0.035"),
		bkt(540_000, 17_325, "0.045"),
		bkt(1_000_000, 38_025, "0.0575"),
	},
	domain.SA: {
		bkt(0, 0, "0.01"),
		bkt(12_000, 120, "0.02"),
		bkt(30_000, 480, "0.03"),
		bkt(50_000, 1_080, "0.035"),
		bkt(100_000, 2_830, "0.04"),
		bkt(200_000, 6_830, "0.0425"),
		bkt(250_000, 8_955, "0.0475"),
		bkt(300_000, 11_330, "0.05"),
		bkt(500_000, 21_330, "0.055"),
	},
	domain.WA: {
		bkt(0, 0, "0.019"),
		bkt(120_000, 2_280, "0.0285"),
		bkt(150_000, 3_135, "0.038"),
		bkt(360_000, 11_115, "0.0475"),
		bkt(725_000, 28_452.50, "0.0515"),
	},
	domain.TAS: {
		bkt(0, 50, "0"),
		bkt(3_000, 50, "0.0175"),
		bkt(25_000, 435, "0.0225"),
		bkt(75_000, 1_560, "0.035"),
		bkt(200_000, 5_935, "0.04"),
		bkt(375_000, 12_935, "0.0425"),
		bkt(725_000, 27_810, "0.045"),
	},
	domain.ACT: {
		bkt(0, 0, "0.006"),
		bkt(260_000, 1_560, "0.022"),
		bkt(300_000, 2_440, "0.034"),
		bkt(500_000, 9_240, "0.0432"),
		bkt(750_000, 20_040, "0.059"),
		bkt(1_000_000, 34_790, "0.064"),
		bkt(1_455_000, 66_057, "0.0454"),
	},
}

type fhbConcession struct {
	fullUpTo  float64 // full concession at or below this price
	phaseUpTo float64 // linear phase-out up to this price
	discount  float64 // fraction of duty removed (1 = full exemption)
}

var fhbConcessions = map[domain.State]fhbConcession{
	domain.NSW: {fullUpTo: 800_000, phaseUpTo: 1_000_000, discount: 1},
	domain.VIC: {fullUpTo: 600_000, phaseUpTo: 750_000, discount: 1},
	domain.QLD: {fullUpTo: 700_000, phaseUpTo: 800_000, discount: 1},
	domain.WA:  {fullUpTo: 450_000, phaseUpTo: 600_000, discount: 1},
	domain.SA:  {fullUpTo: 650_000, phaseUpTo: 650_000, discount: 1},
	domain.TAS: {fullUpTo: 600_000, phaseUpTo: 600_000, discount: 0.5},
	domain.ACT: {fullUpTo: 1_000_000, phaseUpTo: 1_000_000, discount: 1},
	// NT has no current first-home-buyer duty concession.
}

// StampDuty computes transfer duty for a purchase. First-home-buyer
// concessions apply only to owner occupied purchases.
func StampDuty(price float64, state domain.State, purpose domain.Purpose, firstHomeBuyer bool) float64 {
	if price <= 0 {
		return 0
	}

	var duty decimal.Decimal
	if state == domain.NT {
		duty = ntDuty(price)
	} else {
		duty = bracketDuty(transferDutyBrackets[state], price)
	}

	if firstHomeBuyer && purpose == domain.OwnerOccupied {
		duty = applyFHBConcession(duty, state, price)
	}

	result, _ := duty.Round(2).Float64()
	return result
}

func bracketDuty(brackets []dutyBracket, price float64) decimal.Decimal {
	if len(brackets) == 0 {
		return decimal.Zero
	}
	b := brackets[0]
	for _, candidate := range brackets {
		if price > candidate.lower {
			b = candidate
		}
	}
	excess := decimal.NewFromFloat(price).Sub(decimal.NewFromFloat(b.lower))
	return b.base.Add(b.rate.Mul(excess))
}

// ntDuty follows the NT formula: below the threshold duty is quadratic
// in the value expressed in thousands, above it a flat percentage.
func ntDuty(price float64) decimal.Decimal {
	if price <= 525_000 {
		v := decimal.NewFromFloat(price / 1000)
		return v.Mul(v).Mul(decimal.RequireFromString("0.06571441")).
			Add(v.Mul(decimal.NewFromInt(15)))
	}
	if price <= 3_000_000 {
		return decimal.NewFromFloat(price).Mul(decimal.RequireFromString("0.0495"))
	}
	return decimal.NewFromFloat(price).Mul(decimal.RequireFromString("0.0575"))
}

func applyFHBConcession(duty decimal.Decimal, state domain.State, price float64) decimal.Decimal {
	c, ok := fhbConcessions[state]
	if !ok {
		return duty
	}
	discount := 0.0
	switch {
	case price <= c.fullUpTo:
		discount = c.discount
	case price <= c.phaseUpTo && c.phaseUpTo > c.fullUpTo:
		discount = c.discount * (c.phaseUpTo - price) / (c.phaseUpTo - c.fullUpTo)
	}
	if discount <= 0 {
		return duty
	}
	return duty.Mul(decimal.NewFromFloat(1 - discount))
}
