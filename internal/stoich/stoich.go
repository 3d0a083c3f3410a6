package stoich

type Unit string

const (
	UnitMg Unit = "mg"
	UnitG  Unit = "g"
)

func (u Unit) String() string {
	if u == UnitMg {
		return string(UnitMg)
	}
	return string(UnitG)
}

// Record is one row of the form. Numeric fields keep the text as entered.
type Record struct {
	Name    string `json:"name"`
	MW      string `json:"mw"`
	Weight  string `json:"weight"`
	Unit    Unit   `json:"unit"`
	Eq      string `json:"eq"`
	Density string `json:"density"`
}

type Result struct {
	Computed  bool
	Moles     float64
	Weight    float64
	Volume    float64
	HasVolume bool
}

const LimitingReactantName = "Limiting Reactant"

func DefaultLimitingReactant() Record {
	return Record{
		Name: LimitingReactantName,
		Unit: UnitMg,
		Eq:   "1.0",
	}
}

// Compute maps records to results, index 0 being the limiting reactant.
// Incomplete limiting reactant yields zero results for every row.
func Compute(records []Record) []Result {
	results := make([]Result, len(records))
	if len(records) == 0 {
		return results
	}
	lr := records[0]
	lrMW := ParseNumber(lr.MW)
	lrWeight := ParseNumber(lr.Weight)
	if lrMW == 0 || lrWeight == 0 {
		return results
	}

	mg := lr.Unit == UnitMg
	grams := lrWeight
	if mg {
		grams = lrWeight / 1000
	}
	var lrMoles float64
	if lrMW > 0 {
		lrMoles = grams / lrMW
	}

	for i, c := range records {
		eq := ParseNumber(c.Eq)
		if i == 0 {
			eq = 1
		}
		r := Result{Computed: true}
		if lrMoles > 0 && eq > 0 {
			r.Moles = lrMoles * eq
		}
		gramsNeeded := r.Moles * ParseNumber(c.MW)
		r.Weight = gramsNeeded
		if mg {
			r.Weight = gramsNeeded * 1000
		}
		if density := ParseNumber(c.Density); density > 0 {
			r.Volume = gramsNeeded / density
			r.HasVolume = true
		}
		results[i] = r
	}
	return results
}
