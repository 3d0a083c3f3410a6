package stoich

import "strconv"

type Precision struct {
	Weight int `yaml:"weight"`
	Volume int `yaml:"volume"`
	Moles  int `yaml:"moles"`
}

var DefaultPrecision = Precision{
	Weight: 4,
	Volume: 4,
	Moles:  6,
}

// Display is the presentation form of Result. Empty string means
// the value is absent or not computable yet.
type Display struct {
	Moles  string
	Weight string
	Volume string
}

func Format(results []Result, p Precision) []Display {
	xs := make([]Display, len(results))
	for i, r := range results {
		xs[i] = p.Display(r)
	}
	return xs
}

func (p Precision) Display(r Result) Display {
	if !r.Computed {
		return Display{}
	}
	d := Display{
		Moles:  formatNonZero(r.Moles, p.Moles),
		Weight: formatNonZero(r.Weight, p.Weight),
	}
	if r.HasVolume {
		d.Volume = formatNonZero(r.Volume, p.Volume)
	}
	return d
}

func formatNonZero(v float64, prec int) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
