package tickets

import "fmt"

// CatalogEntry describes one SKU for the storefront.
type CatalogEntry struct {
	Code          ProductCode `json:"code"`
	Label         string      `json:"label"`
	Category      Category    `json:"category"`
	DurationLabel string      `json:"duration_label"`
	DayRule       string      `json:"day_rule"`
	SelectDays    int         `json:"select_days"`
	AllowedDays   []DayCode   `json:"allowed_days"`
	Price         float64     `json:"price"`
	SaturdayPrice float64     `json:"saturday_price,omitempty"`
}

// built at init so a pricing rule that rejects its own sample panics on startup
var catalog = buildCatalog()

// Catalog lists every product. SelectDays is zero when the day set is fixed.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	copy(out, catalog)
	return out
}

func buildCatalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(AllProducts()))
	for _, p := range AllProducts() {
		entries = append(entries, catalogEntry(p))
	}
	return entries
}

// mustPrice prices a sample selection the catalog shows.
func mustPrice(p ProductCode, days DaySet) float64 {
	v, err := price(p, days)
	if err != nil {
		panic(fmt.Sprintf("tickets: catalog sample for %s: %v", p, err))
	}
	return v
}

func catalogEntry(p ProductCode) CatalogEntry {
	e := CatalogEntry{
		Code:          p,
		Label:         p.Label(),
		Category:      p.Category(),
		DurationLabel: p.DurationLabel(),
	}

	switch p {
	case General1Day, VIP1Day:
		e.DayRule = msgExactlyOneDay
		e.SelectDays = 1
		e.AllowedDays = AllFour.Days()
		e.Price = mustPrice(p, DaysOf(Friday))
		e.SaturdayPrice = mustPrice(p, DaysOf(Saturday))
	case General2Day:
		e.DayRule = msgTwoDayNoSat
		e.SelectDays = 2
		e.AllowedDays = nonSaturday.Days()
		e.Price = mustPrice(p, DaysOf(Friday, Sunday))
	case General3Day:
		e.DayRule = msgThreeDaySet
		e.AllowedDays = nonSaturday.Days()
		e.Price = mustPrice(p, nonSaturday)
	case General4Day, VIP4Day:
		e.DayRule = msgFourDaySet
		e.AllowedDays = AllFour.Days()
		e.Price = mustPrice(p, AllFour)
	}
	return e
}
