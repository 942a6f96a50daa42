package tickets

import "strings"

// ProductCode identifies a ticket SKU.
type ProductCode string

const (
	General1Day ProductCode = "GENERAL_1_DAY"
	General2Day ProductCode = "GENERAL_2_DAY"
	General3Day ProductCode = "GENERAL_3_DAY"
	General4Day ProductCode = "GENERAL_4_DAY"
	VIP1Day     ProductCode = "VIP_1_DAY"
	VIP4Day     ProductCode = "VIP_4_DAY"
)

type Category string

const (
	CategoryGeneral Category = "general"
	CategoryVIP     Category = "vip"
)

// AllProducts returns every SKU in storefront order.
func AllProducts() []ProductCode {
	return []ProductCode{General1Day, General2Day, General3Day, General4Day, VIP1Day, VIP4Day}
}

// ParseProductCode accepts any casing.
func ParseProductCode(raw string) (ProductCode, bool) {
	p := ProductCode(strings.ToUpper(strings.TrimSpace(raw)))
	return p, p.IsValid()
}

func (p ProductCode) IsValid() bool {
	switch p {
	case General1Day, General2Day, General3Day, General4Day, VIP1Day, VIP4Day:
		return true
	default:
		return false
	}
}

func (p ProductCode) String() string {
	return string(p)
}

// Category is derived from the code prefix.
func (p ProductCode) Category() Category {
	if strings.HasPrefix(string(p), "VIP_") {
		return CategoryVIP
	}
	return CategoryGeneral
}

func (p ProductCode) Label() string {
	switch p {
	case General1Day:
		return "General Admission 1-Day Pass"
	case General2Day:
		return "General Admission 2-Day Pass"
	case General3Day:
		return "General Admission 3-Day Pass"
	case General4Day:
		return "General Admission Full Festival Pass"
	case VIP1Day:
		return "VIP 1-Day Pass"
	case VIP4Day:
		return "VIP Full Festival Pass"
	default:
		return string(p)
	}
}

func (p ProductCode) DurationLabel() string {
	switch p {
	case General1Day, VIP1Day:
		return "1 day"
	case General2Day:
		return "2 days"
	case General3Day:
		return "3 days"
	case General4Day, VIP4Day:
		return "4 days"
	default:
		return ""
	}
}

func CategoryFromProductCode(p ProductCode) Category {
	return p.Category()
}

func LabelFromProductCode(p ProductCode) string {
	return p.Label()
}

func DurationLabelFromProductCode(p ProductCode) string {
	return p.DurationLabel()
}
