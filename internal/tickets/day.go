package tickets

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DayCode is one of the four festival days.
type DayCode uint8

const (
	Friday DayCode = iota
	Saturday
	Sunday
	Monday

	dayCount = 4
)

var dayNames = [dayCount]string{"FRI", "SAT", "SUN", "MON"}

var dayAliases = map[string]DayCode{
	"FRI":      Friday,
	"FRIDAY":   Friday,
	"SAT":      Saturday,
	"SATURDAY": Saturday,
	"SUN":      Sunday,
	"SUNDAY":   Sunday,
	"MON":      Monday,
	"MONDAY":   Monday,
}

// AllDays returns the festival days in canonical order.
func AllDays() []DayCode {
	return []DayCode{Friday, Saturday, Sunday, Monday}
}

// ParseDayCode accepts any casing and surrounding whitespace.
func ParseDayCode(raw string) (DayCode, bool) {
	d, ok := dayAliases[strings.ToUpper(strings.TrimSpace(raw))]
	return d, ok
}

func (d DayCode) IsValid() bool {
	return d < dayCount
}

func (d DayCode) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("DayCode(%d)", uint8(d))
	}
	return dayNames[d]
}

// Lower returns the lowercase form used in URLs and ticket payloads.
func (d DayCode) Lower() string {
	return strings.ToLower(d.String())
}

func (d DayCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DayCode) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, ok := ParseDayCode(raw)
	if !ok {
		return fmt.Errorf("unknown day code %q", raw)
	}
	*d = parsed
	return nil
}

// DaySet is a set of festival days stored as a 4-bit mask.
type DaySet uint8

const (
	EmptyDays DaySet = 0
	AllFour   DaySet = 1<<dayCount - 1
)

// DaysOf builds a set from the given days.
func DaysOf(days ...DayCode) DaySet {
	var s DaySet
	for _, d := range days {
		s = s.Add(d)
	}
	return s
}

// ParseDaySet normalizes raw tokens. Duplicates collapse and unknown tokens are dropped.
func ParseDaySet(raw []string) DaySet {
	var s DaySet
	for _, token := range raw {
		if d, ok := ParseDayCode(token); ok {
			s = s.Add(d)
		}
	}
	return s
}

func (s DaySet) Add(d DayCode) DaySet {
	if !d.IsValid() {
		return s
	}
	return s | 1<<d
}

func (s DaySet) Has(d DayCode) bool {
	return d.IsValid() && s&(1<<d) != 0
}

func (s DaySet) Len() int {
	n := 0
	for m := s & AllFour; m != 0; m &= m - 1 {
		n++
	}
	return n
}

func (s DaySet) IsEmpty() bool {
	return s&AllFour == 0
}

func (s DaySet) Equal(other DaySet) bool {
	return s&AllFour == other&AllFour
}

func (s DaySet) SubsetOf(other DaySet) bool {
	return s&^other&AllFour == 0
}

// Days lists members in canonical order FRI, SAT, SUN, MON.
func (s DaySet) Days() []DayCode {
	out := make([]DayCode, 0, s.Len())
	for _, d := range AllDays() {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s DaySet) Strings() []string {
	days := s.Days()
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.String()
	}
	return out
}

func (s DaySet) String() string {
	return "{" + strings.Join(s.Strings(), ",") + "}"
}
