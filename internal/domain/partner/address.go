package partner

import "strings"

// Address is the postal address of a partner. State and Country hold display names.
type Address struct {
	Street  string
	Street2 string
	Zip     string
	City    string
	State   string
	Country string
}

// Line1 returns street and street2 joined by a comma
func (a Address) Line1() string {
	return joinNonEmpty(", ", a.Street, a.Street2)
}

// Line2 returns "zip city" followed by the region (state, country) when present.
//
//	"1842 Ezeiza, Buenos Aires, Argentina"
func (a Address) Line2() string {
	line := joinNonEmpty(" ", a.Zip, a.City)
	region := joinNonEmpty(", ", a.State, a.Country)
	if region == "" {
		return line
	}
	if line == "" {
		return region
	}
	return line + ", " + region
}

// Full returns the single-line address used for map lookups
func (a Address) Full() string {
	return joinNonEmpty(", ", a.Street, a.City, a.State, a.Country)
}

// IsEmpty returns true if no address component is set
func (a Address) IsEmpty() bool {
	return a == Address{}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
