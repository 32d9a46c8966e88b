package thaiaddress

import (
	"regexp"
	"sort"
	"strings"
)

// Address is the decomposed, field-level representation of a Thai postal
// address. All fields are optional; an unparsable input yields the zero value.
type Address struct {
	HouseNumber   string `json:"house_number,omitempty"`
	VillageNumber string `json:"village_number,omitempty"`
	Alley         string `json:"alley,omitempty"`
	Road          string `json:"road,omitempty"`
	SubDistrict   string `json:"sub_district,omitempty"`
	District      string `json:"district,omitempty"`
	Province      string `json:"province,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Mobile        string `json:"mobile,omitempty"`
}

// IsZero reports whether no field was populated.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Field names used by the patterns and the positional comma fallback.
const (
	fieldHouseNumber   = "house_number"
	fieldVillageNumber = "village_number"
	fieldAlley         = "alley"
	fieldRoad          = "road"
	fieldSubDistrict   = "sub_district"
	fieldDistrict      = "district"
	fieldProvince      = "province"
	fieldPostalCode    = "postal_code"
)

// fallbackOrder is the fixed positional assignment used when the input does
// not match any keyword pattern but still splits into enough comma parts.
var fallbackOrder = []string{
	fieldHouseNumber,
	fieldVillageNumber,
	fieldAlley,
	fieldRoad,
	fieldSubDistrict,
	fieldDistrict,
	fieldProvince,
	fieldPostalCode,
}

type pattern struct {
	re     *regexp.Regexp
	fields []string
}

// Keyword fragments. Sub-district and district accept both the provincial
// (ตำบล/อำเภอ) and Bangkok (แขวง/เขต) keyword forms.
const (
	fragHouse    = `บ้านเลขที่\s*(\S+)`
	fragMoo      = `หมู่(?:ที่)?\s*(\S+)`
	fragRoad     = `ถนน\s*(\S+)`
	fragSubDist  = `(?:ตำบล|แขวง)\s*(\S+)`
	fragDistrict = `(?:อำเภอ|เขต)\s*(\S+)`
	fragProvince = `จังหวัด\s*(\S+)`
	fragPostal   = `(\d{5})`
)

// patterns is the keyword cascade. The soi (alley) capture is non-greedy and
// bounded by the following keyword because alley names may contain spaces
// ("ซอยสุขุมวิท 42"). The list is sorted by descending field count at init so
// precedence is strictly most-specific first regardless of declaration order.
var patterns = buildPatterns()

func buildPatterns() []pattern {
	specs := []struct {
		expr   string
		fields []string
	}{
		{
			expr: fragHouse + `\s+` + fragMoo + `\s+ซอย\s*(.+?)\s+` + fragRoad + `\s+` + fragSubDist + `\s+` + fragDistrict + `\s+` + fragProvince + `\s+` + fragPostal,
			fields: []string{
				fieldHouseNumber, fieldVillageNumber, fieldAlley, fieldRoad,
				fieldSubDistrict, fieldDistrict, fieldProvince, fieldPostalCode,
			},
		},
		{
			expr: fragHouse + `\s+` + fragMoo + `\s+` + fragRoad + `\s+` + fragSubDist + `\s+` + fragDistrict + `\s+` + fragProvince + `\s+` + fragPostal,
			fields: []string{
				fieldHouseNumber, fieldVillageNumber, fieldRoad,
				fieldSubDistrict, fieldDistrict, fieldProvince, fieldPostalCode,
			},
		},
		{
			expr: fragHouse + `\s+` + fragMoo + `\s+ซอย\s*(.+?)\s+` + fragSubDist + `\s+` + fragDistrict + `\s+` + fragProvince + `\s+` + fragPostal,
			fields: []string{
				fieldHouseNumber, fieldVillageNumber, fieldAlley,
				fieldSubDistrict, fieldDistrict, fieldProvince, fieldPostalCode,
			},
		},
		{
			expr: fragHouse + `\s+ซอย\s*(.+?)\s+` + fragRoad + `\s+` + fragSubDist + `\s+` + fragDistrict + `\s+` + fragProvince + `\s+` + fragPostal,
			fields: []string{
				fieldHouseNumber, fieldAlley, fieldRoad,
				fieldSubDistrict, fieldDistrict, fieldProvince, fieldPostalCode,
			},
		},
		{
			expr: fragHouse + `\s+` + fragRoad + `\s+` + fragSubDist + `\s+` + fragDistrict + `\s+` + fragProvince + `\s+` + fragPostal,
			fields: []string{
				fieldHouseNumber, fieldRoad,
				fieldSubDistrict, fieldDistrict, fieldProvince, fieldPostalCode,
			},
		},
		{
			expr: fragHouse + `\s+` + fragMoo + `\s+` + fragSubDist + `\s+` + fragDistrict + `\s+` + fragProvince + `\s+` + fragPostal,
			fields: []string{
				fieldHouseNumber, fieldVillageNumber,
				fieldSubDistrict, fieldDistrict, fieldProvince, fieldPostalCode,
			},
		},
	}

	compiled := make([]pattern, 0, len(specs))
	for _, spec := range specs {
		compiled = append(compiled, pattern{
			re:     regexp.MustCompile(`^\s*` + spec.expr + `\s*$`),
			fields: spec.fields,
		})
	}

	// Strict specific-to-general precedence: more captured fields win.
	sort.SliceStable(compiled, func(i, j int) bool {
		return len(compiled[i].fields) > len(compiled[j].fields)
	})

	return compiled
}

// Parse decomposes a free-text Thai address into its components on a
// best-effort basis. It tries the keyword patterns from most to least
// specific and stops at the first full match. If no pattern matches, the
// string is split on commas and the parts are assigned positionally when at
// least four parts are present. Anything else returns the zero Address.
// Parse never fails and has no side effects; callers re-derive the result on
// every render rather than caching it.
func Parse(raw string) Address {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Address{}
	}

	for _, p := range patterns {
		match := p.re.FindStringSubmatch(raw)
		if match == nil {
			continue
		}

		var addr Address
		for i, field := range p.fields {
			addr.set(field, strings.TrimSpace(match[i+1]))
		}
		return addr
	}

	return parseCommaFallback(raw)
}

// parseCommaFallback assigns comma-separated parts positionally. Fewer than
// four parts is treated as unparsed, not as an error.
func parseCommaFallback(raw string) Address {
	parts := strings.Split(raw, ",")
	if len(parts) < 4 {
		return Address{}
	}

	var addr Address
	for i, field := range fallbackOrder {
		if i >= len(parts) {
			break
		}
		addr.set(field, strings.TrimSpace(parts[i]))
	}
	return addr
}

func (a *Address) set(field, value string) {
	switch field {
	case fieldHouseNumber:
		a.HouseNumber = value
	case fieldVillageNumber:
		a.VillageNumber = value
	case fieldAlley:
		a.Alley = value
	case fieldRoad:
		a.Road = value
	case fieldSubDistrict:
		a.SubDistrict = value
	case fieldDistrict:
		a.District = value
	case fieldProvince:
		a.Province = value
	case fieldPostalCode:
		a.PostalCode = value
	}
}

// Get returns the named component, using the same snake_case field names as
// the document template keys. Unknown names return "".
func (a Address) Get(field string) string {
	switch field {
	case fieldHouseNumber:
		return a.HouseNumber
	case fieldVillageNumber:
		return a.VillageNumber
	case fieldAlley:
		return a.Alley
	case fieldRoad:
		return a.Road
	case fieldSubDistrict:
		return a.SubDistrict
	case fieldDistrict:
		return a.District
	case fieldProvince:
		return a.Province
	case fieldPostalCode:
		return a.PostalCode
	case "phone":
		return a.Phone
	case "mobile":
		return a.Mobile
	}
	return ""
}
