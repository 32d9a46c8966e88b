package projector

import (
	"fmt"
	"strconv"
	"strings"

	"HSP-PORTAL/internal/thaiaddress"
	"HSP-PORTAL/internal/thaidate"
)

// Record is the opaque bag of fields collected across the multi-tab
// application form. Field presence is never guaranteed; every accessor
// degrades to an empty value instead of failing.
type Record map[string]any

// String returns the trimmed string form of a field, or "" when the field is
// absent or not representable as display text.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	return ""
}

// Sub returns a nested object field as a Record, or nil.
func (r Record) Sub(key string) Record {
	switch v := r[key].(type) {
	case Record:
		return v
	case map[string]any:
		return Record(v)
	}
	return nil
}

// List returns a list field as records, tolerating the element shapes that
// JSON decoding and in-process construction produce.
func (r Record) List(key string) []Record {
	switch v := r[key].(type) {
	case []Record:
		return v
	case []map[string]any:
		out := make([]Record, len(v))
		for i, m := range v {
			out[i] = Record(m)
		}
		return out
	case []any:
		var out []Record
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, Record(m))
			}
		}
		return out
	}
	return nil
}

// ListSlots is the fixed number of template rows for each repeating section.
// Entries beyond the limit are dropped; missing entries render blank.
const ListSlots = 3

// addressGroup ties a flat structured-key namespace to the free-text field it
// falls back to. Each address on the form is resolved independently.
type addressGroup struct {
	name      string
	keyPrefix string
	rawKey    string
}

var addressGroups = []addressGroup{
	{name: "house_registration", keyPrefix: "house_registration_", rawKey: "addressAccordingToHouseRegistration"},
	{name: "current_address", keyPrefix: "current_address_", rawKey: "currentAddress"},
	{name: "emergency_address", keyPrefix: "emergency_address_", rawKey: "emergencyAddress"},
}

var addressFields = []string{
	"house_number",
	"village_number",
	"alley",
	"road",
	"sub_district",
	"district",
	"province",
	"postal_code",
	"phone",
	"mobile",
}

// AddressField resolves one address component for a group using the fixed
// fallback chain: explicit structured field first, then the component parsed
// out of the group's free-text address, then "". A structured value always
// wins over a conflicting parse.
func AddressField(rec Record, groupName, field string) string {
	for _, g := range addressGroups {
		if g.name != groupName {
			continue
		}
		if v := rec.String(g.keyPrefix + field); v != "" {
			return v
		}
		return thaiaddress.Parse(rec.String(g.rawKey)).Get(field)
	}
	return ""
}

// Project flattens an application record into the field-name to display-value
// map consumed by the four-page government application template. Every value
// is a plain string and missing data always projects as ""; the rendering
// layer decides whether a blank shows as a dotted line or a dash.
func Project(rec Record) map[string]string {
	out := make(map[string]string)
	put := func(key, value string) { out[key] = value }

	// Personal information page.
	put("prefix", rec.String("prefix"))
	put("first_name", rec.String("firstName"))
	put("last_name", rec.String("lastName"))
	put("full_name", joinNonEmpty(" ",
		rec.String("prefix")+rec.String("firstName"), rec.String("lastName")))
	put("age", rec.String("age"))
	put("gender", rec.String("gender"))
	put("nationality", rec.String("nationality"))
	put("religion", rec.String("religion"))
	put("marital_status", rec.String("maritalStatus"))
	put("id_number", rec.String("idNumber"))

	// Date fields. The birth date is rendered as a day / Thai month name /
	// Gregorian year triple; the ID card dates use Buddhist-era slash dates.
	// The mix follows the printed form, which is inconsistent on purpose.
	birth := rec.String("birthDate")
	put("birth_day", thaidate.Day(birth))
	put("birth_month", thaidate.MonthName(birth))
	put("birth_year", thaidate.Year(birth))
	put("birth_date_full", thaidate.FullDate(birth))
	put("id_card_issue_date", thaidate.BuddhistSlashDate(rec.String("idCardIssueDate")))
	put("id_card_expiry_date", thaidate.BuddhistSlashDate(rec.String("idCardExpiryDate")))

	put("applied_position", rec.String("appliedPosition"))
	put("expected_salary", rec.String("expectedSalary"))
	put("department", rec.String("department"))

	// The three independent address blocks.
	for _, g := range addressGroups {
		for _, field := range addressFields {
			put(g.keyPrefix+field, AddressField(rec, g.name, field))
		}
	}

	// Qualification page lists, three template rows each.
	projectList(out, rec, "education", "education",
		[]string{"level", "institution", "major", "year", "gpa"})
	projectList(out, rec, "workExperience", "work",
		[]string{"workplace", "position", "from", "to", "salary", "reason_for_leaving"})
	projectList(out, rec, "previousGovernmentService", "government_service",
		[]string{"position", "department", "leaving_reason", "left_at"})

	// Emergency contact block.
	put("emergency_contact", rec.String("emergencyContact"))
	put("emergency_relationship", rec.String("emergencyRelationship"))
	put("emergency_phone", rec.String("emergencyPhone"))
	put("emergency_workplace", rec.String("emergencyWorkplace"))

	// Medical rights and staff page.
	put("medical_rights", rec.String("medicalRights"))
	staff := rec.Sub("staffInfo")
	put("staff_position", staff.String("position"))
	put("staff_department", staff.String("department"))
	put("staff_start_date", thaidate.BuddhistSlashDate(staff.String("startDate")))

	employers := rec.List("multipleEmployers")
	for i := 0; i < ListSlots; i++ {
		var e Record
		if i < len(employers) {
			e = employers[i]
		}
		put(fmt.Sprintf("employer_%d_name", i+1), e.String("name"))
		put(fmt.Sprintf("employer_%d_rights", i+1), e.String("rights"))
	}

	return out
}

// projectList fills exactly ListSlots rows of template keys named
// "<prefix>_<row>_<field>". Source entries use camelCase field names where the
// template uses snake_case.
func projectList(out map[string]string, rec Record, sourceKey, prefix string, fields []string) {
	entries := rec.List(sourceKey)
	for i := 0; i < ListSlots; i++ {
		var entry Record
		if i < len(entries) {
			entry = entries[i]
		}
		for _, field := range fields {
			out[fmt.Sprintf("%s_%d_%s", prefix, i+1, field)] = entry.String(camelCase(field))
		}
	}
}

func camelCase(snake string) string {
	parts := strings.Split(snake, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
