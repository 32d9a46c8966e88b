package projector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressField_StructuredWinsOverRawText(t *testing.T) {
	rec := Record{
		"house_registration_sub_district":     "บางนาใต้",
		"addressAccordingToHouseRegistration": "บ้านเลขที่ 9 หมู่ 1 ตำบลอื่น อำเภออื่น จังหวัดอื่น 11111",
	}

	assert.Equal(t, "บางนาใต้", AddressField(rec, "house_registration", "sub_district"))
}

func TestAddressField_FallsBackToParsedRawText(t *testing.T) {
	rec := Record{
		"currentAddress": "บ้านเลขที่ 123 หมู่ 4 ซอยสุขุมวิท 42 ถนนสุขุมวิท ตำบลบางนาใต้ อำเภอเขตบางนา จังหวัดกรุงเทพมหานคร 10260",
	}

	assert.Equal(t, "123", AddressField(rec, "current_address", "house_number"))
	assert.Equal(t, "เขตบางนา", AddressField(rec, "current_address", "district"))
	assert.Equal(t, "10260", AddressField(rec, "current_address", "postal_code"))
}

func TestAddressField_MissingEverything(t *testing.T) {
	assert.Empty(t, AddressField(Record{}, "emergency_address", "province"))
	assert.Empty(t, AddressField(Record{}, "unknown_group", "province"))
}

func TestAddressField_GroupsAreIndependent(t *testing.T) {
	rec := Record{
		"currentAddress":   "บ้านเลขที่ 5 หมู่ 2 ตำบลบ้านใหม่ อำเภอเมือง จังหวัดเชียงใหม่ 50000",
		"emergencyAddress": "บ้านเลขที่ 77 หมู่ 9 ตำบลท่าศาลา อำเภอเมือง จังหวัดลำปาง 52000",
	}

	assert.Equal(t, "เชียงใหม่", AddressField(rec, "current_address", "province"))
	assert.Equal(t, "ลำปาง", AddressField(rec, "emergency_address", "province"))
	assert.Empty(t, AddressField(rec, "house_registration", "province"))
}

func TestProject_PersonalFields(t *testing.T) {
	fields := Project(Record{
		"prefix":    "นาย",
		"firstName": "สมชาย",
		"lastName":  "ใจดี",
		"age":       float64(32),
		"idNumber":  "1103700123456",
		"birthDate": "1992-03-15",
	})

	assert.Equal(t, "นาย", fields["prefix"])
	assert.Equal(t, "สมชาย", fields["first_name"])
	assert.Equal(t, "นายสมชาย ใจดี", fields["full_name"])
	assert.Equal(t, "32", fields["age"])
	assert.Equal(t, "15", fields["birth_day"])
	assert.Equal(t, "มีนาคม", fields["birth_month"])
	assert.Equal(t, "1992", fields["birth_year"])
}

func TestProject_IDCardDatesUseBuddhistEra(t *testing.T) {
	fields := Project(Record{
		"idCardIssueDate":  "2020-01-02",
		"idCardExpiryDate": "2028-01-02",
	})

	assert.Equal(t, "2/1/2563", fields["id_card_issue_date"])
	assert.Equal(t, "2/1/2571", fields["id_card_expiry_date"])
}

func TestProject_ListsCapAtThreeSlots(t *testing.T) {
	fields := Project(Record{
		"education": []any{
			map[string]any{"level": "ปริญญาตรี", "institution": "ม.ก."},
			map[string]any{"level": "ปริญญาโท", "institution": "ม.ข."},
			map[string]any{"level": "ปริญญาเอก", "institution": "ม.ค."},
			map[string]any{"level": "หลักสูตรพิเศษ", "institution": "ม.ง."},
		},
	})

	assert.Equal(t, "ปริญญาตรี", fields["education_1_level"])
	assert.Equal(t, "ปริญญาโท", fields["education_2_level"])
	assert.Equal(t, "ปริญญาเอก", fields["education_3_level"])
	_, exists := fields["education_4_level"]
	assert.False(t, exists, "entries beyond the third slot must be dropped")
}

func TestProject_ShortListsLeaveBlankSlots(t *testing.T) {
	fields := Project(Record{
		"workExperience": []any{
			map[string]any{"workplace": "รพ.บางนา", "position": "พยาบาล", "reasonForLeaving": "ย้ายภูมิลำเนา"},
		},
	})

	assert.Equal(t, "รพ.บางนา", fields["work_1_workplace"])
	assert.Equal(t, "ย้ายภูมิลำเนา", fields["work_1_reason_for_leaving"])
	assert.Empty(t, fields["work_2_workplace"])
	assert.Empty(t, fields["work_3_workplace"])
}

func TestProject_MissingFieldsRenderEmptyNotAbsent(t *testing.T) {
	fields := Project(Record{})

	for _, key := range []string{
		"first_name", "id_number", "birth_day",
		"house_registration_province", "current_address_postal_code",
		"emergency_contact", "medical_rights", "staff_position",
		"education_1_level", "work_3_salary", "government_service_1_position",
	} {
		v, exists := fields[key]
		assert.True(t, exists, "key %s should be present", key)
		assert.Empty(t, v, "key %s should be blank", key)
	}
}

func TestProject_AllAddressGroupsPopulated(t *testing.T) {
	fields := Project(Record{
		"addressAccordingToHouseRegistration": "บ้านเลขที่ 123 หมู่ 4 ซอยสุขุมวิท 42 ถนนสุขุมวิท ตำบลบางนาใต้ อำเภอเขตบางนา จังหวัดกรุงเทพมหานคร 10260",
		"current_address_house_number":        "456",
		"emergency_address_phone":             "021234567",
	})

	assert.Equal(t, "123", fields["house_registration_house_number"])
	assert.Equal(t, "สุขุมวิท 42", fields["house_registration_alley"])
	assert.Equal(t, "456", fields["current_address_house_number"])
	assert.Equal(t, "021234567", fields["emergency_address_phone"])
}

func TestProject_StaffInfoAndEmployers(t *testing.T) {
	fields := Project(Record{
		"medicalRights": "สิทธิประกันสังคม",
		"staffInfo": map[string]any{
			"position":   "นักวิชาการ",
			"department": "กลุ่มงานบริหาร",
			"startDate":  "2024-10-01",
		},
		"multipleEmployers": []any{
			map[string]any{"name": "รพ.ศิริราช", "rights": "ประกันสังคม"},
		},
	})

	assert.Equal(t, "สิทธิประกันสังคม", fields["medical_rights"])
	assert.Equal(t, "นักวิชาการ", fields["staff_position"])
	assert.Equal(t, "1/10/2567", fields["staff_start_date"])
	assert.Equal(t, "รพ.ศิริราช", fields["employer_1_name"])
	assert.Empty(t, fields["employer_2_name"])
}

func TestRecord_StringCoercions(t *testing.T) {
	rec := Record{
		"s": "  padded  ",
		"f": float64(15000),
		"i": 7,
		"n": nil,
		"m": map[string]any{"not": "text"},
	}

	assert.Equal(t, "padded", rec.String("s"))
	assert.Equal(t, "15000", rec.String("f"))
	assert.Equal(t, "7", rec.String("i"))
	assert.Empty(t, rec.String("n"))
	assert.Empty(t, rec.String("m"))
	assert.Empty(t, rec.String("absent"))
}
