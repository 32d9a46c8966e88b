package thaiaddress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_FullKeywordAddress(t *testing.T) {
	addr := Parse("บ้านเลขที่ 123 หมู่ 4 ซอยสุขุมวิท 42 ถนนสุขุมวิท ตำบลบางนาใต้ อำเภอเขตบางนา จังหวัดกรุงเทพมหานคร 10260")

	assert.Equal(t, "123", addr.HouseNumber)
	assert.Equal(t, "4", addr.VillageNumber)
	assert.Equal(t, "สุขุมวิท 42", addr.Alley)
	assert.Equal(t, "สุขุมวิท", addr.Road)
	assert.Equal(t, "บางนาใต้", addr.SubDistrict)
	assert.Equal(t, "เขตบางนา", addr.District)
	assert.Equal(t, "กรุงเทพมหานคร", addr.Province)
	assert.Equal(t, "10260", addr.PostalCode)
}

func TestParse_WithoutAlleyAndRoad(t *testing.T) {
	addr := Parse("บ้านเลขที่ 99/1 หมู่ 7 ตำบลหนองปรือ อำเภอบางละมุง จังหวัดชลบุรี 20150")

	assert.Equal(t, "99/1", addr.HouseNumber)
	assert.Equal(t, "7", addr.VillageNumber)
	assert.Empty(t, addr.Alley)
	assert.Empty(t, addr.Road)
	assert.Equal(t, "หนองปรือ", addr.SubDistrict)
	assert.Equal(t, "บางละมุง", addr.District)
	assert.Equal(t, "ชลบุรี", addr.Province)
	assert.Equal(t, "20150", addr.PostalCode)
}

func TestParse_BangkokKeywordForms(t *testing.T) {
	addr := Parse("บ้านเลขที่ 55 ถนนพหลโยธิน แขวงจตุจักร เขตจตุจักร จังหวัดกรุงเทพมหานคร 10900")

	assert.Equal(t, "55", addr.HouseNumber)
	assert.Equal(t, "พหลโยธิน", addr.Road)
	assert.Equal(t, "จตุจักร", addr.SubDistrict)
	assert.Equal(t, "จตุจักร", addr.District)
	assert.Equal(t, "กรุงเทพมหานคร", addr.Province)
	assert.Equal(t, "10900", addr.PostalCode)
}

func TestParse_EmptyInput(t *testing.T) {
	assert.True(t, Parse("").IsZero())
	assert.True(t, Parse("   ").IsZero())
}

func TestParse_CommaFallbackPositional(t *testing.T) {
	addr := Parse("A, B, C, D, E, F, G, H")

	assert.Equal(t, Address{
		HouseNumber:   "A",
		VillageNumber: "B",
		Alley:         "C",
		Road:          "D",
		SubDistrict:   "E",
		District:      "F",
		Province:      "G",
		PostalCode:    "H",
	}, addr)
}

func TestParse_CommaFallbackShortList(t *testing.T) {
	addr := Parse("A, B, C, D")

	assert.Equal(t, "A", addr.HouseNumber)
	assert.Equal(t, "B", addr.VillageNumber)
	assert.Equal(t, "C", addr.Alley)
	assert.Equal(t, "D", addr.Road)
	assert.Empty(t, addr.SubDistrict)
	assert.Empty(t, addr.PostalCode)
}

func TestParse_TooFewCommaParts(t *testing.T) {
	assert.True(t, Parse("A, B").IsZero())
	assert.True(t, Parse("just some free text").IsZero())
}

func TestParse_Idempotent(t *testing.T) {
	input := "บ้านเลขที่ 123 หมู่ 4 ซอยสุขุมวิท 42 ถนนสุขุมวิท ตำบลบางนาใต้ อำเภอเขตบางนา จังหวัดกรุงเทพมหานคร 10260"
	first := Parse(input)
	second := Parse(input)
	assert.Equal(t, first, second)
}

func TestParse_MostSpecificPatternWins(t *testing.T) {
	// The full 8-field form also satisfies looser patterns only after the
	// alley and road segments are consumed; the cascade must populate all
	// eight fields rather than settle for a partial match.
	addr := Parse("บ้านเลขที่ 11 หมู่ 2 ซอยลาดพร้าว 101 ถนนลาดพร้าว ตำบลคลองจั่น อำเภอบางกะปิ จังหวัดกรุงเทพมหานคร 10240")

	assert.Equal(t, "ลาดพร้าว 101", addr.Alley)
	assert.Equal(t, "ลาดพร้าว", addr.Road)
	assert.Equal(t, "10240", addr.PostalCode)
}

func TestGet_FieldNames(t *testing.T) {
	addr := Address{SubDistrict: "บางนาใต้", Province: "กรุงเทพมหานคร"}

	assert.Equal(t, "บางนาใต้", addr.Get("sub_district"))
	assert.Equal(t, "กรุงเทพมหานคร", addr.Get("province"))
	assert.Empty(t, addr.Get("road"))
	assert.Empty(t, addr.Get("no_such_field"))
}
