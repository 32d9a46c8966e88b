package utils

// Thai name prefixes
var NamePrefixOptions = []string{
	"นาย",
	"นาง",
	"นางสาว",
	"Mr.",
	"Mrs.",
	"Ms.",
	"Miss",
}

// Thai provinces
var ProvinceOptions = []string{
	"กรุงเทพมหานคร",
	"กระบี่",
	"กาญจนบุรี",
	"กาฬสินธุ์",
	"กำแพงเพชร",
	"ขอนแก่น",
	"จันทบุรี",
	"ฉะเชิงเทรา",
	"ชลบุรี",
	"ชัยนาท",
	"ชัยภูมิ",
	"ชุมพร",
	"เชียงราย",
	"เชียงใหม่",
	"ตรัง",
	"ตราด",
	"ตาก",
	"นครนายก",
	"นครปฐม",
	"นครพนม",
	"นครราชสีมา",
	"นครศรีธรรมราช",
	"นครสวรรค์",
	"นนทบุรี",
	"นราธิวาส",
	"น่าน",
	"บึงกาฬ",
	"บุรีรัมย์",
	"ปทุมธานี",
	"ประจวบคีรีขันธ์",
	"ปราจีนบุรี",
	"ปัตตานี",
	"พระนครศรีอยุธยา",
	"พะเยา",
	"พังงา",
	"พัทลุง",
	"พิจิตร",
	"พิษณุโลก",
	"เพชรบุรี",
	"เพชรบูรณ์",
	"แพร่",
	"ภูเก็ต",
	"มหาสารคาม",
	"มุกดาหาร",
	"แม่ฮ่องสอน",
	"ยโสธร",
	"ยะลา",
	"ร้อยเอ็ด",
	"ระนอง",
	"ระยอง",
	"ราชบุรี",
	"ลพบุรี",
	"ลำปาง",
	"ลำพูน",
	"เลย",
	"ศรีสะเกษ",
	"สกลนคร",
	"สงขลา",
	"สตูล",
	"สมุทรปราการ",
	"สมุทรสงคราม",
	"สมุทรสาคร",
	"สระแก้ว",
	"สระบุรี",
	"สิงห์บุรี",
	"สุโขทัย",
	"สุพรรณบุรี",
	"สุราษฎร์ธานี",
	"สุรินทร์",
	"หนองคาย",
	"หนองบัวลำภู",
	"อ่างทอง",
	"อำนาจเจริญ",
	"อุดรธานี",
	"อุตรดิตถ์",
	"อุทัยธานี",
	"อุบลราชธานี",
}

// Marital status options
var MaritalStatusOptions = []string{
	"โสด",
	"สมรส",
	"หย่าร้าง",
	"หม้าย",
}

// Education level options for the application form
var EducationLevelOptions = []string{
	"มัธยมศึกษาตอนต้น",
	"มัธยมศึกษาตอนปลาย",
	"ปวช.",
	"ปวส.",
	"ปริญญาตรี",
	"ปริญญาโท",
	"ปริญญาเอก",
}

// Medical rights options (สิทธิการรักษาพยาบาล)
var MedicalRightsOptions = []string{
	"สิทธิข้าราชการ",
	"สิทธิประกันสังคม",
	"สิทธิหลักประกันสุขภาพถ้วนหน้า (บัตรทอง)",
	"จ่ายเอง",
}

// Employment type options for member records
var EmploymentTypeOptions = []string{
	"permanent",
	"contract",
	"gov_worker",
	"daily_wage",
}

// FormOptions bundles every option list the application form needs in one
// response
type FormOptions struct {
	NamePrefixes    []string `json:"name_prefixes"`
	Provinces       []string `json:"provinces"`
	MaritalStatuses []string `json:"marital_statuses"`
	EducationLevels []string `json:"education_levels"`
	MedicalRights   []string `json:"medical_rights"`
	EmploymentTypes []string `json:"employment_types"`
}

func GetFormOptions() FormOptions {
	return FormOptions{
		NamePrefixes:    NamePrefixOptions,
		Provinces:       ProvinceOptions,
		MaritalStatuses: MaritalStatusOptions,
		EducationLevels: EducationLevelOptions,
		MedicalRights:   MedicalRightsOptions,
		EmploymentTypes: EmploymentTypeOptions,
	}
}
