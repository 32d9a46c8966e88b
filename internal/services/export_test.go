package services

import (
	"testing"

	"HSP-PORTAL/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMembersWorkbook(t *testing.T) {
	members := []models.Member{
		{
			EmployeeCode:   "EMP001",
			Prefix:         "นาย",
			FirstName:      "สมชาย",
			LastName:       "ใจดี",
			Position:       "พยาบาลวิชาชีพ",
			EmploymentType: models.EmploymentContract,
			StartDate:      "2023-10-01",
			Status:         models.MemberActive,
			Email:          "somchai@example.com",
			Phone:          "0891234567",
			Department:     &models.Department{Name: "กลุ่มการพยาบาล"},
		},
		{
			EmployeeCode: "EMP002",
			FirstName:    "สมหญิง",
			LastName:     "รักงาน",
			Status:       models.MemberOnLeave,
		},
	}

	f, err := BuildMembersWorkbook(members)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Members", "A1")
	require.NoError(t, err)
	assert.Equal(t, "รหัสพนักงาน", header)

	firstName, err := f.GetCellValue("Members", "C2")
	require.NoError(t, err)
	assert.Equal(t, "สมชาย", firstName)

	departmentName, err := f.GetCellValue("Members", "F2")
	require.NoError(t, err)
	assert.Equal(t, "กลุ่มการพยาบาล", departmentName)

	// Member without a department leaves the column blank
	emptyDept, err := f.GetCellValue("Members", "F3")
	require.NoError(t, err)
	assert.Equal(t, "", emptyDept)

	status, err := f.GetCellValue("Members", "I3")
	require.NoError(t, err)
	assert.Equal(t, "on_leave", status)
}

func TestBuildMembersWorkbookEmpty(t *testing.T) {
	f, err := BuildMembersWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Members")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
	assert.Len(t, rows[0], len(memberExportHeaders))
}
