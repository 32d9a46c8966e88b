package services

import (
	"fmt"

	"HSP-PORTAL/internal/models"

	"github.com/xuri/excelize/v2"
)

type ExportService struct {
	members    *MemberService
	statistics *StatisticsService
}

func NewExportService(members *MemberService, statistics *StatisticsService) *ExportService {
	return &ExportService{members: members, statistics: statistics}
}

var memberExportHeaders = []string{
	"รหัสพนักงาน",
	"คำนำหน้า",
	"ชื่อ",
	"นามสกุล",
	"ตำแหน่ง",
	"หน่วยงาน",
	"ประเภทการจ้าง",
	"วันที่เริ่มงาน",
	"สถานะ",
	"อีเมล",
	"เบอร์โทรศัพท์",
}

// BuildMembersWorkbook renders the member list as an Excel workbook
func BuildMembersWorkbook(members []models.Member) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Members"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range memberExportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, member := range members {
		departmentName := ""
		if member.Department != nil {
			departmentName = member.Department.Name
		}

		values := []interface{}{
			member.EmployeeCode,
			member.Prefix,
			member.FirstName,
			member.LastName,
			member.Position,
			departmentName,
			string(member.EmploymentType),
			member.StartDate,
			string(member.Status),
			member.Email,
			member.Phone,
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	// Widen the name and email columns a bit for readability
	if err := f.SetColWidth(sheet, "A", "K", 18); err != nil {
		return nil, fmt.Errorf("failed to set column widths: %w", err)
	}

	return f, nil
}

// ExportMembers builds the workbook for the filtered member list and records
// the export event
func (s *ExportService) ExportMembers(filter *MemberFilter) (*excelize.File, error) {
	members, _, err := s.members.List(filter)
	if err != nil {
		return nil, err
	}

	f, err := BuildMembersWorkbook(members)
	if err != nil {
		return nil, err
	}

	s.statistics.RecordMemberExport()

	return f, nil
}
