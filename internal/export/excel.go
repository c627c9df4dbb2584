package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "ผลการประเมิน"

// ExcelRenderer writes the appraisal as a single-sheet workbook:
// header block, one row per scored item, attendance breakdown, totals.
type ExcelRenderer struct{}

func (r *ExcelRenderer) Ext() string { return "xlsx" }

func (r *ExcelRenderer) Render(snap Snapshot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}

	emp := snap.Employee
	_ = f.SetCellValue(summarySheet, "A1", "แบบประเมินผลการปฏิบัติงานประจำปี")
	_ = f.SetCellValue(summarySheet, "A2", "บริษัท เจ้าพระยาทัวร์ริสท์โบ๊ท จำกัด")
	_ = f.SetCellValue(summarySheet, "A4", "รหัสพนักงาน")
	_ = f.SetCellValue(summarySheet, "B4", emp.ID)
	_ = f.SetCellValue(summarySheet, "A5", "ชื่อ-สกุล")
	_ = f.SetCellValue(summarySheet, "B5", emp.Name)
	_ = f.SetCellValue(summarySheet, "A6", "ตำแหน่ง")
	_ = f.SetCellValue(summarySheet, "B6", emp.Position)
	_ = f.SetCellValue(summarySheet, "A7", "สังกัด")
	_ = f.SetCellValue(summarySheet, "B7", emp.Department)
	_ = f.SetCellValue(summarySheet, "A8", "วันที่ประเมิน")
	_ = f.SetCellValue(summarySheet, "B8", emp.Date)

	row := 10
	_ = f.SetCellValue(summarySheet, cell("A", row), "หมวด")
	_ = f.SetCellValue(summarySheet, cell("B", row), "หัวข้อ")
	_ = f.SetCellValue(summarySheet, cell("C", row), "น้ำหนัก")
	_ = f.SetCellValue(summarySheet, cell("D", row), "คะแนน (1-5)")
	_ = f.SetCellValue(summarySheet, cell("E", row), "คะแนนถ่วง")
	_ = f.SetCellValue(summarySheet, cell("F", row), "หมายเหตุ")
	header := row
	row++

	for _, section := range snap.Sections {
		for _, item := range section.Items {
			_ = f.SetCellValue(summarySheet, cell("A", row), section.Title)
			_ = f.SetCellValue(summarySheet, cell("B", row), item.Item.Title)
			_ = f.SetCellValue(summarySheet, cell("C", row), item.Item.Weight)
			_ = f.SetCellValue(summarySheet, cell("D", row), item.Score)
			_ = f.SetCellValue(summarySheet, cell("E", row), round2(item.Contribution))
			_ = f.SetCellValue(summarySheet, cell("F", row), item.Comment)
			row++
		}
		_ = f.SetCellValue(summarySheet, cell("B", row), fmt.Sprintf("รวม %s", section.Title))
		_ = f.SetCellValue(summarySheet, cell("E", row), round2(section.Score))
		row++
	}

	row++
	a := snap.Attendance
	attendance := []struct {
		label string
		count int
	}{
		{"ลาป่วย", a.SickLeave},
		{"ลากิจ", a.PersonalLeave},
		{"ขาดงาน", a.Absent},
		{"มาสาย", a.Late},
		{"ลาคลอด", a.MaternityLeave},
		{"ลาบวช", a.OrdinationLeave},
		{"ตักเตือนวาจา", a.VerbalWarning},
		{"ตักเตือนลายลักษณ์อักษร", a.WrittenWarning},
		{"พักงาน", a.Suspension},
	}
	_ = f.SetCellValue(summarySheet, cell("A", row), "สถิติการมาทำงาน")
	row++
	for _, entry := range attendance {
		_ = f.SetCellValue(summarySheet, cell("B", row), entry.label)
		_ = f.SetCellValue(summarySheet, cell("C", row), entry.count)
		row++
	}
	_ = f.SetCellValue(summarySheet, cell("B", row), "หักคะแนนรวม")
	_ = f.SetCellValue(summarySheet, cell("C", row), round2(snap.Deduction))
	row += 2

	if snap.Feedback != "" {
		_ = f.SetCellValue(summarySheet, cell("A", row), "ความคิดเห็นเพิ่มเติม")
		_ = f.SetCellValue(summarySheet, cell("B", row), snap.Feedback)
		row += 2
	}

	_ = f.SetCellValue(summarySheet, cell("A", row), "คะแนนรวม")
	_ = f.SetCellValue(summarySheet, cell("B", row), round2(snap.Total))
	_ = f.SetCellValue(summarySheet, cell("C", row), "เกรด")
	_ = f.SetCellValue(summarySheet, cell("D", row), snap.Grade)

	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetCellStyle(summarySheet, cell("A", header), cell("F", header), style)
		_ = f.SetCellStyle(summarySheet, "A1", "A2", style)
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 24)
	_ = f.SetColWidth(summarySheet, "B", "B", 48)
	_ = f.SetColWidth(summarySheet, "C", "F", 14)

	return f.SaveAs(path)
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
