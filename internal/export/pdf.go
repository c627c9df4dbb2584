package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer writes the appraisal form as an A4 document. Thai text
// needs a UTF-8 font file; when FontPath is empty Render fails and the
// task falls back to the print renderer.
type PDFRenderer struct {
	FontPath string
}

func (r *PDFRenderer) Ext() string { return "pdf" }

func (r *PDFRenderer) Render(snap Snapshot, path string) error {
	if r.FontPath == "" {
		return fmt.Errorf("pdf: no UTF-8 font configured")
	}
	if _, err := os.Stat(r.FontPath); err != nil {
		return fmt.Errorf("pdf: font file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8Font("thai", "", r.FontPath)
	pdf.AddPage()

	pdf.SetFont("thai", "", 16)
	pdf.CellFormat(0, 10, "แบบประเมินผลการปฏิบัติงานประจำปี", "", 1, "C", false, 0, "")
	pdf.SetFont("thai", "", 12)
	pdf.CellFormat(0, 8, "บริษัท เจ้าพระยาทัวร์ริสท์โบ๊ท จำกัด", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	emp := snap.Employee
	pdf.Cell(0, 7, fmt.Sprintf("รหัสพนักงาน: %s    ชื่อ-สกุล: %s", emp.ID, emp.Name))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("ตำแหน่ง: %s    สังกัด: %s", emp.Position, emp.Department))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("วันที่ประเมิน: %s", emp.Date))
	pdf.Ln(10)

	for _, section := range snap.Sections {
		pdf.SetFont("thai", "", 13)
		pdf.CellFormat(0, 8, fmt.Sprintf("%s (%.0f%%)", section.Title, section.Weight), "B", 1, "L", false, 0, "")
		pdf.SetFont("thai", "", 11)
		for _, item := range section.Items {
			pdf.CellFormat(120, 7, item.Item.Title, "", 0, "L", false, 0, "")
			pdf.CellFormat(25, 7, fmt.Sprintf("%d / 5", item.Score), "", 0, "R", false, 0, "")
			pdf.CellFormat(0, 7, fmt.Sprintf("%.2f", item.Contribution), "", 1, "R", false, 0, "")
			if item.Comment != "" {
				pdf.SetFont("thai", "", 10)
				pdf.CellFormat(0, 6, "หมายเหตุ: "+item.Comment, "", 1, "L", false, 0, "")
				pdf.SetFont("thai", "", 11)
			}
		}
		pdf.CellFormat(0, 7, fmt.Sprintf("คะแนนหมวด: %.2f", section.Score), "", 1, "R", false, 0, "")
		pdf.Ln(3)
	}

	pdf.SetFont("thai", "", 11)
	a := snap.Attendance
	pdf.Cell(0, 7, fmt.Sprintf("ลาป่วย %d  ลากิจ %d  ขาดงาน %d  มาสาย %d", a.SickLeave, a.PersonalLeave, a.Absent, a.Late))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("ตักเตือนวาจา %d  ตักเตือนลายลักษณ์อักษร %d  พักงาน %d", a.VerbalWarning, a.WrittenWarning, a.Suspension))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("หักคะแนนรวม: %.2f", snap.Deduction))
	pdf.Ln(10)

	if snap.Feedback != "" {
		pdf.Cell(0, 7, "ความคิดเห็นเพิ่มเติม:")
		pdf.Ln(7)
		pdf.MultiCell(0, 6, snap.Feedback, "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("thai", "", 14)
	pdf.CellFormat(0, 9, fmt.Sprintf("คะแนนรวม: %.2f    เกรด: %s", snap.Total, snap.Grade), "T", 1, "R", false, 0, "")

	pdf.Ln(14)
	pdf.SetFont("thai", "", 11)
	pdf.CellFormat(95, 7, "ลงชื่อ ................................ ผู้รับการประเมิน", "", 0, "C", false, 0, "")
	pdf.CellFormat(95, 7, "ลงชื่อ ................................ ผู้ประเมิน", "", 1, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}
