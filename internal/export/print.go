package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PrintRenderer is the degraded path: a plain-text dump of the snapshot,
// good enough to print when the document renderers are unavailable.
type PrintRenderer struct{}

func (r *PrintRenderer) Ext() string { return "txt" }

func (r *PrintRenderer) Render(snap Snapshot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var b strings.Builder
	emp := snap.Employee
	fmt.Fprintln(&b, "แบบประเมินผลการปฏิบัติงานประจำปี")
	fmt.Fprintln(&b, "บริษัท เจ้าพระยาทัวร์ริสท์โบ๊ท จำกัด")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "รหัสพนักงาน: %s\n", emp.ID)
	fmt.Fprintf(&b, "ชื่อ-สกุล: %s\n", emp.Name)
	fmt.Fprintf(&b, "ตำแหน่ง: %s (%s)\n", emp.Position, emp.Department)
	fmt.Fprintf(&b, "วันที่ประเมิน: %s\n", emp.Date)
	fmt.Fprintln(&b)

	for _, section := range snap.Sections {
		fmt.Fprintf(&b, "== %s (%.0f%%) ==\n", section.Title, section.Weight)
		for _, item := range section.Items {
			fmt.Fprintf(&b, "  %-50s %d/5  %.2f\n", item.Item.Title, item.Score, item.Contribution)
			if item.Comment != "" {
				fmt.Fprintf(&b, "    หมายเหตุ: %s\n", item.Comment)
			}
		}
		fmt.Fprintf(&b, "  คะแนนหมวด: %.2f\n\n", section.Score)
	}

	a := snap.Attendance
	fmt.Fprintf(&b, "ลาป่วย %d  ลากิจ %d  ขาดงาน %d  มาสาย %d  ตักเตือนวาจา %d  ตักเตือนลายลักษณ์อักษร %d  พักงาน %d\n",
		a.SickLeave, a.PersonalLeave, a.Absent, a.Late, a.VerbalWarning, a.WrittenWarning, a.Suspension)
	fmt.Fprintf(&b, "หักคะแนนรวม: %.2f\n\n", snap.Deduction)

	if snap.Feedback != "" {
		fmt.Fprintf(&b, "ความคิดเห็นเพิ่มเติม: %s\n\n", snap.Feedback)
	}
	fmt.Fprintf(&b, "คะแนนรวม: %.2f  เกรด: %s\n", snap.Total, snap.Grade)

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
