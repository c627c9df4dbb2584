package session

// defaultRoster is the built-in employee list used on first run, before the
// admin surface or a bulk import replaces it.
func defaultRoster() []Employee {
	return []Employee{
		{ID: "226001", Name: "สมชาย วงศ์ท่าเรือ", JobType: "ฝ่ายปฏิบัติการ", Position: "พนักงานขับเรือ", Department: "ฝ่ายปฏิบัติการ"},
		{ID: "226002", Name: "ประวิทย์ แม่น้ำใส", JobType: "ฝ่ายปฏิบัติการ", Position: "พนักงานขับเรือ", Department: "ฝ่ายปฏิบัติการ"},
		{ID: "226003", Name: "อนุชา ท้ายเรือทอง", JobType: "ฝ่ายปฏิบัติการ", Position: "พนักงานประจำเรือ", Department: "ฝ่ายปฏิบัติการ"},
		{ID: "226004", Name: "กิตติพงษ์ คลื่นนที", JobType: "ฝ่ายปฏิบัติการ", Position: "พนักงานประจำเรือ", Department: "ฝ่ายปฏิบัติการ"},
		{ID: "226005", Name: "ศักดิ์ชัย เรือด่วน", JobType: "ฝ่ายปฏิบัติการ", Position: "พนักงานขับเรือ", Department: "ฝ่ายปฏิบัติการ"},
		{ID: "226006", Name: "ธีรศักดิ์ ท่าน้ำเย็น", JobType: "ฝ่ายปฏิบัติการ", Position: "ช่างซ่อมบำรุง", Department: "ฝ่ายปฏิบัติการ"},
		{ID: "226007", Name: "วิรัตน์ สายชล", JobType: "ฝ่ายปฏิบัติการ", Position: "ช่างซ่อมบำรุง", Department: "ฝ่ายปฏิบัติการ"},
		{ID: "221001", Name: "จารุวรรณ ศรีสำนัก", JobType: "สำนักงาน", Position: "เจ้าหน้าที่ธุรการ", Department: "สำนักงาน"},
		{ID: "221002", Name: "นภัสสร บัญชีดี", JobType: "สำนักงาน", Position: "เจ้าหน้าที่ธุรการ", Department: "สำนักงาน"},
		{ID: "223001", Name: "ปิยะดา ตั๋วทอง", JobType: "ฝ่ายขาย", Position: "พนักงานขายตั๋ว", Department: "ฝ่ายขาย"},
		{ID: "223002", Name: "รัตนา ท่าช้างงาม", JobType: "ฝ่ายขาย", Position: "พนักงานขายตั๋ว", Department: "ฝ่ายขาย"},
	}
}
