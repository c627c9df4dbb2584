package catalog

// Template data for the Chao Phraya Tourist Boat appraisal form. Weights
// inside a section sum to 100; section weights carry the conventional
// 50/20/30/0 split before admin overrides.

func levels(improve, fair, good, veryGood, excellent string) []CriteriaLevel {
	return []CriteriaLevel{
		{Score: 1, Description: "ปรับปรุง: " + improve},
		{Score: 2, Description: "พอใช้: " + fair},
		{Score: 3, Description: "ดี: " + good},
		{Score: 4, Description: "ดีมาก: " + veryGood},
		{Score: 5, Description: "ดีเลิศ: " + excellent},
	}
}

func competencySection() Section {
	return Section{
		ID:            SectionCompetency,
		Title:         "ส่วนที่ 2 : สมรรถนะและพฤติกรรม (Competency)",
		SectionWeight: 20,
		Items: []Item{
			{
				ID:          "p2-i1",
				Title:       "การทำงานเป็นทีม",
				Description: "ให้ความร่วมมือกับเพื่อนร่วมงานและหน่วยงานอื่น",
				Weight:      25,
				Criteria: levels(
					"ไม่ให้ความร่วมมือ ทำงานลำพัง",
					"ร่วมมือเมื่อถูกร้องขอ",
					"ร่วมมือสม่ำเสมอ",
					"ช่วยเหลือผู้อื่นโดยไม่ต้องร้องขอ",
					"เป็นแกนหลักของทีม ประสานงานได้ทุกฝ่าย",
				),
			},
			{
				ID:          "p2-i2",
				Title:       "การสื่อสาร",
				Description: "ถ่ายทอดข้อมูลได้ถูกต้อง ชัดเจน ทันเวลา",
				Weight:      25,
				Criteria: levels(
					"สื่อสารคลาดเคลื่อนบ่อยครั้ง",
					"สื่อสารได้แต่ต้องทวนซ้ำ",
					"สื่อสารถูกต้องชัดเจน",
					"สื่อสารได้ดีทั้งภายในและกับลูกค้า",
					"สื่อสารโน้มน้าวและแก้สถานการณ์เฉพาะหน้าได้",
				),
			},
			{
				ID:          "p2-i3",
				Title:       "ความรับผิดชอบ",
				Description: "รับผิดชอบงานที่ได้รับมอบหมายจนสำเร็จ",
				Weight:      25,
				Criteria: levels(
					"ละทิ้งงานหรือส่งงานล่าช้าเป็นประจำ",
					"ต้องติดตามทวงถามจึงส่งงาน",
					"ส่งงานครบถ้วนตามกำหนด",
					"รับผิดชอบเกินขอบเขตงานของตน",
					"เป็นที่ไว้วางใจให้ดูแลงานสำคัญ",
				),
			},
			{
				ID:          "p2-i4",
				Title:       "การพัฒนาตนเอง",
				Description: "เรียนรู้งานใหม่และปรับปรุงวิธีทำงาน",
				Weight:      25,
				Criteria: levels(
					"ไม่สนใจเรียนรู้สิ่งใหม่",
					"เรียนรู้เมื่อถูกกำหนด",
					"สนใจเรียนรู้และนำมาใช้",
					"เสนอแนวทางปรับปรุงงาน",
					"ริเริ่มพัฒนางานจนเกิดผลชัดเจน",
				),
			},
		},
	}
}

func attendanceSection() Section {
	return Section{
		ID:            SectionAttendance,
		Title:         "ส่วนที่ 3 : การมาปฏิบัติงานและวินัย (Attendance & Discipline)",
		SectionWeight: 30,
	}
}

func feedbackSection() Section {
	return Section{
		ID:            SectionFeedback,
		Title:         "ส่วนที่ 4 : ความคิดเห็นเพิ่มเติม (Feedback)",
		SectionWeight: 0,
	}
}

func performanceSection(items []Item) Section {
	return Section{
		ID:            SectionPerformance,
		Title:         "ส่วนที่ 1 : ผลการปฏิบัติงาน (Performance)",
		SectionWeight: 50,
		Items:         items,
	}
}

func template(performanceItems []Item) []Section {
	return []Section{
		performanceSection(performanceItems),
		competencySection(),
		attendanceSection(),
		feedbackSection(),
	}
}

var defaultTemplate = template([]Item{
	{
		ID:          "p1-i1",
		Title:       "คุณภาพของงาน",
		Description: "ผลงานถูกต้อง เรียบร้อย ตามมาตรฐานที่กำหนด",
		Weight:      30,
		Criteria: levels(
			"งานผิดพลาดบ่อย ต้องแก้ไขซ้ำ",
			"งานผิดพลาดบ้าง แก้ไขได้",
			"งานถูกต้องตามมาตรฐาน",
			"งานถูกต้องและประณีตกว่ามาตรฐาน",
			"งานไร้ข้อผิดพลาด เป็นแบบอย่างได้",
		),
	},
	{
		ID:          "p1-i2",
		Title:       "ปริมาณงาน",
		Description: "ปริมาณงานสำเร็จเทียบกับเป้าหมาย",
		Weight:      30,
		Criteria: levels(
			"ต่ำกว่าเป้าหมายมาก",
			"ต่ำกว่าเป้าหมายเล็กน้อย",
			"ตามเป้าหมาย",
			"เกินเป้าหมาย",
			"เกินเป้าหมายอย่างต่อเนื่อง",
		),
	},
	{
		ID:          "p1-i3",
		Title:       "ความตรงต่อเวลาของงาน",
		Description: "ส่งมอบงานภายในกำหนดเวลา",
		Weight:      20,
		Criteria: levels(
			"ล่าช้าเป็นประจำ",
			"ล่าช้าบางครั้ง",
			"ตรงเวลา",
			"เร็วกว่ากำหนดบางงาน",
			"เร็วกว่ากำหนดสม่ำเสมอ",
		),
	},
	{
		ID:          "p1-i4",
		Title:       "การใช้ทรัพยากร",
		Description: "ใช้วัสดุ อุปกรณ์ และเวลาอย่างคุ้มค่า",
		Weight:      20,
		Criteria: levels(
			"สิ้นเปลืองเกินจำเป็น",
			"ใช้ทรัพยากรได้พอประมาณ",
			"ใช้ทรัพยากรคุ้มค่า",
			"ช่วยลดค่าใช้จ่ายของหน่วยงาน",
			"เสนอแนวทางประหยัดที่ใช้ได้จริง",
		),
	},
})

var positionTemplates = map[string][]Section{
	"พนักงานขับเรือ": template([]Item{
		{
			ID:          "p1-i1",
			Title:       "ความปลอดภัยในการเดินเรือ",
			Description: "ควบคุมเรือตามกฎการเดินเรือและมาตรฐานความปลอดภัย",
			Weight:      40,
			Criteria: levels(
				"ฝ่าฝืนกฎเดินเรือหรือเกิดเหตุจากความประมาท",
				"ปฏิบัติตามกฎแต่ต้องตักเตือน",
				"ปฏิบัติตามกฎครบถ้วน",
				"คาดการณ์และหลีกเลี่ยงความเสี่ยงได้ดี",
				"ไม่มีเหตุการณ์เสี่ยงตลอดรอบประเมิน เป็นแบบอย่าง",
			),
		},
		{
			ID:          "p1-i2",
			Title:       "ความตรงต่อเวลาของรอบเรือ",
			Description: "ออกและถึงท่าตามตารางเดินเรือ",
			Weight:      25,
			Criteria: levels(
				"คลาดเคลื่อนจากตารางบ่อยครั้ง",
				"คลาดเคลื่อนบ้างแต่แจ้งล่วงหน้า",
				"ตรงตารางเป็นส่วนใหญ่",
				"ตรงตารางสม่ำเสมอ",
				"ตรงตารางและช่วยปรับรอบชดเชยให้เพื่อนร่วมงาน",
			),
		},
		{
			ID:          "p1-i3",
			Title:       "การตรวจสภาพเรือก่อนออกท่า",
			Description: "ตรวจเครื่องยนต์ อุปกรณ์ชูชีพ และแจ้งข้อบกพร่อง",
			Weight:      20,
			Criteria: levels(
				"ไม่ตรวจตามรายการที่กำหนด",
				"ตรวจไม่ครบรายการ",
				"ตรวจครบตามรายการ",
				"ตรวจครบและบันทึกรายงานสม่ำเสมอ",
				"พบและป้องกันข้อบกพร่องก่อนเกิดเหตุ",
			),
		},
		{
			ID:          "p1-i4",
			Title:       "การประหยัดเชื้อเพลิง",
			Description: "ควบคุมรอบเครื่องและเส้นทางให้สิ้นเปลืองน้อย",
			Weight:      15,
			Criteria: levels(
				"สิ้นเปลืองสูงกว่าเกณฑ์มาก",
				"สิ้นเปลืองสูงกว่าเกณฑ์เล็กน้อย",
				"อยู่ในเกณฑ์",
				"ต่ำกว่าเกณฑ์",
				"ต่ำกว่าเกณฑ์ต่อเนื่องทุกเดือน",
			),
		},
	}),
	"พนักงานประจำเรือ": template([]Item{
		{
			ID:          "p1-i1",
			Title:       "ความปลอดภัยของผู้โดยสาร",
			Description: "ดูแลการขึ้นลงเรือ ผูกเชือก และอุปกรณ์ชูชีพ",
			Weight:      35,
			Criteria: levels(
				"ละเลยขั้นตอนความปลอดภัย",
				"ปฏิบัติตามเมื่อถูกกำชับ",
				"ปฏิบัติตามขั้นตอนครบถ้วน",
				"ดูแลผู้โดยสารกลุ่มเสี่ยงเป็นพิเศษ",
				"จัดการสถานการณ์ฉุกเฉินได้อย่างถูกต้อง",
			),
		},
		{
			ID:          "p1-i2",
			Title:       "การบริการผู้โดยสาร",
			Description: "ให้ข้อมูลท่าเรือและช่วยเหลือผู้โดยสารด้วยความสุภาพ",
			Weight:      30,
			Criteria: levels(
				"ได้รับข้อร้องเรียนเรื่องบริการ",
				"บริการตามหน้าที่ขั้นต่ำ",
				"บริการสุภาพเรียบร้อย",
				"ได้รับคำชมจากผู้โดยสาร",
				"เป็นแบบอย่างด้านบริการ ได้รับคำชมสม่ำเสมอ",
			),
		},
		{
			ID:          "p1-i3",
			Title:       "ความสะอาดเรียบร้อยของเรือ",
			Description: "รักษาความสะอาดพื้นที่ผู้โดยสารตลอดรอบเรือ",
			Weight:      20,
			Criteria: levels(
				"พื้นที่สกปรกเป็นประจำ",
				"สะอาดเมื่อถูกตรวจ",
				"สะอาดสม่ำเสมอ",
				"สะอาดและจัดระเบียบเพิ่มเติม",
				"ยกระดับมาตรฐานความสะอาดของทั้งลำ",
			),
		},
		{
			ID:          "p1-i4",
			Title:       "ความพร้อมรับเหตุฉุกเฉิน",
			Description: "รู้ตำแหน่งอุปกรณ์และขั้นตอนอพยพ",
			Weight:      15,
			Criteria: levels(
				"ไม่ทราบขั้นตอนอพยพ",
				"ทราบแต่ยังไม่คล่อง",
				"ปฏิบัติตามแผนซ้อมได้",
				"ผ่านการซ้อมในเกณฑ์ดีมาก",
				"เป็นผู้นำการซ้อมและสอนผู้อื่นได้",
			),
		},
	}),
	"พนักงานขายตั๋ว": template([]Item{
		{
			ID:          "p1-i1",
			Title:       "ความถูกต้องของยอดขาย",
			Description: "ยอดเงินและจำนวนตั๋วตรงกันทุกสิ้นวัน",
			Weight:      35,
			Criteria: levels(
				"ยอดขาดเกินบ่อยครั้ง",
				"ยอดคลาดเคลื่อนเล็กน้อยบางวัน",
				"ยอดตรงเกือบทุกวัน",
				"ยอดตรงทุกวันตลอดรอบ",
				"ยอดตรงทุกวันและช่วยตรวจสอบจุดอื่น",
			),
		},
		{
			ID:          "p1-i2",
			Title:       "ความรวดเร็วในการขาย",
			Description: "จัดการคิวผู้โดยสารช่วงเร่งด่วนได้ทัน",
			Weight:      25,
			Criteria: levels(
				"คิวตกค้างจนเรือออกล่าช้า",
				"คิวตกค้างบางช่วง",
				"ระบายคิวได้ตามปกติ",
				"ระบายคิวเร่งด่วนได้ดี",
				"จัดระบบคิวจนลดเวลารอได้ชัดเจน",
			),
		},
		{
			ID:          "p1-i3",
			Title:       "การบริการและให้ข้อมูล",
			Description: "แนะนำเส้นทาง ราคา และโปรโมชั่นได้ถูกต้อง",
			Weight:      25,
			Criteria: levels(
				"ให้ข้อมูลผิดจนเกิดข้อร้องเรียน",
				"ให้ข้อมูลพื้นฐานได้",
				"ให้ข้อมูลถูกต้องครบถ้วน",
				"ให้ข้อมูลหลายภาษา ช่วยนักท่องเที่ยวได้ดี",
				"ได้รับคำชมเป็นลายลักษณ์อักษร",
			),
		},
		{
			ID:          "p1-i4",
			Title:       "การดูแลเอกสารการขาย",
			Description: "สรุปรายงานขายส่งสำนักงานครบถ้วนตรงเวลา",
			Weight:      15,
			Criteria: levels(
				"รายงานขาดหรือล่าช้าเป็นประจำ",
				"ต้องทวงถามบางครั้ง",
				"ส่งครบตรงเวลา",
				"ส่งครบและจัดรูปแบบให้ตรวจง่าย",
				"ปรับปรุงแบบรายงานจนหน่วยงานนำไปใช้ต่อ",
			),
		},
	}),
	"เจ้าหน้าที่ธุรการ": template([]Item{
		{
			ID:          "p1-i1",
			Title:       "ความถูกต้องของเอกสาร",
			Description: "จัดทำเอกสารและข้อมูลถูกต้องครบถ้วน",
			Weight:      35,
			Criteria: levels(
				"เอกสารผิดพลาดบ่อย",
				"ผิดพลาดบ้าง แก้ไขได้เร็ว",
				"ถูกต้องเป็นส่วนใหญ่",
				"ถูกต้องครบถ้วนตลอดรอบ",
				"วางระบบตรวจทานจนลดข้อผิดพลาดทั้งแผนก",
			),
		},
		{
			ID:          "p1-i2",
			Title:       "ความทันเวลาของงานเอกสาร",
			Description: "ดำเนินเรื่องและส่งต่อเอกสารภายในกำหนด",
			Weight:      25,
			Criteria: levels(
				"งานค้างเกินกำหนดเป็นประจำ",
				"ค้างบ้างในช่วงงานมาก",
				"ทันกำหนดตามปกติ",
				"ทันกำหนดแม้ช่วงเร่งด่วน",
				"เร็วกว่ากำหนดและช่วยงานแผนกอื่น",
			),
		},
		{
			ID:          "p1-i3",
			Title:       "การประสานงาน",
			Description: "ติดต่อหน่วยงานภายในภายนอกได้ราบรื่น",
			Weight:      25,
			Criteria: levels(
				"การประสานงานติดขัดจนงานเสียหาย",
				"ประสานได้เมื่อมีผู้กำกับ",
				"ประสานงานได้เรียบร้อย",
				"แก้ปัญหาการประสานงานเองได้",
				"เป็นศูนย์กลางประสานงานที่ทุกฝ่ายเชื่อถือ",
			),
		},
		{
			ID:          "p1-i4",
			Title:       "การจัดเก็บและค้นคืนข้อมูล",
			Description: "จัดเก็บแฟ้มและไฟล์ให้ค้นหาได้รวดเร็ว",
			Weight:      15,
			Criteria: levels(
				"ค้นเอกสารไม่พบบ่อยครั้ง",
				"ค้นพบแต่ใช้เวลานาน",
				"ค้นคืนได้ตามมาตรฐาน",
				"ปรับปรุงระบบแฟ้มให้ดีขึ้น",
				"วางระบบจัดเก็บที่แผนกอื่นนำไปใช้",
			),
		},
	}),
	"ช่างซ่อมบำรุง": template([]Item{
		{
			ID:          "p1-i1",
			Title:       "การบำรุงรักษาเชิงป้องกัน",
			Description: "ตรวจและบำรุงเครื่องยนต์ตามแผน PM",
			Weight:      35,
			Criteria: levels(
				"ไม่ทำตามแผน PM",
				"ทำตามแผนแต่ไม่ครบรายการ",
				"ทำครบตามแผน",
				"ทำครบและบันทึกประวัติเครื่องสมบูรณ์",
				"ลดเหตุเสียกลางทางได้อย่างชัดเจน",
			),
		},
		{
			ID:          "p1-i2",
			Title:       "ความรวดเร็วในการซ่อม",
			Description: "แก้เหตุเสียให้เรือกลับเข้ารอบได้เร็ว",
			Weight:      25,
			Criteria: levels(
				"ซ่อมล่าช้าจนกระทบหลายรอบเรือ",
				"ซ่อมได้แต่เกินเวลาที่ประเมิน",
				"ซ่อมเสร็จตามเวลาที่ประเมิน",
				"ซ่อมเสร็จเร็วกว่าประเมิน",
				"วินิจฉัยแม่นยำ ซ่อมเร็วเป็นที่พึ่งของทีม",
			),
		},
		{
			ID:          "p1-i3",
			Title:       "ความปลอดภัยในการทำงาน",
			Description: "ใช้อุปกรณ์ป้องกันและปฏิบัติตามขั้นตอนความปลอดภัย",
			Weight:      25,
			Criteria: levels(
				"ละเลยอุปกรณ์ป้องกัน เกิดเหตุใกล้เคียงอุบัติเหตุ",
				"ปฏิบัติตามเมื่อถูกเตือน",
				"ปฏิบัติตามขั้นตอนครบ",
				"ชี้จุดเสี่ยงและแจ้งปรับปรุง",
				"ไม่มีอุบัติเหตุและยกระดับมาตรฐานความปลอดภัย",
			),
		},
		{
			ID:          "p1-i4",
			Title:       "การจัดการอะไหล่",
			Description: "เบิกจ่าย จัดเก็บ และรายงานอะไหล่ถูกต้อง",
			Weight:      15,
			Criteria: levels(
				"อะไหล่สูญหายหรือเบิกเกินจริง",
				"บันทึกไม่ครบถ้วน",
				"บันทึกครบถ้วนถูกต้อง",
				"วางแผนสต็อกจนไม่ขาดอะไหล่",
				"ลดต้นทุนอะไหล่ได้โดยไม่กระทบคุณภาพ",
			),
		},
	}),
}
