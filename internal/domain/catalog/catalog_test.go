package catalog

import "testing"

func TestResolveKnownPosition(t *testing.T) {
	sections := Resolve("พนักงานขับเรือ")
	if len(sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(sections))
	}
	if sections[0].ID != SectionPerformance || sections[3].ID != SectionFeedback {
		t.Fatalf("unexpected section order: %s .. %s", sections[0].ID, sections[3].ID)
	}
	if sections[0].Items[0].Title != "ความปลอดภัยในการเดินเรือ" {
		t.Fatalf("expected position-specific performance items, got %q", sections[0].Items[0].Title)
	}
}

func TestResolveUnknownPositionFallsBackToDefault(t *testing.T) {
	sections := Resolve("ตำแหน่งที่ไม่มีจริง")
	if len(sections) == 0 {
		t.Fatal("expected default template, got empty")
	}
	if sections[0].Items[0].Title != "คุณภาพของงาน" {
		t.Fatalf("expected default template items, got %q", sections[0].Items[0].Title)
	}
}

func TestTemplateShapeInvariants(t *testing.T) {
	positions := append(Positions(), "unknown-position")
	for _, position := range positions {
		sections := Resolve(position)
		if len(sections) != 4 {
			t.Fatalf("%s: expected 4 sections, got %d", position, len(sections))
		}

		for _, section := range sections {
			switch section.ID {
			case SectionAttendance, SectionFeedback:
				if len(section.Items) != 0 {
					t.Fatalf("%s: %s must not carry items", position, section.ID)
				}
				continue
			}

			var sum float64
			for _, item := range section.Items {
				sum += item.Weight
				if len(item.Criteria) != 5 {
					t.Fatalf("%s: item %s has %d criteria levels", position, item.ID, len(item.Criteria))
				}
				for level, c := range item.Criteria {
					if c.Score != level+1 {
						t.Fatalf("%s: item %s level %d has score %d", position, item.ID, level, c.Score)
					}
				}
			}
			if sum != 100 {
				t.Fatalf("%s: section %s item weights sum to %v", position, section.ID, sum)
			}
		}

		if sections[3].SectionWeight != 0 {
			t.Fatalf("%s: feedback section weight must be 0", position)
		}
	}
}

func TestResolveReturnsIndependentClones(t *testing.T) {
	first := Resolve("พนักงานขายตั๋ว")
	first[0].SectionWeight = 99
	first[0].Items[0].Weight = 1

	second := Resolve("พนักงานขายตั๋ว")
	if second[0].SectionWeight == 99 || second[0].Items[0].Weight == 1 {
		t.Fatal("catalog template mutated through a resolved copy")
	}
}

func TestPositionsSorted(t *testing.T) {
	positions := Positions()
	if len(positions) == 0 {
		t.Fatal("expected registered positions")
	}
	for i := 1; i < len(positions); i++ {
		if positions[i-1] > positions[i] {
			t.Fatalf("positions not sorted at %d: %q > %q", i, positions[i-1], positions[i])
		}
	}
}
