package entity

// Slot is one bookable time unit for a doctor on a given date.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// DefaultSlotPattern returns a fresh copy of the daily pattern every availability view starts from.
func DefaultSlotPattern() []Slot {
	return []Slot{
		{Time: "9:00 AM", Available: true},
		{Time: "9:30 AM", Available: false},
		{Time: "10:00 AM", Available: true},
		{Time: "10:30 AM", Available: false},
		{Time: "11:00 AM", Available: true},
		{Time: "11:30 AM", Available: true},
		{Time: "2:00 PM", Available: false},
		{Time: "2:30 PM", Available: true},
		{Time: "3:00 PM", Available: true},
		{Time: "3:30 PM", Available: false},
		{Time: "4:00 PM", Available: true},
		{Time: "4:30 PM", Available: true},
	}
}

// DefaultTimeSlotLabels lists the labels of DefaultSlotPattern in order.
func DefaultTimeSlotLabels() []string {
	pattern := DefaultSlotPattern()
	labels := make([]string, len(pattern))
	for i, slot := range pattern {
		labels[i] = slot.Time
	}
	return labels
}

// SlotPatternFor builds a day's slots from a doctor's own labels, keeping their order.
// Labels in the default pattern take its open or closed flag; other labels start open.
// No labels means the default pattern.
func SlotPatternFor(labels []string) []Slot {
	if len(labels) == 0 {
		return DefaultSlotPattern()
	}

	defaults := make(map[string]bool, len(labels))
	for _, slot := range DefaultSlotPattern() {
		defaults[slot.Time] = slot.Available
	}

	slots := make([]Slot, 0, len(labels))
	for _, label := range labels {
		available, ok := defaults[label]
		if !ok {
			available = true
		}
		slots = append(slots, Slot{Time: label, Available: available})
	}
	return slots
}
