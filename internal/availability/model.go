// Package availability holds the per-client, in-memory slot availability of doctors per day.
package availability

import (
	"errors"
	"fmt"
	"sync"

	"easymed-booking/internal/domain/entity"
)

var (
	ErrSlotNotFound = errors.New("slot not found")
	ErrDateRequired = errors.New("date is required")
)

type dayKey struct {
	doctorID int
	date     string
}

// Model is the availability state owned by one browsing client.
// Days are initialised from the doctor's time slots on first access.
type Model struct {
	mu   sync.Mutex
	days map[dayKey][]entity.Slot
}

func NewModel() *Model {
	return &Model{days: make(map[dayKey][]entity.Slot)}
}

// Slots returns a copy of the slots for a doctor on a date.
func (m *Model) Slots(doctor entity.Doctor, date string) ([]entity.Slot, error) {
	if date == "" {
		return nil, ErrDateRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	slots := m.day(doctor, date)
	out := make([]entity.Slot, len(slots))
	copy(out, slots)
	return out, nil
}

// Toggle flips the availability of the slot at index and returns its new state.
func (m *Model) Toggle(doctor entity.Doctor, date string, index int) (entity.Slot, error) {
	if date == "" {
		return entity.Slot{}, ErrDateRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	slots := m.day(doctor, date)
	if index < 0 || index >= len(slots) {
		return entity.Slot{}, fmt.Errorf("%w: index %d", ErrSlotNotFound, index)
	}
	slots[index].Available = !slots[index].Available
	return slots[index], nil
}

// ToggleByTime flips the slot whose label equals label.
func (m *Model) ToggleByTime(doctor entity.Doctor, date, label string) (entity.Slot, error) {
	if date == "" {
		return entity.Slot{}, ErrDateRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	slots := m.day(doctor, date)
	for i := range slots {
		if slots[i].Time == label {
			slots[i].Available = !slots[i].Available
			return slots[i], nil
		}
	}
	return entity.Slot{}, fmt.Errorf("%w: %q", ErrSlotNotFound, label)
}

// IsAvailable reports whether the slot labelled label is currently open.
func (m *Model) IsAvailable(doctor entity.Doctor, date, label string) (bool, error) {
	slots, err := m.Slots(doctor, date)
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		if slot.Time == label {
			return slot.Available, nil
		}
	}
	return false, fmt.Errorf("%w: %q", ErrSlotNotFound, label)
}

// day must be called with mu held.
func (m *Model) day(doctor entity.Doctor, date string) []entity.Slot {
	key := dayKey{doctorID: doctor.ID, date: date}
	slots, ok := m.days[key]
	if !ok {
		slots = entity.SlotPatternFor(doctor.TimeSlots)
		m.days[key] = slots
	}
	return slots
}
