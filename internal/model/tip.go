package model

// Tip categories. These mirror the topics the agent advertises to users:
// nutrition, exercise, mental health, sleep and preventive care.
const (
	CategoryNutrition    = "nutrition"
	CategoryExercise     = "exercise"
	CategoryMentalHealth = "mental_health"
	CategorySleep        = "sleep"
	CategoryPreventive   = "preventive"
)

// Time slots used by the scheduled delivery path. A tip tagged with a slot
// is considered appropriate for that part of the day; untagged tips are
// eligible at any time.
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

// Tip is a single health tip held in process memory. TimeSlot is empty for
// tips that are not tied to a part of the day.
type Tip struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	TimeSlot string `json:"time_slot,omitempty"`
}

// ValidSlot reports whether s is one of the three recognized time slots.
func ValidSlot(s string) bool {
	return s == SlotMorning || s == SlotAfternoon || s == SlotEvening
}
