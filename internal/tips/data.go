package tips

import "github.com/iliyamo/health-tip-agent/internal/model"

// SeedTips returns the built-in tip list. Each tip carries a topic category;
// tips that suit a particular part of the day also carry a time slot so the
// scheduler can pick something appropriate for its 09:00/15:00/20:00 UTC
// firings. Every slot has at least one tagged tip.
func SeedTips() []model.Tip {
	return []model.Tip{
		{Text: "Drink at least 8 glasses of water daily to stay hydrated and support bodily functions.", Category: model.CategoryNutrition, TimeSlot: model.SlotMorning},
		{Text: "Aim for 7-9 hours of quality sleep each night for optimal physical and mental health.", Category: model.CategorySleep, TimeSlot: model.SlotEvening},
		{Text: "Incorporate 30 minutes of moderate exercise into your daily routine.", Category: model.CategoryExercise, TimeSlot: model.SlotMorning},
		{Text: "Eat a balanced diet rich in fruits, vegetables, and whole grains.", Category: model.CategoryNutrition},
		{Text: "Practice mindfulness meditation for 10-15 minutes daily to reduce stress.", Category: model.CategoryMentalHealth, TimeSlot: model.SlotMorning},
		{Text: "Take regular breaks from screens to protect your eye health.", Category: model.CategoryPreventive, TimeSlot: model.SlotAfternoon},
		{Text: "Wash your hands frequently to prevent the spread of germs and illnesses.", Category: model.CategoryPreventive},
		{Text: "Maintain good posture while sitting to prevent back and neck pain.", Category: model.CategoryPreventive, TimeSlot: model.SlotAfternoon},
		{Text: "Get regular health check-ups and screenings as recommended for your age.", Category: model.CategoryPreventive},
		{Text: "Limit processed foods and opt for whole, natural foods instead.", Category: model.CategoryNutrition},
		{Text: "Practice deep breathing exercises to manage stress and improve lung capacity.", Category: model.CategoryMentalHealth, TimeSlot: model.SlotAfternoon},
		{Text: "Stay socially connected with friends and family for mental well-being.", Category: model.CategoryMentalHealth},
		{Text: "Protect your skin from sun exposure by using sunscreen daily.", Category: model.CategoryPreventive, TimeSlot: model.SlotMorning},
		{Text: "Stretch regularly to maintain flexibility and prevent muscle stiffness.", Category: model.CategoryExercise, TimeSlot: model.SlotAfternoon},
		{Text: "Limit alcohol consumption and avoid smoking for better long-term health.", Category: model.CategoryPreventive},
		{Text: "Practice good dental hygiene by brushing twice daily and flossing.", Category: model.CategoryPreventive, TimeSlot: model.SlotEvening},
		{Text: "Take the stairs instead of the elevator when possible for extra activity.", Category: model.CategoryExercise, TimeSlot: model.SlotAfternoon},
		{Text: "Stay mentally active by reading, puzzles, or learning new skills.", Category: model.CategoryMentalHealth},
		{Text: "Maintain a healthy weight through balanced nutrition and regular exercise.", Category: model.CategoryNutrition},
		{Text: "Practice gratitude daily to improve mental health and perspective.", Category: model.CategoryMentalHealth, TimeSlot: model.SlotEvening},
		{Text: "Stay hydrated with water instead of sugary drinks.", Category: model.CategoryNutrition},
		{Text: "Get some sunlight exposure daily for vitamin D, but avoid peak hours.", Category: model.CategoryPreventive, TimeSlot: model.SlotMorning},
		{Text: "Practice proper lifting techniques to prevent back injuries.", Category: model.CategoryExercise},
		{Text: "Limit caffeine intake, especially in the afternoon and evening.", Category: model.CategorySleep, TimeSlot: model.SlotAfternoon},
		{Text: "Cook meals at home to control ingredients and portion sizes.", Category: model.CategoryNutrition, TimeSlot: model.SlotEvening},
		{Text: "Stay up to date with recommended vaccinations.", Category: model.CategoryPreventive},
		{Text: "Practice safe food handling and preparation techniques.", Category: model.CategoryNutrition},
		{Text: "Wear appropriate protective gear during sports and physical activities.", Category: model.CategoryExercise},
		{Text: "Manage your time effectively to reduce stress and improve work-life balance.", Category: model.CategoryMentalHealth},
		{Text: "Listen to your body and rest when you feel tired or unwell.", Category: model.CategorySleep, TimeSlot: model.SlotEvening},
	}
}
