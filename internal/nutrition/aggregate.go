package nutrition

import "github.com/minhvu/cutcoach/internal/model"

// SumItems folds meal items into one summary. Cached macros win; items that
// predate macro caching are recomputed from their stored per-100g facts.
//
// Macro grams are re-rounded to one decimal after every step, not once at
// the end. That makes the fold only associative up to rounding noise, but
// it is what historical stored totals were computed with, so it stays.
func SumItems(items []model.MealItem) model.MacroSummary {
	var acc model.MacroSummary
	for _, it := range items {
		n := it.Macros
		if n == (model.MacroSummary{}) && it.Per100g != nil {
			n = CalcNutrition(*it.Per100g, it.Grams)
		}
		acc.Calories += n.Calories
		acc.Protein = round1(acc.Protein + n.Protein)
		acc.Carbs = round1(acc.Carbs + n.Carbs)
		acc.Fat = round1(acc.Fat + n.Fat)
	}
	return acc
}

// SumAllMeals concatenates the items of the four canonical slots and sums
// them. Slot totals cached on the log are deliberately ignored; the sum is
// always re-derived from the items.
func SumAllMeals(meals map[model.MealSlotID]*model.MealSlot) model.MacroSummary {
	all := make([]model.MealItem, 0)
	for _, id := range model.MealSlotIDs {
		slot, ok := meals[id]
		if !ok || slot == nil {
			continue
		}
		all = append(all, slot.Items...)
	}
	return SumItems(all)
}

// Vietnamese display names for the four meal slots.
var slotNames = map[model.MealSlotID]string{
	model.SlotBreakfast: "Bữa sáng",
	model.SlotLunch:     "Bữa trưa",
	model.SlotDinner:    "Bữa tối",
	model.SlotSnack:     "Bữa phụ",
}

// SlotName returns the display name for a canonical slot id.
func SlotName(id model.MealSlotID) string {
	if n, ok := slotNames[id]; ok {
		return n
	}
	return string(id)
}

// EmptyDailyLog builds the lazy shell log for a date: all four slots
// present and empty, zero totals. Targets are filled in by the caller from
// the profile in effect that day.
func EmptyDailyLog(userID, date string) *model.DailyLog {
	meals := make(map[model.MealSlotID]*model.MealSlot, len(model.MealSlotIDs))
	for _, id := range model.MealSlotIDs {
		meals[id] = &model.MealSlot{ID: id, Name: SlotName(id), Items: []model.MealItem{}}
	}
	return &model.DailyLog{
		ID:     date,
		UserID: userID,
		Date:   date,
		Meals:  meals,
	}
}
