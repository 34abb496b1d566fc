package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/minhvu/cutcoach/internal/model"
	"github.com/minhvu/cutcoach/internal/nutrition"
	"github.com/minhvu/cutcoach/internal/store"
)

// EnsureDailyLog loads the log for a date, or builds the empty shell with
// the current profile's targets snapshotted in. The shell is not persisted
// until the caller saves it. Totals of a loaded log are always re-derived
// from the items, never trusted from the stored cache.
func EnsureDailyLog(s store.Store, userID, date string) (*model.DailyLog, error) {
	log, err := store.GetDailyLog(s, userID, date)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = nutrition.EmptyDailyLog(userID, date)
		profile, err := store.LoadProfile(s, userID)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			log.Targets = nutrition.CalcMacroTargets(*profile)
		}
		return log, nil
	}
	for _, id := range model.MealSlotIDs {
		if _, ok := log.Meals[id]; !ok {
			log.Meals[id] = &model.MealSlot{ID: id, Name: nutrition.SlotName(id), Items: []model.MealItem{}}
		}
	}
	RecomputeTotals(log)
	return log, nil
}

// AddMealItem appends a food to a slot with macros frozen at add time, and
// re-derives the affected totals.
func AddMealItem(log *model.DailyLog, f model.Food, slotID model.MealSlotID, grams float64) (*model.MealItem, error) {
	if grams <= 0 {
		return nil, fmt.Errorf("grams must be > 0")
	}
	slot, ok := log.Meals[slotID]
	if !ok || slot == nil {
		return nil, fmt.Errorf("invalid meal slot %q (use breakfast, lunch, dinner or snack)", slotID)
	}

	name := f.NameVi
	if name == "" {
		name = f.Name
	}
	facts := f.Per100g
	item := model.MealItem{
		ID:      uuid.NewString(),
		FoodID:  f.ID,
		Name:    name,
		Grams:   grams,
		Macros:  nutrition.CalcNutrition(facts, grams),
		Per100g: &facts,
	}
	slot.Items = append(slot.Items, item)
	RecomputeTotals(log)
	return &item, nil
}

// RemoveMealItem deletes an item from a slot by id.
func RemoveMealItem(log *model.DailyLog, slotID model.MealSlotID, itemID string) error {
	slot, ok := log.Meals[slotID]
	if !ok || slot == nil {
		return fmt.Errorf("invalid meal slot %q (use breakfast, lunch, dinner or snack)", slotID)
	}
	kept := make([]model.MealItem, 0, len(slot.Items))
	for _, it := range slot.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(slot.Items) {
		return fmt.Errorf("item %s not found in slot %s", itemID, slotID)
	}
	slot.Items = kept
	RecomputeTotals(log)
	return nil
}

// RecomputeTotals re-derives every slot total and the daily total from the
// items, overwriting any cached values.
func RecomputeTotals(log *model.DailyLog) {
	for _, id := range model.MealSlotIDs {
		if slot, ok := log.Meals[id]; ok && slot != nil {
			slot.Totals = nutrition.SumItems(slot.Items)
		}
	}
	log.DailyTotals = nutrition.SumAllMeals(log.Meals)
}
