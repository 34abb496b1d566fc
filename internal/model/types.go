package model

// Sex is the biological sex used by the Mifflin-St Jeor formula.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Goal selects the calorie adjustment applied on top of TDEE.
type Goal string

const (
	GoalCut      Goal = "cut"
	GoalMaintain Goal = "maintain"
	GoalBulk     Goal = "bulk"
)

// ActivityLevel selects the TDEE activity multiplier.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// MealSlotID is one of the four fixed meal slots of a daily log.
type MealSlotID string

const (
	SlotBreakfast MealSlotID = "breakfast"
	SlotLunch     MealSlotID = "lunch"
	SlotDinner    MealSlotID = "dinner"
	SlotSnack     MealSlotID = "snack"
)

// MealSlotIDs lists the canonical slots in display order. Every daily log
// carries exactly these four slots, empty or not.
var MealSlotIDs = []MealSlotID{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack}

type UserProfile struct {
	ID                string        `json:"id"`
	WeightKg          float64       `json:"weight"`
	HeightCm          float64       `json:"height"`
	Age               int           `json:"age"`
	Sex               Sex           `json:"sex"`
	ActivityLevel     ActivityLevel `json:"activityLevel"`
	Goal              Goal          `json:"goal"`
	BodyFatPercentage *float64      `json:"bodyFatPercentage,omitempty"`
	WaistCm           *float64      `json:"waist,omitempty"`
	HipCm             *float64      `json:"hip,omitempty"`
	MuscleMassKg      *float64      `json:"muscleMass,omitempty"`
	CreatedAt         string        `json:"createdAt"`
	UpdatedAt         string        `json:"updatedAt"`
}

// MacroSummary is the value type produced by all nutrition computations.
// Calories are whole kcal, macro grams carry one decimal.
type MacroSummary struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// NutritionFacts is the per-100g profile of a food. Any collaborator that
// can produce this shape can feed the scaling math.
type NutritionFacts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type Food struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	NameVi         string         `json:"nameVi,omitempty"`
	Category       string         `json:"category"`
	Per100g        NutritionFacts `json:"per100g"`
	CommonServingG float64        `json:"commonServingG,omitempty"`
}

// MealItem is one food entry in a meal slot. Macros are cached at add time
// and never recomputed when the food database changes later.
type MealItem struct {
	ID     string       `json:"id"`
	FoodID string       `json:"foodId"`
	Name   string       `json:"name"`
	Grams  float64      `json:"grams"`
	Macros MacroSummary `json:"macros"`
	// Per100g keeps the facts the item was priced with, so legacy items
	// missing cached macros can still be recomputed.
	Per100g *NutritionFacts `json:"per100g,omitempty"`
}

type MealSlot struct {
	ID     MealSlotID   `json:"id"`
	Name   string       `json:"name"`
	Items  []MealItem   `json:"items"`
	Totals MacroSummary `json:"totals"`
}

// DailyLog is one per (user, calendar date); its id is the date string.
// Targets snapshot the targets in effect on that day and are not recomputed
// retroactively when the profile changes.
type DailyLog struct {
	ID          string                   `json:"id"`
	UserID      string                   `json:"userId"`
	Date        string                   `json:"date"`
	Meals       map[MealSlotID]*MealSlot `json:"meals"`
	DailyTotals MacroSummary             `json:"dailyTotals"`
	Targets     MacroSummary             `json:"targets"`
	WaterIntake int                      `json:"waterIntake,omitempty"`
	IsRefeedDay bool                     `json:"isRefeedDay,omitempty"`
	Notes       string                   `json:"notes,omitempty"`
}

type WeightLogEntry struct {
	Date              string   `json:"date"`
	Weight            float64  `json:"weight"`
	BodyFatPercentage *float64 `json:"bodyFatPercentage,omitempty"`
	WaistCm           *float64 `json:"waist,omitempty"`
	HipCm             *float64 `json:"hip,omitempty"`
	MuscleMassKg      *float64 `json:"muscleMass,omitempty"`
}

// TrackerLog is the lightweight per-day check-in record behind the progress
// analytics: weigh-in plus logged intake and cardio.
type TrackerLog struct {
	Date          string  `json:"date"`
	Weight        float64 `json:"weight"`
	Calories      int     `json:"calories"`
	Protein       float64 `json:"protein"`
	CardioMinutes int     `json:"cardioMinutes"`
	Steps         int     `json:"steps,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

type StrengthLog struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Exercise string  `json:"exercise"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weightKg"`
}

type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	DateEarned  string `json:"dateEarned"`
}

type GamificationState struct {
	CurrentStreak int     `json:"currentStreak"`
	LongestStreak int     `json:"longestStreak"`
	Level         int     `json:"level"`
	LevelTitle    string  `json:"levelTitle"`
	Badges        []Badge `json:"badges"`
	LastLoginDate string  `json:"lastLoginDate"`
}

// SuggestionType classifies a coaching suggestion.
type SuggestionType string

const (
	SuggestionDecreaseCalories SuggestionType = "decrease_calories"
	SuggestionIncreaseCalories SuggestionType = "increase_calories"
	SuggestionIncreaseProtein  SuggestionType = "increase_protein"
	SuggestionGeneral          SuggestionType = "general"
	SuggestionWarning          SuggestionType = "warning"
)

// SuggestionStatus advances monotonically: new -> read -> applied/dismissed.
type SuggestionStatus string

const (
	StatusNew       SuggestionStatus = "new"
	StatusRead      SuggestionStatus = "read"
	StatusApplied   SuggestionStatus = "applied"
	StatusDismissed SuggestionStatus = "dismissed"
)

type AdaptiveSuggestion struct {
	ID            string           `json:"id"`
	Type          SuggestionType   `json:"type"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	ActionLabel   string           `json:"actionLabel,omitempty"`
	ActionPayload int              `json:"actionPayload,omitempty"`
	DateGenerated string           `json:"dateGenerated"`
	Status        SuggestionStatus `json:"status"`
}
