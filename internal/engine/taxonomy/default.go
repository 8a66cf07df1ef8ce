package taxonomy

// DefaultCategories returns the built-in facility table. Order matters:
// "banquet" appears under both event and restaurant, and event wins by
// being declared first.
func DefaultCategories() []Category {
	return []Category{
		{Name: "condiments", Keywords: []string{"juice bar", "ice cream", "dessert", "donut", "snack", "gym", "herbal"}},
		{Name: "school", Keywords: []string{"school", "charter", "public shcool", "teaching"}},
		{Name: "butcher", Keywords: []string{"butcher", "meat", "slaughter", "live"}},
		{Name: "supportive_living", Keywords: []string{"assisted living", "supportive", "senior", "rehab", "adult daycare", "nursing home", "long term care"}},
		{Name: "event", Keywords: []string{"event", "venue", "hall", "rooftop", "banquet", "banquets", "theater", "catering", "stadium"}},
		{Name: "gas_station", Keywords: []string{"gas station", "station store", "station", "convenient store"}},
		{Name: "restaurant", Keywords: []string{"restaurant", "banquet", "diner", "taqueria", "bar", "pub", "cafeteria"}},
		{Name: "mobile", Keywords: []string{"mobile", "mobil", "dispenser", "truck", "prepared", "hot dog"}},
		{Name: "grocery", Keywords: []string{"grocery", "market", "store", "food mart"}},
		{Name: "coffee", Keywords: []string{"coffee", "tea", "cafe", "espresso", "kiosk"}},
		{Name: "bakery", Keywords: []string{"bakery", "paleteria", "donut", "dessert"}},
		{Name: "bar", Keywords: []string{"tavern", "liquor", "bar", "lounge", "brewery"}},
		{Name: "cooking_school", Keywords: []string{"cooking", "culinary", "training", "chef"}},
		{Name: "child_services", Keywords: []string{"daycare", "after school", "child", "children", "youth"}},
		{Name: "church", Keywords: []string{"church", "faith", "religious"}},
		{Name: "commissary", Keywords: []string{"commissary", "shared kitchen", "shelter"}},
		{Name: "pantry", Keywords: []string{"pantry", "free food"}},
		{Name: "hotel", Keywords: []string{"hotel", "lodge", "inn"}},
		{Name: "warehouse", Keywords: []string{"warehouse", "distribution"}},
		{Name: "facility", Keywords: []string{"facility", "services"}},
	}
}
