package catalog

import "github.com/google/uuid"

// seedFood is the compact literal form used for the bundled catalog.
type seedFood struct {
	name     string
	serving  string
	grams    float64
	kcal     float64
	protein  float64
	carbs    float64
	fat      float64
	category Category
	extra    []Category
	tags     []string
}

// bundledCatalog is the built-in food set used when no external catalog
// source is configured. Macros are per serving.
var bundledCatalog = []seedFood{
	// Protein sources
	{name: "Chicken Breast", serving: "1 breast", grams: 120, kcal: 198, protein: 37.2, carbs: 0, fat: 4.3, category: CategoryPoultry},
	{name: "Chicken Thigh", serving: "1 thigh", grams: 100, kcal: 209, protein: 26.0, carbs: 0, fat: 10.9, category: CategoryPoultry},
	{name: "Turkey Breast", serving: "100 g", grams: 100, kcal: 135, protein: 30.1, carbs: 0, fat: 1.0, category: CategoryPoultry},
	{name: "Lean Ground Beef", serving: "100 g", grams: 100, kcal: 176, protein: 26.1, carbs: 0, fat: 8.0, category: CategoryRedMeat},
	{name: "Ribeye Steak", serving: "150 g", grams: 150, kcal: 435, protein: 36.0, carbs: 0, fat: 32.0, category: CategoryRedMeat},
	{name: "Pork Tenderloin", serving: "100 g", grams: 100, kcal: 143, protein: 26.0, carbs: 0, fat: 3.5, category: CategoryRedMeat},
	{name: "Lamb Chop", serving: "1 chop", grams: 90, kcal: 250, protein: 21.0, carbs: 0, fat: 18.0, category: CategoryRedMeat},
	{name: "Salmon Fillet", serving: "1 fillet", grams: 125, kcal: 260, protein: 28.3, carbs: 0, fat: 16.3, category: CategoryFish},
	{name: "Canned Tuna", serving: "1 can", grams: 110, kcal: 128, protein: 29.2, carbs: 0, fat: 1.0, category: CategoryFish},
	{name: "Cod Fillet", serving: "1 fillet", grams: 120, kcal: 105, protein: 22.8, carbs: 0, fat: 1.0, category: CategoryFish},
	{name: "Shrimp", serving: "100 g", grams: 100, kcal: 99, protein: 24.0, carbs: 0.2, fat: 0.3, category: CategoryShellfish},
	{name: "Mussels", serving: "100 g", grams: 100, kcal: 86, protein: 11.9, carbs: 3.7, fat: 2.2, category: CategoryShellfish},
	{name: "Whole Eggs", serving: "2 eggs", grams: 100, kcal: 143, protein: 12.6, carbs: 0.7, fat: 9.5, category: CategoryEgg},
	{name: "Egg Whites", serving: "1 cup", grams: 243, kcal: 126, protein: 26.5, carbs: 1.8, fat: 0.4, category: CategoryEgg},
	{name: "Greek Yogurt", serving: "1 cup", grams: 200, kcal: 146, protein: 20.0, carbs: 7.8, fat: 4.0, category: CategoryDairy, tags: []string{"vegetarian"}},
	{name: "Cottage Cheese", serving: "1 cup", grams: 210, kcal: 206, protein: 23.0, carbs: 8.2, fat: 9.0, category: CategoryDairy, tags: []string{"vegetarian"}},
	{name: "Cheddar Cheese", serving: "30 g", grams: 30, kcal: 121, protein: 7.5, carbs: 0.4, fat: 10.0, category: CategoryDairy, tags: []string{"vegetarian"}},
	{name: "Whey Protein Powder", serving: "1 scoop", grams: 30, kcal: 120, protein: 24.0, carbs: 3.0, fat: 1.5, category: CategoryDairy, extra: []Category{CategoryProcessed}},
	{name: "Firm Tofu", serving: "150 g", grams: 150, kcal: 108, protein: 12.0, carbs: 2.7, fat: 6.0, category: CategoryLegume, tags: []string{"vegan"}},
	{name: "Tempeh", serving: "100 g", grams: 100, kcal: 192, protein: 20.3, carbs: 7.6, fat: 10.8, category: CategoryLegume, tags: []string{"vegan"}},

	// Carb sources
	{name: "White Rice", serving: "1 cup cooked", grams: 158, kcal: 205, protein: 4.3, carbs: 44.5, fat: 0.4, category: CategoryGrain},
	{name: "Brown Rice", serving: "1 cup cooked", grams: 195, kcal: 216, protein: 5.0, carbs: 44.8, fat: 1.8, category: CategoryGrain},
	{name: "Rolled Oats", serving: "1/2 cup dry", grams: 40, kcal: 152, protein: 5.3, carbs: 27.0, fat: 2.6, category: CategoryGrain},
	{name: "Quinoa", serving: "1 cup cooked", grams: 185, kcal: 222, protein: 8.1, carbs: 39.4, fat: 3.6, category: CategoryGrain},
	{name: "Whole Wheat Bread", serving: "2 slices", grams: 64, kcal: 162, protein: 8.0, carbs: 27.3, fat: 2.2, category: CategoryGrain},
	{name: "Pasta", serving: "1 cup cooked", grams: 140, kcal: 221, protein: 8.1, carbs: 43.2, fat: 1.3, category: CategoryGrain},
	{name: "Buckwheat", serving: "1 cup cooked", grams: 168, kcal: 155, protein: 5.7, carbs: 33.5, fat: 1.0, category: CategoryGrain},
	{name: "Sweet Potato", serving: "1 medium", grams: 130, kcal: 112, protein: 2.0, carbs: 26.0, fat: 0.1, category: CategoryVegetable},
	{name: "White Potato", serving: "1 medium", grams: 173, kcal: 161, protein: 4.3, carbs: 36.6, fat: 0.2, category: CategoryVegetable},
	{name: "Black Beans", serving: "1 cup cooked", grams: 172, kcal: 227, protein: 15.2, carbs: 40.8, fat: 0.9, category: CategoryLegume, tags: []string{"vegan"}},
	{name: "Lentils", serving: "1 cup cooked", grams: 198, kcal: 230, protein: 17.9, carbs: 39.9, fat: 0.8, category: CategoryLegume, tags: []string{"vegan"}},
	{name: "Chickpeas", serving: "1 cup cooked", grams: 164, kcal: 269, protein: 14.5, carbs: 45.0, fat: 4.2, category: CategoryLegume, tags: []string{"vegan"}},

	// Vegetables
	{name: "Broccoli", serving: "1 cup", grams: 91, kcal: 31, protein: 2.6, carbs: 6.0, fat: 0.3, category: CategoryVegetable},
	{name: "Spinach", serving: "2 cups raw", grams: 60, kcal: 14, protein: 1.7, carbs: 2.2, fat: 0.2, category: CategoryVegetable},
	{name: "Kale", serving: "1 cup", grams: 67, kcal: 33, protein: 2.9, carbs: 6.0, fat: 0.6, category: CategoryVegetable},
	{name: "Carrots", serving: "1 cup", grams: 128, kcal: 52, protein: 1.2, carbs: 12.3, fat: 0.3, category: CategoryVegetable},
	{name: "Bell Pepper", serving: "1 medium", grams: 119, kcal: 31, protein: 1.2, carbs: 7.2, fat: 0.4, category: CategoryVegetable},
	{name: "Cauliflower", serving: "1 cup", grams: 107, kcal: 27, protein: 2.1, carbs: 5.3, fat: 0.3, category: CategoryVegetable},
	{name: "Zucchini", serving: "1 medium", grams: 196, kcal: 33, protein: 2.4, carbs: 6.1, fat: 0.6, category: CategoryVegetable},
	{name: "Asparagus", serving: "6 spears", grams: 90, kcal: 18, protein: 2.0, carbs: 3.5, fat: 0.2, category: CategoryVegetable},
	{name: "Mixed Green Salad", serving: "2 cups", grams: 85, kcal: 17, protein: 1.3, carbs: 3.3, fat: 0.2, category: CategoryVegetable},
	{name: "Tomato", serving: "1 medium", grams: 123, kcal: 22, protein: 1.1, carbs: 4.8, fat: 0.2, category: CategoryVegetable},

	// Fruit
	{name: "Banana", serving: "1 medium", grams: 118, kcal: 105, protein: 1.3, carbs: 27.0, fat: 0.4, category: CategoryFruit},
	{name: "Apple", serving: "1 medium", grams: 182, kcal: 95, protein: 0.5, carbs: 25.1, fat: 0.3, category: CategoryFruit},
	{name: "Blueberries", serving: "1 cup", grams: 148, kcal: 84, protein: 1.1, carbs: 21.4, fat: 0.5, category: CategoryFruit},
	{name: "Orange", serving: "1 medium", grams: 131, kcal: 62, protein: 1.2, carbs: 15.4, fat: 0.2, category: CategoryFruit},
	{name: "Avocado", serving: "1/2 fruit", grams: 100, kcal: 160, protein: 2.0, carbs: 8.5, fat: 14.7, category: CategoryFruit},

	// Fats, nuts, seeds
	{name: "Almonds", serving: "30 g", grams: 30, kcal: 174, protein: 6.4, carbs: 6.1, fat: 15.0, category: CategoryNut},
	{name: "Walnuts", serving: "30 g", grams: 30, kcal: 196, protein: 4.6, carbs: 4.1, fat: 19.6, category: CategoryNut},
	{name: "Peanut Butter", serving: "2 tbsp", grams: 32, kcal: 188, protein: 8.0, carbs: 6.9, fat: 16.1, category: CategoryNut, extra: []Category{CategoryProcessed}},
	{name: "Chia Seeds", serving: "2 tbsp", grams: 24, kcal: 116, protein: 4.0, carbs: 10.1, fat: 7.3, category: CategorySeed},
	{name: "Olive Oil", serving: "1 tbsp", grams: 14, kcal: 119, protein: 0, carbs: 0, fat: 13.5, category: CategoryOil},
	{name: "Coconut Oil", serving: "1 tbsp", grams: 14, kcal: 121, protein: 0, carbs: 0, fat: 13.5, category: CategoryOil},

	// Sweeteners, condiments, processed
	{name: "Honey", serving: "1 tbsp", grams: 21, kcal: 64, protein: 0.1, carbs: 17.3, fat: 0, category: CategorySweetener},
	{name: "Maple Syrup", serving: "1 tbsp", grams: 20, kcal: 52, protein: 0, carbs: 13.4, fat: 0, category: CategorySweetener},
	{name: "Chicken Sausage", serving: "1 link", grams: 85, kcal: 140, protein: 14.0, carbs: 3.0, fat: 8.0, category: CategoryProcessed, extra: []Category{CategoryPoultry}},
	{name: "Beef Jerky", serving: "30 g", grams: 30, kcal: 116, protein: 9.4, carbs: 3.1, fat: 7.3, category: CategoryProcessed, extra: []Category{CategoryRedMeat}},
	{name: "Protein Bar", serving: "1 bar", grams: 60, kcal: 220, protein: 20.0, carbs: 23.0, fat: 7.0, category: CategoryProcessed},
	{name: "Dark Chocolate", serving: "30 g", grams: 30, kcal: 170, protein: 2.2, carbs: 13.0, fat: 12.1, category: CategoryProcessed},
	{name: "Basil", serving: "2 tbsp chopped", grams: 5, kcal: 1, protein: 0.2, carbs: 0.1, fat: 0, category: CategoryHerb},
	{name: "Cinnamon", serving: "1 tsp", grams: 3, kcal: 6, protein: 0.1, carbs: 2.1, fat: 0, category: CategorySpice},
}

// SeedFoods materializes the bundled catalog as Food values with fresh ids.
func SeedFoods() []Food {
	foods := make([]Food, 0, len(bundledCatalog))
	for _, s := range bundledCatalog {
		foods = append(foods, Food{
			ID:                  uuid.New(),
			Name:                s.name,
			ServingLabel:        s.serving,
			ServingGrams:        s.grams,
			CaloriesKcal:        s.kcal,
			ProteinG:            s.protein,
			CarbsG:              s.carbs,
			FatG:                s.fat,
			PrimaryCategory:     s.category,
			SecondaryCategories: s.extra,
			DietTags:            s.tags,
		})
	}
	return foods
}
