package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"tastebook/internal/database"
	"tastebook/internal/domain"
)

func main() {
	db, err := database.Connect("tastebook.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	var existing int64
	db.Model(&domain.User{}).Count(&existing)
	if existing > 0 {
		log.Println("Database already contains data. Skipping seed.")
		return
	}

	log.Println("Creating cuisines...")
	cuisines := []domain.Cuisine{
		{Name: "Asian"},
		{Name: "Italian"},
		{Name: "American"},
		{Name: "Mediterranean"},
		{Name: "French"},
		{Name: "Various"},
	}
	for i := range cuisines {
		db.Create(&cuisines[i])
	}

	log.Println("Creating users...")
	users := []domain.User{
		{Username: "sarah", DisplayName: "Sarah Chen", Email: "sarah@example.com", Bio: ptr("Tea enthusiast and recipe creator")},
		{Username: "marco", DisplayName: "Marco Rossi", Email: "marco@example.com", Bio: ptr("Italian chef passionate about pasta")},
		{Username: "emma", DisplayName: "Emma Baker", Email: "emma@example.com", Bio: ptr("Professional pastry chef")},
	}
	for i := range users {
		hash, _ := bcrypt.GenerateFromPassword([]byte("p123"), bcrypt.DefaultCost)
		users[i].PasswordHash = string(hash)
		db.Create(&users[i])
	}
	log.Println("Created users (password: p123)")

	log.Println("Creating ingredients, tags, diets, allergies...")
	ingredients := []domain.Ingredient{
		{Name: "Flour"}, {Name: "Eggs"}, {Name: "Butter"}, {Name: "Sugar"},
		{Name: "Matcha powder"}, {Name: "Dark chocolate"}, {Name: "Quinoa"}, {Name: "Tahini"},
	}
	for i := range ingredients {
		db.Create(&ingredients[i])
	}
	tags := []domain.Tag{{Name: "dessert"}, {Name: "baking"}, {Name: "healthy"}, {Name: "quick"}}
	for i := range tags {
		db.Create(&tags[i])
	}
	diets := []domain.Diet{{Name: "vegetarian"}, {Name: "vegan"}}
	for i := range diets {
		db.Create(&diets[i])
	}
	allergies := []domain.Allergy{{Name: "gluten"}, {Name: "dairy"}, {Name: "eggs"}}
	for i := range allergies {
		db.Create(&allergies[i])
	}

	log.Println("Creating recipes...")
	recipes := []domain.Recipe{
		{
			Title:       "Matcha Green Tea Cookies",
			Description: ptr("Delicate, buttery cookies infused with premium matcha powder and a hint of vanilla."),
			ImageURL:    "https://images.unsplash.com/photo-1559951742-948d2e2c86f4?w=1080",
			PrepTime:    intp(15), CookTime: intp(20), Servings: intp(24),
			Difficulty: "Easy",
			UserID:     users[0].ID, CuisineID: cuisines[0].ID,
		},
		{
			Title:       "Homemade Fresh Pasta",
			Description: ptr("Traditional Italian pasta made from scratch with just eggs, flour, and a pinch of salt."),
			ImageURL:    "https://images.unsplash.com/photo-1564813227527-a99b83712e45?w=1080",
			PrepTime:    intp(45), CookTime: intp(3), Servings: intp(4),
			Difficulty: "Medium",
			UserID:     users[1].ID, CuisineID: cuisines[1].ID,
		},
		{
			Title:       "Decadent Chocolate Cake",
			Description: ptr("Rich, moist chocolate cake with layers of smooth chocolate ganache."),
			ImageURL:    "https://images.unsplash.com/photo-1636589314668-bf6a924cd353?w=1080",
			PrepTime:    intp(30), CookTime: intp(35), Servings: intp(12),
			Difficulty: "Hard",
			UserID:     users[2].ID, CuisineID: cuisines[2].ID,
		},
	}
	for i := range recipes {
		db.Create(&recipes[i])
	}

	log.Println("Linking ingredients and writing instructions...")
	db.Create(&domain.RecipeIngredient{RecipeID: recipes[0].ID, IngredientID: ingredients[2].ID, Quantity: "200g", Ord: 1})
	db.Create(&domain.RecipeIngredient{RecipeID: recipes[0].ID, IngredientID: ingredients[4].ID, Quantity: "2 tbsp", Ord: 2})
	db.Create(&domain.RecipeIngredient{RecipeID: recipes[0].ID, IngredientID: ingredients[0].ID, Quantity: "300g", Ord: 3})
	db.Create(&domain.RecipeIngredient{RecipeID: recipes[1].ID, IngredientID: ingredients[0].ID, Quantity: "400g", Ord: 1})
	db.Create(&domain.RecipeIngredient{RecipeID: recipes[1].ID, IngredientID: ingredients[1].ID, Quantity: "4", Ord: 2})

	db.Create(&domain.Instruction{RecipeID: recipes[0].ID, StepNumber: 1, Description: "Cream the butter and sugar until pale."})
	db.Create(&domain.Instruction{RecipeID: recipes[0].ID, StepNumber: 2, Description: "Sift in flour and matcha, fold into a dough."})
	db.Create(&domain.Instruction{RecipeID: recipes[0].ID, StepNumber: 3, Description: "Chill, slice and bake at 170C for 20 minutes."})
	db.Create(&domain.Instruction{RecipeID: recipes[1].ID, StepNumber: 1, Description: "Mound the flour, crack the eggs into a well."})
	db.Create(&domain.Instruction{RecipeID: recipes[1].ID, StepNumber: 2, Description: "Knead 10 minutes, rest 30, then roll and cut."})

	db.Create(&domain.RecipeTag{RecipeID: recipes[0].ID, TagID: tags[0].ID})
	db.Create(&domain.RecipeTag{RecipeID: recipes[0].ID, TagID: tags[1].ID})
	db.Create(&domain.RecipeDiet{RecipeID: recipes[0].ID, DietID: diets[0].ID})
	db.Create(&domain.RecipeAllergy{RecipeID: recipes[0].ID, AllergyID: allergies[0].ID})
	db.Create(&domain.RecipeAllergy{RecipeID: recipes[2].ID, AllergyID: allergies[1].ID})

	log.Println("Creating reviews and favorites...")
	db.Create(&domain.Review{Rating: 5, Comment: ptr("Perfect with afternoon tea."), UserID: users[1].ID, RecipeID: recipes[0].ID})
	db.Create(&domain.Review{Rating: 4, Comment: ptr("Silky texture, worth the effort."), UserID: users[0].ID, RecipeID: recipes[1].ID})
	db.Create(&domain.Favorite{UserID: users[0].ID, RecipeID: recipes[1].ID})
	db.Create(&domain.Favorite{UserID: users[2].ID, RecipeID: recipes[0].ID})

	log.Println("Seed complete.")
}

func ptr(s string) *string { return &s }
func intp(n int) *int      { return &n }
