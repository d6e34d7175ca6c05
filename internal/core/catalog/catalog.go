// Package catalog holds the curated meal index: meal → ingredient
// requirements per serving, plus meal categories. Reference data only,
// loaded once and immutable afterwards.
package catalog

import (
	"sort"
	"strings"
)

// Ingredient is one requirement line of a meal recipe.
type Ingredient struct {
	ProductID     string
	QtyPerServing float64
	Unit          string
}

// Catalog is the static meal index.
type Catalog struct {
	meals      map[string][]Ingredient
	categories map[string]string
}

// retired category, filtered out of listings; meals that still carry
// it stay orderable by id so saved selections keep working
const retiredCategory = "Comfort Food"

// Recipe defines one meal when building a catalog from explicit data.
type Recipe struct {
	MealID      string
	Category    string
	Ingredients []Ingredient
}

// FromRecipes builds a catalog from explicit recipes. New ships the
// curated set; this constructor is for callers bringing their own.
func FromRecipes(recipes []Recipe) *Catalog {
	c := &Catalog{
		meals:      make(map[string][]Ingredient),
		categories: make(map[string]string),
	}
	for _, r := range recipes {
		c.add(r.Category, r.MealID, r.Ingredients...)
	}
	return c
}

// New builds the curated catalog. Heavily weighted toward well-known
// American dishes, matching the deal feeds the importer sees.
func New() *Catalog {
	c := &Catalog{
		meals:      make(map[string][]Ingredient),
		categories: make(map[string]string),
	}

	// Italian
	c.add("Italian", "Lasagna", ing("Lasagna Noodles", 0.5), ing("Ground Beef", 1.0), ing("Ricotta", 0.5), ing("Mozzarella", 0.5), ing("Tomato Sauce", 1.0), ing("Onions", 0.5))
	c.add("Italian", "Pepperoni Pizza", ing("Pizza Dough", 1.0), ing("Mozzarella", 0.5), ing("Pepperoni", 0.25), ing("Tomato Sauce", 0.5))

	// Asian
	c.add("Asian", "Pad Thai", ing("Rice Noodles", 0.5), ing("Shrimp", 0.5), ing("Eggs", 2.0), ing("Bean Sprouts", 0.5), ing("Peanuts", 0.1), ing("Lime", 1.0))
	c.add("Asian", "Orange Chicken", ing("Chicken Breast", 1.0), ing("Orange Juice", 0.25), ing("Soy Sauce", 0.05), ing("Rice", 1.0), ing("Cornstarch", 0.05))
	c.add("Asian", "General Tso's", ing("Chicken Breast", 1.0), ing("Soy Sauce", 0.05), ing("Ginger", 0.02), ing("Garlic", 0.02), ing("Rice", 1.0), ing("Cornstarch", 0.05))
	c.add("Asian", "Chicken Curry", ing("Chicken Breast", 1.0), ing("Curry Powder", 0.02), ing("Coconut Milk", 0.5), ing("Onions", 0.5), ing("Potatoes", 1.0), ing("Rice", 1.0))
	c.add("Asian", "Ramen", ing("Ramen Noodles", 0.5), ing("Eggs", 2.0), ing("Pork", 0.5), ing("Green Onions", 0.25), ing("Soy Sauce", 0.05))
	c.add("Asian", "Chicken Lo Mein", ing("Chicken Breast", 0.75), ing("Egg Noodles", 0.5), ing("Bell Peppers", 1.0), ing("Carrots", 0.5), ing("Soy Sauce", 0.05))
	c.add("Asian", "Shrimp Fried Rice", ing("Shrimp", 0.5), ing("Rice", 2.0), ing("Eggs", 2.0), ing("Soy Sauce", 0.05), ing("Peas", 0.5), ing("Carrots", 0.5))
	c.add("Asian", "Mongolian Beef", ing("Beef Steak", 1.0), ing("Soy Sauce", 0.05), ing("Brown Sugar", 0.05), ing("Garlic", 0.02), ing("Rice", 1.0))

	// Mexican
	c.add("Mexican", "Chicken Tacos", ing("Chicken Breast", 1.0), ing("Tortillas", 8.0), ing("Tomatoes", 2.0), ing("Lettuce", 0.5), ing("Cheese", 0.25), ing("Onions", 0.5), ing("Salsa", 0.25))
	c.add("Mexican", "Fish Tacos", ing("White Fish", 1.0), ing("Tortillas", 8.0), ing("Cabbage", 0.5), ing("Lime", 2.0), ing("Sour Cream", 0.25), ing("Salsa", 0.25))
	c.add("Mexican", "Chicken Fajitas", ing("Chicken Breast", 1.0), ing("Bell Peppers", 2.0), ing("Onions", 1.0), ing("Tortillas", 6.0), ing("Sour Cream", 0.25))

	// American
	c.add("American", "Hamburgers", ing("Ground Beef", 1.0), ing("Hamburger Buns", 4.0), ing("Lettuce", 0.5), ing("Tomatoes", 2.0), ing("Onions", 0.5), ing("Pickles", 0.25), ing("Cheese", 0.25))
	c.add("American", "Buffalo Wings", ing("Chicken Wings", 2.0), ing("Hot Sauce", 0.25), ing("Butter", 0.25), ing("Celery", 1.0), ing("Blue Cheese", 0.25))
	c.add("American", "Mac and Cheese", ing("Macaroni", 0.5), ing("Cheddar Cheese", 0.5), ing("Milk", 0.5), ing("Butter", 0.25), ing("Flour", 0.1))
	c.add("American", "BBQ Chicken", ing("Chicken", 1.5), ing("BBQ Sauce", 0.5), ing("Corn", 2.0), ing("Potatoes", 2.0))
	c.add("American", "Fried Chicken", ing("Chicken", 1.5), ing("Flour", 0.5), ing("Eggs", 2.0), ing("Bread Crumbs", 0.5), ing("Potatoes", 2.0))
	c.add("American", "Beef Stew", ing("Beef Steak", 1.0), ing("Potatoes", 2.0), ing("Carrots", 1.0), ing("Onions", 0.5), ing("Beef Broth", 1.0))
	c.add("American", "Hot Dogs", ing("Hot Dogs", 4.0), ing("Hot Dog Buns", 4.0), ing("Ketchup", 0.25), ing("Mustard", 0.25), ing("Onions", 0.5))
	c.add("American", "Pulled Pork", ing("Pork Shoulder", 1.5), ing("BBQ Sauce", 0.5), ing("Hamburger Buns", 4.0), ing("Coleslaw", 0.5))
	c.add("American", "Meatloaf", ing("Ground Beef", 1.5), ing("Bread Crumbs", 0.25), ing("Eggs", 1.0), ing("Onions", 0.5), ing("Ketchup", 0.25), ing("Potatoes", 2.0))
	c.add("American", "Chili", ing("Ground Beef", 1.0), ing("Kidney Beans", 1.0), ing("Tomatoes", 2.0), ing("Onions", 0.5), ing("Chili Powder", 0.02))
	c.add("American", "Grilled Cheese", ing("Bread", 4.0), ing("Cheddar Cheese", 0.5), ing("Butter", 0.25))
	c.add("American", "Chicken Noodle Soup", ing("Chicken", 0.5), ing("Egg Noodles", 0.5), ing("Carrots", 1.0), ing("Celery", 1.0), ing("Chicken Broth", 1.0), ing("Onions", 0.5))
	c.add("American", "French Onion Soup", ing("Onions", 3.0), ing("Beef Broth", 1.0), ing("Butter", 0.25), ing("Bread", 2.0), ing("Swiss Cheese", 0.5))
	c.add("American", "Tomato Soup", ing("Tomatoes", 4.0), ing("Onions", 0.5), ing("Garlic", 0.02), ing("Heavy Cream", 0.25), ing("Basil", 0.05))
	c.add("American", "BLT", ing("Bacon", 0.5), ing("Bread", 4.0), ing("Lettuce", 0.5), ing("Tomatoes", 2.0), ing("Mayonnaise", 0.25))
	c.add("American", "Reuben Sandwich", ing("Rye Bread", 4.0), ing("Corned Beef", 1.0), ing("Swiss Cheese", 0.5), ing("Sauerkraut", 0.5), ing("Thousand Island", 0.25))
	c.add("American", "Philly Cheese Steak", ing("Ribeye Steak", 1.0), ing("Hoagie Rolls", 2.0), ing("Provolone", 0.5), ing("Onions", 0.5), ing("Bell Peppers", 0.5))
	c.add("American", "Apple Pie", ing("Apples", 6.0), ing("Flour", 0.5), ing("Butter", 0.25), ing("Sugar", 0.25), ing("Cinnamon", 0.02))
	c.add("American", "BBQ Ribs", ing("Pork Ribs", 2.0), ing("BBQ Sauce", 0.5), ing("Brown Sugar", 0.1), ing("Corn", 2.0))
	c.add("American", "Clam Chowder", ing("Clams", 1.0), ing("Potatoes", 2.0), ing("Bacon", 0.25), ing("Onions", 0.5), ing("Heavy Cream", 0.5))
	c.add("American", "Cornbread", ing("Cornmeal", 0.5), ing("Flour", 0.25), ing("Eggs", 2.0), ing("Milk", 0.5), ing("Butter", 0.25))
	c.add("American", "Deep-Dish Pizza", ing("Pizza Dough", 1.5), ing("Mozzarella", 1.0), ing("Sausage", 0.5), ing("Tomato Sauce", 1.0), ing("Parmesan", 0.25))
	c.add("American", "Jambalaya", ing("Rice", 2.0), ing("Chicken", 1.0), ing("Sausage", 0.5), ing("Shrimp", 0.5), ing("Bell Peppers", 1.0), ing("Onions", 0.5))
	c.add("American", "Pot Roast", ing("Beef Roast", 2.0), ing("Potatoes", 2.0), ing("Carrots", 1.0), ing("Onions", 1.0), ing("Beef Broth", 1.0))
	c.add("American", "Shepherd's Pie", ing("Ground Beef", 1.0), ing("Potatoes", 2.0), ing("Carrots", 1.0), ing("Peas", 0.5), ing("Onions", 0.5), ing("Beef Broth", 0.5))
	c.add("American", "Corn Dogs", ing("Hot Dogs", 4.0), ing("Cornmeal", 0.5), ing("Flour", 0.25), ing("Eggs", 1.0), ing("Milk", 0.25))
	c.add("American", "Biscuits and Gravy", ing("Biscuits", 4.0), ing("Sausage", 0.5), ing("Flour", 0.1), ing("Milk", 0.5), ing("Black Pepper", 0.01))
	c.add("American", "Chicken Pot Pie", ing("Chicken", 1.0), ing("Pie Crust", 1.0), ing("Carrots", 1.0), ing("Peas", 0.5), ing("Potatoes", 1.0), ing("Onions", 0.5))
	c.add("American", "Tuna Casserole", ing("Tuna", 1.0), ing("Pasta", 0.5), ing("Mushrooms", 0.5), ing("Peas", 0.5), ing("Cream of Mushroom Soup", 1.0), ing("Bread Crumbs", 0.25))
	c.add("American", "Caesar Salad", ing("Romaine Lettuce", 1.0), ing("Caesar Dressing", 0.25), ing("Parmesan", 0.25), ing("Croutons", 0.25), ing("Chicken", 1.0))
	c.add("American", "Cobb Salad", ing("Lettuce", 1.0), ing("Bacon", 0.5), ing("Eggs", 3.0), ing("Chicken", 1.0), ing("Avocado", 1.0), ing("Blue Cheese", 0.25), ing("Tomatoes", 2.0))
	c.add("American", "Lobster Roll", ing("Lobster", 1.0), ing("Hot Dog Buns", 2.0), ing("Mayonnaise", 0.25), ing("Celery", 0.5), ing("Lemon", 0.5))
	c.add("American", "Fish and Chips", ing("White Fish", 1.5), ing("Potatoes", 2.0), ing("Flour", 0.5), ing("Beer", 0.25), ing("Tartar Sauce", 0.25))
	c.add("American", "Corn on the Cob", ing("Corn", 4.0), ing("Butter", 0.25), ing("Salt", 0.01))
	c.add("American", "Gumbo", ing("Rice", 2.0), ing("Chicken", 1.0), ing("Sausage", 0.5), ing("Shrimp", 0.5), ing("Okra", 1.0), ing("Bell Peppers", 1.0), ing("Onions", 0.5))
	c.add("American", "Tater Tots", ing("Potatoes", 2.0), ing("Flour", 0.1), ing("Eggs", 1.0), ing("Oil", 0.1))

	// Seafood
	c.add("Seafood", "Grilled Salmon", ing("Salmon", 1.0), ing("Lemon", 1.0), ing("Asparagus", 0.5), ing("Olive Oil", 0.05), ing("Salt", 0.01), ing("Black Pepper", 0.01))
	c.add("Seafood", "Shrimp Scampi", ing("Shrimp", 1.0), ing("Garlic", 0.02), ing("Butter", 0.25), ing("Lemon", 1.0), ing("White Wine", 0.25), ing("Pasta", 0.5))

	// Breakfast
	c.add("Breakfast", "Pancakes", ing("Flour", 0.5), ing("Eggs", 2.0), ing("Butter", 0.25), ing("Maple Syrup", 0.25))
	c.add("Breakfast", "French Toast", ing("Bread", 0.5), ing("Eggs", 3.0), ing("Milk", 0.25), ing("Butter", 0.25), ing("Maple Syrup", 0.25))
	c.add("Breakfast", "Waffles", ing("Flour", 0.5), ing("Eggs", 2.0), ing("Milk", 0.5), ing("Butter", 0.25), ing("Maple Syrup", 0.25))

	// Comfort Food was merged into American; this one keeps the old
	// label so selections saved under it stay orderable
	c.add(retiredCategory, "Chicken and Dumplings", ing("Chicken", 1.0), ing("Flour", 0.5), ing("Butter", 0.25), ing("Milk", 0.5), ing("Carrots", 1.0), ing("Celery", 1.0), ing("Chicken Broth", 1.0))

	return c
}

func (c *Catalog) add(category, name string, ingredients ...Ingredient) {
	c.meals[name] = ingredients
	c.categories[name] = category
}

// Exists reports whether mealID is in the catalog.
func (c *Catalog) Exists(mealID string) bool {
	_, ok := c.meals[mealID]
	return ok
}

// Ingredients returns the per-serving requirements of a meal.
func (c *Catalog) Ingredients(mealID string) ([]Ingredient, bool) {
	ings, ok := c.meals[mealID]
	return ings, ok
}

// AllMealIDs lists every meal id, sorted.
func (c *Catalog) AllMealIDs() []string {
	ids := make([]string, 0, len(c.meals))
	for id := range c.meals {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Category returns the category of a meal.
func (c *Catalog) Category(mealID string) string {
	if cat, ok := c.categories[mealID]; ok {
		return cat
	}
	return "Uncategorized"
}

// Categories lists every active category, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	for _, cat := range c.categories {
		if cat != retiredCategory {
			seen[cat] = true
		}
	}
	cats := make([]string, 0, len(seen))
	for cat := range seen {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// MealsByCategory lists the meal ids in a category, sorted.
func (c *Catalog) MealsByCategory(category string) []string {
	if strings.EqualFold(category, retiredCategory) {
		return []string{}
	}
	var meals []string
	for id, cat := range c.categories {
		if cat == category {
			meals = append(meals, id)
		}
	}
	sort.Strings(meals)
	return meals
}

// ing builds an Ingredient, deriving the purchase unit from the
// product name the same way the deal feeds size their prices.
func ing(product string, qty float64) Ingredient {
	return Ingredient{ProductID: product, QtyPerServing: qty, Unit: unitFor(product)}
}

func unitFor(product string) string {
	p := strings.ToLower(product)
	switch {
	case strings.Contains(p, "noodle"), strings.Contains(p, "rice"), strings.Contains(p, "pasta"),
		strings.Contains(p, "macaroni"), strings.Contains(p, "spaghetti"), strings.Contains(p, "penne"):
		return "lb"
	case strings.Contains(p, "chicken"), strings.Contains(p, "beef"), strings.Contains(p, "steak"),
		strings.Contains(p, "pork"), strings.Contains(p, "salmon"), strings.Contains(p, "bacon"),
		strings.Contains(p, "fish"), strings.Contains(p, "shrimp"), strings.Contains(p, "lobster"),
		strings.Contains(p, "sausage"), strings.Contains(p, "tuna"), strings.Contains(p, "clam"):
		return "lb"
	case strings.Contains(p, "egg"):
		return "count"
	case strings.Contains(p, "milk"), strings.Contains(p, "broth"), strings.Contains(p, "cream"):
		return "qt"
	case strings.Contains(p, "tortilla"), strings.Contains(p, "crouton"), strings.Contains(p, "biscuit"):
		return "count"
	case strings.Contains(p, "bun"), strings.Contains(p, "roll"):
		return "count"
	case strings.Contains(p, "bread"):
		// loaves, slices and "unit" pantry entries all count-match
		return "unit"
	default:
		return "unit"
	}
}
