package usecase

import "github.com/Ozerg97/nestle-chat-bot/internal/domain"

// DefaultLexicon returns the built-in catalog vocabulary.
func DefaultLexicon() domain.Lexicon {
	return domain.Lexicon{
		Categories: []string{
			"coffee", "sauce", "nutrition", "quick mix drinks",
			"chocolate", "ice cream",
		},
		Brands: []string{
			"aero", "after eight", "big turk", "boost", "baci", "carnation",
			"coffee mate", "crunch", "coffee crisp", "del monte", "delissio",
			"drumstick", "drumstick bites", "easter chocolate", "essentia",
			"frozen desserts", "good host", "haagen dazs", "kitkat", "kit kat",
			"lean", "life", "lifesavers", "mackintosh toffee", "maggi", "milo",
			"mirage", "nescafe", "nesfruta", "nesquik", "nestea", "oreo",
			"parlour", "quality street", "real dairy", "rolo", "smarties",
			"sundae", "turtles", "vanilla", "iogo",
		},
		Ingredients: []string{
			"milk", "sugar", "cocoa", "hazelnut", "wheat", "gluten",
			"soy lecithin", "vanilla", "salt", "palm oil", "almonds",
			"caramel", "coffee", "chocolate", "honey", "cream", "eggs",
			"butter", "peanuts", "raisins", "corn syrup", "coconut",
			"rice", "oat", "barley malt", "cinnamon", "nutmeg",
			"ginger", "mint", "berries", "strawberry", "raspberry",
			"lemon", "orange", "apple", "banana",
		},
	}
}
