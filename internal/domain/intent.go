package domain

// IntentKind is the aggregate dimension detected in a count question.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentCategory
	IntentBrand
	IntentIngredient
)

func (k IntentKind) String() string {
	switch k {
	case IntentCategory:
		return "category"
	case IntentBrand:
		return "brand"
	case IntentIngredient:
		return "ingredient"
	default:
		return "none"
	}
}

// StructuredIntent is the single dimension a count question aggregates on.
// Name is empty for IntentNone.
type StructuredIntent struct {
	Kind IntentKind
	Name string
}

// Extraction holds the best lexicon hit per vocabulary. Empty means no hit.
type Extraction struct {
	Category   string
	Brand      string
	Ingredient string
}

// Intent resolves the extraction with priority Category > Brand > Ingredient.
func (e Extraction) Intent() StructuredIntent {
	switch {
	case e.Category != "":
		return StructuredIntent{Kind: IntentCategory, Name: e.Category}
	case e.Brand != "":
		return StructuredIntent{Kind: IntentBrand, Name: e.Brand}
	case e.Ingredient != "":
		return StructuredIntent{Kind: IntentIngredient, Name: e.Ingredient}
	default:
		return StructuredIntent{Kind: IntentNone}
	}
}

// Lexicon is the closed vocabulary used to find the aggregate dimension.
type Lexicon struct {
	Categories  []string `yaml:"categories"`
	Brands      []string `yaml:"brands"`
	Ingredients []string `yaml:"ingredients"`
}
