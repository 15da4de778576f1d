package domain

// RecordKind identifies the shape of a record returned by the graph store.
type RecordKind string

const (
	KindRecipe      RecordKind = "Recipe"
	KindProduct     RecordKind = "Product"
	KindArticle     RecordKind = "Article"
	KindInformation RecordKind = "Information"
	KindBrand       RecordKind = "Brand"
)

// ParseRecordKind maps the graph "type" column to a RecordKind.
func ParseRecordKind(s string) (RecordKind, bool) {
	switch RecordKind(s) {
	case KindRecipe, KindProduct, KindArticle, KindInformation, KindBrand:
		return RecordKind(s), true
	}
	return "", false
}

// GraphRecord is one enriched entity fetched from the knowledge graph.
// Every field except Kind is optional; an absent value is the zero value,
// never a placeholder.
type GraphRecord struct {
	Kind           RecordKind `json:"type"`
	ID             string     `json:"id,omitempty"`
	Title          string     `json:"title,omitempty"`
	Description    string     `json:"description,omitempty"`
	URL            string     `json:"url,omitempty"`
	NutritionValue []string   `json:"nutrition_value,omitempty"`
	AmazonLink     string     `json:"amazon_link,omitempty"`
	Ingredients    []string   `json:"ingredients,omitempty"`
	Products       []string   `json:"products,omitempty"`
	Brands         []string   `json:"brands,omitempty"`
	Features       []string   `json:"features,omitempty"`
	Stores         []Store    `json:"stores,omitempty"`
}

// Store is a physical point of sale, identified by (Name, Address).
// Latitude and Longitude are nil when the graph had no usable numeric value.
type Store struct {
	Name      string   `json:"name,omitempty"`
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// GeoPoint is a latitude/longitude pair in decimal degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
