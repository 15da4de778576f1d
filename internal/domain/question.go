package domain

// Route names the pipeline branch that produced an answer.
type Route string

const (
	RouteStructured Route = "structured"
	RouteSemantic   Route = "semantic"
)

// AskRequest represents a question submitted by a user.
// Location is nil when the user never shared coordinates.
type AskRequest struct {
	Question string
	Location *GeoPoint
}

// Answer is the pipeline output for one question.
type Answer struct {
	Text  string
	Route Route
}

// Neighbor is one vector search hit.
type Neighbor struct {
	ID    string
	Score float64
}

// GenerationRequest carries the question and both context blocks to the model.
type GenerationRequest struct {
	Question      string
	GraphContext  string
	StoresContext string
}
