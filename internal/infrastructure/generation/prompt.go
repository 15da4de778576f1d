package generation

import (
	"fmt"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
)

const systemInstruction = "Follow the style, format and intent rules of the prompt exactly. " +
	"Introduce product links with engaging wording (for example \"For more details on this product: <URL>\") " +
	"and never add information that is not in the provided context."

const promptTemplate = `You are the %s.

STYLE AND FORMAT
- Open with one short, friendly sentence (for example "Here's what I found for you!").
- Then answer as a numbered list (1., 2., 3.). For each item:
  - start with the product or recipe title in bold;
  - put the main detail for the question on the next line;
  - optionally add one or two warm, conversational sentences of description;
  - end with "For more details: <URL>" on its own line.
- Keep every item between two and four lines.
- Do not use headings, tables or code blocks.
- Separate lines with line breaks.
- Write "Not available" for any missing field.
- Never invent information: use only the Graph Context and the Stores Info below.

INTENT RULES
- General question: a short engaging description, then "For more details: <URL>".
- Specific detail (calories, ingredients, ...): introduce the detail in one friendly phrase, give it on the next line, then "For more details: <URL>".
- Where to buy: list each store as "Store: <name> | Address: <address> | Distance: <X> km", add the Amazon link when there is one, then "For more details: <URL>".

User Question:
%s

Graph Context:
%s

Stores Info:
%s
`

// BuildPrompt renders the user prompt for one question
func BuildPrompt(assistantName string, req domain.GenerationRequest) string {
	return fmt.Sprintf(promptTemplate, assistantName, req.Question, req.GraphContext, req.StoresContext)
}
