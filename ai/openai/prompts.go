package openai

import "fmt"

const extractionResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "dishes": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "description": {"type": "string"},
          "category": {"type": "string"},
          "neighborhood": {"type": "string"},
          "season": {"type": "string"},
          "context": {"type": "string"},
          "dest_popularity": {"type": "number", "minimum": 0, "maximum": 1},
          "global_commonness": {"type": "number", "minimum": 0, "maximum": 1},
          "origin_availability": {"type": "number", "minimum": 0, "maximum": 1},
          "authenticity_gap": {"type": "number", "minimum": 0, "maximum": 1}
        },
        "required": ["name", "description"],
        "additionalProperties": false
      }
    },
    "learnings": {
      "type": "object",
      "properties": {
        "categories": {"type": "array", "items": {"type": "string"}},
        "neighborhoods": {"type": "array", "items": {"type": "string"}},
        "seasons": {"type": "array", "items": {"type": "string"}},
        "festivals": {"type": "array", "items": {"type": "string"}},
        "contexts": {"type": "array", "items": {"type": "string"}}
      },
      "additionalProperties": false
    }
  },
  "required": ["dishes"],
  "additionalProperties": false
}`

const extractionPromptTemplate = `You are a food research assistant. Given a search query about food in a
travel destination, list real dishes that match the query and rate each one
for a traveler from %s visiting %s. Return the result as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Every dish needs a name and a one-sentence description. Omit dishes you are not confident exist.
- dest_popularity: how popular the dish is in %s (0 = unknown there, 1 = iconic).
- global_commonness: how common the dish is worldwide (0 = virtually unknown outside the region, 1 = ubiquitous). Omit the field if you cannot judge.
- origin_availability: how easy it is to find the dish in %s (0 = unavailable, 1 = everywhere).
- authenticity_gap: how different the local version is from what %s serves, if it is served there at all (0 = same dish, 1 = unrecognizably different).
- category: a short cuisine category such as "street food", "dessert", "noodle soup".
- context: when, where, or how to eat the dish (markets, stalls, time of day).
- learnings: food categories, neighborhoods, seasons, and festivals worth searching next, gathered while answering. Use short plain terms.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Query: "traditional street food in Kolkata"
Output:
{
  "dishes": [
    {
      "name": "Phuchka",
      "description": "Crisp hollow shells filled with spiced potato and tangy tamarind water.",
      "category": "street food",
      "neighborhood": "Vardaan Market",
      "context": "Sold from roadside carts in the late afternoon.",
      "dest_popularity": 0.95,
      "global_commonness": 0.2,
      "origin_availability": 0.1,
      "authenticity_gap": 0.7
    }
  ],
  "learnings": {
    "categories": ["street food", "sweets"],
    "neighborhoods": ["Vardaan Market", "Dacres Lane"],
    "seasons": ["winter"],
    "festivals": ["Durga Puja"]
  }
}`

// buildSystemPrompt creates the system prompt for one trip context.
func buildSystemPrompt(origin, destination string) string {
	return fmt.Sprintf(extractionPromptTemplate,
		origin, destination,
		extractionResponseSchema,
		destination, origin, origin)
}
