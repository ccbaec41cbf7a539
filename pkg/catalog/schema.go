// pkg/catalog/schema.go
package catalog

// ActivityCatalog is the seed document baked into the binary at build time.
type ActivityCatalog struct {
	Version    string     `json:"version"`
	Activities []Activity `json:"activities"`
}

// Activity is one seed entry. Name is the registry lookup key.
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// catalogSchema validates the shape of a catalog document: every activity
// needs a non-empty name, a positive capacity, and a duplicate-free roster.
const catalogSchema = `{
	"type": "object",
	"required": ["version", "activities"],
	"additionalProperties": false,
	"properties": {
		"version": {"type": "string", "minLength": 1},
		"activities": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["name", "description", "schedule", "max_participants", "participants"],
				"additionalProperties": false,
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"description": {"type": "string"},
					"schedule": {"type": "string"},
					"max_participants": {"type": "integer", "minimum": 1},
					"participants": {
						"type": "array",
						"items": {"type": "string", "minLength": 1},
						"uniqueItems": true
					}
				}
			}
		}
	}
}`
