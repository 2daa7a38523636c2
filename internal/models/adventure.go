// Package models defines the adventure checklist types shared by the server,
// the API client and the sync engine.
package models

// Category identifiers for the four built-in checklists.
const (
	CategoryWAParks       = "wa-parks"
	CategoryUSStates      = "us-states"
	CategoryNationalParks = "national-parks"
	CategoryCountries     = "countries"
)

// Adventure is one checklist item. ID is derived from the catalog entry's
// display name, so for catalog-sourced items ID == Name. All fields beyond
// Visited are optional and only present once a visit has been recorded.
//
// Images holds image references: either durable URLs or inline
// base64-encoded payloads ("data:<type>;base64,<data>"). Thumbnail is
// expected to be one of the entries in Images, but that is not enforced.
type Adventure struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Visited     bool     `json:"visited"`
	DateVisited string   `json:"dateVisited,omitempty"`
	Memories    string   `json:"memories,omitempty"`
	Images      []string `json:"images,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
}

// Document is the stored form of an adventure: the item itself plus the
// category it belongs to. The persistence key is composite, see DocumentKey.
type Document struct {
	Adventure
	Category string `json:"category"`
}

// DocumentKey builds the composite persistence key for a stored document.
func DocumentKey(category, id string) string {
	return category + "-" + id
}
