package model

// Session holds the mutable state of one shopper's view. Every change replaces
// a whole field; nothing here is modified in place.
// Version increases by one with every committed change.
type Session struct {
	BaseModel
	Version        int64  `json:"version"`
	ActiveCategory string `json:"active_category"`
	SearchText     string `json:"search_text"`
	Cart           Cart   `json:"cart"`
}
