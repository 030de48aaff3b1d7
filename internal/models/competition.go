package models

// Competition is one event listing. All fields are stored as strings to match
// the legacy document shape produced by the original data importer; only name
// is required at creation time, everything else defaults to "".
type Competition struct {
	ID               string `bson:"id" json:"id"`
	Name             string `bson:"name" json:"name"`
	Description      string `bson:"description" json:"description"`
	Date             string `bson:"date" json:"date"`
	Location         string `bson:"location" json:"location"`
	ParticipantLimit string `bson:"participant_limit" json:"participant_limit"`
	EntryFee         string `bson:"entry_fee" json:"entry_fee"`
	Prizes           string `bson:"prizes" json:"prizes"`
	Link             string `bson:"link" json:"link"`
	Image            string `bson:"image" json:"image"`
}

// Catalog holds every competition, grouped category -> subcategory -> list.
// Keys are lowercase. The whole catalog lives in a single MongoDB document.
type Catalog map[string]map[string][]Competition

// DefaultCatalog is the first-run shape used when no catalog document exists
// yet: three known categories with empty bodies. Arbitrary new categories are
// still accepted on insert.
func DefaultCatalog() Catalog {
	return Catalog{
		"sports":     {},
		"creativity": {},
		"socials":    {},
	}
}

// Count returns the total number of competitions across every bucket.
func (c Catalog) Count() int {
	n := 0
	for _, subs := range c {
		for _, comps := range subs {
			n += len(comps)
		}
	}
	return n
}

// Copy returns a deep copy so callers can hand out or mutate a catalog
// without aliasing the stored one.
func (c Catalog) Copy() Catalog {
	out := make(Catalog, len(c))
	for cat, subs := range c {
		outSubs := make(map[string][]Competition, len(subs))
		for sub, comps := range subs {
			outComps := make([]Competition, len(comps))
			copy(outComps, comps)
			outSubs[sub] = outComps
		}
		out[cat] = outSubs
	}
	return out
}
