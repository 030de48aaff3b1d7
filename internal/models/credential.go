package models

// Credential is one record in the users collection. Phone is the unique user
// identifier (any string, not validated as a phone number). Hash is the
// opaque password hash; plaintext is never stored.
type Credential struct {
	Phone string `bson:"phone" json:"phone"`
	Hash  string `bson:"hash" json:"-"`
}
