package entities

// UpdateResult reports the outcome of a single-document update.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// InsertResult reports the outcome of a single-document insert.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// DeleteResult reports the outcome of a single-document delete.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
