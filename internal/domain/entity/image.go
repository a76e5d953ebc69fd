package entity

// Image is the metadata record for one stored blob.
//
// CreatedAt is kept in its textual form (UTC, second precision,
// "2006-01-02T15:04:05Z") because it doubles as the per-owner listing
// sort key: lexicographic order on that layout equals chronological order.
type Image struct {
	ID          string            `json:"image_id" firestore:"imageId"`
	UserID      string            `json:"user_id" firestore:"userId"`
	CreatedAt   string            `json:"created_at" firestore:"createdAt"`
	Filename    string            `json:"filename" firestore:"filename"`
	ContentType string            `json:"content_type" firestore:"contentType"`
	StorageKey  string            `json:"storage_key" firestore:"storageKey"`
	Tags        []string          `json:"tags" firestore:"tags"`
	Metadata    map[string]string `json:"metadata" firestore:"metadata"`
}
