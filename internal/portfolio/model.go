package portfolio

// Project is a single portfolio entry. ID is the creation timestamp in unix
// milliseconds, assigned once and never reassigned. Order within the stored
// array is significant: new projects are prepended.
type Project struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Client      string   `json:"client"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"imageUrls"`
	VideoID     string   `json:"videoId,omitempty"`
}
