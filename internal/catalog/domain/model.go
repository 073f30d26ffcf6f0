package domain

// KpopAlbum is one entry of the album catalog.
type KpopAlbum struct {
	ID       int      `json:"id"`
	Artist   string   `json:"artist"`
	Title    string   `json:"title"`
	ImageURL string   `json:"image_url"`
	Price    *float64 `json:"price,omitempty"`
}

// Article is the optional long-form write-up attached to an activity.
type Article struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Activity is one bookable activity of the catalog.
type Activity struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	ImageURL  string   `json:"image_url"`
	Rating    float64  `json:"rating"`
	Reviews   int      `json:"reviews"`
	Duration  string   `json:"duration"`
	Price     float64  `json:"price"`
	IsPopular bool     `json:"is_popular,omitempty"`
	Labels    []string `json:"labels,omitempty"`
	Article   *Article `json:"article,omitempty"`
}
