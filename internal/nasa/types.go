package nasa

// Image is one item of an image archive search, with HTML removed from the
// description. Fields the archive omitted are empty.
type Image struct {
	Title        string
	Description  string
	DateCreated  string
	ThumbnailURL string
}

// Picture is an APOD entry as the API returns it.
type Picture struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl,omitempty"`
	MediaType   string `json:"media_type"`
	Date        string `json:"date"`
	Explanation string `json:"explanation"`
	Copyright   string `json:"copyright,omitempty"`
}

type searchResponse struct {
	Collection *searchCollection `json:"collection"`
}

type searchCollection struct {
	Href  string       `json:"href"`
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Href  string     `json:"href"`
	Data  []itemData `json:"data"`
	Links []itemLink `json:"links"`
}

type itemData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DateCreated string `json:"date_created"`
	MediaType   string `json:"media_type"`
}

type itemLink struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Render string `json:"render"`
}
