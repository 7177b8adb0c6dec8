package models

// ScanResponse is the result of a visual product search. Similar and Pages
// hold at most the first 8 entries returned by web detection, in the
// original order.
type ScanResponse struct {
	Guess      *string        `json:"guess"`
	BestLabels []string       `json:"bestLabels"`
	Similar    []SimilarImage `json:"similar"`
	Pages      []MatchingPage `json:"pages"`
}

// SimilarImage is a visually similar image found on the web
type SimilarImage struct {
	URL string `json:"url"`
}

// MatchingPage is a web page containing a matching image
type MatchingPage struct {
	URL       string `json:"url"`
	PageTitle string `json:"pageTitle"`
}

// CaptionRequest holds the product fields embedded in the caption prompt.
// All fields are optional; Lang "lg" requests a Luganda translation, any
// other value means no translation.
type CaptionRequest struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Phone    string `json:"phone"`
	Username string `json:"username"`
	Lang     string `json:"lang"`
}

// CaptionResponse carries the generated (and possibly translated) caption
type CaptionResponse struct {
	Caption string `json:"caption"`
}
