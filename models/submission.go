package models

// Submission is a scraped piece of content together with its metadata and
// local save state.
type Submission struct {
	ID               string `json:"id" db:"id"`
	Title            string `json:"title" db:"title"`
	Description      string `json:"desc" db:"desc"`
	Tags             string `json:"tags" db:"tags"`
	URL              string `json:"url" db:"url"`
	IsScrap          bool   `json:"is_scrap" db:"is_scrap"`
	DateUploaded     string `json:"date_uploaded" db:"date_uploaded"`
	ContentURL       string `json:"content_url" db:"content_url"`
	ContentName      string `json:"content_name" db:"content_name"`
	IsContentSaved   bool   `json:"is_content_saved" db:"is_content_saved"`
	Username         string `json:"username" db:"username"`
	MovedContent     bool   `json:"moved_content" db:"moved_content"`
	ThumbnailURL     string `json:"thumbnail_url" db:"thumbnail_url"`
	ThumbnailName    string `json:"thumbnail_name" db:"thumbnail_name"`
	IsThumbnailSaved bool   `json:"is_thumbnail_saved" db:"is_thumbnail_saved"`
	Rating           string `json:"rating" db:"rating"`
	Category         string `json:"category" db:"category"`
}

// SubmissionMetadata holds the fields collected when a placeholder link is
// scraped.
type SubmissionMetadata struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"desc"`
	Tags         string `json:"tags"`
	DateUploaded string `json:"date_uploaded"`
	ContentURL   string `json:"content_url"`
	ContentName  string `json:"content_name"`
	Username     string `json:"username"`
	Rating       string `json:"rating"`
	Category     string `json:"category"`
}

// SubmissionLink is a placeholder row still waiting for its metadata.
type SubmissionLink struct {
	RowID int64  `json:"rowid" db:"rowid"`
	URL   string `json:"url" db:"url"`
}

// ContentRef points at a content file that still has to be downloaded or moved.
type ContentRef struct {
	ContentURL  string `json:"content_url" db:"content_url"`
	ContentName string `json:"content_name" db:"content_name"`
	Username    string `json:"username" db:"username"`
}

// ThumbnailRef points at a submission whose thumbnail is not saved yet.
type ThumbnailRef struct {
	URL          string `json:"url" db:"url"`
	ContentURL   string `json:"content_url" db:"content_url"`
	Username     string `json:"username" db:"username"`
	ThumbnailURL string `json:"thumbnail_url" db:"thumbnail_url"`
}

type Comment struct {
	ID           string `json:"id" db:"id"`
	SubmissionID string `json:"submission_id" db:"submission_id"`
	Width        string `json:"width" db:"width"`
	Username     string `json:"username" db:"username"`
	Description  string `json:"desc" db:"desc"`
	Subtitle     string `json:"subtitle" db:"subtitle"`
	Date         string `json:"date" db:"date"`
}

// SubmissionPage is a submission with the comments posted under it.
type SubmissionPage struct {
	Submission *Submission `json:"submission"`
	Comments   []Comment   `json:"comments"`
}

type FavoriteLink struct {
	ID       string `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	URL      string `json:"url" db:"url"`
}

type OwnedAccount struct {
	Username string `json:"username" db:"username"`
}
