package models

type GalleryType string

const (
	GalleryTypeSubmissions GalleryType = ""
	GalleryTypeFavorites   GalleryType = "favorites"
)

const (
	DefaultGalleryLimit = 25
	MaxGalleryLimit     = 100
	DefaultSortField    = "content_name"
)

// SortFields lists the submission columns the gallery can be ordered by.
var SortFields = []string{
	"content_name",
	"date_uploaded",
	"title",
	"username",
	"rating",
	"category",
}

func IsSortField(field string) bool {
	for _, f := range SortFields {
		if f == field {
			return true
		}
	}
	return false
}

// GalleryQuery describes one page of the gallery listing.
type GalleryQuery struct {
	Username    string      `json:"username" query:"username" validate:"omitempty,max=100,username"`
	SearchTerm  string      `json:"search" query:"search" validate:"max=200"`
	GalleryType GalleryType `json:"gallery_type" query:"gallery_type" validate:"gallerytype"`
	SortField   string      `json:"sort" query:"sort" validate:"omitempty,sortfield"`
	SortOrder   string      `json:"order" query:"order" validate:"omitempty,sortorder"`
	Offset      int         `json:"offset" query:"offset" validate:"gte=0"`
	Limit       int         `json:"limit" query:"limit" validate:"gte=0,lte=100"`
}

// GalleryItem is the trimmed-down submission row shown in gallery listings.
type GalleryItem struct {
	ID               string `json:"id" db:"id"`
	Title            string `json:"title" db:"title"`
	Username         string `json:"username" db:"username"`
	ContentName      string `json:"content_name" db:"content_name"`
	ContentURL       string `json:"content_url" db:"content_url"`
	DateUploaded     string `json:"date_uploaded" db:"date_uploaded"`
	IsContentSaved   bool   `json:"is_content_saved" db:"is_content_saved"`
	ThumbnailName    string `json:"thumbnail_name" db:"thumbnail_name"`
	IsThumbnailSaved bool   `json:"is_thumbnail_saved" db:"is_thumbnail_saved"`
}
