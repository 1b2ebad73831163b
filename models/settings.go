package models

// UserSettings is the single row of application level preferences.
type UserSettings struct {
	LatestBrowserVersion string `json:"latest_browser_version" db:"latest_browser_version"`
}

type UpdateSettingsRequest struct {
	LatestBrowserVersion string `json:"latest_browser_version" validate:"max=50"`
}

type SaveFavoritesRequest struct {
	Username string   `json:"username" validate:"required,max=100,username"`
	URLs     []string `json:"urls" validate:"required,min=1,dive,required,url"`
}

type OwnedAccountRequest struct {
	Username string `json:"username" validate:"required,max=100,username"`
}

// SchemaStatus reports the on-disk schema version against the latest known one.
type SchemaStatus struct {
	Version int `json:"version"`
	Latest  int `json:"latest"`
}
