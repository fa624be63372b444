package model

// GameProfile is a third-party game account identified by username and
// platform. SiteUserID is set when a site user has claimed the profile.
type GameProfile struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	PlatformID int64  `json:"platformId"`
	SiteUserID *int64 `json:"siteUserId"`
}

type Platform struct {
	ID           int64  `json:"id"`
	PlatformName string `json:"platformName"`
}

// FavouriteProfile is a row of a user's favourites list, joined with the
// profile's platform name for display.
type FavouriteProfile struct {
	ProfileID    int64  `json:"profileId"`
	Username     string `json:"username"`
	PlatformName string `json:"platformName"`
}
