package portfolios

import (
	"gorm.io/gorm"

	"folio/models"
)

// ContentSource reports which payload a read was served from.
type ContentSource string

const (
	SourceProfile  ContentSource = "profile"
	SourceSnapshot ContentSource = "snapshot"
)

// ProfileLookup fetches a profile scoped to its owning user.
type ProfileLookup func(profileID, userID int) (*models.Profile, error)

// ResolveContent decides which payload is authoritative for a portfolio
// read. A resolvable profile link always wins over the stored snapshot;
// a missing or broken link falls back to the snapshot without error.
// Every read site (builder fetch, update response, public slug page) goes
// through here - serving different content on different paths is a bug.
// The function never writes: the snapshot stays whatever it was.
func ResolveContent(portfolio *models.Portfolio, lookup ProfileLookup) (models.Content, ContentSource) {
	if portfolio.ProfileID == nil {
		return portfolio.Content, SourceSnapshot
	}

	profile, err := lookup(*portfolio.ProfileID, portfolio.UserID)
	if err != nil || profile == nil {
		return portfolio.Content, SourceSnapshot
	}

	return profile.Content, SourceProfile
}

// DBProfileLookup builds a ProfileLookup over the store.
func DBProfileLookup(db *gorm.DB) ProfileLookup {
	return func(profileID, userID int) (*models.Profile, error) {
		var profile models.Profile
		err := db.Where("id = ? AND user_id = ?", profileID, userID).First(&profile).Error
		if err != nil {
			return nil, err
		}
		return &profile, nil
	}
}
