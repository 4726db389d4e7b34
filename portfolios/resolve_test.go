package portfolios

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"folio/models"
)

func snapshotContent() models.Content {
	return models.Content{
		PersonalInfo: models.PersonalInfo{Name: "Old Name", Title: "Old Title"},
		Skills:       models.SimpleSkills("Old Skill"),
	}
}

func profileContent() models.Content {
	return models.Content{
		PersonalInfo: models.PersonalInfo{Name: "Live Name", Title: "Live Title"},
		Skills:       models.SimpleSkills("Live Skill"),
	}
}

func TestResolveContent_LinkedProfileWins(t *testing.T) {
	profileID := 7
	portfolio := &models.Portfolio{
		UserID:    1,
		ProfileID: &profileID,
		Content:   snapshotContent(),
	}

	lookup := func(id, userID int) (*models.Profile, error) {
		assert.Equal(t, 7, id)
		assert.Equal(t, 1, userID)
		return &models.Profile{ID: id, UserID: userID, Content: profileContent()}, nil
	}

	content, source := ResolveContent(portfolio, lookup)

	assert.Equal(t, SourceProfile, source)
	assert.Equal(t, "Live Name", content.PersonalInfo.Name)
}

func TestResolveContent_NoLinkUsesSnapshot(t *testing.T) {
	portfolio := &models.Portfolio{UserID: 1, Content: snapshotContent()}

	content, source := ResolveContent(portfolio, func(id, userID int) (*models.Profile, error) {
		t.Fatal("lookup must not run without a profile link")
		return nil, nil
	})

	assert.Equal(t, SourceSnapshot, source)
	assert.Equal(t, "Old Name", content.PersonalInfo.Name)
}

func TestResolveContent_BrokenLinkFallsBackSilently(t *testing.T) {
	profileID := 404
	portfolio := &models.Portfolio{
		UserID:    1,
		ProfileID: &profileID,
		Content:   snapshotContent(),
	}

	content, source := ResolveContent(portfolio, func(id, userID int) (*models.Profile, error) {
		return nil, errors.New("record not found")
	})

	assert.Equal(t, SourceSnapshot, source)
	assert.Equal(t, "Old Name", content.PersonalInfo.Name)
	// The dangling link stays in place; resolution never writes.
	assert.NotNil(t, portfolio.ProfileID)
}

func TestDBProfileLookup_ScopedToOwner(t *testing.T) {
	db := setupTestDB()

	owner := createTestUser(db, "owner@example.com")
	other := createTestUser(db, "other@example.com")
	profile := createTestProfile(db, owner.ID, "Main")

	lookup := DBProfileLookup(db)

	found, err := lookup(profile.ID, owner.ID)
	assert.NoError(t, err)
	assert.Equal(t, profile.ID, found.ID)

	stolen, err := lookup(profile.ID, other.ID)
	assert.Error(t, err)
	assert.Nil(t, stolen)
}

func TestResolveContent_ProfileEditVisibleOnNextRead(t *testing.T) {
	db := setupTestDB()

	user := createTestUser(db, "edit@example.com")
	profile := createTestProfile(db, user.ID, "Main")
	profileID := profile.ID
	portfolio := &models.Portfolio{
		UserID:    user.ID,
		ProfileID: &profileID,
		Content:   snapshotContent(),
	}

	profile.Content.PersonalInfo.Name = "Edited Name"
	db.Save(profile)

	content, source := ResolveContent(portfolio, DBProfileLookup(db))

	assert.Equal(t, SourceProfile, source)
	assert.Equal(t, "Edited Name", content.PersonalInfo.Name)
}
