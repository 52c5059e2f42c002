package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepeatMode_StringAndParse(t *testing.T) {
	tests := []struct {
		mode RepeatMode
		text string
	}{
		{RepeatNone, "none"},
		{RepeatOne, "one"},
		{RepeatAll, "all"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.text, tt.mode.String())
		assert.Equal(t, tt.mode, ParseRepeatMode(tt.text))
	}

	assert.Equal(t, RepeatNone, ParseRepeatMode("bogus"))
	assert.Equal(t, "unknown", RepeatMode(42).String())
}

func TestRepeatMode_NextCycles(t *testing.T) {
	assert.Equal(t, RepeatAll, RepeatNone.Next())
	assert.Equal(t, RepeatOne, RepeatAll.Next())
	assert.Equal(t, RepeatNone, RepeatOne.Next())
}

func TestSettings_Merge(t *testing.T) {
	base := DefaultSettings()

	theme := "light"
	save := false
	merged := base.Merge(SettingsPatch{Theme: &theme, SaveHistory: &save})

	assert.Equal(t, "light", merged.Theme)
	assert.False(t, merged.SaveHistory)
	// Untouched fields keep their values.
	assert.Equal(t, base.FontSize, merged.FontSize)
	assert.Equal(t, base.DefaultVolume, merged.DefaultVolume)

	// An empty patch changes nothing.
	assert.Equal(t, base, base.Merge(SettingsPatch{}))
}

func TestProfileUpdate_ApplyTo(t *testing.T) {
	user := User{FirstName: "Minh", LastName: "Nguyen", Bio: "old bio"}

	bio := "new bio"
	first := "Anh"
	updated := ProfileUpdate{Bio: &bio, FirstName: &first}.ApplyTo(user)

	assert.Equal(t, "new bio", updated.Bio)
	assert.Equal(t, "Anh", updated.FirstName)
	assert.Equal(t, "Nguyen", updated.LastName)
	// The original is untouched.
	assert.Equal(t, "old bio", user.Bio)
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Minh Nguyen", User{FirstName: "Minh", LastName: "Nguyen"}.DisplayName())
	assert.Equal(t, "Minh", User{FirstName: "Minh"}.DisplayName())
	assert.Equal(t, "Nguyen", User{LastName: "Nguyen"}.DisplayName())
	assert.Empty(t, User{}.DisplayName())
}
