package services

import (
	"context"
	"testing"

	"empiria-profile/models"
	"empiria-profile/monitoring"

	"github.com/pocketbase/pocketbase/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyProfileUpdate_SkipsAbsentFields(t *testing.T) {
	collection := core.NewAuthCollection("users")
	collection.Fields.Add(
		&core.TextField{Name: "full_name"},
		&core.TextField{Name: "phone"},
		&core.JSONField{Name: "interests"},
	)

	record := core.NewRecord(collection)
	record.Set("full_name", "Ada Lovelace")
	record.Set("phone", "+1 555 0100")
	record.Set("interests", []string{"music"})

	// a PATCH body carrying only phone leaves the other fields alone
	phone := "+1 555 0199"
	applyProfileUpdate(record, ProfileUpdate{Phone: &phone})

	assert.Equal(t, "Ada Lovelace", record.GetString("full_name"))
	assert.Equal(t, "+1 555 0199", record.GetString("phone"))
	assert.Equal(t, []string{"music"}, record.GetStringSlice("interests"))
}

func TestApplyProfileUpdate_ClearsWithExplicitEmpty(t *testing.T) {
	collection := core.NewAuthCollection("users")
	collection.Fields.Add(&core.TextField{Name: "phone"})

	record := core.NewRecord(collection)
	record.Set("phone", "+1 555 0100")

	empty := ""
	applyProfileUpdate(record, ProfileUpdate{Phone: &empty})
	assert.Equal(t, "", record.GetString("phone"))
}

func TestAvatarKey(t *testing.T) {
	assert.Equal(t, "avatars/auth0-abc123/avatar.png", AvatarKey("auth0|abc123", "me.png"))
	assert.Equal(t, "avatars/google-oauth2-987/avatar.jpeg", AvatarKey("google-oauth2|987", "photo.JPEG"))

	// extensionless uploads get a default
	assert.Equal(t, "avatars/auth0-abc123/avatar.jpg", AvatarKey("auth0|abc123", "avatar"))

	// same subject, same key: uploads overwrite
	assert.Equal(t,
		AvatarKey("auth0|abc123", "first.png"),
		AvatarKey("auth0|abc123", "second.png"),
	)
}

func TestRequestPasswordReset_SocialAccountRejected(t *testing.T) {
	service := &ProfileService{monitor: monitoring.NewMonitor()}
	user := &models.User{Auth0ID: "google-oauth2|987", Email: "ada@example.com"}

	err := service.RequestPasswordReset(context.Background(), user)
	require.Error(t, err)
	assert.Equal(t, "password is managed by your login provider", err.Error())
}

func TestRequestPasswordReset_ProviderNotConfigured(t *testing.T) {
	service := &ProfileService{monitor: monitoring.NewMonitor()}
	user := &models.User{Auth0ID: "auth0|abc123", Email: "ada@example.com"}

	err := service.RequestPasswordReset(context.Background(), user)
	require.Error(t, err)
	assert.Equal(t, "identity provider is not configured", err.Error())
}
