package services

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"empiria-profile/config"
	"empiria-profile/internal/services/identity/auth0"
	"empiria-profile/models"
	"empiria-profile/monitoring"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	pubnub "github.com/pubnub/go"
)

// ProfileService runs the profile mutation workflow. Every operation is
// an independent round trip: it succeeds or fails on its own, with no
// retry and no rollback of earlier operations in the same submission.
type ProfileService struct {
	app     *pocketbase.PocketBase
	auth0   *auth0.Client
	cache   *DashboardService
	pubnub  *pubnub.PubNub
	cfg     *config.Config
	monitor *monitoring.Monitor
}

func NewProfileService(app *pocketbase.PocketBase, identity *auth0.Client, cache *DashboardService, pn *pubnub.PubNub, cfg *config.Config, monitor *monitoring.Monitor) *ProfileService {
	return &ProfileService{
		app:     app,
		auth0:   identity,
		cache:   cache,
		pubnub:  pn,
		cfg:     cfg,
		monitor: monitor,
	}
}

// ProfileUpdate carries the writable profile fields. Nil means the
// field was absent from the request and keeps its stored value.
type ProfileUpdate struct {
	FullName  *string   `json:"full_name"`
	Phone     *string   `json:"phone"`
	Interests *[]string `json:"interests"`
}

func applyProfileUpdate(record *core.Record, update ProfileUpdate) {
	if update.FullName != nil {
		record.Set("full_name", *update.FullName)
	}
	if update.Phone != nil {
		record.Set("phone", *update.Phone)
	}
	if update.Interests != nil {
		record.Set("interests", *update.Interests)
	}
}

// UpdateProfile writes the basic profile fields.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) error {
	record, err := s.app.FindRecordById("users", userID)
	if err != nil {
		s.monitor.TrackMutation("update_profile", "error")
		return fmt.Errorf("loading profile: %w", err)
	}

	applyProfileUpdate(record, update)

	if err := s.app.Save(record); err != nil {
		s.monitor.TrackMutation("update_profile", "error")
		return err
	}

	s.monitor.TrackMutation("update_profile", "ok")
	s.signalRefresh(ctx, userID)
	return nil
}

// UpdateSettings replaces the settings blob (theme + notification
// toggle). Independent of UpdateProfile even when both come from one
// form submission.
func (s *ProfileService) UpdateSettings(ctx context.Context, userID string, settings models.UserSettings) error {
	record, err := s.app.FindRecordById("users", userID)
	if err != nil {
		s.monitor.TrackMutation("update_settings", "error")
		return fmt.Errorf("loading profile: %w", err)
	}

	record.Set("settings", settings)

	if err := s.app.Save(record); err != nil {
		s.monitor.TrackMutation("update_settings", "error")
		return err
	}

	s.monitor.TrackMutation("update_settings", "ok")
	s.signalRefresh(ctx, userID)
	return nil
}

// AvatarKey is the deterministic storage key for a subject's avatar, so
// repeated uploads overwrite instead of accumulating.
func AvatarKey(subject, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("avatars/%s/avatar%s", strings.ReplaceAll(subject, "|", "-"), ext)
}

// UploadAvatar stores the uploaded image and points the user's
// avatar_url at its public address. Size and format limits are advisory
// here; the storage backend enforces them.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (string, error) {
	if file == nil || file.Size == 0 {
		s.monitor.TrackMutation("upload_avatar", "error")
		return "", fmt.Errorf("no file provided")
	}
	if file.Size > s.cfg.AvatarMaxSize {
		slog.Warn("avatar exceeds advisory size limit", "userID", userID, "size", file.Size)
	}

	record, err := s.app.FindRecordById("users", userID)
	if err != nil {
		s.monitor.TrackMutation("upload_avatar", "error")
		return "", fmt.Errorf("loading profile: %w", err)
	}

	key := AvatarKey(record.GetString("auth0_id"), file.Filename)

	fsys, err := s.app.NewFilesystem()
	if err != nil {
		s.monitor.TrackMutation("upload_avatar", "error")
		return "", fmt.Errorf("opening storage: %w", err)
	}
	defer fsys.Close()

	if err := fsys.UploadMultipart(file, key); err != nil {
		s.monitor.TrackMutation("upload_avatar", "error")
		return "", fmt.Errorf("uploading avatar: %w", err)
	}

	publicURL := strings.TrimRight(s.cfg.StorageBaseURL, "/") + "/" + key
	record.Set("avatar_url", publicURL)
	if err := s.app.Save(record); err != nil {
		// The blob landed but the reference write failed; the previous
		// avatar keeps rendering until a later successful upload.
		s.monitor.TrackMutation("upload_avatar", "error")
		return "", err
	}

	s.monitor.TrackMutation("upload_avatar", "ok")
	s.signalRefresh(ctx, userID)
	return publicURL, nil
}

// RequestPasswordReset triggers the identity provider's reset email.
// Only accounts from the username/password connection qualify; social
// subjects are rejected before any network call.
func (s *ProfileService) RequestPasswordReset(ctx context.Context, user *models.User) error {
	if !user.PasswordConnection() {
		s.monitor.TrackPasswordReset("not_eligible")
		return fmt.Errorf("password is managed by your login provider")
	}
	if s.auth0 == nil {
		s.monitor.TrackPasswordReset("error")
		return fmt.Errorf("identity provider is not configured")
	}

	if err := s.auth0.SendChangePasswordEmail(ctx, user.Email); err != nil {
		s.monitor.TrackPasswordReset("error")
		return err
	}
	s.monitor.TrackPasswordReset("ok")
	return nil
}

// signalRefresh invalidates the cached dashboard payload and notifies
// the user's realtime channel so open sessions refetch. Both are best
// effort; a mutation that committed stays committed.
func (s *ProfileService) signalRefresh(ctx context.Context, userID string) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, userID); err != nil {
			slog.Warn("dashboard cache invalidation failed", "userID", userID, "error", err)
		}
	}

	if s.pubnub != nil {
		channel := fmt.Sprintf("user-%s", userID)
		_, _, err := s.pubnub.Publish().
			Channel(channel).
			Message(map[string]any{"type": "profile.updated"}).
			Execute()
		if err != nil {
			slog.Warn("refresh signal publish failed", "channel", channel, "error", err)
		}
	}
}
