package handlers

import (
	"net/http"
	"strings"

	"empiria-profile/internal/services"
	"empiria-profile/models"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

type ProfileHandler struct {
	app            *pocketbase.PocketBase
	profileService *services.ProfileService
}

func NewProfileHandler(app *pocketbase.PocketBase, profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		app:            app,
		profileService: profileService,
	}
}

// GetProfile - Current user's profile
func (h *ProfileHandler) GetProfile(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Unauthorized", nil)
	}
	return e.JSON(http.StatusOK, services.UserFromRecord(e.Auth))
}

// updateProfileReq uses pointers so a partial PATCH body leaves the
// omitted fields alone.
type updateProfileReq struct {
	FullName  *string              `json:"full_name"`
	Phone     *string              `json:"phone"`
	Interests *[]string            `json:"interests"`
	Settings  *models.UserSettings `json:"settings"`
}

// UpdateProfile - Save profile fields and, when present, settings.
// The two writes are independent; one failing does not roll back the
// other.
func (h *ProfileHandler) UpdateProfile(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Unauthorized", nil)
	}

	var req updateProfileReq
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	ctx := e.Request.Context()
	var failures []string

	if err := h.profileService.UpdateProfile(ctx, e.Auth.Id, services.ProfileUpdate{
		FullName:  req.FullName,
		Phone:     req.Phone,
		Interests: req.Interests,
	}); err != nil {
		failures = append(failures, err.Error())
	}

	if req.Settings != nil {
		if err := h.profileService.UpdateSettings(ctx, e.Auth.Id, *req.Settings); err != nil {
			failures = append(failures, err.Error())
		}
	}

	if len(failures) > 0 {
		return apis.NewBadRequestError(strings.Join(failures, "; "), nil)
	}

	record, err := h.app.FindRecordById("users", e.Auth.Id)
	if err != nil {
		return apis.NewInternalServerError("internal error", err)
	}
	return e.JSON(http.StatusOK, services.UserFromRecord(record))
}

// UpdateSettings - Save only the settings blob
func (h *ProfileHandler) UpdateSettings(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Unauthorized", nil)
	}

	var settings models.UserSettings
	if err := e.BindBody(&settings); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	if err := h.profileService.UpdateSettings(e.Request.Context(), e.Auth.Id, settings); err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}

	return e.JSON(http.StatusOK, map[string]any{"settings": settings})
}

// UploadAvatar - Replace the profile picture
func (h *ProfileHandler) UploadAvatar(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Unauthorized", nil)
	}

	_, fh, err := e.Request.FormFile("avatar")
	if err != nil {
		return apis.NewBadRequestError("No file provided", err)
	}

	url, err := h.profileService.UploadAvatar(e.Request.Context(), e.Auth.Id, fh)
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}

	return e.JSON(http.StatusOK, map[string]any{"avatar_url": url})
}

// RequestPasswordReset - Trigger the identity provider's reset email
func (h *ProfileHandler) RequestPasswordReset(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Unauthorized", nil)
	}

	user := services.UserFromRecord(e.Auth)
	if err := h.profileService.RequestPasswordReset(e.Request.Context(), user); err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}

	return e.JSON(http.StatusOK, map[string]any{"message": "Password reset email sent"})
}
