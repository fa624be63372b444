package handler

import (
	"log/slog"
	"net/http"

	"github.com/davydav/userstats/internal/store"
)

type ProfileHandler struct {
	profileStore *store.GameProfileStore
	logger       *slog.Logger
}

func NewProfileHandler(ps *store.GameProfileStore, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{profileStore: ps, logger: logger}
}

// Link claims the session-cached game profile for the logged-in user.
// A user owns at most one profile; claiming a second one releases the
// first.
func (h *ProfileHandler) Link(w http.ResponseWriter, r *http.Request) {
	sess := requireLogin(w, r, "Must be logged in to claim a profile.", redirectNoUserLink)
	if sess == nil {
		return
	}

	profileID := sess.GameProfileID()
	if profileID == 0 {
		respond(w, r, Envelope{
			StatusCode: http.StatusNotFound,
			Message:    "No profile selected to link.",
			Redirect:   "/search?not_found=profile_not_found",
		})
		return
	}

	profile, err := h.profileStore.GetByID(profileID)
	if err != nil {
		h.logger.Error("link profile lookup", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}
	if profile == nil {
		respond(w, r, Envelope{
			StatusCode: http.StatusNotFound,
			Message:    "Profile not found",
			Redirect:   "/search?not_found=profile_not_found",
		})
		return
	}

	if err := h.profileStore.Link(profile.ID, sess.UserID()); err != nil {
		h.logger.Error("link profile", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}

	respond(w, r, Envelope{
		StatusCode: http.StatusOK,
		Message:    "Profiles linked successfully",
		Redirect:   "/stats/" + profile.Username,
	})
}

// Unlink releases the logged-in user's linked game profile.
func (h *ProfileHandler) Unlink(w http.ResponseWriter, r *http.Request) {
	sess := requireLogin(w, r, "Must be logged in to unlink a profile.", redirectNoUserUnlink)
	if sess == nil {
		return
	}

	profile, err := h.profileStore.GetBySiteUserID(sess.UserID())
	if err != nil {
		h.logger.Error("unlink profile lookup", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}
	if profile == nil {
		respond(w, r, Envelope{
			StatusCode: http.StatusNotFound,
			Message:    "No linked profile to unlink.",
			Redirect:   "/users/edit?no_linked=no_linked_profile",
		})
		return
	}

	if err := h.profileStore.Unlink(profile.ID); err != nil {
		h.logger.Error("unlink profile", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}

	respond(w, r, Envelope{
		StatusCode: http.StatusOK,
		Message:    "Profiles unlinked successfully",
		Redirect:   "/users/edit",
	})
}
