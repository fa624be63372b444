package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/davydav/userstats/internal/store"
)

type FavouriteHandler struct {
	favouriteStore *store.FavouriteStore
	profileStore   *store.GameProfileStore
	logger         *slog.Logger
}

func NewFavouriteHandler(fs *store.FavouriteStore, ps *store.GameProfileStore, logger *slog.Logger) *FavouriteHandler {
	return &FavouriteHandler{
		favouriteStore: fs,
		profileStore:   ps,
		logger:         logger,
	}
}

// Toggle flips the favourite state for a profile. The profile id comes
// from the form, falling back to the session cache from the last search.
func (h *FavouriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	sess := requireLogin(w, r, "Must be logged in to favourite a profile.", redirectNoUser)
	if sess == nil {
		return
	}

	profileID, _ := strconv.ParseInt(r.FormValue("profileId"), 10, 64)
	if profileID == 0 {
		profileID = sess.GameProfileID()
	}
	if profileID == 0 {
		respond(w, r, Envelope{
			StatusCode: http.StatusNotFound,
			Message:    "Profile not found",
			Redirect:   "/search?not_found=profile_not_found",
		})
		return
	}

	profile, err := h.profileStore.GetByID(profileID)
	if err != nil {
		h.logger.Error("favourite profile lookup", "error", err)
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

	favourited, err := h.favouriteStore.Toggle(sess.UserID(), profile.ID)
	if err != nil {
		h.logger.Error("toggle favourite", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}

	message := "Profile unfavourited successfully"
	if favourited {
		message = "Profile favourited successfully"
	}

	respond(w, r, Envelope{
		StatusCode: http.StatusOK,
		Message:    message,
		Redirect:   "/stats/" + profile.Username,
		Payload:    map[string]any{"favourited": favourited},
	})
}
