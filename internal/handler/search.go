package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/davydav/userstats/internal/auth"
	"github.com/davydav/userstats/internal/model"
	"github.com/davydav/userstats/internal/session"
	"github.com/davydav/userstats/internal/statsapi"
	"github.com/davydav/userstats/internal/store"
	"github.com/davydav/userstats/internal/websocket"
)

type SearchHandler struct {
	profileStore  *store.GameProfileStore
	platformStore *store.PlatformStore
	statsStore    *store.StatsStore
	historyStore  *store.StatsHistoryStore
	favStore      *store.FavouriteStore
	api           *statsapi.Client
	hub           *websocket.Hub
	logger        *slog.Logger
}

func NewSearchHandler(
	ps *store.GameProfileStore,
	pls *store.PlatformStore,
	ss *store.StatsStore,
	hs *store.StatsHistoryStore,
	fs *store.FavouriteStore,
	api *statsapi.Client,
	hub *websocket.Hub,
	logger *slog.Logger,
) *SearchHandler {
	return &SearchHandler{
		profileStore:  ps,
		platformStore: pls,
		statsStore:    ss,
		historyStore:  hs,
		favStore:      fs,
		api:           api,
		hub:           hub,
		logger:        logger,
	}
}

// SearchPage renders the search form with the platform list and, for
// logged-in users, their favourites. Redirect tags from failed searches
// become error messages.
func (h *SearchHandler) SearchPage(w http.ResponseWriter, r *http.Request) {
	platforms, err := h.platformStore.List()
	if err != nil {
		h.logger.Error("list platforms", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}

	payload := map[string]any{
		"platforms": platforms,
		"darkmode":  cookieValue(r, cookieDarkmode),
	}

	sess := auth.SessionFrom(r.Context())
	if sess != nil && sess.IsLoggedIn() {
		favourites, err := h.favStore.ListByUserID(sess.UserID())
		if err != nil {
			h.logger.Error("list favourites", "error", err)
		} else {
			payload["favourites"] = favourites
		}
	}

	q := r.URL.Query()
	var errMsg string
	switch {
	case q.Has("not_found_api"):
		errMsg = "Player not found, check the username and platform."
	case q.Has("not_found_linked"):
		errMsg = "No linked game profile found."
	case q.Has("not_found"):
		errMsg = "Profile not found"
	case q.Has("api_error"):
		errMsg = "Stats service unavailable, try again later."
	}

	if errMsg != "" {
		payload["error"] = errMsg
		respond(w, r, Envelope{
			StatusCode: http.StatusBadRequest,
			Message:    "loaded search form with errors",
			Template:   "SearchFormView",
			Payload:    payload,
		})
		return
	}

	respond(w, r, Envelope{
		StatusCode: http.StatusOK,
		Message:    "Search page retrieved",
		Template:   "SearchFormView",
		Payload:    payload,
	})
}

// Search looks up a username on a platform. A locally known profile is
// reused together with its cached stats; otherwise the upstream API is
// queried and a profile, stats row, and history snapshot are created.
// Searching the same pair twice never creates a second profile.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	platformName := strings.TrimSpace(r.FormValue("platform"))

	platform, err := h.platformStore.GetByName(platformName)
	if err != nil {
		h.logger.Error("platform lookup", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}
	if platform == nil {
		respond(w, r, Envelope{
			StatusCode: http.StatusNotFound,
			Message:    "Platform not found",
			Redirect:   "/search?not_found=platform_not_found",
		})
		return
	}

	profile, err := h.profileStore.GetByUsernameAndPlatform(username, platform.ID)
	if err != nil {
		h.logger.Error("profile lookup", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}

	if profile != nil {
		h.cacheProfile(r, profile, platform.PlatformName)
		respond(w, r, Envelope{
			StatusCode: http.StatusOK,
			Message:    "Profile retrieved",
			Redirect:   "/stats/" + profile.Username,
		})
		return
	}

	stats, err := h.api.FetchPlayerStats(r.Context(), username, platform.PlatformName)
	if err != nil {
		if errors.Is(err, statsapi.ErrPlayerNotFound) {
			respond(w, r, Envelope{
				StatusCode: http.StatusNotFound,
				Message:    "Player not found in API",
				Redirect:   "/search?not_found_api=player_not_found",
			})
			return
		}
		h.logger.Error("stats API fetch", "error", err)
		respond(w, r, Envelope{
			StatusCode: http.StatusBadGateway,
			Message:    "Stats service unavailable, try again later.",
			Redirect:   "/search?api_error=try_again",
		})
		return
	}

	profile, err = h.profileStore.Create(username, platform.ID)
	if err != nil {
		h.logger.Error("create profile", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}

	if _, err := h.statsStore.Upsert(model.Stats{
		PlayerLevel:    stats.Level,
		PlayerKills:    stats.Kills,
		PlayerDeaths:   stats.Deaths,
		KillDeathRatio: stats.KillDeathRatio,
		PlayerDamage:   stats.Damage,
		PlayerWins:     stats.Wins,
		PlayerRank:     stats.Rank,
		ProfileID:      profile.ID,
	}); err != nil {
		h.logger.Error("save stats", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}

	now := time.Now().Unix()
	if _, err := h.historyStore.Create(model.StatsHistory{
		LegendPlayed: stats.ActiveLegend,
		MapPlayed:    stats.CurrentMap,
		DamageDealt:  stats.Damage,
		StartTime:    now,
		EndTime:      now,
		SessionKills: stats.Kills,
		ProfileID:    profile.ID,
	}); err != nil {
		h.logger.Error("save stats history", "error", err)
	}

	h.cacheProfile(r, profile, platform.PlatformName)
	h.hub.Broadcast(websocket.StatsRefreshed(profile.ID, profile.Username, platform.PlatformName))

	respond(w, r, Envelope{
		StatusCode: http.StatusCreated,
		Message:    "Profile created",
		Redirect:   "/stats/" + profile.Username,
	})
}

// StatsPage shows current and historical stats for a profile. The
// session-cached profile from the last search wins; a logged-in user's
// linked profile is the fallback, then a plain username lookup.
func (h *SearchHandler) StatsPage(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	sess := auth.SessionFrom(r.Context())

	profile, err := h.resolveProfile(sess, username)
	if err != nil {
		h.logger.Error("resolve profile", "error", err)
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

	stats, err := h.statsStore.GetByProfileID(profile.ID)
	if err != nil {
		h.logger.Error("load stats", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}

	history, err := h.historyStore.ListByProfileID(profile.ID)
	if err != nil {
		h.logger.Error("load stats history", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}

	// The session cache from the last search already knows the platform
	// name; otherwise resolve it from the profile row.
	platformName := ""
	if sess != nil && sess.GameProfileID() == profile.ID {
		platformName = sess.GetString(session.KeyGameProfilePlatform)
	}
	if platformName == "" {
		if platform, err := h.platformStore.GetByID(profile.PlatformID); err == nil && platform != nil {
			platformName = platform.PlatformName
		}
	}

	payload := map[string]any{
		"profile":  profile,
		"stats":    stats,
		"history":  history,
		"platform": platformName,
		"darkmode": cookieValue(r, cookieDarkmode),
	}

	if sess != nil && sess.IsLoggedIn() {
		favourited, err := h.favStore.Exists(sess.UserID(), profile.ID)
		if err == nil {
			payload["favourited"] = favourited
		}
	}

	respond(w, r, Envelope{
		StatusCode: http.StatusOK,
		Message:    "Stats page retrieved",
		Template:   "StatsView",
		Payload:    payload,
	})
}

// LinkedStats resolves the logged-in user's linked profile, caches it in
// the session, and redirects to its stats page.
func (h *SearchHandler) LinkedStats(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())
	if sess == nil || !sess.IsLoggedIn() {
		respond(w, r, Envelope{
			StatusCode: http.StatusNotFound,
			Message:    "No linked game profile found.",
			Redirect:   "/search?not_found_linked=no_linked_profile",
		})
		return
	}

	profile, err := h.profileStore.GetBySiteUserID(sess.UserID())
	if err != nil {
		h.logger.Error("linked profile lookup", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}
	if profile == nil {
		respond(w, r, Envelope{
			StatusCode: http.StatusNotFound,
			Message:    "No linked game profile found.",
			Redirect:   "/search?not_found_linked=no_linked_profile",
		})
		return
	}

	h.cacheProfileWithPlatform(r, profile)
	respond(w, r, Envelope{
		StatusCode: http.StatusOK,
		Message:    "Linked profile retrieved",
		Redirect:   "/stats/" + profile.Username,
	})
}

// RedirectToStats serves favourite-list clicks: it finds the named profile
// among the user's favourites, caches it in the session, and redirects to
// the stats page.
func (h *SearchHandler) RedirectToStats(w http.ResponseWriter, r *http.Request) {
	sess := requireLogin(w, r, "Must be logged in to favourite a profile.", redirectNoUser)
	if sess == nil {
		return
	}

	username := r.PathValue("username")

	favourites, err := h.favStore.ListByUserID(sess.UserID())
	if err != nil {
		h.logger.Error("list favourites", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}

	for _, f := range favourites {
		if f.Username == username {
			sess.Set(session.KeyGameProfileID, f.ProfileID)
			sess.Set(session.KeyGameProfileUsername, f.Username)
			sess.Set(session.KeyGameProfilePlatform, f.PlatformName)
			respond(w, r, Envelope{
				StatusCode: http.StatusOK,
				Message:    "Redirecting to stats page",
				Redirect:   "/stats/" + username,
			})
			return
		}
	}

	respond(w, r, Envelope{
		StatusCode: http.StatusNotFound,
		Message:    "Profile not found",
		Redirect:   "/search?not_found=profile_not_found",
	})
}

func (h *SearchHandler) resolveProfile(sess *session.Session, username string) (*model.GameProfile, error) {
	if sess != nil {
		if id := sess.GameProfileID(); id != 0 {
			profile, err := h.profileStore.GetByID(id)
			if err != nil {
				return nil, err
			}
			if profile != nil && profile.Username == username {
				return profile, nil
			}
		}
		if sess.IsLoggedIn() {
			profile, err := h.profileStore.GetBySiteUserID(sess.UserID())
			if err != nil {
				return nil, err
			}
			if profile != nil && profile.Username == username {
				return profile, nil
			}
		}
	}
	return h.profileStore.GetByUsername(username)
}

func (h *SearchHandler) cacheProfile(r *http.Request, profile *model.GameProfile, platformName string) {
	sess := auth.SessionFrom(r.Context())
	if sess == nil {
		return
	}
	sess.Set(session.KeyGameProfileID, profile.ID)
	sess.Set(session.KeyGameProfileUsername, profile.Username)
	sess.Set(session.KeyGameProfilePlatform, platformName)
}

func (h *SearchHandler) cacheProfileWithPlatform(r *http.Request, profile *model.GameProfile) {
	platformName := ""
	if platform, err := h.platformStore.GetByID(profile.PlatformID); err == nil && platform != nil {
		platformName = platform.PlatformName
	}
	h.cacheProfile(r, profile, platformName)
}
