package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/davydav/userstats/internal/session"
	"github.com/davydav/userstats/internal/store"
)

type UserHandler struct {
	userStore      *store.UserStore
	profileStore   *store.GameProfileStore
	favouriteStore *store.FavouriteStore
	logger         *slog.Logger
}

func NewUserHandler(us *store.UserStore, ps *store.GameProfileStore, fs *store.FavouriteStore, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userStore:      us,
		profileStore:   ps,
		favouriteStore: fs,
		logger:         logger,
	}
}

// RegisterPage renders the registration form, translating redirect tags
// from failed submissions into error messages. Tag precedence mirrors the
// validation order of Create.
func (h *UserHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var errMsg string
	switch {
	case q.Has("empty_email"):
		errMsg = "Email is required"
	case q.Has("empty_password"):
		errMsg = "One or more of the password fields are empty"
	case q.Has("empty_username"):
		errMsg = "Username is required"
	case q.Has("password_error"):
		errMsg = "Passwords do not match"
	case q.Has("email_error"):
		errMsg = "A user with this email already exists"
	case q.Has("username_error"):
		errMsg = "A user with this username already exists"
	}

	if errMsg != "" {
		respond(w, r, Envelope{
			StatusCode: http.StatusBadRequest,
			Message:    "loaded registration form with errors",
			Template:   "RegistrationFormView",
			Payload:    map[string]any{"error": errMsg},
		})
		return
	}

	respond(w, r, Envelope{
		StatusCode: http.StatusOK,
		Message:    "loaded registration form",
		Template:   "RegistrationFormView",
	})
}

// Create registers a new user. Validation failures redirect back to the
// registration form in a fixed precedence order: empty email, empty
// password, empty username, mismatched passwords, duplicate email,
// duplicate username.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	confirm := r.FormValue("confirmPassword")
	username := strings.TrimSpace(r.FormValue("userName"))
	if username == "" {
		username = strings.TrimSpace(r.FormValue("username"))
	}

	switch {
	case email == "":
		respond(w, r, Envelope{
			StatusCode: http.StatusBadRequest,
			Message:    "Missing email.",
			Redirect:   "/register?empty_email=email_empty",
		})
		return
	case password == "":
		respond(w, r, Envelope{
			StatusCode: http.StatusBadRequest,
			Message:    "Missing password.",
			Redirect:   "/register?empty_password=password_empty",
		})
		return
	case username == "":
		respond(w, r, Envelope{
			StatusCode: http.StatusBadRequest,
			Message:    "Missing username.",
			Redirect:   "/register?empty_username=username_empty",
		})
		return
	case password != confirm:
		respond(w, r, Envelope{
			StatusCode: http.StatusBadRequest,
			Message:    "Passwords do not match",
			Redirect:   "/register?password_error=password_mismatch",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("hash password", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}

	user, err := h.userStore.Create(username, email, string(hash))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			respond(w, r, Envelope{
				StatusCode: http.StatusBadRequest,
				Message:    "User with this email already exists.",
				Redirect:   "/register?email_error=email_duplicate",
			})
		case errors.Is(err, store.ErrDuplicateUsername):
			respond(w, r, Envelope{
				StatusCode: http.StatusBadRequest,
				Message:    "User with this username already exists.",
				Redirect:   "/register?username_error=username_duplicate",
			})
		default:
			h.logger.Error("create user", "error", err)
			respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		}
		return
	}

	respond(w, r, Envelope{
		StatusCode: http.StatusCreated,
		Message:    "User created",
		Redirect:   "/login",
		Template:   "LoginFormView",
		Payload:    map[string]any{"user": user},
	})
}

// EditPage renders the profile edit form for the logged-in user,
// translating redirect tags from failed updates into error messages.
func (h *UserHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	sess := requireLogin(w, r, "Unauthorized", redirectNoUserEdit)
	if sess == nil {
		return
	}

	user, err := h.userStore.GetByID(sess.UserID())
	if err != nil || user == nil {
		h.logger.Error("edit page user lookup", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}

	favourites, err := h.favouriteStore.ListByUserID(user.ID)
	if err != nil {
		h.logger.Error("edit page favourites", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}

	linked, err := h.profileStore.GetBySiteUserID(user.ID)
	if err != nil {
		h.logger.Error("edit page linked profile", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}

	payload := map[string]any{
		"user":          user,
		"favourites":    favourites,
		"linkedProfile": linked,
		"darkmode":      cookieValue(r, cookieDarkmode),
		"pic":           cookieValue(r, cookiePic),
	}

	q := r.URL.Query()
	var errMsg string
	switch {
	case q.Has("empty_username"):
		errMsg = "Username cannot be empty."
	case q.Has("empty_email"):
		errMsg = "Email cannot be empty."
	case q.Has("email_error"):
		errMsg = "A user with this email already exists"
	case q.Has("username_error"):
		errMsg = "A user with this username already exists"
	case q.Has("no_linked"):
		errMsg = "No linked profile to unlink."
	}

	if errMsg != "" {
		payload["error"] = errMsg
		respond(w, r, Envelope{
			StatusCode: http.StatusBadRequest,
			Message:    "loaded edit form with errors",
			Template:   "EditProfileView",
			Payload:    payload,
		})
		return
	}

	respond(w, r, Envelope{
		StatusCode: http.StatusOK,
		Message:    "Edit form retrieved",
		Template:   "EditProfileView",
		Payload:    payload,
	})
}

// Update edits the logged-in user's profile. The optional darkmode and
// profilePicture fields persist as cookies; the picture URL is also stored
// on the user row.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess := requireLogin(w, r, "Unauthorized", redirectNoUserEdit)
	if sess == nil {
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))

	if username == "" {
		respond(w, r, Envelope{
			StatusCode: http.StatusBadRequest,
			Message:    "Username cannot be empty.",
			Redirect:   "/users/edit?empty_username=username_empty",
		})
		return
	}
	if email == "" {
		respond(w, r, Envelope{
			StatusCode: http.StatusBadRequest,
			Message:    "Email cannot be empty.",
			Redirect:   "/users/edit?empty_email=email_empty",
		})
		return
	}

	user, err := h.userStore.Update(sess.UserID(), username, email)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			respond(w, r, Envelope{
				StatusCode: http.StatusBadRequest,
				Message:    "User with this email already exists.",
				Redirect:   "/users/edit?email_error=email_duplicate",
			})
		case errors.Is(err, store.ErrDuplicateUsername):
			respond(w, r, Envelope{
				StatusCode: http.StatusBadRequest,
				Message:    "User with this username already exists.",
				Redirect:   "/users/edit?username_error=username_duplicate",
			})
		default:
			h.logger.Error("update user", "error", err)
			respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		}
		return
	}

	sess.Set(session.KeyEmail, user.Email)

	if darkmode := r.FormValue("darkmode"); darkmode != "" {
		setCookie(w, cookieDarkmode, darkmode, rememberEmailTTL)
	}
	if pic := strings.TrimSpace(r.FormValue("profilePicture")); pic != "" {
		if err := h.userStore.UpdateProfilePicture(user.ID, pic); err != nil {
			h.logger.Error("update profile picture", "error", err)
		} else {
			setCookie(w, cookiePic, pic, rememberEmailTTL)
		}
	}

	respond(w, r, Envelope{
		StatusCode: http.StatusOK,
		Message:    "User updated successfully!",
		Redirect:   "/users/edit",
		Payload:    map[string]any{"user": user},
	})
}
