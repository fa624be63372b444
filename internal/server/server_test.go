package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/davydav/userstats/internal/database"
	"github.com/davydav/userstats/internal/session"
	"github.com/davydav/userstats/internal/statsapi"
)

const playerJSON = `{
	"global": {"name": "Wraith_Main", "level": 120, "rank": {"rankName": "Diamond", "rankDiv": 3}},
	"realtime": {"selectedLegend": "Wraith", "map": "Kings Canyon"},
	"total": {
		"kills": {"value": 800},
		"deaths": {"value": 400},
		"damage": {"value": 200000},
		"wins": {"value": 60},
		"kd": {"value": 2.0}
	}
}`

type envelope struct {
	StatusCode int            `json:"statusCode"`
	Message    string         `json:"message"`
	Template   string         `json:"template"`
	Payload    map[string]any `json:"payload"`
	Redirect   string         `json:"redirect"`
}

// newTestServer wires a full server over an in-memory database with the
// stats API stubbed by the given handler. The returned client carries a
// cookie jar so the session survives across requests, and does not follow
// redirects so Location headers stay observable.
func newTestServer(t *testing.T, apiHandler http.HandlerFunc) (*httptest.Server, *http.Client) {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	apiStub := httptest.NewServer(apiHandler)
	t.Cleanup(apiStub.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := statsapi.NewClient(statsapi.Config{APIKey: "test-key", BaseURL: apiStub.URL})
	srv := New(db, api, session.NewMemoryManager(), logger)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return ts, client
}

func okAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, playerJSON)
}

func postForm(t *testing.T, client *http.Client, target string, form url.Values) envelope {
	t.Helper()
	resp, err := client.Post(target, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("POST %s: %v", target, err)
	}
	defer resp.Body.Close()
	return decodeEnvelope(t, resp)
}

// postFormRaw keeps the response open so tests can inspect Set-Cookie
// headers alongside the envelope.
func postFormRaw(t *testing.T, client *http.Client, target string, form url.Values) *http.Response {
	t.Helper()
	resp, err := client.Post(target, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("POST %s: %v", target, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func responseCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func get(t *testing.T, client *http.Client, target string) envelope {
	t.Helper()
	resp, err := client.Get(target)
	if err != nil {
		t.Fatalf("GET %s: %v", target, err)
	}
	defer resp.Body.Close()
	return decodeEnvelope(t, resp)
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func register(t *testing.T, client *http.Client, base, username, email, password string) {
	t.Helper()
	env := postForm(t, client, base+"/users", url.Values{
		"userName":        {username},
		"email":           {email},
		"password":        {password},
		"confirmPassword": {password},
	})
	if env.StatusCode != http.StatusCreated {
		t.Fatalf("register: status %d message %q", env.StatusCode, env.Message)
	}
}

func login(t *testing.T, client *http.Client, base, email, password string) {
	t.Helper()
	env := postForm(t, client, base+"/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	if env.StatusCode != http.StatusOK {
		t.Fatalf("login: status %d message %q", env.StatusCode, env.Message)
	}
}

func TestRegisterValidationPrecedence(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	cases := []struct {
		name     string
		form     url.Values
		message  string
		redirect string
	}{
		{
			name:     "missing email wins over everything",
			form:     url.Values{"userName": {""}, "password": {""}, "confirmPassword": {"x"}},
			message:  "Missing email.",
			redirect: "/register?empty_email=email_empty",
		},
		{
			name:     "missing password next",
			form:     url.Values{"email": {"a@b.c"}, "confirmPassword": {"x"}},
			message:  "Missing password.",
			redirect: "/register?empty_password=password_empty",
		},
		{
			name:     "missing username next",
			form:     url.Values{"email": {"a@b.c"}, "password": {"pw"}, "confirmPassword": {"pw"}},
			message:  "Missing username.",
			redirect: "/register?empty_username=username_empty",
		},
		{
			name:     "password mismatch last",
			form:     url.Values{"email": {"a@b.c"}, "password": {"pw"}, "confirmPassword": {"other"}, "userName": {"alice"}},
			message:  "Passwords do not match",
			redirect: "/register?password_error=password_mismatch",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := postForm(t, client, ts.URL+"/users", tc.form)
			if env.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", env.StatusCode)
			}
			if env.Message != tc.message {
				t.Errorf("message = %q, want %q", env.Message, tc.message)
			}
			if env.Redirect != tc.redirect {
				t.Errorf("redirect = %q, want %q", env.Redirect, tc.redirect)
			}
		})
	}
}

func TestRegisterDuplicates(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	register(t, client, ts.URL, "alice", "alice@example.com", "pw")

	env := postForm(t, client, ts.URL+"/users", url.Values{
		"userName": {"bob"}, "email": {"alice@example.com"},
		"password": {"pw"}, "confirmPassword": {"pw"},
	})
	if env.Message != "User with this email already exists." {
		t.Errorf("message = %q", env.Message)
	}
	if env.Redirect != "/register?email_error=email_duplicate" {
		t.Errorf("redirect = %q", env.Redirect)
	}

	env = postForm(t, client, ts.URL+"/users", url.Values{
		"userName": {"alice"}, "email": {"other@example.com"},
		"password": {"pw"}, "confirmPassword": {"pw"},
	})
	if env.Message != "User with this username already exists." {
		t.Errorf("message = %q", env.Message)
	}
	if env.Redirect != "/register?username_error=username_duplicate" {
		t.Errorf("redirect = %q", env.Redirect)
	}
}

func TestLoginSuccessAndFailure(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	register(t, client, ts.URL, "alice", "alice@example.com", "pw")

	env := postForm(t, client, ts.URL+"/login", url.Values{
		"email": {"alice@example.com"}, "password": {"wrong"},
	})
	if env.StatusCode != http.StatusBadRequest || env.Message != "Invalid credentials." {
		t.Errorf("wrong password: status %d message %q", env.StatusCode, env.Message)
	}
	if env.Redirect != "/login?login_error=invalid_credentials" {
		t.Errorf("redirect = %q", env.Redirect)
	}

	// A failed login must not authenticate the session.
	guard := get(t, client, ts.URL+"/users/edit")
	if guard.StatusCode != http.StatusUnauthorized {
		t.Errorf("edit after failed login: status %d, want 401", guard.StatusCode)
	}

	env = postForm(t, client, ts.URL+"/login", url.Values{
		"email": {"alice@example.com"}, "password": {"pw"},
	})
	if env.StatusCode != http.StatusOK || env.Message != "Logged in successfully!" {
		t.Errorf("login: status %d message %q", env.StatusCode, env.Message)
	}
	if env.Redirect != "/search" {
		t.Errorf("redirect = %q, want /search", env.Redirect)
	}
}

func TestLogoutEndsSession(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	register(t, client, ts.URL, "alice", "alice@example.com", "pw")
	login(t, client, ts.URL, "alice@example.com", "pw")

	env := get(t, client, ts.URL+"/logout")
	if env.Message != "Logged out successfully" || env.Redirect != "/login" {
		t.Errorf("logout: message %q redirect %q", env.Message, env.Redirect)
	}

	guard := get(t, client, ts.URL+"/users/edit")
	if guard.StatusCode != http.StatusUnauthorized {
		t.Errorf("edit after logout: status %d, want 401", guard.StatusCode)
	}
}

func TestAuthGuards(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	cases := []struct {
		name     string
		do       func() envelope
		message  string
		redirect string
	}{
		{
			name:     "edit page",
			do:       func() envelope { return get(t, client, ts.URL+"/users/edit") },
			message:  "Unauthorized",
			redirect: "/login?no_user_edit=unauthorized",
		},
		{
			name:     "favourite",
			do:       func() envelope { return postForm(t, client, ts.URL+"/favourites", url.Values{"profileId": {"1"}}) },
			message:  "Must be logged in to favourite a profile.",
			redirect: "/login?no_user=unauthorized",
		},
		{
			name:     "link profile",
			do:       func() envelope { return postForm(t, client, ts.URL+"/profile", url.Values{}) },
			message:  "Must be logged in to claim a profile.",
			redirect: "/login?no_user_link=unauthorized",
		},
		{
			name:     "unlink profile",
			do:       func() envelope { return get(t, client, ts.URL+"/unlink") },
			message:  "Must be logged in to unlink a profile.",
			redirect: "/login?no_user_unlink=unauthorized",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := tc.do()
			if env.StatusCode != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", env.StatusCode)
			}
			if env.Message != tc.message {
				t.Errorf("message = %q, want %q", env.Message, tc.message)
			}
			if env.Redirect != tc.redirect {
				t.Errorf("redirect = %q, want %q", env.Redirect, tc.redirect)
			}
		})
	}
}

func TestSearchCreatesThenReusesProfile(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	form := url.Values{"username": {"Wraith_Main"}, "platform": {"PC"}}

	env := postForm(t, client, ts.URL+"/search", form)
	if env.StatusCode != http.StatusCreated || env.Message != "Profile created" {
		t.Fatalf("first search: status %d message %q", env.StatusCode, env.Message)
	}
	if env.Redirect != "/stats/Wraith_Main" {
		t.Errorf("redirect = %q", env.Redirect)
	}

	// Same pair again must not create a second profile.
	env = postForm(t, client, ts.URL+"/search", form)
	if env.StatusCode != http.StatusOK || env.Message != "Profile retrieved" {
		t.Errorf("second search: status %d message %q", env.StatusCode, env.Message)
	}

	stats := get(t, client, ts.URL+"/stats/Wraith_Main")
	if stats.StatusCode != http.StatusOK {
		t.Fatalf("stats page: status %d message %q", stats.StatusCode, stats.Message)
	}
	if stats.Payload["platform"] != "PC" {
		t.Errorf("platform payload = %v, want PC", stats.Payload["platform"])
	}
}

func TestSearchUnknownPlatform(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	env := postForm(t, client, ts.URL+"/search", url.Values{
		"username": {"Wraith_Main"}, "platform": {"SWITCH"},
	})
	if env.StatusCode != http.StatusNotFound || env.Message != "Platform not found" {
		t.Errorf("status %d message %q", env.StatusCode, env.Message)
	}
	if env.Redirect != "/search?not_found=platform_not_found" {
		t.Errorf("redirect = %q", env.Redirect)
	}
}

func TestSearchPlayerNotFoundInAPI(t *testing.T) {
	ts, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"Error": "Player not found"}`)
	})

	env := postForm(t, client, ts.URL+"/search", url.Values{
		"username": {"NoSuchPlayer"}, "platform": {"PC"},
	})
	if env.StatusCode != http.StatusNotFound || env.Message != "Player not found in API" {
		t.Errorf("status %d message %q", env.StatusCode, env.Message)
	}
	if env.Redirect != "/search?not_found_api=player_not_found" {
		t.Errorf("redirect = %q", env.Redirect)
	}
}

func TestSearchUpstreamFailure(t *testing.T) {
	ts, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	env := postForm(t, client, ts.URL+"/search", url.Values{
		"username": {"Wraith_Main"}, "platform": {"PC"},
	})
	if env.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", env.StatusCode)
	}
	if env.Message != "Stats service unavailable, try again later." {
		t.Errorf("message = %q", env.Message)
	}
	if env.Redirect != "/search?api_error=try_again" {
		t.Errorf("redirect = %q", env.Redirect)
	}
}

func TestStatsPageUnknownProfile(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	env := get(t, client, ts.URL+"/stats/NoSuchPlayer")
	if env.StatusCode != http.StatusNotFound || env.Message != "Profile not found" {
		t.Errorf("status %d message %q", env.StatusCode, env.Message)
	}
	if env.Redirect != "/search?not_found=profile_not_found" {
		t.Errorf("redirect = %q", env.Redirect)
	}
}

func TestFavouriteToggle(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	register(t, client, ts.URL, "alice", "alice@example.com", "pw")
	login(t, client, ts.URL, "alice@example.com", "pw")
	postForm(t, client, ts.URL+"/search", url.Values{"username": {"Wraith_Main"}, "platform": {"PC"}})

	env := postForm(t, client, ts.URL+"/favourites", url.Values{})
	if env.Message != "Profile favourited successfully" {
		t.Errorf("first toggle message = %q", env.Message)
	}

	env = postForm(t, client, ts.URL+"/favourites", url.Values{})
	if env.Message != "Profile unfavourited successfully" {
		t.Errorf("second toggle message = %q", env.Message)
	}
}

func TestLinkAndUnlinkProfile(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	register(t, client, ts.URL, "alice", "alice@example.com", "pw")
	login(t, client, ts.URL, "alice@example.com", "pw")
	postForm(t, client, ts.URL+"/search", url.Values{"username": {"Wraith_Main"}, "platform": {"PC"}})

	env := postForm(t, client, ts.URL+"/profile", url.Values{})
	if env.StatusCode != http.StatusOK || env.Message != "Profiles linked successfully" {
		t.Fatalf("link: status %d message %q", env.StatusCode, env.Message)
	}

	env = get(t, client, ts.URL+"/search/linked")
	if env.StatusCode != http.StatusOK || env.Redirect != "/stats/Wraith_Main" {
		t.Errorf("linked stats: status %d redirect %q", env.StatusCode, env.Redirect)
	}

	env = get(t, client, ts.URL+"/unlink")
	if env.StatusCode != http.StatusOK || env.Message != "Profiles unlinked successfully" {
		t.Errorf("unlink: status %d message %q", env.StatusCode, env.Message)
	}

	env = get(t, client, ts.URL+"/search/linked")
	if env.StatusCode != http.StatusNotFound || env.Message != "No linked game profile found." {
		t.Errorf("linked stats after unlink: status %d message %q", env.StatusCode, env.Message)
	}
	if env.Redirect != "/search?not_found_linked=no_linked_profile" {
		t.Errorf("redirect = %q", env.Redirect)
	}
}

func TestUnlinkWithoutLinkedProfile(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	register(t, client, ts.URL, "alice", "alice@example.com", "pw")
	login(t, client, ts.URL, "alice@example.com", "pw")

	env := get(t, client, ts.URL+"/unlink")
	if env.StatusCode != http.StatusNotFound || env.Message != "No linked profile to unlink." {
		t.Errorf("status %d message %q", env.StatusCode, env.Message)
	}
}

func TestUserEdit(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	register(t, client, ts.URL, "alice", "alice@example.com", "pw")
	login(t, client, ts.URL, "alice@example.com", "pw")

	env := get(t, client, ts.URL+"/users/edit")
	if env.StatusCode != http.StatusOK || env.Message != "Edit form retrieved" {
		t.Fatalf("edit page: status %d message %q", env.StatusCode, env.Message)
	}

	// Method override lets HTML forms reach the PUT route.
	env = postForm(t, client, ts.URL+"/users/edit", url.Values{
		"_method": {"PUT"}, "username": {""}, "email": {"alice@example.com"},
	})
	if env.Message != "Username cannot be empty." {
		t.Errorf("message = %q", env.Message)
	}

	env = postForm(t, client, ts.URL+"/users/edit", url.Values{
		"_method": {"PUT"}, "username": {"alice"}, "email": {""},
	})
	if env.Message != "Email cannot be empty." {
		t.Errorf("message = %q", env.Message)
	}

	env = postForm(t, client, ts.URL+"/users/edit", url.Values{
		"_method": {"PUT"}, "username": {"alice2"}, "email": {"alice2@example.com"},
	})
	if env.StatusCode != http.StatusOK || env.Message != "User updated successfully!" {
		t.Errorf("update: status %d message %q", env.StatusCode, env.Message)
	}
}

func TestRememberMeSetsAndClearsEmailCookie(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	register(t, client, ts.URL, "alice", "alice@example.com", "pw")

	resp := postFormRaw(t, client, ts.URL+"/login", url.Values{
		"email": {"alice@example.com"}, "password": {"pw"}, "rememberMe": {"on"},
	})
	cookie := responseCookie(resp, "email")
	if cookie == nil {
		t.Fatal("expected email cookie on remember-me login")
	}
	if cookie.Value != "alice@example.com" {
		t.Errorf("cookie value = %q", cookie.Value)
	}
	if !cookie.Expires.After(time.Now()) {
		t.Errorf("remember-me cookie expires in the past: %v", cookie.Expires)
	}

	env := get(t, client, ts.URL+"/login")
	if env.Payload["rememberedEmail"] != "alice@example.com" {
		t.Errorf("rememberedEmail = %v, want pre-filled email", env.Payload["rememberedEmail"])
	}

	// Opting out on the next login expires the cookie.
	resp = postFormRaw(t, client, ts.URL+"/login", url.Values{
		"email": {"alice@example.com"}, "password": {"pw"},
	})
	cookie = responseCookie(resp, "email")
	if cookie == nil {
		t.Fatal("expected expiring email cookie when rememberMe is off")
	}
	if cookie.MaxAge >= 0 && cookie.Expires.After(time.Now()) {
		t.Errorf("opt-out cookie not expired: max-age %d expires %v", cookie.MaxAge, cookie.Expires)
	}

	env = get(t, client, ts.URL+"/login")
	if env.Payload["rememberedEmail"] != "" {
		t.Errorf("rememberedEmail = %v, want empty after opt-out", env.Payload["rememberedEmail"])
	}
}

func TestUserUpdatePersistsPreferenceCookies(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	register(t, client, ts.URL, "alice", "alice@example.com", "pw")
	login(t, client, ts.URL, "alice@example.com", "pw")

	resp := postFormRaw(t, client, ts.URL+"/users/edit", url.Values{
		"_method": {"PUT"}, "username": {"alice"}, "email": {"alice@example.com"},
		"darkmode": {"dark"}, "profilePicture": {"https://example.com/a.png"},
	})
	env := decodeEnvelope(t, resp)
	if env.Message != "User updated successfully!" {
		t.Fatalf("update: message %q", env.Message)
	}

	dark := responseCookie(resp, "darkmode")
	if dark == nil || dark.Value != "dark" {
		t.Errorf("darkmode cookie = %+v", dark)
	} else if !dark.Expires.After(time.Now()) {
		t.Errorf("darkmode cookie expires in the past: %v", dark.Expires)
	}

	pic := responseCookie(resp, "pic")
	if pic == nil || pic.Value != "https://example.com/a.png" {
		t.Errorf("pic cookie = %+v", pic)
	}

	edit := get(t, client, ts.URL+"/users/edit")
	if edit.Payload["darkmode"] != "dark" {
		t.Errorf("darkmode payload = %v", edit.Payload["darkmode"])
	}
	if edit.Payload["pic"] != "https://example.com/a.png" {
		t.Errorf("pic payload = %v", edit.Payload["pic"])
	}
}

func TestRedirectToStatsFromFavourites(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	register(t, client, ts.URL, "alice", "alice@example.com", "pw")
	login(t, client, ts.URL, "alice@example.com", "pw")
	postForm(t, client, ts.URL+"/search", url.Values{"username": {"Wraith_Main"}, "platform": {"PC"}})
	postForm(t, client, ts.URL+"/favourites", url.Values{})

	env := get(t, client, ts.URL+"/redirect/Wraith_Main")
	if env.StatusCode != http.StatusOK || env.Message != "Redirecting to stats page" {
		t.Errorf("status %d message %q", env.StatusCode, env.Message)
	}
	if env.Redirect != "/stats/Wraith_Main" {
		t.Errorf("redirect = %q", env.Redirect)
	}

	env = get(t, client, ts.URL+"/redirect/NotAFavourite")
	if env.StatusCode != http.StatusNotFound || env.Message != "Profile not found" {
		t.Errorf("status %d message %q", env.StatusCode, env.Message)
	}
	if env.Redirect != "/search?not_found=profile_not_found" {
		t.Errorf("redirect = %q", env.Redirect)
	}
}

func TestEditPageShowsUpdateErrors(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	register(t, client, ts.URL, "alice", "alice@example.com", "pw")
	login(t, client, ts.URL, "alice@example.com", "pw")

	cases := map[string]string{
		"/users/edit?empty_username=username_empty":     "Username cannot be empty.",
		"/users/edit?empty_email=email_empty":           "Email cannot be empty.",
		"/users/edit?email_error=email_duplicate":       "A user with this email already exists",
		"/users/edit?username_error=username_duplicate": "A user with this username already exists",
	}
	for path, want := range cases {
		env := get(t, client, ts.URL+path)
		if env.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, env.StatusCode)
		}
		if env.Payload["error"] != want {
			t.Errorf("%s: error = %v, want %q", path, env.Payload["error"], want)
		}
	}
}

func TestFullUserJourney(t *testing.T) {
	ts, client := newTestServer(t, okAPI)

	register(t, client, ts.URL, "alice", "alice@example.com", "pw")
	login(t, client, ts.URL, "alice@example.com", "pw")

	env := postForm(t, client, ts.URL+"/search", url.Values{
		"username": {"Wraith_Main"}, "platform": {"PC"},
	})
	if env.StatusCode != http.StatusCreated {
		t.Fatalf("search: status %d message %q", env.StatusCode, env.Message)
	}

	env = postForm(t, client, ts.URL+"/favourites", url.Values{})
	if env.Message != "Profile favourited successfully" {
		t.Fatalf("favourite: message %q", env.Message)
	}

	edit := get(t, client, ts.URL+"/users/edit")
	if edit.StatusCode != http.StatusOK {
		t.Fatalf("edit page: status %d", edit.StatusCode)
	}
	favs, ok := edit.Payload["favourites"].([]any)
	if !ok || len(favs) != 1 {
		t.Errorf("favourites payload = %v", edit.Payload["favourites"])
	}
}
