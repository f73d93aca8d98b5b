package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/samira-travel/backoffice/docstore"
	"github.com/samira-travel/backoffice/jamaah"
	jamaahhttp "github.com/samira-travel/backoffice/jamaah/http"
	"github.com/samira-travel/backoffice/user"
	"github.com/samira-travel/backoffice/user/auth"
	userhttp "github.com/samira-travel/backoffice/user/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("server-test-key")

type fakeSubmStore struct {
	mu      sync.Mutex
	subs    []jamaah.Submission
	listErr error
}

func (s *fakeSubmStore) ListSubmissions(ctx context.Context) ([]jamaah.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]jamaah.Submission, len(s.subs))
	copy(out, s.subs)
	return out, nil
}

func (s *fakeSubmStore) GetSubmission(ctx context.Context, id string) (jamaah.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subs {
		if sub.ID == id {
			return sub, nil
		}
	}
	return jamaah.Submission{}, docstore.ErrNotFound
}

func (s *fakeSubmStore) CreateSubmission(ctx context.Context, subm jamaah.Submission) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subm.ID = fmt.Sprintf("subm-%d", len(s.subs)+1)
	s.subs = append(s.subs, subm)
	return subm.ID, nil
}

type fakeFileStore struct{}

func (f *fakeFileStore) PresignedURL(ctx context.Context, key string, duration time.Duration) (string, error) {
	return "https://files.test/" + key, nil
}

func (f *fakeFileStore) Upload(ctx context.Context, content []byte, key string, mediaType string) (string, error) {
	return "https://files.test/" + key, nil
}

// countingUserStore tracks List calls so tests can assert that request
// validation short-circuits before any store access.
type countingUserStore struct {
	mu        sync.Mutex
	rows      []*user.UserRow
	listCalls int
}

func (s *countingUserStore) List(ctx context.Context) ([]*user.UserRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	out := make([]*user.UserRow, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *countingUserStore) Save(ctx context.Context, row *user.UserRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, row)
	return nil
}

func (s *countingUserStore) ListCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls
}

type testEnv struct {
	server    *httptest.Server
	client    *http.Client
	userStore *countingUserStore
	submStore *fakeSubmStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	userStore := &countingUserStore{}
	userSrvc := user.NewUserSrvc(userStore)
	_, err := userSrvc.CreateUser(context.Background(), "siti@samira.travel", "Siti", "rahasia-besar")
	require.NoError(t, err)

	submStore := &fakeSubmStore{}
	jamaahSrvc := jamaah.NewService(submStore, &fakeFileStore{}, nil)

	userHandler := userhttp.NewUserHttpHandler(userSrvc, testJwtKey)
	userHandler.SecureCookies = false

	httpServer := NewHttpServer(
		jamaahhttp.NewJamaahHttpHandler(jamaahSrvc),
		userHandler,
		testJwtKey,
		[]string{"*"},
	)

	server := httptest.NewServer(httpServer.Handler())
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testEnv{
		server:    server,
		client:    &http.Client{Jar: jar},
		userStore: userStore,
		submStore: submStore,
	}
}

type envelope struct {
	Status  string            `json:"status"`
	Data    json.RawMessage   `json:"data"`
	ErrCode string            `json:"code"`
	ErrMsg  string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (*http.Response, envelope) {
	t.Helper()
	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}
	req, err := http.NewRequest(method, e.server.URL+path, &reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()
	resp, env := e.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "siti@samira.travel",
		"password": "rahasia-besar",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "success", env.Status)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "siti@samira.travel",
		"password": "rahasia-besar",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "success", body.Status)

	var data struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Nama  string `json:"nama"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, "siti@samira.travel", data.User.Email)
	assert.Equal(t, "Siti", data.User.Nama)

	var sessionCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == auth.TokenCookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie)
	assert.Equal(t, data.Token, sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
}

func TestLoginInvalidEmailFailsBeforeStore(t *testing.T) {
	env := newTestEnv(t)
	before := env.userStore.ListCalls()

	resp, body := env.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "not-an-email",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Please enter a valid email address", body.Fields["email"])
	assert.Equal(t, before, env.userStore.ListCalls(), "validation must not hit the store")
}

func TestLoginEmptyPassword(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "siti@samira.travel",
		"password": "",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Password is required", body.Fields["password"])
	assert.NotContains(t, body.Fields, "email")
}

func TestLoginWrongCredentialsMarksBothFields(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "siti@samira.travel",
		"password": "salah",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password", body.Fields["email"])
	assert.Equal(t, "Invalid email or password", body.Fields["password"])
}

func TestLoginWhileAuthenticatedConflicts(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp, body := env.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "siti@samira.travel",
		"password": "rahasia-besar",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, userhttp.ErrCodeAlreadyAuthenticated, body.ErrCode)
}

func TestGuardedRoutesRequireSession(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/jamaah", "/jamaah/some-id", "/auth/whoami"} {
		resp, body := env.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		assert.Equal(t, ErrCodeUnauthenticated, body.ErrCode, path)
	}
}

func TestListAndSearchSubmissions(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.submStore.CreateSubmission(context.Background(),
		jamaah.Submission{Nama: "Amir Hidayat", Email: "amir@contoh.id", Kota: "Bandung"})
	require.NoError(t, err)
	_, err = env.submStore.CreateSubmission(context.Background(),
		jamaah.Submission{Nama: "Budi Santoso", Email: "budi@contoh.id", Kota: "Surabaya"})
	require.NoError(t, err)

	env.login(t)

	resp, body := env.do(t, http.MethodGet, "/jamaah", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rows []map[string]string
	require.NoError(t, json.Unmarshal(body.Data, &rows))
	assert.Len(t, rows, 2)

	resp, body = env.do(t, http.MethodGet, "/jamaah?search=budi", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Budi Santoso", rows[0]["nama"])
	assert.Equal(t, "Surabaya", rows[0]["kota"])
}

func TestGetSubmissionDetail(t *testing.T) {
	env := newTestEnv(t)
	id, err := env.submStore.CreateSubmission(context.Background(), jamaah.Submission{
		Nama:  "Amir Hidayat",
		Email: "amir@contoh.id",
		Ktp:   "documents/amir/ktp.jpg",
		Foto:  "documents/amir/foto.jpg",
	})
	require.NoError(t, err)

	env.login(t)

	resp, body := env.do(t, http.MethodGet, "/jamaah/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail struct {
		Nama      string            `json:"nama"`
		Documents map[string]string `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &detail))
	assert.Equal(t, "Amir Hidayat", detail.Nama)
	assert.Len(t, detail.Documents, 2)
	assert.Equal(t, "https://files.test/documents/amir/ktp.jpg", detail.Documents["ktp"])
}

func TestListSubmissionsStoreFailure(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	env.submStore.mu.Lock()
	env.submStore.listErr = errors.New("dynamo unreachable")
	env.submStore.mu.Unlock()

	resp, body := env.do(t, http.MethodGet, "/jamaah", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, jamaah.ErrCodeGatewayError, body.ErrCode)
	assert.Equal(t, "failed to reach the submission store", body.ErrMsg)
}

func TestGetSubmissionNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp, body := env.do(t, http.MethodGet, "/jamaah/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, jamaah.ErrCodeJamaahNotFound, body.ErrCode)
	assert.Equal(t, "Jamaah not found", body.ErrMsg)
}

func TestBearerTokenSession(t *testing.T) {
	env := newTestEnv(t)

	_, body := env.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "siti@samira.travel",
		"password": "rahasia-besar",
	})
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))

	// separate client with no cookie jar, bearer header only
	req, err := http.NewRequest(http.MethodGet, env.server.URL+"/auth/whoami", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+data.Token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogoutClearsSession(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp, body := env.do(t, http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "success", body.Status)

	var data map[string]string
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, "Logout successful", data["message"])

	var cleared *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == auth.TokenCookieName {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	// cookie jar dropped the cookie, guarded routes lock again
	resp, _ = env.do(t, http.MethodGet, "/jamaah", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWhoAmI(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp, body := env.do(t, http.MethodGet, "/auth/whoami", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var staff struct {
		Email string `json:"email"`
		Nama  string `json:"nama"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &staff))
	assert.Equal(t, "siti@samira.travel", staff.Email)
	assert.Equal(t, "Siti", staff.Nama)
}
