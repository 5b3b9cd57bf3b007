package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/market-api/internal/api"
	"github.com/phrazzld/market-api/internal/api/shared"
	"github.com/phrazzld/market-api/internal/config"
	"github.com/phrazzld/market-api/internal/domain"
	"github.com/phrazzld/market-api/internal/mocks"
	"github.com/phrazzld/market-api/internal/service"
	"github.com/phrazzld/market-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	*httptest.Server
	tokens auth.JWTService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	identity, err := service.NewIdentityService(
		mocks.NewMockUserStore(),
		auth.NewBcryptHasher(auth.MinBcryptCost),
		tokens,
		log,
	)
	require.NoError(t, err)

	items, err := service.NewItemService(mocks.NewMockItemStore(), log)
	require.NoError(t, err)

	srv := httptest.NewServer(api.NewRouter(api.RouterDeps{
		Identity: identity,
		Items:    items,
		Tokens:   tokens,
		Logger:   log,
	}))
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func (s *testServer) registerAndSignIn(t *testing.T, name, email string) (domain.User, string) {
	t.Helper()

	resp := s.do(t, http.MethodPost, "/users", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "Str0ng!Pass",
		"status":   "ACTIVE",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	user := decode[domain.User](t, resp)

	resp = s.do(t, http.MethodPost, "/auth/signin", "", map[string]string{
		"email":    email,
		"password": "Str0ng!Pass",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	signIn := decode[api.SignInResponse](t, resp)
	require.NotEmpty(t, signIn.Token)

	return user, signIn.Token
}

func TestMarketplaceScenario(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	alice, t1 := srv.registerAndSignIn(t, "alice", "a@x.com")
	assert.Equal(t, "alice", alice.Name)
	assert.Equal(t, domain.UserStatusActive, alice.Status)

	resp := srv.do(t, http.MethodPost, "/items", t1, map[string]interface{}{"name": "chair", "price": 500})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	chair := decode[domain.Item](t, resp)
	assert.Equal(t, domain.ItemStatusOnSale, chair.Status)
	assert.Equal(t, alice.ID, chair.OwnerID)

	itemPath := "/items/" + chair.ID.String()

	resp = srv.do(t, http.MethodGet, itemPath, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.ItemStatusOnSale, decode[domain.Item](t, resp).Status)

	resp = srv.do(t, http.MethodPut, itemPath, t1, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.ItemStatusSoldOut, decode[domain.Item](t, resp).Status)

	_, t2 := srv.registerAndSignIn(t, "bob", "b@x.com")

	resp = srv.do(t, http.MethodDelete, itemPath, t2, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = srv.do(t, http.MethodGet, itemPath, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "non-owner delete must not remove the item")

	resp = srv.do(t, http.MethodDelete, itemPath, t1, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)

	resp = srv.do(t, http.MethodGet, itemPath, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRegisterResponseOmitsPassword(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodPost, "/users", "", map[string]string{
		"name":     "alice",
		"email":    "a@x.com",
		"password": "Str0ng!Pass",
		"status":   "PREMIUM",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	raw := decode[map[string]interface{}](t, resp)
	assert.NotContains(t, raw, "password")
	assert.NotContains(t, raw, "hashedPassword")
	assert.NotContains(t, raw, "HashedPassword")
	assert.Equal(t, "PREMIUM", raw["status"])
	assert.Contains(t, raw, "id")
	assert.Contains(t, raw, "createdAt")
}

func TestRegisterErrors(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	valid := map[string]string{
		"name":     "alice",
		"email":    "a@x.com",
		"password": "Str0ng!Pass",
		"status":   "ACTIVE",
	}
	with := func(key, value string) map[string]string {
		out := make(map[string]string, len(valid))
		for k, v := range valid {
			out[k] = v
		}
		out[key] = value
		return out
	}

	tests := []struct {
		name      string
		body      interface{}
		wantField string
		wantRule  string
	}{
		{"name too long", with("name", strings.Repeat("n", 21)), "name", "max"},
		{"missing name", with("name", ""), "name", "required"},
		{"bad email", with("email", "not-an-email"), "email", "email"},
		{"email over column length", with("email", strings.Repeat("a", 60)+"@"+strings.Repeat("b", 247)+".com"), "email", "max"},
		{"weak password", with("password", "password"), "password", "strongpassword"},
		{"password over bcrypt limit", with("password", "Aa1!"+strings.Repeat("x", 69)), "password", "maxbytes"},
		{"unknown status", with("status", "ADMIN"), "status", "oneof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := srv.do(t, http.MethodPost, "/users", "", tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			errResp := decode[shared.ErrorResponse](t, resp)
			assert.Equal(t, "Validation failed", errResp.Error)
			assert.NotEmpty(t, errResp.TraceID)
			require.Len(t, errResp.Violations, 1)
			assert.Equal(t, tt.wantField, errResp.Violations[0].Field)
			assert.Equal(t, tt.wantRule, errResp.Violations[0].Rule)
		})
	}

	t.Run("malformed JSON", func(t *testing.T) {
		resp := srv.do(t, http.MethodPost, "/users", "", `{"name":`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid request format", decode[shared.ErrorResponse](t, resp).Error)
	})

	t.Run("duplicate email", func(t *testing.T) {
		resp := srv.do(t, http.MethodPost, "/users", "", with("email", "dup@x.com"))
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = srv.do(t, http.MethodPost, "/users", "", with("email", "dup@x.com"))
		require.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "Email already registered", decode[shared.ErrorResponse](t, resp).Error)
	})
}

func TestSignInFailuresLookIdentical(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	srv.registerAndSignIn(t, "alice", "a@x.com")

	wrongPassword := srv.do(t, http.MethodPost, "/auth/signin", "", map[string]string{
		"email": "a@x.com", "password": "Wr0ng!Pass",
	})
	unknownEmail := srv.do(t, http.MethodPost, "/auth/signin", "", map[string]string{
		"email": "nobody@x.com", "password": "Str0ng!Pass",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.StatusCode)
	assert.Equal(t,
		decode[shared.ErrorResponse](t, wrongPassword).Error,
		decode[shared.ErrorResponse](t, unknownEmail).Error)

	malformed := srv.do(t, http.MethodPost, "/auth/signin", "", map[string]string{"email": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, malformed.StatusCode)
}

func TestItemAuthentication(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	itemPath := "/items/" + uuid.NewString()

	tests := []struct {
		name   string
		method string
		path   string
		token  string
	}{
		{"create without token", http.MethodPost, "/items", ""},
		{"create with garbage token", http.MethodPost, "/items", "garbage"},
		{"mark sold without token", http.MethodPut, itemPath, ""},
		{"delete without token", http.MethodDelete, itemPath, ""},
		{"auth checked before path id", http.MethodPut, "/items/not-a-uuid", ""},
		{"auth checked before path id on delete", http.MethodDelete, "/items/not-a-uuid", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := srv.do(t, tt.method, tt.path, tt.token, map[string]interface{}{"name": "chair", "price": 1})
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestItemRequestErrors(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	_, token := srv.registerAndSignIn(t, "alice", "a@x.com")

	t.Run("invalid create payloads", func(t *testing.T) {
		payloads := []map[string]interface{}{
			{"price": 10},
			{"name": strings.Repeat("n", 41), "price": 10},
			{"name": "chair"},
			{"name": "chair", "price": 0},
			{"name": "chair", "price": 10, "description": strings.Repeat("d", 1001)},
		}
		for _, payload := range payloads {
			resp := srv.do(t, http.MethodPost, "/items", token, payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "payload %v", payload)
		}
	})

	t.Run("price limits", func(t *testing.T) {
		resp := srv.do(t, http.MethodPost, "/items", token, map[string]interface{}{"name": "chair", "price": int64(3000000000)})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		errResp := decode[shared.ErrorResponse](t, resp)
		require.Len(t, errResp.Violations, 1)
		assert.Equal(t, "price", errResp.Violations[0].Field)
		assert.Equal(t, "max", errResp.Violations[0].Rule)

		resp = srv.do(t, http.MethodPost, "/items", token, map[string]interface{}{"name": "chair", "price": domain.MaxItemPrice})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, domain.MaxItemPrice, decode[domain.Item](t, resp).Price)
	})

	t.Run("client status is ignored", func(t *testing.T) {
		resp := srv.do(t, http.MethodPost, "/items", token, map[string]interface{}{
			"name": "lamp", "price": 5, "status": "SOLD_OUT", "description": "brass",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		item := decode[domain.Item](t, resp)
		assert.Equal(t, domain.ItemStatusOnSale, item.Status)
		require.NotNil(t, item.Description)
		assert.Equal(t, "brass", *item.Description)
	})

	t.Run("malformed ids", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, srv.do(t, http.MethodGet, "/items/not-a-uuid", "", nil).StatusCode)
		assert.Equal(t, http.StatusBadRequest, srv.do(t, http.MethodPut, "/items/not-a-uuid", token, nil).StatusCode)
		assert.Equal(t, http.StatusBadRequest, srv.do(t, http.MethodDelete, "/items/not-a-uuid", token, nil).StatusCode)
	})

	t.Run("missing items", func(t *testing.T) {
		missing := "/items/" + uuid.NewString()
		assert.Equal(t, http.StatusNotFound, srv.do(t, http.MethodGet, missing, "", nil).StatusCode)
		assert.Equal(t, http.StatusNotFound, srv.do(t, http.MethodPut, missing, token, nil).StatusCode)
		assert.Equal(t, http.StatusNotFound, srv.do(t, http.MethodDelete, missing, token, nil).StatusCode)
	})
}

func TestListItems(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodGet, "/items", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))

	_, token := srv.registerAndSignIn(t, "alice", "a@x.com")
	for _, name := range []string{"chair", "table"} {
		resp := srv.do(t, http.MethodPost, "/items", token, map[string]interface{}{"name": name, "price": 3})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp = srv.do(t, http.MethodGet, "/items", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decode[[]domain.Item](t, resp)
	require.Len(t, items, 2)
	assert.Equal(t, "chair", items[0].Name)
	assert.Equal(t, "table", items[1].Name)
}

func TestHealthAndUnknownRoutes(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))

	resp = srv.do(t, http.MethodGet, "/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))

	resp = srv.do(t, http.MethodPatch, "/items", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
