package endpoint_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ariebrainware/fitbuddy-api/endpoint"
	"github.com/ariebrainware/fitbuddy-api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterThenLogin(t *testing.T) {
	r, db := setupTestServer(t)

	id := registerUser(t, r, "alice", "pw123")
	assert.Equal(t, uint(1), id)

	w, resp := doRequest(t, r, http.MethodPost, "/login", map[string]string{"name": "alice", "password": "pw123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	var data endpoint.UserIDResponse
	decodeData(t, resp.Data, &data)
	assert.Equal(t, uint(1), data.UserID)

	var stored model.User
	require.NoError(t, db.First(&stored, id).Error)
	assert.NotEqual(t, "pw123", stored.Password)
	assert.True(t, strings.HasPrefix(stored.Password, "argon2id$"))
}

func TestRegister_SameSecretStoredDifferently(t *testing.T) {
	r, db := setupTestServer(t)
	a := registerUser(t, r, "alice", "pw123")
	b := registerUser(t, r, "bob", "pw123")

	var ua, ub model.User
	require.NoError(t, db.First(&ua, a).Error)
	require.NoError(t, db.First(&ub, b).Error)
	assert.NotEqual(t, ua.Password, ub.Password)
}

func TestRegister_MissingField(t *testing.T) {
	r, db := setupTestServer(t)

	body := registerBody("alice", "pw123")
	delete(body, "age")
	w, resp := doRequest(t, r, http.MethodPost, "/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)

	body = registerBody("alice", "")
	w, _ = doRequest(t, r, http.MethodPost, "/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&model.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestRegister_ResponseNeverEchoesPassword(t *testing.T) {
	r, _ := setupTestServer(t)
	w, _ := doRequest(t, r, http.MethodPost, "/register", registerBody("alice", "s3cret-pass"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "s3cret-pass")
}

func TestLogin_UnknownNameAndWrongPasswordLookTheSame(t *testing.T) {
	r, _ := setupTestServer(t)
	registerUser(t, r, "alice", "pw123")

	wrong, _ := doRequest(t, r, http.MethodPost, "/login", map[string]string{"name": "alice", "password": "nope"})
	unknown, _ := doRequest(t, r, http.MethodPost, "/login", map[string]string{"name": "mallory", "password": "pw123"})

	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
	assert.Contains(t, wrong.Body.String(), endpoint.ErrInvalidCredentials.Error())
}

func TestLogin_MissingField(t *testing.T) {
	r, _ := setupTestServer(t)

	w, _ := doRequest(t, r, http.MethodPost, "/login", map[string]string{"name": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/login", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_NormalizesName(t *testing.T) {
	r, _ := setupTestServer(t)
	id := registerUser(t, r, "  alice   smith ", "pw123")

	w, resp := doRequest(t, r, http.MethodPost, "/login", map[string]string{"name": "alice smith", "password": "pw123"})
	require.Equal(t, http.StatusOK, w.Code)
	var data endpoint.UserIDResponse
	decodeData(t, resp.Data, &data)
	assert.Equal(t, id, data.UserID)
}

func TestLogin_UpgradesLegacyBcryptHash(t *testing.T) {
	r, db := setupTestServer(t)

	legacy, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := model.User{Name: "legacy", Age: 40, Gender: "M", Phone: "1", Email: "l@example.com", Password: string(legacy)}
	require.NoError(t, db.Create(&user).Error)

	w, _ := doRequest(t, r, http.MethodPost, "/login", map[string]string{"name": "legacy", "password": "pw123"})
	require.Equal(t, http.StatusOK, w.Code)

	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, strings.HasPrefix(stored.Password, "argon2id$"))

	// the upgraded hash still verifies
	w, _ = doRequest(t, r, http.MethodPost, "/login", map[string]string{"name": "legacy", "password": "pw123"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_MalformedStoredHashIsServerError(t *testing.T) {
	r, db := setupTestServer(t)
	user := model.User{Name: "broken", Password: "plaintext-from-old-import"}
	require.NoError(t, db.Create(&user).Error)

	w, resp := doRequest(t, r, http.MethodPost, "/login", map[string]string{"name": "broken", "password": "x"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", resp.Error)
}
