package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_RegisterAndLoginFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	registerBody := map[string]interface{}{
		"name":     "Flow User",
		"email":    "flow@test.com",
		"password": "super_password123",
		"role":     "employer",
	}

	regRes, regBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode, "register response: %s", regBody)

	var regResponse struct {
		Success bool `json:"success"`
		User    struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(regBody), &regResponse))
	assert.True(t, regResponse.Success)
	assert.Equal(t, "flow@test.com", regResponse.User.Email)
	assert.Equal(t, "employer", regResponse.User.Role)
	assert.NotEmpty(t, regResponse.Token, "registration signs the user in")

	logRes, logBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "flow@test.com",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusOK, logRes.StatusCode, "login response: %s", logBody)
	assert.Contains(t, logBody, `"token"`)
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "User One",
		Email:        "duplicate@test.com",
		PasswordHash: "pass123456",
		Role:         models.UserRoleJobseeker,
	})

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "User Two",
		"email":    "duplicate@test.com",
		"password": "another_password",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "response: %s", body)
	assert.Contains(t, body, "Email already in use")
}

func TestAuth_LoginFailuresLookTheSame(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "Known User",
		Email:        "known@test.com",
		PasswordHash: "correct-password",
		Role:         models.UserRoleJobseeker,
	})

	wrongPassRes, wrongPassBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "known@test.com",
		"password": "wrong-password",
	})
	unknownRes, unknownBody := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "correct-password",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassRes.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownRes.StatusCode)
	// Identical body so a caller cannot probe which emails exist
	assert.Equal(t, wrongPassBody, unknownBody)
}

func TestAuth_VerifyToken(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, user := helpers.CreateAndLoginUser(t, ts, "Verify User", "verify@test.com", "super_password123", models.UserRoleEmployer)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/verify", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)
	assert.Contains(t, body, user.Email)

	noTokenRes, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/verify", "", nil)
	assert.Equal(t, http.StatusUnauthorized, noTokenRes.StatusCode)

	garbageRes, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/verify", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, garbageRes.StatusCode)
}
