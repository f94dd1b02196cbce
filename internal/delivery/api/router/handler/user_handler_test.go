package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"fileauth/internal/domain/entity"
	domainerrors "fileauth/internal/domain/errors"
	mockUC "fileauth/internal/mocks/usecase"
	"fileauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUserHandler(t *testing.T) (*UserHandler, *mockUC.MockUserUsecase) {
	t.Helper()

	userUC := mockUC.NewMockUserUsecase(t)

	return NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: discardLogger()}), userUC
}

func TestUserHandler_ListUsers_HidesHashes(t *testing.T) {
	h, userUC := newTestUserHandler(t)
	c, rec := newContext(http.MethodGet, "/api/v1/users", "", "")

	userUC.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{
		{Username: "admin", PasswordHash: "$2b$12$secrethash", Role: entity.RoleAdmin, Active: true},
		{Username: "bob", PasswordHash: "$2b$12$otherhash", Role: entity.RoleViewer, Email: "bob@example.com"},
	}, nil)

	require.NoError(t, h.ListUsers(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")

	var body struct {
		Data []UserResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, UserResponse{Username: "bob", Role: "viewer", Email: "bob@example.com"}, body.Data[1])
}

func TestUserHandler_CreateUser(t *testing.T) {
	h, userUC := newTestUserHandler(t)
	c, rec := newContext(http.MethodPost, "/api/v1/users", echo.MIMEApplicationJSON,
		`{"username":"bob","password":"pw","role":"editor","email":"bob@example.com","active":false,"metadata":{"team":"data"}}`)
	withClaims(c, "admin", entity.RoleAdmin)

	userUC.EXPECT().
		CreateUser(mock.Anything, "admin", mock.MatchedBy(func(input usecase.CreateUserInput) bool {
			return input.Username == "bob" && input.Role == entity.RoleEditor &&
				input.Active != nil && !*input.Active && input.Metadata["team"] == "data"
		})).
		Return(&entity.User{Username: "bob", Role: entity.RoleEditor, Email: "bob@example.com"}, nil)

	require.NoError(t, h.CreateUser(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"bob"`)
}

func TestUserHandler_CreateUser_Validation(t *testing.T) {
	tests := map[string]string{
		"missing password": `{"username":"bob","role":"viewer"}`,
		"bad role":         `{"username":"bob","password":"pw","role":"root"}`,
		"bad email":        `{"username":"bob","password":"pw","role":"viewer","email":"nope"}`,
	}

	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			h, _ := newTestUserHandler(t)
			c, _ := newContext(http.MethodPost, "/api/v1/users", echo.MIMEApplicationJSON, payload)
			withClaims(c, "admin", entity.RoleAdmin)

			assert.Error(t, h.CreateUser(c))
		})
	}
}

func TestUserHandler_UpdateUser(t *testing.T) {
	h, userUC := newTestUserHandler(t)
	c, rec := newContext(http.MethodPatch, "/api/v1/users/bob", echo.MIMEApplicationJSON, `{"role":"admin","active":true}`)
	c.SetParamNames("username")
	c.SetParamValues("bob")
	withClaims(c, "admin", entity.RoleAdmin)

	userUC.EXPECT().
		UpdateUser(mock.Anything, "admin", "bob", mock.MatchedBy(func(input usecase.UpdateUserInput) bool {
			return input.Role != nil && *input.Role == entity.RoleAdmin &&
				input.Active != nil && *input.Active &&
				input.Password == nil && input.Email == nil
		})).
		Return(&entity.User{Username: "bob", Role: entity.RoleAdmin, Active: true}, nil)

	require.NoError(t, h.UpdateUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_GetAndDelete(t *testing.T) {
	h, userUC := newTestUserHandler(t)

	userUC.EXPECT().GetUser(mock.Anything, "ghost").Return(nil, domainerrors.ErrUserNotFound)
	userUC.EXPECT().DeleteUser(mock.Anything, "admin", "bob").Return(nil)

	get, _ := newContext(http.MethodGet, "/api/v1/users/ghost", "", "")
	get.SetParamNames("username")
	get.SetParamValues("ghost")
	assert.ErrorIs(t, h.GetUser(get), domainerrors.ErrUserNotFound)

	del, rec := newContext(http.MethodDelete, "/api/v1/users/bob", "", "")
	del.SetParamNames("username")
	del.SetParamValues("bob")
	withClaims(del, "admin", entity.RoleAdmin)
	require.NoError(t, h.DeleteUser(del))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
