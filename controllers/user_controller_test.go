package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotel-management/dto"
	"hotel-management/models"
)

type userStoreStub struct {
	users      map[uint]*models.User
	nextID     uint
	lastFilter dto.UserFilter
}

func newUserStoreStub() *userStoreStub {
	return &userStoreStub{users: map[uint]*models.User{}, nextID: 1}
}

func (s *userStoreStub) GetUser(id uint) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *userStoreStub) GetUserByEmail(email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *userStoreStub) ListUsers(f dto.UserFilter) ([]models.User, error) {
	s.lastFilter = f
	out := []models.User{}
	for _, user := range s.users {
		if f.Role != "" && user.Role != f.Role {
			continue
		}
		out = append(out, *user)
	}
	return out, nil
}

func (s *userStoreStub) CreateUser(user *models.User) error {
	user.ID = s.nextID
	s.nextID++
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *userStoreStub) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for col, v := range updates {
		switch col {
		case "name":
			user.Name = v.(string)
		case "email":
			user.Email = v.(string)
		case "password":
			user.Password = v.(string)
		case "role":
			user.Role = v.(string)
		case "phone":
			if v == nil {
				user.Phone = nil
			} else {
				phone := v.(string)
				user.Phone = &phone
			}
		}
	}
	cp := *user
	return &cp, nil
}

func (s *userStoreStub) DeleteUser(id uint) error {
	delete(s.users, id)
	return nil
}

func userRouter(store UserStore) *gin.Engine {
	uc := NewUserController(store)
	r := gin.New()
	r.GET("/api/users", uc.GetUsers)
	r.POST("/api/users", uc.CreateUser)
	r.PUT("/api/users", uc.UpdateUser)
	r.DELETE("/api/users", uc.DeleteUser)
	return r
}

func TestCreateUserNeverEchoesPassword(t *testing.T) {
	store := newUserStoreStub()
	r := userRouter(store)
	w := perform(r, http.MethodPost, "/api/users", gin.H{
		"name": "John", "email": "john@example.com", "password": "secret123", "role": "ADMIN",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.NotContains(t, body, "password")
	assert.Equal(t, "john@example.com", body["email"])

	// stored hash, never the plaintext
	stored := store.users[1]
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestCreateUserDuplicateEmailCaseInsensitive(t *testing.T) {
	r := userRouter(newUserStoreStub())
	first := perform(r, http.MethodPost, "/api/users", gin.H{
		"name": "John", "email": "john@example.com", "password": "secret123", "role": "ADMIN",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := perform(r, http.MethodPost, "/api/users", gin.H{
		"name": "Johnny", "email": "John@Example.COM", "password": "secret456", "role": "CUSTOMER",
	})
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", errCode(t, second))
}

func TestCreateUserInvalidRole(t *testing.T) {
	r := userRouter(newUserStoreStub())
	w := perform(r, http.MethodPost, "/api/users", gin.H{
		"name": "John", "email": "john@example.com", "password": "secret123", "role": "ROOT",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ROLE", errCode(t, w))
}

func TestGetUserNotFound(t *testing.T) {
	r := userRouter(newUserStoreStub())
	w := perform(r, http.MethodGet, "/api/users?id=4", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "USER_NOT_FOUND", errCode(t, w))
}

func TestListUsersIgnoresUnknownRoleFilter(t *testing.T) {
	store := newUserStoreStub()
	store.CreateUser(&models.User{Name: "John", Email: "john@example.com", Role: "ADMIN"})
	r := userRouter(store)

	w := perform(r, http.MethodGet, "/api/users?role=WIZARD", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)
	assert.Empty(t, store.lastFilter.Role)
}

func TestUpdateUserEmailConflict(t *testing.T) {
	store := newUserStoreStub()
	store.CreateUser(&models.User{Name: "John", Email: "john@example.com", Role: "ADMIN"})
	store.CreateUser(&models.User{Name: "Jane", Email: "jane@example.com", Role: "ADMIN"})
	r := userRouter(store)

	conflict := perform(r, http.MethodPut, "/api/users?id=1", gin.H{"email": "jane@example.com"})
	assert.Equal(t, http.StatusBadRequest, conflict.Code)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", errCode(t, conflict))

	// keeping your own email is fine
	own := perform(r, http.MethodPut, "/api/users?id=1", gin.H{"email": "john@example.com"})
	assert.Equal(t, http.StatusOK, own.Code)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	store := newUserStoreStub()
	store.CreateUser(&models.User{Name: "John", Email: "john@example.com", Role: "ADMIN", Password: "oldhash"})
	r := userRouter(store)

	w := perform(r, http.MethodPut, "/api/users?id=1", gin.H{"password": "newsecret"})
	require.Equal(t, http.StatusOK, w.Code)
	stored := store.users[1]
	assert.NotEqual(t, "oldhash", stored.Password)
	assert.NotEqual(t, "newsecret", stored.Password)
}

func TestDeleteUser(t *testing.T) {
	store := newUserStoreStub()
	store.CreateUser(&models.User{Name: "John", Email: "john@example.com", Role: "ADMIN"})
	r := userRouter(store)

	w := perform(r, http.MethodDelete, "/api/users?id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted successfully", decode(t, w)["message"])
	assert.Empty(t, store.users)
}
