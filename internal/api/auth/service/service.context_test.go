package authsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/auth/models"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("mat-khau-bi-mat")
	assert.NoError(t, err)
	assert.NotEqual(t, "mat-khau-bi-mat", hash)

	// Hash phải verify được với mật khẩu gốc và fail với mật khẩu sai
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("mat-khau-bi-mat")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("mat-khau-sai")))
}

func TestUserIDContext(t *testing.T) {
	id := primitive.NewObjectID()
	ctx := SetUserIDToContext(context.Background(), id)

	got, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestIsAdminFromContext(t *testing.T) {
	assert.False(t, IsAdminFromContext(context.Background()))
	assert.False(t, IsAdminFromContext(SetUserRoleToContext(context.Background(), models.RoleUser)))
	assert.True(t, IsAdminFromContext(SetUserRoleToContext(context.Background(), models.RoleAdmin)))
}
