package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	authsvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/auth/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
)

// UserService đọc collection users từ registry, nên các hook auth chỉ được
// nối sau khi registry đã đăng ký collection (InitRegistry trước InitBaseHooks).
func TestNewUserService_CanRegistryTruoc(t *testing.T) {
	// Trước khi đăng ký collection users, tạo service phải báo lỗi
	_, err := authsvc.NewUserService()
	assert.Error(t, err)

	// mongo.Connect không dial cho tới khi có thao tác, chỉ cần client để lấy collection
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	assert.NoError(t, err)

	global.MongoDB_ColNames.Users = "auth_users"
	col := client.Database("neverbe_test").Collection(global.MongoDB_ColNames.Users)
	_, err = global.RegistryCollections.Register(global.MongoDB_ColNames.Users, col)
	assert.NoError(t, err)

	// Sau khi registry có collection, service tạo được và hook nối được
	svc, err := authsvc.NewUserService()
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}
