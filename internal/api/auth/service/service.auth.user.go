package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/auth/dto"
	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/auth/models"
	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/middleware"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/utility"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng admin panel
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// HashPassword băm mật khẩu bằng bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err)
	}
	return string(hash), nil
}

// LoginWithFirebase đăng nhập bằng Firebase ID token.
// Chỉ user đã được tạo sẵn trong hệ thống (theo firebaseUid hoặc email) mới đăng nhập được;
// login KHÔNG tự tạo tài khoản mới.
func (s *UserService) LoginWithFirebase(ctx context.Context, input *authdto.FirebaseLoginInput) (*models.User, error) {
	token, err := utility.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		logrus.WithError(err).Error("LoginWithFirebase: Lỗi verify Firebase ID token")
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Token không hợp lệ", common.StatusUnauthorized, err)
	}

	firebaseUser, err := utility.GetUserByUID(ctx, token.UID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"firebase_uid": token.UID, "error": err.Error()}).Error("LoginWithFirebase: Lỗi lấy thông tin user từ Firebase")
		return nil, err
	}

	// Tìm user theo firebaseUid, sau đó theo email (user tạo trước khi biết uid)
	user, err := s.FindOne(ctx, bson.M{"firebaseUid": token.UID}, nil)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		if firebaseUser.Email == "" {
			return nil, common.ErrUserNotFound
		}
		user, err = s.FindOne(ctx, bson.M{"email": firebaseUser.Email}, nil)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				logrus.WithFields(logrus.Fields{"firebase_uid": token.UID, "email": firebaseUser.Email}).Warn("LoginWithFirebase: Không có tài khoản cho Firebase user này")
				return nil, common.ErrUserNotFound
			}
			return nil, err
		}
		if user.FirebaseUID != "" && user.FirebaseUID != token.UID {
			return nil, common.NewError(
				common.ErrCodeAuthCredentials,
				fmt.Sprintf("Email '%s' đã được liên kết với tài khoản Firebase khác", firebaseUser.Email),
				common.StatusConflict,
				nil,
			)
		}
	}

	if !user.IsActive() {
		return nil, common.NewError(common.ErrCodeAuth, "Tài khoản không hoạt động (trạng thái: "+user.Status+")", common.StatusForbidden, nil)
	}

	// Đồng bộ thông tin mới nhất từ Firebase về user document
	profileUpdate := &basesvc.UpdateData{Set: map[string]interface{}{"firebaseUid": token.UID}}
	if firebaseUser.DisplayName != "" {
		profileUpdate.Set["name"] = firebaseUser.DisplayName
	}
	if firebaseUser.PhotoURL != "" {
		profileUpdate.Set["avatarUrl"] = firebaseUser.PhotoURL
	}
	user, err = s.UpdateById(ctx, user.ID, profileUpdate)
	if err != nil {
		return nil, err
	}

	return s.mintSession(ctx, user, input.Hwid)
}

// LoginWithPassword đăng nhập bằng email + mật khẩu (fallback).
func (s *UserService) LoginWithPassword(ctx context.Context, input *authdto.PasswordLoginInput) (*models.User, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Tài khoản này chỉ đăng nhập được qua Firebase", common.StatusUnauthorized, nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		logrus.WithFields(logrus.Fields{"email": input.Email}).Warn("LoginWithPassword: Sai mật khẩu")
		return nil, common.ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, common.NewError(common.ErrCodeAuth, "Tài khoản không hoạt động (trạng thái: "+user.Status+")", common.StatusForbidden, nil)
	}

	return s.mintSession(ctx, user, input.Hwid)
}

// mintSession tạo JWT token mới và cập nhật vào user (theo hwid, mỗi thiết bị một token).
func (s *UserService) mintSession(ctx context.Context, user models.User, hwid string) (*models.User, error) {
	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(
		global.ServerConfig.JwtSecret,
		user.ID.Hex(),
		strconv.FormatInt(currentTime, 16),
		strconv.Itoa(rdNumber),
	)
	if err != nil {
		return nil, err
	}

	user.Token = tokenMap["token"]
	idTokenExist := -1
	for i, t := range user.Tokens {
		if t.Hwid == hwid {
			idTokenExist = i
			break
		}
	}
	if idTokenExist == -1 {
		user.Tokens = append(user.Tokens, models.Token{Hwid: hwid, JwtToken: user.Token})
	} else {
		user.Tokens[idTokenExist].JwtToken = user.Token
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  user.Token,
			"tokens": user.Tokens,
		},
	}
	updatedUser, err := s.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("mintSession: Lỗi khi cập nhật token vào user")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex(), "email": updatedUser.Email}).Info("Đăng nhập thành công")
	return &updatedUser, nil
}

// Logout đăng xuất người dùng (xóa token theo hwid)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, input *authdto.UserLogoutInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	newTokens := make([]models.Token, 0)
	for _, t := range user.Tokens {
		if t.Hwid != input.Hwid {
			newTokens = append(newTokens, t)
		} else if t.JwtToken != "" {
			middleware.InvalidateTokenCache(t.JwtToken)
		}
	}
	if user.Token != "" {
		middleware.InvalidateTokenCache(user.Token)
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"tokens": newTokens,
			"token":  "",
		},
	}
	_, err = s.UpdateById(ctx, userID, updateData)
	return err
}

// FindByToken tìm user đang giữ bearer token (token hiện tại hoặc token của một thiết bị khác).
func (s *UserService) FindByToken(ctx context.Context, token string) (*models.User, error) {
	user, err := s.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		user, err = s.FindOne(ctx, bson.M{"tokens": bson.M{"$elemMatch": bson.M{"jwtToken": token}}}, nil)
		if err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// MiddlewareLookup trả về hàm tra user theo token cho auth middleware.
func (s *UserService) MiddlewareLookup() middleware.UserLookupFunc {
	return func(ctx context.Context, token string) (*middleware.AuthUser, error) {
		user, err := s.FindByToken(ctx, token)
		if err != nil {
			return nil, err
		}
		status := user.Status
		if user.IsDeleted {
			status = models.UserStatusInactive
		}
		return &middleware.AuthUser{
			ID:     user.ID.Hex(),
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
			Status: status,
		}, nil
	}
}
