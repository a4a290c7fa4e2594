// Package common - Test chuẩn hóa lỗi và convert lỗi MongoDB.
package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewError_GiuDayDuThongTin(t *testing.T) {
	err := NewError(ErrCodeValidationInput, "Dữ liệu sai", StatusBadRequest, map[string]interface{}{"field": "name"})

	appErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, ErrCodeValidationInput.Code, appErr.Code.Code)
	assert.Equal(t, "Dữ liệu sai", appErr.Error())
	assert.Equal(t, StatusBadRequest, appErr.StatusCode)
	assert.NotNil(t, appErr.Details)
}

func TestErrorIs_SoSanhTheoCodeVaMessage(t *testing.T) {
	err := NewError(ErrCodeAuthToken, "Token không hợp lệ", StatusUnauthorized, nil)
	assert.True(t, errors.Is(err, ErrTokenInvalid))
	assert.False(t, errors.Is(err, ErrTokenMissing))
	assert.False(t, errors.Is(err, nil))
}

func TestConvertMongoError_Nil(t *testing.T) {
	assert.NoError(t, ConvertMongoError(nil))
}

func TestConvertMongoError_GiuNguyenErrNotFound(t *testing.T) {
	// Service layer dựa vào ErrNotFound để phân biệt not-found, không được convert
	wrapped := fmt.Errorf("tra cứu thất bại: %w", ErrNotFound)
	assert.Equal(t, ErrNotFound, ConvertMongoError(ErrNotFound))
	assert.True(t, errors.Is(ConvertMongoError(wrapped), ErrNotFound))
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	dupErr := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	assert.Equal(t, ErrMongoDuplicate, ConvertMongoError(dupErr))
}

func TestConvertMongoError_CommandError(t *testing.T) {
	assert.Equal(t, ErrMongoConnection, ConvertMongoError(mongo.CommandError{Code: 150}))
	assert.Equal(t, ErrMongoAuth, ConvertMongoError(mongo.CommandError{Code: 250}))
	assert.Equal(t, ErrMongoQuery, ConvertMongoError(mongo.CommandError{Code: 350}))
	assert.Equal(t, ErrMongoWrite, ConvertMongoError(mongo.CommandError{Code: 450}))
	assert.Equal(t, ErrMongoSystem, ConvertMongoError(mongo.CommandError{Code: 500}))
}

func TestConvertMongoError_LoiLaTraVeLoiChung(t *testing.T) {
	err := ConvertMongoError(errors.New("lỗi lạ"))
	appErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, ErrCodeDatabase.Code, appErr.Code.Code)
	assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
}
