package utility

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseTransformTag(t *testing.T) {
	cfg, err := ParseTransformTag("str_objectid,optional,map=BrandID")
	assert.NoError(t, err)
	assert.Equal(t, "str_objectid", cfg.Type)
	assert.True(t, cfg.Optional)
	assert.Equal(t, "BrandID", cfg.MapTo)

	cfg, err = ParseTransformTag("str_time,format=2006-01-02")
	assert.NoError(t, err)
	assert.Equal(t, "2006-01-02", cfg.Format)

	// Tag rỗng trả config mặc định, không lỗi
	cfg, err = ParseTransformTag("")
	assert.NoError(t, err)
	assert.Equal(t, "", cfg.Type)
}

func TestTransformFieldValue_ObjectID(t *testing.T) {
	cfg, _ := ParseTransformTag("str_objectid")
	oidType := reflect.TypeOf(primitive.ObjectID{})

	want := primitive.NewObjectID()
	got, err := TransformFieldValue(want.Hex(), cfg, oidType)
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	// Hex sai phải trả lỗi
	_, err = TransformFieldValue("khong-phai-hex", cfg, oidType)
	assert.Error(t, err)
}

func TestTransformFieldValue_ObjectIDOptionalRong(t *testing.T) {
	cfg, _ := ParseTransformTag("str_objectid,optional")
	got, err := TransformFieldValue("", cfg, reflect.TypeOf(primitive.ObjectID{}))
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestTransformFieldValue_RequiredRongPhaiLoi(t *testing.T) {
	cfg, _ := ParseTransformTag("str_objectid,required")
	_, err := TransformFieldValue("", cfg, reflect.TypeOf(primitive.ObjectID{}))
	assert.Error(t, err)
}

func TestTransformFieldValue_Time(t *testing.T) {
	cfg, _ := ParseTransformTag("str_time,format=2006-01-02")
	got, err := TransformFieldValue("2025-06-15", cfg, reflect.TypeOf(int64(0)))
	assert.NoError(t, err)
	// time.Parse không timezone → UTC
	assert.Equal(t, int64(1749945600000), got)
}

func TestTransformFieldValue_Int64VaBool(t *testing.T) {
	cfgInt, _ := ParseTransformTag("str_int64")
	got, err := TransformFieldValue("12345", cfgInt, reflect.TypeOf(int64(0)))
	assert.NoError(t, err)
	assert.Equal(t, int64(12345), got)

	cfgBool, _ := ParseTransformTag("str_bool")
	gotBool, err := TransformFieldValue("true", cfgBool, reflect.TypeOf(false))
	assert.NoError(t, err)
	assert.Equal(t, true, gotBool)
}

func TestTransformFieldValue_DefaultKhiRong(t *testing.T) {
	cfg, _ := ParseTransformTag("str_int64,default=10")
	got, err := TransformFieldValue("", cfg, reflect.TypeOf(int64(0)))
	assert.NoError(t, err)
	assert.Equal(t, int64(10), got)
}
