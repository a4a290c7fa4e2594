// Package registry - Test đăng ký và tra cứu item.
package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("counter", 42)
	assert.NoError(t, err)
	assert.True(t, isNew)

	got, exists := r.Get("counter")
	assert.True(t, exists)
	assert.Equal(t, 42, got)

	_, exists = r.Get("khong-ton-tai")
	assert.False(t, exists)
}

func TestRegistry_RegisterTrungGhiDe(t *testing.T) {
	r := NewRegistry[string]()

	isNew, _ := r.Register("orders", "v1")
	assert.True(t, isNew)

	isNew, err := r.Register("orders", "v2")
	assert.NoError(t, err)
	assert.False(t, isNew, "đăng ký trùng tên phải báo ghi đè")

	got, _ := r.Get("orders")
	assert.Equal(t, "v2", got)
}

func TestRegistry_TenRongBiTuChoi(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	created := 0

	item, err := r.GetOrCreate("a", func() (int, error) {
		created++
		return 7, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, item)

	// Lần hai trả về item có sẵn, không gọi creator
	item, err = r.GetOrCreate("a", func() (int, error) {
		created++
		return 9, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, item)
	assert.Equal(t, 1, created)
}

func TestRegistry_DongThoi(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Register("shared", n)
			r.Get("shared")
		}(i)
	}
	wg.Wait()

	_, exists := r.Get("shared")
	assert.True(t, exists)
}
