// Package middleware - Test auth middleware fail closed:
// thiếu token / token sai định dạng không được chạm database.
package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
)

func newAuthTestApp(requireRole string, lookupCalls *int, user *AuthUser, lookupErr error) *fiber.App {
	SetUserLookup(func(ctx context.Context, token string) (*AuthUser, error) {
		*lookupCalls++
		if lookupErr != nil {
			return nil, lookupErr
		}
		return user, nil
	})

	app := fiber.New()
	app.Get("/private", AuthMiddleware(requireRole), func(c fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func authReq(header string) *http.Request {
	req := httptest.NewRequest("GET", "/private", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return req
}

func TestAuthMiddleware_ThieuHeaderTra401KhongTraCuu(t *testing.T) {
	calls := 0
	app := newAuthTestApp("", &calls, &AuthUser{Role: "User", Status: "Active"}, nil)

	resp, err := app.Test(authReq(""))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, calls, "thiếu token không được gọi lookup")
}

func TestAuthMiddleware_SaiDinhDangTra401KhongTraCuu(t *testing.T) {
	calls := 0
	app := newAuthTestApp("", &calls, &AuthUser{Role: "User", Status: "Active"}, nil)

	for _, header := range []string{"Basic abc", "Bearer", "Bearer ", "chuoi-bat-ky"} {
		resp, err := app.Test(authReq(header))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q phải bị chặn", header)
	}
	assert.Equal(t, 0, calls)
}

func TestAuthMiddleware_TokenHopLeChoQua(t *testing.T) {
	calls := 0
	app := newAuthTestApp("", &calls, &AuthUser{ID: "u1", Role: "User", Status: "Active"}, nil)

	resp, err := app.Test(authReq("Bearer token-hop-le-1"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, calls)
}

func TestAuthMiddleware_CacheGiamTraCuu(t *testing.T) {
	calls := 0
	app := newAuthTestApp("", &calls, &AuthUser{ID: "u2", Role: "User", Status: "Active"}, nil)

	for i := 0; i < 3; i++ {
		resp, err := app.Test(authReq("Bearer token-cache-2"))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, 1, calls, "token đã cache không tra cứu lại")
}

func TestAuthMiddleware_UserKhongActiveTra403(t *testing.T) {
	calls := 0
	app := newAuthTestApp("", &calls, &AuthUser{ID: "u3", Role: "User", Status: "Pending"}, nil)

	resp, err := app.Test(authReq("Bearer token-pending-3"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddleware_YeuCauAdmin(t *testing.T) {
	calls := 0
	app := newAuthTestApp("Admin", &calls, &AuthUser{ID: "u4", Role: "User", Status: "Active"}, nil)

	resp, err := app.Test(authReq("Bearer token-user-4"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	calls = 0
	app = newAuthTestApp("Admin", &calls, &AuthUser{ID: "u5", Role: "Admin", Status: "Active"}, nil)
	resp, err = app.Test(authReq("Bearer token-admin-5"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_LookupLoiTra401(t *testing.T) {
	calls := 0
	app := newAuthTestApp("", &calls, nil, assert.AnError)

	resp, err := app.Test(authReq("Bearer token-khong-ton-tai-6"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 1, calls)
}
