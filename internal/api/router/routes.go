package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/middleware"
)

// CRUDHandler định nghĩa các handler REST mà base handler cung cấp.
// Domain handler nhúng BaseHandler là tự động thỏa interface này.
type CRUDHandler interface {
	FindWithPagination(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	InsertOne(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	SoftDeleteById(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app    *fiber.App
	prefix RoutePrefix
}

// CRUDConfig cấu hình các operation được phép cho mỗi collection
type CRUDConfig struct {
	Read   bool // GET / và GET /:id
	Create bool // POST /
	Update bool // PUT /:id
	Delete bool // DELETE /:id

	// HardDelete: DELETE /:id xóa hẳn document thay vì đánh dấu isDeleted.
	// Mặc định false, các resource nghiệp vụ dùng soft delete.
	HardDelete bool

	// WriteRole là role yêu cầu cho Create/Update/Delete. Rỗng = chỉ cần đăng nhập.
	WriteRole string
}

// ReadWriteConfig: đọc cho mọi user đã đăng nhập, ghi chỉ Admin.
func ReadWriteConfig() CRUDConfig {
	return CRUDConfig{
		Read: true, Create: true, Update: true, Delete: true,
		WriteRole: "Admin",
	}
}

// ReadOnlyConfig chỉ cho phép đọc.
func ReadOnlyConfig() CRUDConfig {
	return CRUDConfig{Read: true}
}

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base     string // /api
	V1       string // /api/v1
	V2       string // /api/v2
	V2Master string // /api/v2/master
}

// NewRoutePrefix tạo RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base:     base,
		V1:       base + "/v1",
		V2:       base + "/v2",
		V2Master: base + "/v2/master",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app:    app,
		prefix: NewRoutePrefix(),
	}
}

// V1Group tạo group /api/v1/<path>
func (r *Router) V1Group(path string) fiber.Router {
	return r.app.Group(r.prefix.V1 + path)
}

// V2Group tạo group /api/v2/<path>
func (r *Router) V2Group(path string) fiber.Router {
	return r.app.Group(r.prefix.V2 + path)
}

// V2MasterGroup tạo group /api/v2/master/<path>
func (r *Router) V2MasterGroup(path string) fiber.Router {
	return r.app.Group(r.prefix.V2Master + path)
}

// RegisterRouteWithMiddleware đăng ký route với middleware qua .Use() trên group.
//
// LƯU Ý: Fiber v3 KHÔNG chạy middleware khi truyền trực tiếp vào route
// (router.Get(path, middleware, handler) sẽ bỏ qua middleware). Mọi route
// có middleware phải đăng ký qua hàm này.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "PATCH":
		routeGroup.Patch(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterCRUDRoutes đăng ký các route REST cho một collection.
// prefix là path tương đối trong router cha, ví dụ "/brands".
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig) {
	authRead := middleware.AuthMiddleware("")
	authWrite := middleware.AuthMiddleware(config.WriteRole)

	if config.Read {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/", []fiber.Handler{authRead}, h.FindWithPagination)
		RegisterRouteWithMiddleware(router, prefix, "GET", "/:id", []fiber.Handler{authRead}, h.FindOneById)
	}
	if config.Create {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/", []fiber.Handler{authWrite}, h.InsertOne)
	}
	if config.Update {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/:id", []fiber.Handler{authWrite}, h.UpdateById)
	}
	if config.Delete {
		deleteHandler := h.SoftDeleteById
		if config.HardDelete {
			deleteHandler = h.DeleteById
		}
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/:id", []fiber.Handler{authWrite}, deleteHandler)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng. Caller truyền lần lượt
// Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(r); err != nil {
			return err
		}
	}
	return nil
}
