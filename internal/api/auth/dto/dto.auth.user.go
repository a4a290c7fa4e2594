package authdto

// FirebaseLoginInput đầu vào đăng nhập bằng Firebase ID token.
type FirebaseLoginInput struct {
	IDToken string `json:"idToken" validate:"required"`
	Hwid    string `json:"hwid" validate:"required"`
}

// PasswordLoginInput đầu vào đăng nhập bằng email + mật khẩu (fallback khi Firebase không khả dụng).
type PasswordLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Hwid     string `json:"hwid" validate:"required"`
}

// UserLogoutInput đầu vào đăng xuất người dùng.
type UserLogoutInput struct {
	Hwid string `json:"hwid" validate:"required"`
}

// UserCreateInput đầu vào tạo người dùng admin panel.
type UserCreateInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role" validate:"omitempty,oneof=Admin User"`
	Status      string `json:"status" validate:"omitempty,oneof=Active Inactive Pending"`
	FirebaseUID string `json:"firebaseUid" validate:"omitempty"`
	Password    string `json:"password" validate:"omitempty,min=8"`
}

// UserUpdateInput đầu vào cập nhật người dùng.
type UserUpdateInput struct {
	Name     string `json:"name" validate:"omitempty"`
	Role     string `json:"role" validate:"omitempty,oneof=Admin User"`
	Status   string `json:"status" validate:"omitempty,oneof=Active Inactive Pending"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

// UserChangeInfoInput đầu vào thay đổi thông tin cá nhân (profile).
type UserChangeInfoInput struct {
	Name string `json:"name" validate:"required"`
}
