package utility

import (
	"github.com/dgrijalva/jwt-go"
)

// JwtClaims chứa data được mã hóa trong JWT token phiên đăng nhập.
type JwtClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token đăng nhập cho user.
// Trả về map có key "token" để caller lưu vào user document.
func CreateToken(secret string, userID string, timeHex string, randomNumber string) (map[string]string, error) {
	claims := JwtClaims{
		UserID:       userID,
		Time:         timeHex,
		RandomNumber: randomNumber,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}
	return map[string]string{"token": signed}, nil
}

// ParseToken giải mã JWT token và trả về claims. Token sai chữ ký hoặc sai định dạng trả lỗi.
func ParseToken(secret string, tokenString string) (*JwtClaims, error) {
	claims := &JwtClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}
