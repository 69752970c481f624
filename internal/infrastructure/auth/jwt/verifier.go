package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/JoeShih716/go-game-gateway/internal/core/ports"
)

// Claims 是 Users 服務簽發的 accesstoken 內容
// 使用者 ID 放在 `id`，新版 Token 可能只有 `sub`。
type Claims struct {
	jwt.RegisteredClaims
	UID string `json:"id"`
}

// UserID 回傳 Token 代表的使用者
func (c *Claims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.Subject
}

// Verifier 以 HS256 共用密鑰驗證 accesstoken
type Verifier struct {
	secret []byte
}

var _ ports.TokenVerifier = (*Verifier)(nil)

// NewVerifier 建立 Verifier
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Decode implements ports.TokenVerifier.
func (v *Verifier) Decode(token string) (string, error) {
	if token == "" {
		return "", ports.ErrMissingToken
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(_ *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", ports.ErrInvalidToken
	}
	if claims.UserID() == "" {
		return "", fmt.Errorf("%w: missing id claim", ports.ErrInvalidToken)
	}

	return claims.UserID(), nil
}

// Issue 簽發 accesstoken (Users 服務的相容格式，主要供測試與本地工具使用)
//
// 參數:
//
//	userID: string - 使用者 ID
//	ttl: time.Duration - 有效期限 (<= 0 表示不設期限)
//
// 回傳值:
//
//	string: 簽章後的 Token
//	error: 簽章失敗
func (v *Verifier) Issue(userID string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(now),
			ID:       uuid.NewString(),
		},
		UID: userID,
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}
	return signed, nil
}
