package ports

// TokenVerifier 驗證 accesstoken 並取出 UserID
//
//go:generate mockgen -destination=../../../test/mocks/core/ports/mock_token_verifier.go -package=mock_ports github.com/JoeShih716/go-game-gateway/internal/core/ports TokenVerifier
type TokenVerifier interface {
	// Decode 驗證簽章與期限並回傳 Token 內的 UserID
	// Token 為空時回傳 ErrMissingToken，其餘失敗回傳 ErrInvalidToken
	Decode(token string) (string, error)
}
