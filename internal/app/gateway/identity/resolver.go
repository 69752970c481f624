package identity

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
	"github.com/JoeShih716/go-game-gateway/internal/core/ports"
)

const (
	MsgNoToken      = "No token provided"
	MsgUnauthorised = "Unauthorised"
	MsgNoID         = "No ID present"
)

// Resolver 將呼叫者的身分 (accesstoken 或臨時名稱) 解析為唯一的 UserRef。
// 不重試任何遠端呼叫，需要韌性的呼叫端自行處理。
type Resolver struct {
	users               ports.UserService
	verifier            ports.TokenVerifier
	decodeFailureStatus int
	logger              *slog.Logger
}

// NewResolver 建立 Identity Resolver
//
// 參數:
//
//	users: ports.UserService - Users 服務
//	verifier: ports.TokenVerifier - accesstoken 驗證器
//	decodeFailureStatus: int - Token 解碼失敗時的 HTTP Status (0 = 401)
//	logger: *slog.Logger - 日誌
func NewResolver(users ports.UserService, verifier ports.TokenVerifier, decodeFailureStatus int, logger *slog.Logger) *Resolver {
	if decodeFailureStatus == 0 {
		decodeFailureStatus = http.StatusUnauthorized
	}
	return &Resolver{
		users:               users,
		verifier:            verifier,
		decodeFailureStatus: decodeFailureStatus,
		logger:              logger,
	}
}

// ResolveSignedIn 解碼 accesstoken 並向 Users 服務取得使用者名稱
// Token 無效回傳 KindIdentity；使用者不存在則沿用 Users 服務的 status/message。
func (r *Resolver) ResolveSignedIn(ctx context.Context, credential string) (domain.UserRef, error) {
	id, err := r.decode(ctx, credential)
	if err != nil {
		return domain.UserRef{}, err
	}

	user, err := r.users.GetUserByID(ctx, id)
	if err != nil {
		return domain.UserRef{}, err
	}

	return domain.NewUserRef(id, user.Username), nil
}

// CreateTemp 為匿名玩家建立臨時帳號
// 名稱唯一性由 Users 服務負責
func (r *Resolver) CreateTemp(ctx context.Context, username string) (domain.UserRef, error) {
	user, err := r.users.CreateTempAccount(ctx, username)
	if err != nil {
		return domain.UserRef{}, err
	}
	return domain.NewUserRef(user.ID, user.Username), nil
}

// NormalizeID 取得單一的使用者 ID
// 優先使用 explicitID (不呼叫任何遠端)，否則解碼 credential。
func (r *Resolver) NormalizeID(ctx context.Context, explicitID string, credential string) (string, error) {
	if explicitID != "" {
		return explicitID, nil
	}
	if credential == "" {
		return "", domain.NewValidationError(http.StatusBadRequest, MsgNoID)
	}
	return r.decode(ctx, credential)
}

func (r *Resolver) decode(ctx context.Context, credential string) (string, error) {
	id, err := r.verifier.Decode(credential)
	if err == nil {
		return id, nil
	}

	r.logger.InfoContext(ctx, "Access token rejected", "error", err)
	if errors.Is(err, ports.ErrMissingToken) {
		return "", domain.NewIdentityError(r.decodeFailureStatus, MsgNoToken)
	}
	return "", domain.NewIdentityError(r.decodeFailureStatus, MsgUnauthorised)
}
