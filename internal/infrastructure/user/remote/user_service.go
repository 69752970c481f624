package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
	"github.com/JoeShih716/go-game-gateway/internal/core/ports"
	"github.com/JoeShih716/go-game-gateway/internal/infrastructure/httpclient"
)

const (
	PathSignUp     = "/signup"
	PathSignIn     = "/signin"
	PathGetUser    = "/getuser/%s"
	PathCreateTemp = "/createtemp"
	PathDeleteTemp = "/deletetemp/%s"
)

// UserService 透過 HTTP 呼叫 Users 服務
type UserService struct {
	baseURL string
	client  *httpclient.Client
}

var _ ports.UserService = (*UserService)(nil)

// NewUserService 建立 Users 服務客戶端
func NewUserService(baseURL string, client *httpclient.Client) *UserService {
	return &UserService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// SignUp implements ports.UserService.
func (service *UserService) SignUp(ctx context.Context, details json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	if err := service.client.Do(ctx, http.MethodPost, service.baseURL+PathSignUp, details, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SignIn implements ports.UserService.
func (service *UserService) SignIn(ctx context.Context, details json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	if err := service.client.Do(ctx, http.MethodPost, service.baseURL+PathSignIn, details, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUserByID implements ports.UserService.
// 2xx 但 Body 為空、null 或缺少 id 時視為格式錯誤 (KindUnavailable)
func (service *UserService) GetUserByID(ctx context.Context, id string) (*domain.UserRecord, error) {
	var user *domain.UserRecord
	if err := service.client.Do(ctx, http.MethodGet, service.url(PathGetUser, id), nil, &user); err != nil {
		return nil, err
	}
	if user == nil || user.ID == "" {
		return nil, domain.NewUnavailableError()
	}
	return user, nil
}

// CreateTempAccount implements ports.UserService.
// 臨時帳號不檢查名稱唯一性，由 Users 服務決定
func (service *UserService) CreateTempAccount(ctx context.Context, username string) (*domain.UserRecord, error) {
	body := map[string]string{"username": username}
	var user domain.UserRecord
	if err := service.client.Do(ctx, http.MethodPost, service.baseURL+PathCreateTemp, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteTempAccount implements ports.UserService.
func (service *UserService) DeleteTempAccount(ctx context.Context, id string) error {
	return service.client.Do(ctx, http.MethodDelete, service.url(PathDeleteTemp, id), nil, nil)
}

func (service *UserService) url(pattern string, id string) string {
	return service.baseURL + strings.Replace(pattern, "%s", url.PathEscape(id), 1)
}
