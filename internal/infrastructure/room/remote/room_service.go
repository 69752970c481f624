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
	PathOwnedRoom = "/%s/getownedroom"
	PathJoin      = "/%s/join"
	PathCreate    = "/create"
	PathDelete    = "/%s/delete"
	PathLeave     = "/leave"
	PathGetRole   = "/%s/getrole"
	PathStartGame = "/startgame"
	PathEndGame   = "/endgame"
)

// userBody 是 Rooms 服務要求的使用者格式
type userBody struct {
	ID       string `json:"_id"`
	Username string `json:"username,omitempty"`
}

type startGameBody struct {
	ID       string          `json:"_id"`
	Settings json.RawMessage `json:"settings,omitempty"`
}

// RoomService 透過 HTTP 呼叫 Rooms 服務
type RoomService struct {
	baseURL string
	client  *httpclient.Client
}

var _ ports.RoomService = (*RoomService)(nil)

// NewRoomService 建立 Rooms 服務客戶端
func NewRoomService(baseURL string, client *httpclient.Client) *RoomService {
	return &RoomService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// GetOwnedRoom implements ports.RoomService.
// 404 代表「沒有擁有房間」，保留下游的 404 Body 並回傳未擁有的 OwnedRoom。
func (service *RoomService) GetOwnedRoom(ctx context.Context, userID string) (*domain.OwnedRoom, error) {
	target := service.url(PathOwnedRoom, userID)

	resp, err := service.client.Send(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.Status == http.StatusNotFound:
		return &domain.OwnedRoom{Raw: rawBody(resp.Body)}, nil
	case !resp.OK():
		return nil, service.client.Normalize(ctx, http.MethodGet, target, resp)
	}

	var room domain.OwnedRoom
	if err := service.client.DecodeBody(ctx, http.MethodGet, target, resp, &room); err != nil {
		return nil, err
	}
	room.Raw = rawBody(resp.Body)
	return &room, nil
}

// Join implements ports.RoomService.
func (service *RoomService) Join(ctx context.Context, roomCode string, user domain.UserRef) (json.RawMessage, error) {
	var out json.RawMessage
	body := userBody{ID: user.ID, Username: user.Username}
	if err := service.client.Do(ctx, http.MethodPost, service.url(PathJoin, roomCode), body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create implements ports.RoomService.
func (service *RoomService) Create(ctx context.Context, user domain.UserRef) (json.RawMessage, error) {
	var out json.RawMessage
	body := userBody{ID: user.ID, Username: user.Username}
	if err := service.client.Do(ctx, http.MethodPut, service.baseURL+PathCreate, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete implements ports.RoomService.
func (service *RoomService) Delete(ctx context.Context, roomCode string) error {
	return service.client.Do(ctx, http.MethodDelete, service.url(PathDelete, roomCode), nil, nil)
}

// Leave implements ports.RoomService.
func (service *RoomService) Leave(ctx context.Context, userID string) error {
	return service.client.Do(ctx, http.MethodPost, service.baseURL+PathLeave, userBody{ID: userID}, nil)
}

// GetRole implements ports.RoomService.
func (service *RoomService) GetRole(ctx context.Context, userID string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := service.client.Do(ctx, http.MethodGet, service.url(PathGetRole, userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StartGame implements ports.RoomService.
func (service *RoomService) StartGame(ctx context.Context, userID string, settings json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	body := startGameBody{ID: userID, Settings: settings}
	if err := service.client.Do(ctx, http.MethodPost, service.baseURL+PathStartGame, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EndGame implements ports.RoomService.
func (service *RoomService) EndGame(ctx context.Context, userID string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := service.client.Do(ctx, http.MethodPost, service.baseURL+PathEndGame, userBody{ID: userID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (service *RoomService) url(pattern string, segment string) string {
	return service.baseURL + strings.Replace(pattern, "%s", url.PathEscape(segment), 1)
}

func rawBody(body []byte) json.RawMessage {
	if len(body) == 0 || !json.Valid(body) {
		return nil
	}
	return json.RawMessage(body)
}
