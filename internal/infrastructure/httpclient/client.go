package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/JoeShih716/go-game-gateway/internal/core/domain"
)

// HeaderRequestID 轉發給下游的 Request ID Header
const HeaderRequestID = "X-Request-ID"

// maxBodySize 下游回應讀取上限
const maxBodySize = 1 << 20

type requestIDKey struct{}

// WithRequestID 將 Request ID 放入 Context，Client 會轉發給下游
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext 取出 Request ID
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Response 下游原始回應
type Response struct {
	Status int
	Body   []byte
}

// OK 是否為 2xx
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Client 是 users / rooms 服務共用的 HTTP Transport。
// 在建構時注入各個 Service Client，不使用全域狀態。
type Client struct {
	http   *http.Client
	logger *slog.Logger
}

// New 建立共用 Client
//
// 參數:
//
//	timeout: time.Duration - 單次下游呼叫的逾時 (0 = 不設限)
//	logger: *slog.Logger - 日誌
//
// 回傳值:
//
//	*Client: 共用 Transport
func New(timeout time.Duration, logger *slog.Logger) *Client {
	return NewWithHTTPClient(&http.Client{Timeout: timeout}, logger)
}

// NewWithHTTPClient 使用外部提供的 *http.Client (測試可替換 Transport)
func NewWithHTTPClient(hc *http.Client, logger *slog.Logger) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{http: hc, logger: logger}
}

// Send 發送請求並回傳原始回應
// 只有在無法取得回應時才回傳錯誤 (*domain.Error, KindUnavailable)，非 2xx 不視為錯誤。
func (c *Client) Send(ctx context.Context, method, url string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := encodeBody(body)
		if err != nil {
			c.logger.ErrorContext(ctx, "Failed to encode request body", "method", method, "url", url, "error", err)
			return nil, domain.NewUnavailableError()
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to build request", "method", method, "url", url, "error", err)
		return nil, domain.NewUnavailableError()
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set(HeaderRequestID, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "Upstream unreachable", "method", method, "url", url, "error", err)
		return nil, domain.NewUnavailableError()
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to read upstream response", "method", method, "url", url, "error", err)
		return nil, domain.NewUnavailableError()
	}
	if len(data) > maxBodySize {
		c.logger.WarnContext(ctx, "Upstream response too large", "method", method, "url", url, "limit", maxBodySize)
		return nil, domain.NewUnavailableError()
	}

	return &Response{Status: resp.StatusCode, Body: data}, nil
}

// Do 發送請求，非 2xx 正規化為 *domain.Error，成功時將回應解碼到 out
// out 可為 nil (忽略回應)、*json.RawMessage (原樣保留) 或任意結構指標。
func (c *Client) Do(ctx context.Context, method, url string, body any, out any) error {
	resp, err := c.Send(ctx, method, url, body)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return c.Normalize(ctx, method, url, resp)
	}
	return c.decode(ctx, method, url, resp, out)
}

// Normalize 將非 2xx 回應轉為 {status, message}
// 下游有提供 message 時沿用，否則使用預設訊息。
func (c *Client) Normalize(ctx context.Context, method, url string, resp *Response) *domain.Error {
	message := messageOf(resp.Body)
	if resp.Status == http.StatusNotFound && message == "" {
		c.logger.WarnContext(ctx, fmt.Sprintf("404 Error: Could not make '%s' request to '%s'", method, url))
	}
	return domain.NewRemoteError(resp.Status, message)
}

func (c *Client) decode(ctx context.Context, method, url string, resp *Response, out any) error {
	if out == nil {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = rawOrNull(resp.Body)
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		c.logger.WarnContext(ctx, "Malformed upstream response", "method", method, "url", url, "error", err)
		return domain.NewUnavailableError()
	}
	return nil
}

// DecodeBody 將回應 Body 解碼到 out，格式錯誤時回傳 KindUnavailable
func (c *Client) DecodeBody(ctx context.Context, method, url string, resp *Response, out any) error {
	return c.decode(ctx, method, url, resp, out)
}

func encodeBody(body any) ([]byte, error) {
	if raw, ok := body.(json.RawMessage); ok {
		return raw, nil
	}
	return json.Marshal(body)
}

// messageOf 嘗試讀取 {"message": "..."}
func messageOf(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if len(body) == 0 || json.Unmarshal(body, &payload) != nil {
		return ""
	}
	return payload.Message
}

func rawOrNull(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage("null")
	}
	if !json.Valid(trimmed) {
		// 非 JSON 的純文字回應 (例如 "OK") 包成字串
		quoted, _ := json.Marshal(string(trimmed))
		return quoted
	}
	return json.RawMessage(trimmed)
}
