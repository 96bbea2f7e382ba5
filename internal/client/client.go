// client — HTTP-клиент API бэкенда корпоративного сайта.
//
// Один вызов — один запрос: без ретраев, без дедупликации. Ошибки
// конвертируются в типизированные failure.Failure на границе клиента:
//   - транспортные -> Network;
//   - 401 -> Auth (сервер сообщил о несовпадении учётных данных);
//   - прочие не-2xx -> API с полем error из тела, иначе generic.
//
// Каждый запрос уходит с X-Request-Id для трассировки на бэкенде.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hanstar/webfront/internal/failure"
)

// Client — клиент API. Безопасен для конкурентного использования.
type Client struct {
	base  string
	httpc *http.Client
}

// New создаёт клиент для бэкенда по базовому URL.
// timeout — дедлайн одиночного запроса; 0 отключает таймаут.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base:  strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{Timeout: timeout},
	}
}

// apiEnvelope — общие поля тела ответа, нужные для разбора ошибок.
type apiEnvelope struct {
	Error string `json:"error"`
}

// doJSON выполняет один запрос с JSON-телом (body может быть nil)
// и декодирует успешный ответ в out (out может быть nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return failure.Networkf(err, "")
		}

		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return failure.Networkf(err, "")
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// do отправляет готовый запрос и разбирает ответ по общим правилам.
func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return failure.Networkf(err, "")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure.Networkf(err, "")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env apiEnvelope
		_ = json.Unmarshal(raw, &env)

		if resp.StatusCode == http.StatusUnauthorized {
			f := failure.New(failure.Auth, env.Error)
			if f.Message == "" {
				f.Message = "인증에 실패했습니다."
			}
			f.Status = resp.StatusCode

			return f
		}

		return failure.FromAPI(resp.StatusCode, env.Error)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return failure.Networkf(fmt.Errorf("decode response: %w", err), "")
	}

	return nil
}
