package sheetstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс записи метрик обращений к хранилищу
// Может быть nil, если метрики выключены
type MetricsRecorder interface {
	ObserveStoreRequest(operation, worksheet, outcome string, duration time.Duration)
}

// Client клиент внешнего табличного хранилища строк
// Хранилище адресует записи листа порядковым номером (0-based):
// удаление строки сдвигает все последующие на одну позицию вверх
type Client struct {
	baseURL       string
	spreadsheetID string
	token         string
	httpClient    *http.Client
	metrics       MetricsRecorder
	log           Logger
}

// NewClient создает новый экземпляр клиента хранилища
func NewClient(baseURL, spreadsheetID, token string, timeout time.Duration, metrics MetricsRecorder, log Logger) *Client {
	return &Client{
		baseURL:       baseURL,
		spreadsheetID: spreadsheetID,
		token:         token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// ReadAll читает все строки листа в порядке хранения (добавленные последними - в конце)
func (c *Client) ReadAll(ctx context.Context, worksheet string) ([]Row, error) {
	var parsed readAllResponse
	err := c.do(ctx, "read_all", worksheet, http.MethodGet, c.rowsURL(worksheet), nil, &parsed)
	if err != nil {
		return nil, err
	}
	if parsed.Rows == nil {
		return []Row{}, nil
	}
	return parsed.Rows, nil
}

// Append дописывает одну строку в конец листа
func (c *Client) Append(ctx context.Context, worksheet string, row Row) error {
	return c.do(ctx, "append", worksheet, http.MethodPost, c.rowsURL(worksheet), appendRequest{Values: row}, nil)
}

// InsertAt вставляет строку на позицию index (0-based), сдвигая последующие вниз
// Вместе с DeleteAt реализует обновление строки с сохранением позиции
func (c *Client) InsertAt(ctx context.Context, worksheet string, index int, row Row) error {
	target := fmt.Sprintf("%s/%d", c.rowsURL(worksheet), index)
	return c.do(ctx, "insert_at", worksheet, http.MethodPost, target, insertRequest{Values: row}, nil)
}

// DeleteAt удаляет строку на позиции index (0-based)
// Все последующие строки сдвигаются на одну позицию вверх
func (c *Client) DeleteAt(ctx context.Context, worksheet string, index int) error {
	target := fmt.Sprintf("%s/%d", c.rowsURL(worksheet), index)
	return c.do(ctx, "delete_at", worksheet, http.MethodDelete, target, nil, nil)
}

func (c *Client) rowsURL(worksheet string) string {
	return fmt.Sprintf("%s/v1/spreadsheets/%s/worksheets/%s/rows",
		c.baseURL, c.spreadsheetID, url.PathEscape(worksheet))
}

// do выполняет запрос к хранилищу с записью метрик и маппингом статус-кодов
func (c *Client) do(ctx context.Context, operation, worksheet, method, target string, body interface{}, out interface{}) error {
	started := time.Now()
	err := c.doRequest(ctx, method, target, body, out)

	if c.metrics != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		c.metrics.ObserveStoreRequest(operation, worksheet, outcome, time.Since(started))
	}

	return err
}

func (c *Client) doRequest(ctx context.Context, method, target string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Любая сетевая ошибка - хранилище недоступно, без автоматических повторов
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		var errResp errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Message == "worksheet not found" {
			return ErrWorksheetNotFound
		}
		return ErrRowNotFound
	case http.StatusTooManyRequests, http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: status code %d", ErrUnavailable, resp.StatusCode)
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
	}

	return nil
}
