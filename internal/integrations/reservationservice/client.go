package reservationservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Abdo0422/GestionReservation/internal/calendar"
	"github.com/Abdo0422/GestionReservation/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент REST backend'а бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListDepartments получает список отделов
func (c *Client) ListDepartments(ctx context.Context) ([]*domain.Department, error) {
	var departments []Department
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/departments", nil, &departments); err != nil {
		return nil, err
	}

	result := make([]*domain.Department, 0, len(departments))
	for _, d := range departments {
		result = append(result, d.ToDomain())
	}
	return result, nil
}

// ListDepartmentReservations получает бронирования отдела за период.
// Backend не фильтрует по датам, поэтому период применяется здесь.
// Бронирования с нераспознанной датой возвращаются как есть: их отбрасывает календарь.
func (c *Client) ListDepartmentReservations(ctx context.Context, filter domain.DepartmentReservationsFilter) ([]*domain.Reservation, error) {
	query := url.Values{}
	query.Set("department", filter.Department)
	endpoint := fmt.Sprintf("%s/chef/reservations?%s", c.baseURL, query.Encode())

	var reservations []Reservation
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &reservations); err != nil {
		return nil, err
	}

	from := calendar.DateOf(filter.StartDate)
	end := calendar.DateOf(filter.EndBefore)

	result := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		date, err := calendar.ParseDate(r.Date)
		if err == nil && (calendar.Time(date).Before(calendar.Time(from)) || !calendar.Time(date).Before(calendar.Time(end))) {
			continue
		}
		result = append(result, r.ToDomain())
	}

	c.log.Info("Fetched %d reservations of department=%q (%d in period [%s, %s))",
		len(reservations), filter.Department, len(result), calendar.FormatDate(from), calendar.FormatDate(end))
	return result, nil
}

// UpdateStatus меняет статус бронирования: PUT /chef/reservation/{id}/status
func (c *Client) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	body, err := json.Marshal(UpdateStatusRequest{Status: string(status)})
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/chef/reservation/%d/status", c.baseURL, id)
	if err := c.do(ctx, http.MethodPut, endpoint, body, nil); err != nil {
		return err
	}

	c.log.Info("Updated status of reservation id=%d to %q", id, status)
	return nil
}

// do выполняет запрос и декодирует ответ в out (если out != nil)
func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("%w: %s %s: %s", ErrNotFound, method, endpoint, errResp.Error)
	case resp.StatusCode >= http.StatusInternalServerError:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(respBody))
	default:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errResp.Error)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
