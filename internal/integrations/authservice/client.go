package authservice

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

// Client клиент auth/session сервиса (GoTrue-совместимый API)
// Отвечает за сессию владельца, OAuth вход через провайдера и вызов
// серверных функций (отправка писем)
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента auth-сервиса
func NewClient(baseURL, anonKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSession возвращает текущую сессию владельца
// Возвращает ErrNoSession, если владелец не авторизован
func (c *Client) GetSession(ctx context.Context) (*Session, error) {
	reqURL := fmt.Sprintf("%s/auth/v1/session", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusNotFound:
		return nil, ErrNoSession
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &session, nil
}

// SignInWithProvider возвращает URL авторизации через OAuth провайдера
// Пользователь перенаправляется на этот URL для входа; scopes задают
// дополнительные разрешения (например, доступ к календарю)
func (c *Client) SignInWithProvider(provider string, scopes string, redirectTo string) string {
	params := url.Values{}
	params.Set("provider", provider)
	if scopes != "" {
		params.Set("scopes", scopes)
	}
	if redirectTo != "" {
		params.Set("redirect_to", redirectTo)
	}
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")

	return fmt.Sprintf("%s/auth/v1/authorize?%s", c.baseURL, params.Encode())
}

// SignOut завершает текущую сессию
func (c *Client) SignOut(ctx context.Context) error {
	reqURL := fmt.Sprintf("%s/auth/v1/logout", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	return nil
}

// InvokeFunction вызывает серверную функцию с JSON payload
// Используется для отправки писем: InvokeFunction(ctx, "send-booking-emails", payload)
func (c *Client) InvokeFunction(ctx context.Context, name string, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	reqURL := fmt.Sprintf("%s/functions/v1/%s", c.baseURL, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d: %s", ErrFunctionFailed, name, resp.StatusCode, string(respBody))
	}

	c.log.Info("Function %s invoked successfully", name)
	return respBody, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.anonKey != "" {
		req.Header.Set("apikey", c.anonKey)
		req.Header.Set("Authorization", "Bearer "+c.anonKey)
	}
}
