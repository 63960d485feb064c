package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Timeout padrão generoso: a renderização de uma animação pode levar minutos
const defaultTimeout = 10 * time.Minute

var (
	// ErrEmptyPrompt é retornado quando o prompt está vazio
	ErrEmptyPrompt = errors.New("prompt não pode ser vazio")
)

// Request representa a requisição enviada ao backend de geração
type Request struct {
	Prompt string `json:"prompt"`
}

// Result representa a resposta do backend de geração de animações
type Result struct {
	Success  bool   `json:"success"`
	Text     string `json:"text,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Client é o cliente HTTP para o backend de geração de animações
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configura o cliente
type ClientOption func(*Client)

// WithHTTPClient define um cliente HTTP customizado
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout define o timeout de transporte do cliente
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient cria uma nova instância de Client
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Generate submete um prompt ao backend e aguarda o resultado da geração.
// A chamada é uma única requisição/resposta, sem streaming.
func (c *Client) Generate(ctx context.Context, prompt string) (*Result, error) {
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	body, err := json.Marshal(Request{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("falha ao serializar requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("falha ao criar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("falha ao chamar backend de geração: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("backend de geração retornou status %d: %s", resp.StatusCode, string(respBody))
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("falha ao decodificar resposta: %w", err)
	}

	return &result, nil
}
