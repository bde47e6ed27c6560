// Package adminclient drives the admin API the same way the browser admin
// panel does: it authenticates once, uploads images, and pushes the whole
// project list after every mutation.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/damataprodutora/portfolio-backend/internal/portfolio"
)

// Upload is one image to send, by name and content.
type Upload struct {
	Name    string
	Content []byte
}

// Client is a cookie-carrying HTTP client for the admin endpoints.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

type statusBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Login authenticates and stores the session cookie in the jar.
func (c *Client) Login(ctx context.Context, password string) error {
	body, _ := json.Marshal(map[string]string{"password": password})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	var status statusBody
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if !status.Success {
		return fmt.Errorf("login rejected: %s", status.Message)
	}
	return nil
}

// FetchPortfolio downloads the current snapshot.
func (c *Client) FetchPortfolio(ctx context.Context) ([]portfolio.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/portfolio.json", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch portfolio failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch portfolio: status %d", resp.StatusCode)
	}

	var projects []portfolio.Project
	if err := json.NewDecoder(resp.Body).Decode(&projects); err != nil {
		return nil, fmt.Errorf("decode portfolio: %w", err)
	}
	return projects, nil
}

// UploadImages sends the files as one multipart request and returns the public
// paths in the same order.
func (c *Client) UploadImages(ctx context.Context, images []Upload) ([]string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, img := range images {
		part, err := w.CreateFormFile("images", img.Name)
		if err != nil {
			return nil, fmt.Errorf("build multipart form: %w", err)
		}
		if _, err := part.Write(img.Content); err != nil {
			return nil, fmt.Errorf("build multipart form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-images", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrSessionExpired
	}

	var result struct {
		Success bool     `json:"success"`
		Message string   `json:"message"`
		URLs    []string `json:"urls"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	if !result.Success {
		return nil, fmt.Errorf("upload rejected: %s", result.Message)
	}
	return result.URLs, nil
}

// SavePortfolio pushes the entire ordered collection.
func (c *Client) SavePortfolio(ctx context.Context, projects []portfolio.Project) error {
	body, err := json.Marshal(map[string]any{"data": projects})
	if err != nil {
		return fmt.Errorf("marshal portfolio: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/save-portfolio", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("save request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrSessionExpired
	}

	var status statusBody
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return fmt.Errorf("decode save response: %w", err)
	}
	if !status.Success {
		return fmt.Errorf("save rejected: %s", status.Message)
	}

	return nil
}
