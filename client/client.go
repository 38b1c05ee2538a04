// Package client is the Go client for the Shop-ease API: a cart store, a
// checkout flow and thin wrappers over the REST endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// APIError is a failure the server reported with a status and message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d message=%s", e.Status, e.Message)
}

// NetworkError means no response was received; the request may or may not
// have reached the server.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type Product struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
}

type OrderItem struct {
	Product  string  `json:"product"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID         string      `json:"_id"`
	User       string      `json:"user"`
	Items      []OrderItem `json:"items"`
	TotalPrice float64     `json:"totalPrice"`
	IsPaid     bool        `json:"isPaid"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Client calls the Shop-ease API. It is safe to share across goroutines once
// the token is set.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a client for the API at baseURL with a bounded request timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken sets the bearer token used on authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login authenticates and keeps the issued token for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Products lists the catalog, optionally filtered by search and category.
func (c *Client) Products(ctx context.Context, search, category string) ([]Product, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if category != "" {
		query.Set("category", category)
	}

	var products []Product
	if err := c.do(ctx, http.MethodGet, "/api/products", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+id, nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// MyOrders lists the authenticated user's orders, newest first.
func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/myorders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateProduct adds a product to the catalog (admin only).
func (c *Client) CreateProduct(ctx context.Context, p *Product) (*Product, error) {
	var created Product
	if err := c.do(ctx, http.MethodPost, "/api/products", nil, p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct replaces a product's fields (admin only).
func (c *Client) UpdateProduct(ctx context.Context, id string, p *Product) error {
	return c.do(ctx, http.MethodPut, "/api/products/"+id, nil, p, nil)
}

// DeleteProduct removes a product from the catalog (admin only).
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+id, nil, nil, nil)
}

func (c *Client) createOrder(ctx context.Context, payload *orderPayload) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", nil, payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// do sends one request and decodes the response. Transport failures come back
// as *NetworkError, server-reported failures as *APIError with the message
// taken from the response's "message" field.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Message == "" {
			errBody.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: errBody.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
