package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
			return
		}
		json.NewEncoder(w).Encode(LoginResult{Token: "tok-123", User: User{Email: body["email"]}})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)

	t.Run("keeps the token for later calls", func(t *testing.T) {
		result, err := c.Login(context.Background(), "a@b.c", "secret")
		require.NoError(t, err)
		assert.Equal(t, "tok-123", result.Token)
		assert.Equal(t, "tok-123", c.token)
	})

	t.Run("bad credentials surface the server message", func(t *testing.T) {
		_, err := c.Login(context.Background(), "a@b.c", "wrong")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.Equal(t, "Invalid email or password", apiErr.Message)
	})
}

func TestClientProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "mug", r.URL.Query().Get("search"))
		assert.Equal(t, "Home", r.URL.Query().Get("category"))
		json.NewEncoder(w).Encode([]Product{{ID: "p2", Name: "Mug", Price: 50}})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	products, err := c.Products(context.Background(), "mug", "Home")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mug", products[0].Name)
}

func TestClientMyOrdersSendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders/myorders", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]Order{})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	c.SetToken("tok-123")

	orders, err := c.MyOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestClientErrorWithoutMessageFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Product(context.Background(), "p1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
}
