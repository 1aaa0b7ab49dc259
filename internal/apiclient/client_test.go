package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"grocerpos/internal/domain"
)

func TestListProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/products" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode([]domain.Product{{ID: "p1", Name: "Rice", Price: 50, Stock: 10}})
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)
	products, err := client.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Rice" {
		t.Fatalf("unexpected products %+v", products)
	}
}

func TestCreateProductPayload(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/products" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)
	err := client.CreateProduct(context.Background(), domain.Product{Name: "Sugar", Price: 40, Stock: 10})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if got["name"] != "Sugar" || got["price"] != float64(40) {
		t.Fatalf("unexpected payload %+v", got)
	}
	if _, hasID := got["id"]; hasID {
		t.Fatalf("create must not send an id, got %+v", got)
	}
}

func TestDeleteProductSendsID(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("unexpected method %s", r.Method)
		}
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)
	if err := client.DeleteProduct(context.Background(), "p1"); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if got["id"] != "p1" {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestReduceStockCarriesQuantities(t *testing.T) {
	var got struct {
		Items []domain.CartLine `json:"items"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/reducestock" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)
	err := client.ReduceStock(context.Background(), []domain.CartLine{{ProductID: "p1", Quantity: 2.5}})
	if err != nil {
		t.Fatalf("ReduceStock: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].ProductID != "p1" || got.Items[0].Quantity != 2.5 {
		t.Fatalf("unexpected payload %+v", got.Items)
	}
}

func TestErrorClassification(t *testing.T) {
	status := http.StatusNotFound
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"message": "rejected"})
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)

	err := client.DeleteProduct(context.Background(), "stale")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	status = http.StatusBadRequest
	err = client.CreateProduct(context.Background(), domain.Product{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	status = http.StatusInternalServerError
	err = client.CreateProduct(context.Background(), domain.Product{Name: "x"})
	if err == nil || errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected plain error for 500, got %v", err)
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := New(srv.URL, time.Second, nil)
	_, err := client.ListProducts(context.Background())
	if !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
}
