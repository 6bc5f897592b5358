package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"go-sales-rest/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSaleEndToEnd(t *testing.T) {
	a := newTestApp(t, false)
	monitor := a.seedProduct(t, "Monitor", "200.0", 10)
	client := a.seedClient(t, "ana@example.com")

	resp, body := a.do(t, http.MethodPost, fmt.Sprintf("/sale/new?productId=%d&clientId=%d&quantity=2", monitor.ID, client.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	saleID, err := strconv.ParseUint(body, 10, 64)
	require.NoError(t, err)
	assert.Equal(t, 8, a.stock(t, monitor.ID))

	resp, body = a.do(t, http.MethodGet, fmt.Sprintf("/sale/%d", saleID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sale struct {
		ID       uint                  `json:"id"`
		Product  model.ProductResponse `json:"product"`
		Client   model.ClientResponse  `json:"client"`
		Quantity int                   `json:"quantity"`
		Price    float64               `json:"price"`
		SaleDate string                `json:"saleDate"`
	}
	decodeJSON(t, body, &sale)
	assert.Equal(t, uint(saleID), sale.ID)
	assert.Equal(t, 400.0, sale.Price)
	assert.Equal(t, 2, sale.Quantity)
	assert.Equal(t, "Monitor", sale.Product.Name)
	assert.Equal(t, "ana@example.com", sale.Client.Email)
	_, err = time.Parse(model.LocalDateTimeLayout, sale.SaleDate)
	assert.NoError(t, err, sale.SaleDate)
}

func TestCreateSaleFailures(t *testing.T) {
	a := newTestApp(t, false)
	monitor := a.seedProduct(t, "Monitor", "200", 10)
	client := a.seedClient(t, "ana@example.com")

	cases := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   string
	}{
		{"insufficient stock", fmt.Sprintf("productId=%d&clientId=%d&quantity=999", monitor.ID, client.ID), 400, "Stock insuficiente"},
		{"zero quantity", fmt.Sprintf("productId=%d&clientId=%d&quantity=0", monitor.ID, client.ID), 400, "La cantidad debe ser mayor que 0"},
		{"unknown product", fmt.Sprintf("productId=999&clientId=%d&quantity=1", client.ID), 404, "Producto no encontrado"},
		{"unknown client", fmt.Sprintf("productId=%d&clientId=999&quantity=1", monitor.ID), 404, "Cliente no encontrado"},
		{"negative product id", "productId=-1&clientId=-1&quantity=1", 404, "Producto no encontrado"},
		{"zero product id", fmt.Sprintf("productId=0&clientId=%d&quantity=1", client.ID), 404, "Producto no encontrado"},
		{"negative client id", fmt.Sprintf("productId=%d&clientId=-3&quantity=0", monitor.ID), 404, "Cliente no encontrado"},
		{"unknown product before negative client", "productId=999&clientId=-3&quantity=1", 404, "Producto no encontrado"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := a.do(t, http.MethodPost, "/sale/new?"+tc.query, "")
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.Equal(t, tc.wantBody, body)
		})
	}
	assert.Equal(t, 10, a.stock(t, monitor.ID))

	for _, query := range []string{"", "productId=1&clientId=1", "productId=x&clientId=1&quantity=1", "productId=1&clientId=1&quantity=two"} {
		resp, _ := a.do(t, http.MethodPost, "/sale/new?"+query, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, query)
	}
}

func TestSaleQueries(t *testing.T) {
	a := newTestApp(t, false)
	monitor := a.seedProduct(t, "Monitor", "200", 10)
	client := a.seedClient(t, "ana@example.com")

	for _, qty := range []int{1, 2} {
		resp, body := a.do(t, http.MethodPost, fmt.Sprintf("/sale/new?productId=%d&clientId=%d&quantity=%d", monitor.ID, client.ID, qty), "")
		require.Equal(t, http.StatusOK, resp.StatusCode, body)
	}

	resp, body := a.do(t, http.MethodGet, fmt.Sprintf("/sale/product/%d", monitor.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sales []struct {
		ID       uint `json:"id"`
		Quantity int  `json:"quantity"`
	}
	decodeJSON(t, body, &sales)
	require.Len(t, sales, 2)
	assert.Less(t, sales[0].ID, sales[1].ID)
	assert.Equal(t, 1, sales[0].Quantity)

	resp, body = a.do(t, http.MethodGet, fmt.Sprintf("/sale/client/%d", client.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, body, &sales)
	assert.Len(t, sales, 2)

	resp, body = a.do(t, http.MethodGet, "/sale/all", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, body, &sales)
	assert.Len(t, sales, 2)

	resp, body = a.do(t, http.MethodGet, "/sale/product/999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Producto no encontrado", body)

	resp, body = a.do(t, http.MethodGet, "/sale/client/999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Cliente no encontrado", body)

	resp, _ = a.do(t, http.MethodGet, "/sale/999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = a.do(t, http.MethodGet, "/sale/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = a.do(t, http.MethodGet, "/sale/-5", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = a.do(t, http.MethodGet, "/sale/product/-5", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Producto no encontrado", body)

	resp, body = a.do(t, http.MethodGet, "/sale/client/0", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Cliente no encontrado", body)
}

func TestExportSales(t *testing.T) {
	a := newTestApp(t, false)
	monitor := a.seedProduct(t, "Monitor", "200", 10)
	client := a.seedClient(t, "ana@example.com")
	resp, _ := a.do(t, http.MethodPost, fmt.Sprintf("/sale/new?productId=%d&clientId=%d&quantity=1", monitor.ID, client.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := a.do(t, http.MethodGet, "/sale/export", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
	// xlsx files are zip archives.
	assert.Equal(t, "PK", body[:2])
}
