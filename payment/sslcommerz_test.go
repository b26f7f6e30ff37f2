package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shakibwebx/GadegtsHub-Server/config"
)

func testClient(serverURL string) *Client {
	c := NewClient(config.SSLConfig{
		StoreID:       "teststore",
		StorePassword: "testpass",
		SuccessURL:    "http://localhost:5000/api/orders/payment/success",
		FailURL:       "http://localhost:5000/api/orders/payment/fail",
		CancelURL:     "http://localhost:5000/api/orders/payment/cancel",
	})
	c.baseURL = serverURL
	return c
}

func TestInitiateSuccess(t *testing.T) {
	var gotForm map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != initiatePath {
			t.Errorf("path = %q, want %q", r.URL.Path, initiatePath)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		gotForm = map[string]string{}
		for k := range r.PostForm {
			gotForm[k] = r.PostForm.Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"SUCCESS","GatewayPageURL":"https://sandbox.sslcommerz.com/EasyCheckOut/test123"}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).Initiate(context.Background(), InitiateRequest{
		Amount:        192,
		OrderID:       "64b0c2f1a9e4d73b2a1f0e55",
		Currency:      "BDT",
		CustomerName:  "Shakib",
		CustomerEmail: "shakib@example.com",
		CustomerCity:  "Dhaka",
	})
	if err != nil {
		t.Fatalf("Initiate: %v", err)
	}
	if resp.CheckoutURL != "https://sandbox.sslcommerz.com/EasyCheckOut/test123" {
		t.Errorf("CheckoutURL = %q", resp.CheckoutURL)
	}
	if resp.TransactionStatus != "Pending" {
		t.Errorf("TransactionStatus = %q, want Pending", resp.TransactionStatus)
	}
	if resp.SPOrderID != "64b0c2f1a9e4d73b2a1f0e55" {
		t.Errorf("SPOrderID = %q", resp.SPOrderID)
	}

	if gotForm["store_id"] != "teststore" || gotForm["store_passwd"] != "testpass" {
		t.Errorf("credentials not forwarded: %v", gotForm)
	}
	if gotForm["total_amount"] != "192.00" {
		t.Errorf("total_amount = %q, want 192.00", gotForm["total_amount"])
	}
	if gotForm["tran_id"] != "64b0c2f1a9e4d73b2a1f0e55" {
		t.Errorf("tran_id = %q", gotForm["tran_id"])
	}
	if gotForm["cus_country"] != "Bangladesh" {
		t.Errorf("cus_country = %q", gotForm["cus_country"])
	}
	if gotForm["shipping_method"] != "Courier" {
		t.Errorf("shipping_method = %q", gotForm["shipping_method"])
	}
}

func TestInitiateFailureReturnsReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"FAILED","failedreason":"Store Credential Error Or Store is De-active"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Initiate(context.Background(), InitiateRequest{Amount: 10, OrderID: "x", Currency: "BDT"})
	if err == nil {
		t.Fatal("expected an error for a failed initiation")
	}
	if err.Error() != "Store Credential Error Or Store is De-active" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestInitiateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Initiate(context.Background(), InitiateRequest{Amount: 10, OrderID: "x", Currency: "BDT"})
	if err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestValidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != validationPath {
			t.Errorf("path = %q, want %q", r.URL.Path, validationPath)
		}
		q := r.URL.Query()
		if q.Get("val_id") != "tx-001" {
			t.Errorf("val_id = %q", q.Get("val_id"))
		}
		if q.Get("store_id") != "teststore" || q.Get("store_passwd") != "testpass" {
			t.Errorf("credentials not forwarded: %v", q)
		}
		if q.Get("format") != "json" {
			t.Errorf("format = %q, want json", q.Get("format"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"VALID","tran_id":"tx-001","amount":"192.00","bank_status":"Success","transaction_status":"Completed","method":"VISA-Dutch Bangla"}`))
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).Validate(context.Background(), "tx-001")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got.Status != "VALID" || got.TranID != "tx-001" {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.BankStatus != BankStatusSuccess {
		t.Errorf("BankStatus = %q, want %q", got.BankStatus, BankStatusSuccess)
	}
}

func TestValidateInvalidTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"INVALID_TRANSACTION"}`))
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).Validate(context.Background(), "bogus")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got.Status != StatusInvalidTransaction {
		t.Errorf("Status = %q, want %q", got.Status, StatusInvalidTransaction)
	}
}
