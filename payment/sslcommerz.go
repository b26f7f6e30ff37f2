package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shakibwebx/GadegtsHub-Server/config"
)

// SSLCommerz vendor constants. Everything vendor-specific stays inside
// this package so the lifecycle service never touches wire field names.
const (
	StatusSuccess            = "SUCCESS"
	StatusInvalidTransaction = "INVALID_TRANSACTION"

	BankStatusSuccess = "Success"
	BankStatusFailed  = "Failed"
	BankStatusCancel  = "Cancel"

	sandboxBaseURL = "https://sandbox.sslcommerz.com"
	liveBaseURL    = "https://securepay.sslcommerz.com"

	initiatePath   = "/gwprocess/v4/api.php"
	validationPath = "/validator/api/validationserverAPI.php"
)

// InitiateRequest carries the order and customer fields for a hosted
// checkout session.
type InitiateRequest struct {
	Amount           float64
	OrderID          string
	Currency         string
	CustomerName     string
	CustomerEmail    string
	CustomerAddress  string
	CustomerCity     string
	CustomerPhone    string
	CustomerPostCode string
	ClientIP         string
}

// InitiateResponse is the successful result of a checkout initiation.
type InitiateResponse struct {
	CheckoutURL       string `json:"checkout_url"`
	TransactionStatus string `json:"transactionStatus"`
	SPOrderID         string `json:"sp_order_id"`
}

// VerificationResponse is the flat transaction/bank/risk record the
// validation API returns. The same shape is synthesized by the lifecycle
// service when it degrades to last-known-state.
type VerificationResponse struct {
	Status                string `json:"status"`
	TranDate              string `json:"tran_date,omitempty"`
	TranID                string `json:"tran_id"`
	ValID                 string `json:"val_id"`
	Amount                string `json:"amount"`
	CardType              string `json:"card_type"`
	StoreAmount           string `json:"store_amount"`
	CardNo                string `json:"card_no"`
	BankTranID            string `json:"bank_tran_id"`
	CardIssuer            string `json:"card_issuer"`
	CardBrand             string `json:"card_brand"`
	CardIssuerCountry     string `json:"card_issuer_country"`
	CardIssuerCountryCode string `json:"card_issuer_country_code"`
	CurrencyType          string `json:"currency_type"`
	CurrencyAmount        string `json:"currency_amount"`
	CurrencyRate          string `json:"currency_rate"`
	VerifySign            string `json:"verify_sign"`
	VerifyKey             string `json:"verify_key"`
	RiskTitle             string `json:"risk_title"`
	RiskLevel             string `json:"risk_level"`
	BankStatus            string `json:"bank_status,omitempty"`
	SPCode                string `json:"sp_code,omitempty"`
	SPMessage             string `json:"sp_message,omitempty"`
	TransactionStatus     string `json:"transaction_status,omitempty"`
	Method                string `json:"method,omitempty"`
	DateTime              string `json:"date_time,omitempty"`

	// Display fields filled on the degraded path for the frontend.
	OrderID        string `json:"order_id,omitempty"`
	Name           string `json:"name,omitempty"`
	Currency       string `json:"currency,omitempty"`
	CardHolderName string `json:"card_holder_name,omitempty"`
	CardNumber     string `json:"card_number,omitempty"`
	PhoneNo        string `json:"phone_no,omitempty"`
}

type initiateReply struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

// Client talks to the SSLCommerz hosted-checkout API. No retries and no
// timeouts beyond the underlying HTTP client; failures propagate to the
// caller.
type Client struct {
	storeID       string
	storePassword string
	baseURL       string
	successURL    string
	failURL       string
	cancelURL     string
	ipnURL        string
	httpClient    *http.Client
}

func NewClient(cfg config.SSLConfig) *Client {
	baseURL := sandboxBaseURL
	if cfg.IsLive {
		baseURL = liveBaseURL
	}
	return &Client{
		storeID:       cfg.StoreID,
		storePassword: cfg.StorePassword,
		baseURL:       baseURL,
		successURL:    cfg.SuccessURL,
		failURL:       cfg.FailURL,
		cancelURL:     cfg.CancelURL,
		ipnURL:        cfg.IPNURL,
		httpClient:    &http.Client{},
	}
}

// Initiate opens a checkout session and returns the hosted payment URL.
func (c *Client) Initiate(ctx context.Context, reqData InitiateRequest) (*InitiateResponse, error) {
	form := url.Values{}
	form.Set("store_id", c.storeID)
	form.Set("store_passwd", c.storePassword)
	form.Set("total_amount", fmt.Sprintf("%.2f", reqData.Amount))
	form.Set("currency", reqData.Currency)
	form.Set("tran_id", reqData.OrderID)
	form.Set("success_url", c.successURL)
	form.Set("fail_url", c.failURL)
	form.Set("cancel_url", c.cancelURL)
	if c.ipnURL != "" {
		form.Set("ipn_url", c.ipnURL)
	}
	form.Set("shipping_method", "Courier")
	form.Set("product_name", "Gadgets Hub Products")
	form.Set("product_category", "Electronics")
	form.Set("product_profile", "general")
	form.Set("cus_name", reqData.CustomerName)
	form.Set("cus_email", reqData.CustomerEmail)
	form.Set("cus_add1", reqData.CustomerAddress)
	form.Set("cus_add2", reqData.CustomerAddress)
	form.Set("cus_city", reqData.CustomerCity)
	form.Set("cus_state", reqData.CustomerCity)
	form.Set("cus_postcode", reqData.CustomerPostCode)
	form.Set("cus_country", "Bangladesh")
	form.Set("cus_phone", reqData.CustomerPhone)
	form.Set("cus_fax", reqData.CustomerPhone)
	form.Set("ship_name", reqData.CustomerName)
	form.Set("ship_add1", reqData.CustomerAddress)
	form.Set("ship_add2", reqData.CustomerAddress)
	form.Set("ship_city", reqData.CustomerCity)
	form.Set("ship_state", reqData.CustomerCity)
	form.Set("ship_postcode", reqData.CustomerPostCode)
	form.Set("ship_country", "Bangladesh")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+initiatePath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach sslcommerz: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sslcommerz API error (%d): %s", resp.StatusCode, string(body))
	}

	var reply initiateReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, fmt.Errorf("failed to parse sslcommerz response: %v", err)
	}

	if reply.Status != StatusSuccess {
		reason := reply.FailedReason
		if reason == "" {
			reason = "Payment initiation failed"
		}
		return nil, fmt.Errorf("%s", reason)
	}

	return &InitiateResponse{
		CheckoutURL:       reply.GatewayPageURL,
		TransactionStatus: "Pending",
		SPOrderID:         reqData.OrderID,
	}, nil
}

// Validate looks up a transaction by its validation id and returns the
// raw verification record.
func (c *Client) Validate(ctx context.Context, valID string) (*VerificationResponse, error) {
	q := url.Values{}
	q.Set("val_id", valID)
	q.Set("store_id", c.storeID)
	q.Set("store_passwd", c.storePassword)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+validationPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach sslcommerz: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sslcommerz API error (%d): %s", resp.StatusCode, string(body))
	}

	var verification VerificationResponse
	if err := json.Unmarshal(body, &verification); err != nil {
		return nil, fmt.Errorf("failed to parse sslcommerz response: %v", err)
	}
	return &verification, nil
}
