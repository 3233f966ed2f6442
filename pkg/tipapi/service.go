// Package tipapi defines the Connect RPC surface of the tip calculator:
// message types, procedure names, a handler constructor and a client.
package tipapi

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// ServiceName is the fully-qualified name of the TipService.
const ServiceName = "tipcalc.v1.TipService"

// Procedure paths of the TipService RPCs.
const (
	CreateSessionProcedure    = "/" + ServiceName + "/CreateSession"
	GetScreenProcedure        = "/" + ServiceName + "/GetScreen"
	SetBillAmountProcedure    = "/" + ServiceName + "/SetBillAmount"
	SetTipPercentageProcedure = "/" + ServiceName + "/SetTipPercentage"
	SetPartySizeProcedure     = "/" + ServiceName + "/SetPartySize"
	SetCurrencyProcedure      = "/" + ServiceName + "/SetCurrency"
	ToggleResultsProcedure    = "/" + ServiceName + "/ToggleResults"
	DeleteSessionProcedure    = "/" + ServiceName + "/DeleteSession"
	CalculateProcedure        = "/" + ServiceName + "/Calculate"
	ListCurrenciesProcedure   = "/" + ServiceName + "/ListCurrencies"
)

// PublicProcedures can be called without a session token.
var PublicProcedures = []string{
	CreateSessionProcedure,
	CalculateProcedure,
	ListCurrenciesProcedure,
}

// TipServiceHandler is implemented by the server.
type TipServiceHandler interface {
	CreateSession(context.Context, *connect.Request[CreateSessionRequest]) (*connect.Response[CreateSessionResponse], error)
	GetScreen(context.Context, *connect.Request[GetScreenRequest]) (*connect.Response[ScreenResponse], error)
	SetBillAmount(context.Context, *connect.Request[SetBillAmountRequest]) (*connect.Response[ScreenResponse], error)
	SetTipPercentage(context.Context, *connect.Request[SetTipPercentageRequest]) (*connect.Response[ScreenResponse], error)
	SetPartySize(context.Context, *connect.Request[SetPartySizeRequest]) (*connect.Response[ScreenResponse], error)
	SetCurrency(context.Context, *connect.Request[SetCurrencyRequest]) (*connect.Response[ScreenResponse], error)
	ToggleResults(context.Context, *connect.Request[ToggleResultsRequest]) (*connect.Response[ScreenResponse], error)
	DeleteSession(context.Context, *connect.Request[DeleteSessionRequest]) (*connect.Response[DeleteSessionResponse], error)
	Calculate(context.Context, *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error)
	ListCurrencies(context.Context, *connect.Request[ListCurrenciesRequest]) (*connect.Response[ListCurrenciesResponse], error)
}

// NewTipServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTipServiceHandler(svc TipServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	handlers := map[string]http.Handler{
		CreateSessionProcedure:    connect.NewUnaryHandler(CreateSessionProcedure, svc.CreateSession, opts...),
		GetScreenProcedure:        connect.NewUnaryHandler(GetScreenProcedure, svc.GetScreen, opts...),
		SetBillAmountProcedure:    connect.NewUnaryHandler(SetBillAmountProcedure, svc.SetBillAmount, opts...),
		SetTipPercentageProcedure: connect.NewUnaryHandler(SetTipPercentageProcedure, svc.SetTipPercentage, opts...),
		SetPartySizeProcedure:     connect.NewUnaryHandler(SetPartySizeProcedure, svc.SetPartySize, opts...),
		SetCurrencyProcedure:      connect.NewUnaryHandler(SetCurrencyProcedure, svc.SetCurrency, opts...),
		ToggleResultsProcedure:    connect.NewUnaryHandler(ToggleResultsProcedure, svc.ToggleResults, opts...),
		DeleteSessionProcedure:    connect.NewUnaryHandler(DeleteSessionProcedure, svc.DeleteSession, opts...),
		CalculateProcedure:        connect.NewUnaryHandler(CalculateProcedure, svc.Calculate, opts...),
		ListCurrenciesProcedure:   connect.NewUnaryHandler(ListCurrenciesProcedure, svc.ListCurrencies, opts...),
	}

	return "/" + ServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// TipServiceClient calls a remote TipService.
type TipServiceClient struct {
	createSession    *connect.Client[CreateSessionRequest, CreateSessionResponse]
	getScreen        *connect.Client[GetScreenRequest, ScreenResponse]
	setBillAmount    *connect.Client[SetBillAmountRequest, ScreenResponse]
	setTipPercentage *connect.Client[SetTipPercentageRequest, ScreenResponse]
	setPartySize     *connect.Client[SetPartySizeRequest, ScreenResponse]
	setCurrency      *connect.Client[SetCurrencyRequest, ScreenResponse]
	toggleResults    *connect.Client[ToggleResultsRequest, ScreenResponse]
	deleteSession    *connect.Client[DeleteSessionRequest, DeleteSessionResponse]
	calculate        *connect.Client[CalculateRequest, CalculateResponse]
	listCurrencies   *connect.Client[ListCurrenciesRequest, ListCurrenciesResponse]
}

// NewTipServiceClient constructs a client for the TipService at baseURL
// (e.g. "http://localhost:8080").
func NewTipServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TipServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)

	return &TipServiceClient{
		createSession:    connect.NewClient[CreateSessionRequest, CreateSessionResponse](httpClient, baseURL+CreateSessionProcedure, opts...),
		getScreen:        connect.NewClient[GetScreenRequest, ScreenResponse](httpClient, baseURL+GetScreenProcedure, opts...),
		setBillAmount:    connect.NewClient[SetBillAmountRequest, ScreenResponse](httpClient, baseURL+SetBillAmountProcedure, opts...),
		setTipPercentage: connect.NewClient[SetTipPercentageRequest, ScreenResponse](httpClient, baseURL+SetTipPercentageProcedure, opts...),
		setPartySize:     connect.NewClient[SetPartySizeRequest, ScreenResponse](httpClient, baseURL+SetPartySizeProcedure, opts...),
		setCurrency:      connect.NewClient[SetCurrencyRequest, ScreenResponse](httpClient, baseURL+SetCurrencyProcedure, opts...),
		toggleResults:    connect.NewClient[ToggleResultsRequest, ScreenResponse](httpClient, baseURL+ToggleResultsProcedure, opts...),
		deleteSession:    connect.NewClient[DeleteSessionRequest, DeleteSessionResponse](httpClient, baseURL+DeleteSessionProcedure, opts...),
		calculate:        connect.NewClient[CalculateRequest, CalculateResponse](httpClient, baseURL+CalculateProcedure, opts...),
		listCurrencies:   connect.NewClient[ListCurrenciesRequest, ListCurrenciesResponse](httpClient, baseURL+ListCurrenciesProcedure, opts...),
	}
}

func (c *TipServiceClient) CreateSession(ctx context.Context, req *connect.Request[CreateSessionRequest]) (*connect.Response[CreateSessionResponse], error) {
	return c.createSession.CallUnary(ctx, req)
}

func (c *TipServiceClient) GetScreen(ctx context.Context, req *connect.Request[GetScreenRequest]) (*connect.Response[ScreenResponse], error) {
	return c.getScreen.CallUnary(ctx, req)
}

func (c *TipServiceClient) SetBillAmount(ctx context.Context, req *connect.Request[SetBillAmountRequest]) (*connect.Response[ScreenResponse], error) {
	return c.setBillAmount.CallUnary(ctx, req)
}

func (c *TipServiceClient) SetTipPercentage(ctx context.Context, req *connect.Request[SetTipPercentageRequest]) (*connect.Response[ScreenResponse], error) {
	return c.setTipPercentage.CallUnary(ctx, req)
}

func (c *TipServiceClient) SetPartySize(ctx context.Context, req *connect.Request[SetPartySizeRequest]) (*connect.Response[ScreenResponse], error) {
	return c.setPartySize.CallUnary(ctx, req)
}

func (c *TipServiceClient) SetCurrency(ctx context.Context, req *connect.Request[SetCurrencyRequest]) (*connect.Response[ScreenResponse], error) {
	return c.setCurrency.CallUnary(ctx, req)
}

func (c *TipServiceClient) ToggleResults(ctx context.Context, req *connect.Request[ToggleResultsRequest]) (*connect.Response[ScreenResponse], error) {
	return c.toggleResults.CallUnary(ctx, req)
}

func (c *TipServiceClient) DeleteSession(ctx context.Context, req *connect.Request[DeleteSessionRequest]) (*connect.Response[DeleteSessionResponse], error) {
	return c.deleteSession.CallUnary(ctx, req)
}

func (c *TipServiceClient) Calculate(ctx context.Context, req *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}

func (c *TipServiceClient) ListCurrencies(ctx context.Context, req *connect.Request[ListCurrenciesRequest]) (*connect.Response[ListCurrenciesResponse], error) {
	return c.listCurrencies.CallUnary(ctx, req)
}
