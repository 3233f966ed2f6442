package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"connectrpc.com/connect"

	"github.com/mmynk/tipcalc/internal/auth"
	"github.com/mmynk/tipcalc/internal/calculator"
	"github.com/mmynk/tipcalc/internal/currency"
	"github.com/mmynk/tipcalc/internal/engine"
	"github.com/mmynk/tipcalc/internal/metrics"
	"github.com/mmynk/tipcalc/internal/middleware"
	"github.com/mmynk/tipcalc/internal/models"
	"github.com/mmynk/tipcalc/internal/storage"
	"github.com/mmynk/tipcalc/internal/view"
	"github.com/mmynk/tipcalc/pkg/tipapi"
)

var _ tipapi.TipServiceHandler = (*TipService)(nil)

// TipService implements the Connect TipService.
type TipService struct {
	store  storage.Store
	tokens *auth.JWTManager

	// mu serializes session mutations so each request acts as one UI event.
	mu sync.Mutex
}

// NewTipService creates a new TipService with the given storage backend and token issuer.
func NewTipService(store storage.Store, tokens *auth.JWTManager) *TipService {
	return &TipService{store: store, tokens: tokens}
}

// CreateSession starts a new calculator screen with default inputs.
func (s *TipService) CreateSession(ctx context.Context, req *connect.Request[tipapi.CreateSessionRequest]) (*connect.Response[tipapi.CreateSessionResponse], error) {
	session := models.NewSession()
	if err := s.store.CreateSession(ctx, &session); err != nil {
		slog.Error("CreateSession failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.tokens.Generate(session.ID)
	if err != nil {
		slog.Error("Failed to generate token", "session_id", session.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	metrics.SessionsCreated.Inc()
	slog.Info("Session created", "session_id", session.ID)

	return connect.NewResponse(&tipapi.CreateSessionResponse{
		Token:  token,
		Screen: toScreen(session),
	}), nil
}

// GetScreen returns the caller's current screen.
func (s *TipService) GetScreen(ctx context.Context, req *connect.Request[tipapi.GetScreenRequest]) (*connect.Response[tipapi.ScreenResponse], error) {
	session, err := s.load(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&tipapi.ScreenResponse{Screen: toScreen(*session)}), nil
}

// SetBillAmount stores a new bill amount, clamped into range.
func (s *TipService) SetBillAmount(ctx context.Context, req *connect.Request[tipapi.SetBillAmountRequest]) (*connect.Response[tipapi.ScreenResponse], error) {
	requested := req.Msg.BillAmount
	var clamped bool
	session, err := s.mutate(ctx, func(e *engine.Engine) error {
		clamped = e.SetBillAmount(requested) != requested
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return screenResponse(session, "bill_amount", clamped), nil
}

// SetTipPercentage stores a new tip percentage, clamped into range.
func (s *TipService) SetTipPercentage(ctx context.Context, req *connect.Request[tipapi.SetTipPercentageRequest]) (*connect.Response[tipapi.ScreenResponse], error) {
	requested := req.Msg.TipPercentage
	var clamped bool
	session, err := s.mutate(ctx, func(e *engine.Engine) error {
		clamped = e.SetTipPercentage(requested) != requested
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return screenResponse(session, "tip_percentage", clamped), nil
}

// SetPartySize stores a new party size, clamped into range.
func (s *TipService) SetPartySize(ctx context.Context, req *connect.Request[tipapi.SetPartySizeRequest]) (*connect.Response[tipapi.ScreenResponse], error) {
	requested := req.Msg.PartySize
	var clamped bool
	session, err := s.mutate(ctx, func(e *engine.Engine) error {
		clamped = e.SetPartySize(requested) != requested
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return screenResponse(session, "party_size", clamped), nil
}

// SetCurrency changes the currency label. Unsupported codes are rejected.
func (s *TipService) SetCurrency(ctx context.Context, req *connect.Request[tipapi.SetCurrencyRequest]) (*connect.Response[tipapi.ScreenResponse], error) {
	session, err := s.mutate(ctx, func(e *engine.Engine) error {
		return e.SetCurrency(req.Msg.Currency)
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	metrics.CurrencySelections.WithLabelValues(session.Currency.String()).Inc()
	return connect.NewResponse(&tipapi.ScreenResponse{Screen: toScreen(session)}), nil
}

// ToggleResults shows or hides the result lines.
func (s *TipService) ToggleResults(ctx context.Context, req *connect.Request[tipapi.ToggleResultsRequest]) (*connect.Response[tipapi.ScreenResponse], error) {
	session, err := s.mutate(ctx, func(e *engine.Engine) error {
		e.ToggleResultsVisible()
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&tipapi.ScreenResponse{Screen: toScreen(session)}), nil
}

// DeleteSession drops the caller's session. Its token stops working.
func (s *TipService) DeleteSession(ctx context.Context, req *connect.Request[tipapi.DeleteSessionRequest]) (*connect.Response[tipapi.DeleteSessionResponse], error) {
	sessionID := middleware.GetSessionID(ctx)
	if sessionID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteSession(ctx, sessionID); err != nil {
		return nil, toConnectError(err)
	}

	s.tokens.Revoke(sessionID)
	metrics.SessionsDeleted.Inc()
	slog.Info("Session deleted", "session_id", sessionID)
	return connect.NewResponse(&tipapi.DeleteSessionResponse{}), nil
}

// Calculate runs a one-off calculation without touching any session.
func (s *TipService) Calculate(ctx context.Context, req *connect.Request[tipapi.CalculateRequest]) (*connect.Response[tipapi.CalculateResponse], error) {
	code := currency.Default
	if req.Msg.Currency != "" {
		parsed, err := currency.Parse(req.Msg.Currency)
		if err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		code = parsed
	}

	requested := calculator.Inputs{
		BillAmount:    req.Msg.BillAmount,
		TipPercentage: req.Msg.TipPercentage,
		PartySize:     req.Msg.PartySize,
	}
	in := requested.Clamped()
	breakdown := calculator.Calculate(in)

	slog.Debug("Calculated tip",
		"bill_amount", in.BillAmount,
		"tip_percentage", in.TipPercentage,
		"party_size", in.PartySize,
		"tip", breakdown.Tip,
		"total", breakdown.Total,
		"per_person", breakdown.PerPerson,
	)

	return connect.NewResponse(&tipapi.CalculateResponse{
		BillAmount:    in.BillAmount,
		TipPercentage: in.TipPercentage,
		PartySize:     in.PartySize,
		Currency:      code.String(),
		Clamped:       in != requested,
		Tip:           breakdown.Tip,
		Total:         breakdown.Total,
		PerPerson:     breakdown.PerPerson,
		Lines:         view.RenderResults(code, breakdown).Lines(),
	}), nil
}

// ListCurrencies returns the selectable currencies in selector order.
func (s *TipService) ListCurrencies(ctx context.Context, req *connect.Request[tipapi.ListCurrenciesRequest]) (*connect.Response[tipapi.ListCurrenciesResponse], error) {
	codes := currency.All()
	out := make([]tipapi.Currency, len(codes))
	for i, c := range codes {
		out[i] = tipapi.Currency{Code: c.String(), Name: c.Name()}
	}
	return connect.NewResponse(&tipapi.ListCurrenciesResponse{
		Currencies: out,
		Default:    currency.Default.String(),
	}), nil
}

// load fetches the session named by the request's token.
func (s *TipService) load(ctx context.Context) (*models.Session, error) {
	sessionID := middleware.GetSessionID(ctx)
	if sessionID == "" {
		return nil, auth.ErrMissingToken
	}
	return s.store.GetSession(ctx, sessionID)
}

// mutate applies fn to the caller's session through an engine and stores the result.
func (s *TipService) mutate(ctx context.Context, fn func(*engine.Engine) error) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx)
	if err != nil {
		return models.Session{}, err
	}

	e := engine.FromSession(*session)
	e.Subscribe(func(updated models.Session) {
		slog.Debug("Session changed",
			"session_id", updated.ID,
			"bill_amount", updated.BillAmount,
			"tip_percentage", updated.TipPercentage,
			"party_size", updated.PartySize,
			"currency", updated.Currency,
			"results_visible", updated.ResultsVisible,
		)
	})
	if err := fn(e); err != nil {
		return models.Session{}, err
	}

	updated := e.Snapshot()
	if err := s.store.UpdateSession(ctx, &updated); err != nil {
		return models.Session{}, err
	}
	return updated, nil
}

func screenResponse(session models.Session, field string, clamped bool) *connect.Response[tipapi.ScreenResponse] {
	if clamped {
		metrics.InputsClamped.WithLabelValues(field).Inc()
		slog.Info("Input clamped", "session_id", session.ID, "field", field)
	}
	return connect.NewResponse(&tipapi.ScreenResponse{
		Screen:  toScreen(session),
		Clamped: clamped,
	})
}

// toScreen converts a session to its wire form.
func toScreen(session models.Session) *tipapi.Screen {
	rendered := view.Render(session)
	return &tipapi.Screen{
		SessionID:            session.ID,
		Currency:             session.Currency.String(),
		BillAmount:           session.BillAmount,
		TipPercentage:        session.TipPercentage,
		PartySize:            session.PartySize,
		ResultsVisible:       session.ResultsVisible,
		Title:                rendered.Title,
		CurrencySelector:     rendered.CurrencySelector(),
		BillAmountDisplay:    rendered.BillAmount,
		TipPercentageDisplay: rendered.TipPercentage,
		PartySizeDisplay:     rendered.PartySize,
		Results:              rendered.Results.Lines(),
	}
}

// toConnectError maps domain errors onto Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, engine.ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, auth.ErrInvalidToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		slog.Error("Session operation failed", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}
