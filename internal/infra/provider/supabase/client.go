package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	deliverycontext "authhub/internal/delivery/context"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/errors"
)

const maxErrorBody = 4096

// request describes one call to the GoTrue REST API.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	// bearer is the user access token. Empty means the anon key is sent.
	bearer string
	// admin calls authenticate with the service role key.
	admin bool
}

// apiError covers both GoTrue error body shapes.
type apiError struct {
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e *apiError) message() string {
	for _, m := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if m != "" {
			return m
		}
	}

	return ""
}

// codeErrors maps GoTrue error codes onto stable domain errors.
var codeErrors = map[string]*domainerrors.BaseError{
	"invalid_credentials":        domainerrors.ErrInvalidCredentials,
	"email_not_confirmed":        domainerrors.ErrEmailNotVerified,
	"user_already_exists":        domainerrors.ErrUserAlreadyExists,
	"email_exists":               domainerrors.ErrUserAlreadyExists,
	"weak_password":              domainerrors.ErrPasswordStrength,
	"refresh_token_not_found":    domainerrors.ErrRefreshTokenInvalid,
	"refresh_token_already_used": domainerrors.ErrRefreshTokenInvalid,
	"otp_expired":                domainerrors.ErrTokenInvalid,
	"flow_state_expired":         domainerrors.ErrOAuthFailed,
	"flow_state_not_found":       domainerrors.ErrOAuthFailed,
	"bad_code_verifier":          domainerrors.ErrOAuthFailed,
	"mfa_verification_failed":    domainerrors.ErrMFAInvalidCode,
	"mfa_challenge_expired":      domainerrors.ErrMFAInvalidCode,
	"bad_jwt":                    domainerrors.ErrSessionExpired,
	"session_not_found":          domainerrors.ErrSessionExpired,
	"session_expired":            domainerrors.ErrSessionExpired,
	"user_not_found":             domainerrors.ErrUserNotFound,
	"validation_failed":          domainerrors.ErrValidationFailed,
}

// do sends req and decodes a successful JSON response into out (when non-nil).
func (p *Provider) do(ctx context.Context, op string, req request, out any) error {
	endpoint := p.baseURL + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return errors.Wrapf(err, "%s: encode request", op)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, body)
	if err != nil {
		return errors.Wrapf(err, "%s: build request", op)
	}
	p.setHeaders(ctx, httpReq, req)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrap(ctxErr, op)
		}

		return errors.WithStack(domainerrors.NewNetworkError(op, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return p.responseError(ctx, op, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return errors.WithStack(domainerrors.ErrProvider.WithDetails(op + ": malformed response: " + err.Error()))
	}

	return nil
}

func (p *Provider) setHeaders(ctx context.Context, httpReq *http.Request, req request) {
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	switch {
	case req.admin:
		httpReq.Header.Set("apikey", p.serviceKey)
		httpReq.Header.Set("Authorization", "Bearer "+p.serviceKey)
	case req.bearer != "":
		httpReq.Header.Set("apikey", p.anonKey)
		httpReq.Header.Set("Authorization", "Bearer "+req.bearer)
	default:
		httpReq.Header.Set("apikey", p.anonKey)
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
}

// responseError converts a non-2xx response. 429 becomes a RateLimitError,
// 5xx a NetworkError so callers may retry, everything else a domain error.
func (p *Provider) responseError(ctx context.Context, op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var apiErr apiError
	_ = json.Unmarshal(raw, &apiErr)
	msg := apiErr.message()
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "GoTrue request failed",
		slog.String("operation", op),
		slog.Int("status", resp.StatusCode),
		slog.String("error_code", apiErr.ErrorCode),
	)

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return errors.WithStack(domainerrors.NewRateLimitError(
			p.retryAfter(resp.Header.Get("Retry-After")),
			remainingAttempts(resp.Header.Get("X-RateLimit-Remaining")),
		))
	case resp.StatusCode >= http.StatusInternalServerError:
		return errors.WithStack(domainerrors.NewNetworkError(op, domainerrors.NewProviderError(resp.StatusCode, "", msg)))
	}

	if known, ok := codeErrors[apiErr.ErrorCode]; ok {
		return errors.WithStack(known.WithDetails(msg))
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.WithStack(domainerrors.ErrSessionExpired.WithDetails(msg))
	}

	return errors.WithStack(domainerrors.NewProviderError(resp.StatusCode, "", msg))
}

// retryAfter parses a Retry-After header given in seconds or as an HTTP date.
func (p *Provider) retryAfter(value string) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0
		}

		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(p.clock.Now()); d > 0 {
			return d
		}
	}

	return 0
}

func remainingAttempts(value string) int {
	remaining, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || remaining < 0 {
		return -1
	}

	return remaining
}
