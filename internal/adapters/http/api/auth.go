package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/DaalbuCZ/Hermes/pkg/metrics"
)

const tokenIssuer = "hermes"

// Claims are the JWT claims issued to adjudicators.
type Claims struct {
	jwt.RegisteredClaims
}

// Authenticator checks adjudicator credentials and issues HS256 tokens.
type Authenticator struct {
	secret []byte
	users  map[string]string // username -> bcrypt hash
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthenticator creates an Authenticator. users maps usernames to bcrypt
// password hashes.
func NewAuthenticator(secret string, users map[string]string, ttl time.Duration) *Authenticator {
	return &Authenticator{secret: []byte(secret), users: users, ttl: ttl, now: time.Now}
}

// Login verifies a password against the stored hash.
func (a *Authenticator) Login(username, password string) error {
	hash, ok := a.users[username]
	if !ok {
		return ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrUnauthorized
	}
	return nil
}

// Issue returns a signed token for username and its expiry.
func (a *Authenticator) Issue(username string) (string, time.Time, error) {
	now := a.now()
	exp := now.Add(a.ttl)
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, Wrap("api.issue_token", err)
	}
	return tok, exp, nil
}

// Parse validates a token and returns its claims.
func (a *Authenticator) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return nil, WrapKind("api.parse_token", ErrUnauthorized, err)
	}
	return claims, nil
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// HandleToken handles POST /token requests.
func (a *Authenticator) HandleToken(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_token"
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := a.Login(req.Username, req.Password); err != nil {
		metrics.RecordAuthFailure("bad_credentials")
		writeError(w, http.StatusUnauthorized, "unauthorized", NewKind(op, ErrUnauthorized))
		return
	}
	tok, exp, err := a.Issue(req.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: tok, TokenType: "Bearer", ExpiresAt: exp.UTC()})
}

// Middleware rejects requests without a valid bearer token and stores the
// token subject in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const op = "api.auth"
		h := r.Header.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			metrics.RecordAuthFailure("missing_bearer")
			writeError(w, http.StatusUnauthorized, "unauthorized", NewKind(op, ErrUnauthorized))
			return
		}
		claims, err := a.Parse(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			metrics.RecordAuthFailure("bad_token")
			writeError(w, http.StatusUnauthorized, "unauthorized", err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), claims.Subject)))
	})
}

type ctxKey string

const ctxKeySub ctxKey = "sub"

// WithSubject stores the authenticated username in ctx.
func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, ctxKeySub, sub)
}

// SubjectFromContext returns the authenticated username, or "".
func SubjectFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(ctxKeySub).(string); ok {
		return s
	}
	return ""
}
