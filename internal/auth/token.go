package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/domain"
)

var (
	// ErrTokenInvalid covers malformed tokens and signature mismatches.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired is a well formed token past its expiry. It matches ErrTokenInvalid.
	ErrTokenExpired = fmt.Errorf("%w: expired", ErrTokenInvalid)
)

// Claims describes JWT payload.
type Claims struct {
	SubjectID string      `json:"id"`
	Role      domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenAuthority issues and verifies HS256 bearer tokens.
type TokenAuthority struct {
	secret     []byte
	defaultTTL time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// Option customizes a TokenAuthority.
type Option func(*TokenAuthority)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(a *TokenAuthority) { a.now = now }
}

// NewTokenAuthority builds the authority. It refuses an empty secret. A malformed
// defaultTTL is logged and replaced by DefaultTokenTTL.
func NewTokenAuthority(secret, defaultTTL string, logger *zap.Logger, opts ...Option) (*TokenAuthority, error) {
	if secret == "" {
		return nil, errors.New("token authority: signing secret is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &TokenAuthority{secret: []byte(secret), logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	a.defaultTTL = a.resolveTTL(defaultTTL)
	return a, nil
}

// DefaultTTL returns the lifetime used by IssueDefault.
func (a *TokenAuthority) DefaultTTL() time.Duration {
	return a.defaultTTL
}

// IssueDefault signs a token with the configured lifetime.
func (a *TokenAuthority) IssueDefault(subjectID string, role domain.Role) (string, time.Time, error) {
	return a.issue(subjectID, role, a.defaultTTL)
}

// Issue signs a token for subjectID valid for ttl ("1h", "30m", "7d"...).
func (a *TokenAuthority) Issue(subjectID string, role domain.Role, ttl string) (string, time.Time, error) {
	return a.issue(subjectID, role, a.resolveTTL(ttl))
}

func (a *TokenAuthority) issue(subjectID string, role domain.Role, ttl time.Duration) (string, time.Time, error) {
	if !role.Valid() {
		return "", time.Time{}, fmt.Errorf("cannot issue token for role %q", role)
	}

	issuedAt := a.now()
	expiresAt := issuedAt.Add(ttl)
	claims := &Claims{
		SubjectID: subjectID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, claims.ExpiresAt.Time, nil
}

// Verify checks the signature and expiry of tokenStr and returns its identity.
// Failures wrap ErrTokenInvalid; expired tokens wrap ErrTokenExpired.
func (a *TokenAuthority) Verify(tokenStr string) (*domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("%w: unexpected claims", ErrTokenInvalid)
	}
	if claims.SubjectID == "" || !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: missing subject or unknown role", ErrTokenInvalid)
	}

	identity := &domain.Identity{
		SubjectID: claims.SubjectID,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	return identity, nil
}

func (a *TokenAuthority) resolveTTL(value string) time.Duration {
	ttl, err := ParseTTL(value)
	if err != nil {
		a.logger.Warn("token lifetime malformed, using default",
			zap.String("value", value),
			zap.Duration("default", DefaultTokenTTL),
			zap.Error(err),
		)
		return DefaultTokenTTL
	}
	return ttl
}
