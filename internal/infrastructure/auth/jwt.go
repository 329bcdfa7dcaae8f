package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vitalis/internal/shared/authorization"
)

// Claims carries the identity asserted by a session token.
type Claims struct {
	UserID uint                   `json:"uid"`
	Email  string                 `json:"email"`
	Role   authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// VerifyStatus tags the outcome of token verification. Callers that only
// care about pass/fail use VerifyResult.Valid(); the distinct failure causes
// exist so the route guard can log precisely while redirecting uniformly.
type VerifyStatus string

const (
	StatusValid             VerifyStatus = "valid"
	StatusExpired           VerifyStatus = "expired"
	StatusMalformed         VerifyStatus = "malformed"
	StatusSignatureMismatch VerifyStatus = "signature_mismatch"
)

// VerifyResult is the tagged outcome of Verify. Claims is non-nil only when
// Status is StatusValid.
type VerifyResult struct {
	Status VerifyStatus
	Claims *Claims
}

func (r VerifyResult) Valid() bool {
	return r.Status == StatusValid
}

// TokenService mints and validates HS256 session tokens.
type TokenService struct {
	secret         []byte
	sessionExpDays int
}

func NewTokenService(secret string, sessionExpDays int) *TokenService {
	if sessionExpDays <= 0 {
		sessionExpDays = 7
	}
	return &TokenService{
		secret:         []byte(secret),
		sessionExpDays: sessionExpDays,
	}
}

// Issue signs a session token for the user. The token expires sessionExpDays
// after issuance (7 days by default).
func (s *TokenService) Issue(userID uint, email string, role authorization.UserRole) (string, error) {
	now := time.Now().UTC()

	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.sessionExpDays) * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token, classifying any failure as
// expired, signature mismatch or malformed.
func (s *TokenService) Verify(tokenString string) VerifyResult {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return VerifyResult{Status: StatusExpired}
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return VerifyResult{Status: StatusSignatureMismatch}
		default:
			return VerifyResult{Status: StatusMalformed}
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return VerifyResult{Status: StatusMalformed}
	}
	return VerifyResult{Status: StatusValid, Claims: claims}
}

// SessionMaxAge returns the session lifetime in seconds, for cookie max-age.
func (s *TokenService) SessionMaxAge() int {
	return s.sessionExpDays * 24 * 60 * 60
}
