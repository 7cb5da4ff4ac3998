package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/smartreturn/storefront-service/internal/domain/model"
)

// ErrInvalidInvite is returned when an invite token is invalid or expired.
var ErrInvalidInvite = errors.New("invalid or expired invite")

// InviteClaims are the signed contents of a split-payment invitation.
type InviteClaims struct {
	OrderID      string `json:"order_id"`
	CoBuyerEmail string `json:"co_buyer_email"`
	AmountCents  int64  `json:"amount_cents"`
	jwt.RegisteredClaims
}

// InviteIssuer mints and verifies split-payment invite tokens. The token is
// what the co-buyer's payment link carries; verifying it recovers the order
// and the exact amount owed.
type InviteIssuer interface {
	Issue(orderID, coBuyerEmail string, amount model.Cents) (string, error)
	Verify(tokenString string) (*InviteClaims, error)
}

// JWTInviteIssuer implements InviteIssuer with HMAC-signed JWTs.
type JWTInviteIssuer struct {
	secretKey []byte
	ttl       time.Duration
}

// NewInviteIssuer creates a new invite issuer.
func NewInviteIssuer(secret string, ttl time.Duration) *JWTInviteIssuer {
	return &JWTInviteIssuer{
		secretKey: []byte(secret),
		ttl:       ttl,
	}
}

// Issue signs an invite for the co-buyer's share of an order.
func (i *JWTInviteIssuer) Issue(orderID, coBuyerEmail string, amount model.Cents) (string, error) {
	now := time.Now()
	claims := InviteClaims{
		OrderID:      orderID,
		CoBuyerEmail: coBuyerEmail,
		AmountCents:  int64(amount),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   coBuyerEmail,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secretKey)
}

// Verify parses and validates an invite token.
func (i *JWTInviteIssuer) Verify(tokenString string) (*InviteClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &InviteClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidInvite
	}

	claims, ok := token.Claims.(*InviteClaims)
	if !ok {
		return nil, ErrInvalidInvite
	}
	return claims, nil
}
