package utils

import (
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ims-exchange/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidPrivateKey is returned when the PEM text does not hold an RSA
// private key usable for RS256.
var ErrInvalidPrivateKey = errors.New("invalid RSA private key")

// AudienceURL returns the "aud" claim value for clientID on host:
// https://{host}/c/{clientID}.
func AudienceURL(host, clientID string) string {
	return "https://" + host + "/c/" + clientID
}

// MetascopeClaim returns the claim name that requests metascope on host:
// https://{host}/s/{metascope}.
func MetascopeClaim(host, metascope string) string {
	return "https://" + host + "/s/" + metascope
}

// BuildAssertionClaims derives the claim set of a JWT-bearer assertion.
//
// The result holds exactly:
//   - iss: req.Issuer
//   - sub: req.Subject
//   - exp: req.ExpirationTimeSeconds
//   - aud: [AudienceURL] of host and req.ClientID
//   - one boolean claim per metascope, named by [MetascopeClaim]
//
// Repeated metascopes map to the same claim name and therefore to one entry.
func BuildAssertionClaims(host string, req models.ExchangeRequest) jwt.MapClaims {
	claims := make(jwt.MapClaims, 4+len(req.Metascopes))
	claims["iss"] = req.Issuer
	claims["sub"] = req.Subject
	claims["exp"] = req.ExpirationTimeSeconds
	claims["aud"] = AudienceURL(host, req.ClientID)

	for _, scope := range req.Metascopes {
		claims[MetascopeClaim(host, scope)] = true
	}

	return claims
}

// ParseRSAPrivateKey decodes a PEM-encoded PKCS#1 or PKCS#8 RSA private key.
func ParseRSAPrivateKey(pemKey string) (*rsa.PrivateKey, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(pemKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return key, nil
}

// SignAssertion signs claims with RS256 using the PEM-encoded private key
// and returns the compact header.payload.signature form.
//
// Example usage:
//
//	claims := utils.BuildAssertionClaims("ims-na1.example.com", req)
//	assertion, err := utils.SignAssertion(claims, req.PrivateKey)
func SignAssertion(claims jwt.MapClaims, pemKey string) (string, error) {
	key, err := ParseRSAPrivateKey(pemKey)
	if err != nil {
		return "", err
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT assertion: %w", err)
	}

	return signed, nil
}
