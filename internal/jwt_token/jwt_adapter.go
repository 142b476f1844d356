package jwttoken

import (
	authmw "casework/pkg/platform/middleware/auth"
	pstrings "casework/pkg/platform/strings"
)

// Validator exposes JWTService to the auth middleware.
type Validator struct {
	service *JWTService
}

func NewValidator(service *JWTService) *Validator {
	return &Validator{service: service}
}

// ValidateToken validates the token and reduces it to the actor and a clean
// authority list. Identity providers pad and repeat authorities.
func (v *Validator) ValidateToken(tokenString string) (*authmw.JWTClaims, error) {
	claims, err := v.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &authmw.JWTClaims{
		Actor:       claims.Actor(),
		Authorities: pstrings.DedupeAndTrim(claims.Authorities),
		JTI:         claims.ID,
	}, nil
}
