package validation

import (
	"strings"

	"github.com/dkuiper/crypto-portfolio-backend/internal/api/request"
)

func ValidateCreateCrypto(req request.CreateCryptoRequest) error {
	errors := make(map[string]string)

	symbol := strings.TrimSpace(req.Symbol)
	if symbol == "" {
		errors["symbol"] = "symbol is required"
	} else if len(symbol) > 10 {
		errors["symbol"] = "symbol must be 10 characters or less"
	}

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateCreateFiat(req request.CreateFiatRequest) error {
	errors := make(map[string]string)

	code := strings.TrimSpace(req.Code)
	if code == "" {
		errors["code"] = "code is required"
	} else if len(code) != 3 {
		errors["code"] = "code must be a 3-letter ISO 4217 code"
	}

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
