package models

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type CreateClientRequest struct {
	NationalID string `json:"nationalId"`
	FullName   string `json:"fullName"`
	BirthDate  string `json:"birthDate"`
	Address    string `json:"address"`
}

func (r CreateClientRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.NationalID) == "" {
		errs = append(errs, "nationalId is required")
	}
	if strings.TrimSpace(r.FullName) == "" {
		errs = append(errs, "fullName is required")
	}
	if strings.TrimSpace(r.BirthDate) == "" {
		errs = append(errs, "birthDate is required")
	} else if _, err := time.Parse(DateLayout, strings.TrimSpace(r.BirthDate)); err != nil {
		errs = append(errs, "birthDate must be in YYYY-MM-DD format")
	}
	if strings.TrimSpace(r.Address) == "" {
		errs = append(errs, "address is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type ClientResponse struct {
	ID             string  `json:"id"`
	NationalID     string  `json:"nationalId"`
	FullName       string  `json:"fullName"`
	BirthDate      string  `json:"birthDate"`
	Address        string  `json:"address"`
	AccountNumbers []int64 `json:"accountNumbers"`
}
