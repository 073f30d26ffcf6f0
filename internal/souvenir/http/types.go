package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/rebeat-kr/souvenir-backend/internal/imagedata"
	"github.com/rebeat-kr/souvenir-backend/internal/souvenir/domain"
)

type generateReq struct {
	Type         string `json:"type"`
	PickupDate   string `json:"pickup_date"`
	Description  string `json:"description"`
	DesignSketch string `json:"design_sketch"`
}

// validate applies the form contract: a known souvenir type, a pickup date
// strictly after today, and an optional well-formed reference image under
// the upload ceiling.
func (r generateReq) validate(now time.Time) error {
	if !domain.IsValidType(strings.TrimSpace(r.Type)) {
		return fmt.Errorf("unknown souvenir type %q", r.Type)
	}

	pickup, err := time.Parse("2006-01-02", r.PickupDate)
	if err != nil {
		return fmt.Errorf("pickup_date must be YYYY-MM-DD")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !pickup.After(today) {
		return fmt.Errorf("pickup_date must be after today")
	}

	if err := imagedata.ValidateUpload(r.DesignSketch); err != nil {
		return fmt.Errorf("design_sketch: %w", err)
	}

	return nil
}

func (r generateReq) toDomain() domain.SouvenirRequest {
	return domain.SouvenirRequest{
		Type:         strings.TrimSpace(r.Type),
		PickupDate:   r.PickupDate,
		Description:  strings.TrimSpace(r.Description),
		DesignSketch: r.DesignSketch,
	}
}

type selectReq struct {
	Index *int `json:"index"`
}
