package domain

import "time"

// IdeaCount is the number of design concepts a generation must produce.
const IdeaCount = 5

// SouvenirTypes are the fixed categories offered by the order form. "Other"
// accepts free-form requests.
var SouvenirTypes = []string{
	"Jibbitz for Crocs",
	"Fridge Magnet",
	"Keychain",
	"Phone Grip",
	"Miniature Figurine",
	"Lamp",
	"Photo Frame",
	"Other",
}

// IsValidType reports whether t is one of the offered souvenir categories.
func IsValidType(t string) bool {
	for _, s := range SouvenirTypes {
		if s == t {
			return true
		}
	}
	return false
}

// SouvenirRequest is the submitted order form. DesignSketch is an optional
// data-URL encoded reference image (uploaded or drawn).
type SouvenirRequest struct {
	Type         string `json:"type"`
	PickupDate   string `json:"pickup_date"`
	Description  string `json:"description"`
	DesignSketch string `json:"design_sketch,omitempty"`
}

// DesignConcept is a titled design idea produced by the concept phase,
// before any image has been rendered for it.
type DesignConcept struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SouvenirIdea is a concept joined with its rendered image. ImageURL is a
// PNG data URL.
type SouvenirIdea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

const (
	StatusPending   = "pending"
	StatusGenerated = "generated"
	StatusSelected  = "selected"
	StatusFailed    = "failed"
)

// SouvenirOrder tracks one submitted request through generation and
// selection.
type SouvenirOrder struct {
	OrderID       string          `json:"order_id"`
	Request       SouvenirRequest `json:"request"`
	Status        string          `json:"status"`
	Ideas         []SouvenirIdea  `json:"ideas,omitempty"`
	SelectedIndex *int            `json:"selected_index,omitempty"`
	FailureReason string          `json:"failure_reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SelectedIdea returns the chosen idea, or nil if none has been selected.
func (o *SouvenirOrder) SelectedIdea() *SouvenirIdea {
	if o.SelectedIndex == nil || *o.SelectedIndex < 0 || *o.SelectedIndex >= len(o.Ideas) {
		return nil
	}
	return &o.Ideas[*o.SelectedIndex]
}
