package service

import (
	"fmt"

	"github.com/rebeat-kr/souvenir-backend/internal/souvenir/domain"
)

// defaultDescription stands in when the customer leaves the idea field
// blank, giving the designer creative license.
const defaultDescription = "The customer is open to ideas and wants you to be creative!"

const referenceNote = "The customer has also provided a reference image for inspiration."

// referenceInstruction is appended to an image prompt when a reference image
// is attached to the request.
const referenceInstruction = "\nIncorporate elements from the provided reference image into the final design."

func conceptPrompt(req domain.SouvenirRequest) string {
	description := req.Description
	if description == "" {
		description = defaultDescription
	}

	note := ""
	if req.DesignSketch != "" {
		note = referenceNote
	}

	return fmt.Sprintf(`You are a creative 3D souvenir designer for '3D Souvenirs Korea'.
A customer wants a custom '%s'.
Their design idea is: '%s'
%s

Based on this, create FIVE distinct and unique 3D printable design concepts.
For each concept, provide a short, catchy title and an exciting description that infuses Korean culture.
`, req.Type, description, note)
}

func imagePrompt(concept domain.DesignConcept, souvenirType string) string {
	return fmt.Sprintf(`Generate a visually appealing 3D render of a '%s' souvenir.
The design concept is:
Title: "%s"
Description: "%s"
The souvenir should be on a clean, modern, light-colored background. The style should be photorealistic.`,
		souvenirType, concept.Title, concept.Description)
}
