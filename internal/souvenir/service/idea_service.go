package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rebeat-kr/souvenir-backend/internal/imagedata"
	"github.com/rebeat-kr/souvenir-backend/internal/souvenir/domain"
)

// referencePayloadMinChars guards against forwarding a truncated or empty
// reference image: payloads at or below this base64 length are not attached.
const referencePayloadMinChars = 250

// GenerativeClient is the slice of the Gemini client the orchestrator needs.
type GenerativeClient interface {
	// GenerateConcepts returns the raw JSON text of the concept response.
	GenerateConcepts(ctx context.Context, prompt string) (string, error)
	// GenerateImage renders one image, optionally seeded with PNG reference
	// bytes, and returns the image bytes and their media type.
	GenerateImage(ctx context.Context, prompt string, reference []byte) ([]byte, string, error)
}

// IdeaService orchestrates the two-phase souvenir idea generation: one
// structured concept request, then one image request per concept in
// parallel, zipped positionally into the final ideas.
type IdeaService struct {
	client GenerativeClient
}

// NewIdeaService creates a new IdeaService.
func NewIdeaService(client GenerativeClient) *IdeaService {
	return &IdeaService{client: client}
}

// GenerateIdeas produces exactly domain.IdeaCount illustrated design ideas
// for the request, or fails the whole batch. No partial results are ever
// returned and no retries are attempted.
func (s *IdeaService) GenerateIdeas(ctx context.Context, req domain.SouvenirRequest) ([]domain.SouvenirIdea, error) {
	concepts, err := s.generateConcepts(ctx, req)
	if err != nil {
		return nil, err
	}

	images, err := s.generateImages(ctx, concepts, req)
	if err != nil {
		return nil, err
	}

	// Zip by index: phase 2 preserved phase-1 order, so position N of the
	// images slice belongs to concept N.
	ideas := make([]domain.SouvenirIdea, len(concepts))
	for i, concept := range concepts {
		ideas[i] = domain.SouvenirIdea{
			Title:       concept.Title,
			Description: concept.Description,
			ImageURL:    images[i],
		}
	}

	return ideas, nil
}

func (s *IdeaService) generateConcepts(ctx context.Context, req domain.SouvenirRequest) ([]domain.DesignConcept, error) {
	raw, err := s.client.GenerateConcepts(ctx, conceptPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("concept generation: %w", err)
	}

	var parsed struct {
		Designs []domain.DesignConcept `json:"designs"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConceptFormat, err)
	}
	if len(parsed.Designs) != domain.IdeaCount {
		return nil, fmt.Errorf("%w: expected %d designs, got %d", domain.ErrConceptFormat, domain.IdeaCount, len(parsed.Designs))
	}

	return parsed.Designs, nil
}

// generateImages issues one image request per concept concurrently. A single
// failure fails the batch; results are written by concept index so slow
// requests cannot be misattributed.
func (s *IdeaService) generateImages(ctx context.Context, concepts []domain.DesignConcept, req domain.SouvenirRequest) ([]string, error) {
	reference := s.referenceBytes(req.DesignSketch)

	images := make([]string, len(concepts))
	g, gctx := errgroup.WithContext(ctx)
	for i, concept := range concepts {
		g.Go(func() error {
			url, err := s.generateImageForConcept(gctx, concept, req.Type, reference)
			if err != nil {
				return fmt.Errorf("image generation for %q: %w", concept.Title, err)
			}
			images[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return images, nil
}

func (s *IdeaService) generateImageForConcept(ctx context.Context, concept domain.DesignConcept, souvenirType string, reference []byte) (string, error) {
	prompt := imagePrompt(concept, souvenirType)
	if len(reference) > 0 {
		prompt += referenceInstruction
	}

	data, _, err := s.client.GenerateImage(ctx, prompt, reference)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty image payload")
	}

	return imagedata.EncodePNG(data), nil
}

// referenceBytes decodes the submitted sketch into attachable bytes. Short
// or unreadable payloads yield nil so the image requests proceed without a
// reference.
func (s *IdeaService) referenceBytes(sketch string) []byte {
	if sketch == "" {
		return nil
	}

	payload, err := imagedata.Base64Payload(sketch)
	if err != nil || len(payload) <= referencePayloadMinChars {
		return nil
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil
	}
	return data
}
