package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rebeat-kr/souvenir-backend/internal/souvenir/domain"
	"github.com/rebeat-kr/souvenir-backend/internal/souvenir/repository"
)

type stubGenerator struct {
	ideas []domain.SouvenirIdea
	err   error
}

func (s *stubGenerator) GenerateIdeas(ctx context.Context, req domain.SouvenirRequest) ([]domain.SouvenirIdea, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.ideas, nil
}

func fiveIdeas() []domain.SouvenirIdea {
	ideas := make([]domain.SouvenirIdea, domain.IdeaCount)
	for i := range ideas {
		ideas[i] = domain.SouvenirIdea{
			Title:       fmt.Sprintf("Idea %d", i+1),
			Description: fmt.Sprintf("Description %d", i+1),
			ImageURL:    "data:image/png;base64,AAAA",
		}
	}
	return ideas
}

func setupRouter(t *testing.T, gen IdeaGenerator) (*gin.Engine, *repository.OrderRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	orders := repository.NewOrderRepository(client)

	r := gin.New()
	NewHandler(gen, orders).Register(r.Group("/souvenirs"))
	return r, orders
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tomorrow() string {
	return time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
}

func validBody() map[string]any {
	return map[string]any{
		"type":        "Keychain",
		"pickup_date": tomorrow(),
		"description": "a Shiba Inu wearing a traditional Korean Hanbok",
	}
}

func TestGenerate_Success(t *testing.T) {
	r, orders := setupRouter(t, &stubGenerator{ideas: fiveIdeas()})

	w := doJSON(t, r, http.MethodPost, "/souvenirs/ideas", validBody())
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK      bool                  `json:"ok"`
		OrderID string                `json:"order_id"`
		Ideas   []domain.SouvenirIdea `json:"ideas"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Len(t, resp.Ideas, domain.IdeaCount)

	order, err := orders.Get(context.Background(), resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusGenerated, order.Status)
	assert.Len(t, order.Ideas, domain.IdeaCount)
}

func TestGenerate_UnknownType(t *testing.T) {
	r, _ := setupRouter(t, &stubGenerator{ideas: fiveIdeas()})

	body := validBody()
	body["type"] = "Snow Globe"
	w := doJSON(t, r, http.MethodPost, "/souvenirs/ideas", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown souvenir type")
}

func TestGenerate_PickupDateNotAfterToday(t *testing.T) {
	r, _ := setupRouter(t, &stubGenerator{ideas: fiveIdeas()})

	for _, date := range []string{
		time.Now().UTC().Format("2006-01-02"),
		time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02"),
	} {
		body := validBody()
		body["pickup_date"] = date
		w := doJSON(t, r, http.MethodPost, "/souvenirs/ideas", body)

		assert.Equal(t, http.StatusBadRequest, w.Code, date)
		assert.Contains(t, w.Body.String(), "after today")
	}
}

func TestGenerate_MalformedDate(t *testing.T) {
	r, _ := setupRouter(t, &stubGenerator{ideas: fiveIdeas()})

	body := validBody()
	body["pickup_date"] = "15-09-2026"
	w := doJSON(t, r, http.MethodPost, "/souvenirs/ideas", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
}

func TestGenerate_BadSketchUpload(t *testing.T) {
	r, _ := setupRouter(t, &stubGenerator{ideas: fiveIdeas()})

	body := validBody()
	body["design_sketch"] = "not-a-data-url"
	w := doJSON(t, r, http.MethodPost, "/souvenirs/ideas", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "design_sketch")
}

func TestGenerate_FailureMarksOrderFailed(t *testing.T) {
	r, orders := setupRouter(t, &stubGenerator{err: domain.ErrConceptFormat})

	w := doJSON(t, r, http.MethodPost, "/souvenirs/ideas", validBody())
	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp struct {
		OK      bool   `json:"ok"`
		OrderID string `json:"order_id"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, domain.MsgConceptFormat, resp.Error)

	order, err := orders.Get(context.Background(), resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, order.Status)
	assert.Equal(t, domain.MsgConceptFormat, order.FailureReason)
}

func TestGenerate_GenericFailureUsesGenerationMessage(t *testing.T) {
	r, _ := setupRouter(t, &stubGenerator{err: fmt.Errorf("model unavailable")})

	w := doJSON(t, r, http.MethodPost, "/souvenirs/ideas", validBody())
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "busy dreaming up other ideas")
}

func TestGetOrder(t *testing.T) {
	r, orders := setupRouter(t, &stubGenerator{ideas: fiveIdeas()})

	order := &domain.SouvenirOrder{
		Request: domain.SouvenirRequest{Type: "Lamp", PickupDate: tomorrow()},
		Status:  domain.StatusPending,
	}
	require.NoError(t, orders.Create(context.Background(), order))

	w := doJSON(t, r, http.MethodGet, "/souvenirs/orders/"+order.OrderID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), order.OrderID)
}

func TestGetOrder_NotFound(t *testing.T) {
	r, _ := setupRouter(t, &stubGenerator{})

	w := doJSON(t, r, http.MethodGet, "/souvenirs/orders/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSelectIdea(t *testing.T) {
	r, orders := setupRouter(t, &stubGenerator{ideas: fiveIdeas()})

	w := doJSON(t, r, http.MethodPost, "/souvenirs/ideas", validBody())
	require.Equal(t, http.StatusOK, w.Code)

	var generated struct {
		OrderID string `json:"order_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &generated))

	w = doJSON(t, r, http.MethodPost, "/souvenirs/orders/"+generated.OrderID+"/select", map[string]any{"index": 2})
	require.Equal(t, http.StatusOK, w.Code)

	order, err := orders.Get(context.Background(), generated.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSelected, order.Status)
	require.NotNil(t, order.SelectedIndex)
	assert.Equal(t, 2, *order.SelectedIndex)

	selected := order.SelectedIdea()
	require.NotNil(t, selected)
	assert.Equal(t, "Idea 3", selected.Title)
}

func TestSelectIdea_OrderNotReady(t *testing.T) {
	r, orders := setupRouter(t, &stubGenerator{})

	order := &domain.SouvenirOrder{
		Request: domain.SouvenirRequest{Type: "Lamp", PickupDate: tomorrow()},
		Status:  domain.StatusPending,
	}
	require.NoError(t, orders.Create(context.Background(), order))

	w := doJSON(t, r, http.MethodPost, "/souvenirs/orders/"+order.OrderID+"/select", map[string]any{"index": 0})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSelectIdea_IndexOutOfRange(t *testing.T) {
	r, orders := setupRouter(t, &stubGenerator{ideas: fiveIdeas()})

	order := &domain.SouvenirOrder{
		Request: domain.SouvenirRequest{Type: "Lamp", PickupDate: tomorrow()},
		Status:  domain.StatusGenerated,
		Ideas:   fiveIdeas(),
	}
	require.NoError(t, orders.Create(context.Background(), order))

	for _, idx := range []int{-1, domain.IdeaCount} {
		w := doJSON(t, r, http.MethodPost, "/souvenirs/orders/"+order.OrderID+"/select", map[string]any{"index": idx})
		assert.Equal(t, http.StatusBadRequest, w.Code, idx)
	}
}

func TestSelectIdea_MissingIndex(t *testing.T) {
	r, orders := setupRouter(t, &stubGenerator{ideas: fiveIdeas()})

	order := &domain.SouvenirOrder{
		Request: domain.SouvenirRequest{Type: "Lamp", PickupDate: tomorrow()},
		Status:  domain.StatusGenerated,
		Ideas:   fiveIdeas(),
	}
	require.NoError(t, orders.Create(context.Background(), order))

	w := doJSON(t, r, http.MethodPost, "/souvenirs/orders/"+order.OrderID+"/select", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
