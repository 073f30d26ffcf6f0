package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rebeat-kr/souvenir-backend/internal/souvenir/domain"
)

const (
	orderKeyPrefix = "souvenir:order:"    // Key data for one order: souvenir:order:{order_id}
	orderIndexKey  = "souvenir:orders"    // Set of all order IDs
	orderTTL       = 7 * 24 * time.Hour   // Orders expire a week after last update
)

// OrderRepository handles Redis operations for souvenir orders.
type OrderRepository struct {
	client *redis.Client
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(client *redis.Client) *OrderRepository {
	return &OrderRepository{client: client}
}

// Create stores a new order, assigning an ID and timestamps if unset.
func (r *OrderRepository) Create(ctx context.Context, order *domain.SouvenirOrder) error {
	if order.OrderID == "" {
		order.OrderID = uuid.New().String()
	}
	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.orderKey(order.OrderID), data, orderTTL)
	pipe.SAdd(ctx, orderIndexKey, order.OrderID)
	pipe.Expire(ctx, orderIndexKey, orderTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// Get retrieves an order by ID.
func (r *OrderRepository) Get(ctx context.Context, orderID string) (*domain.SouvenirOrder, error) {
	data, err := r.client.Get(ctx, r.orderKey(orderID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	var order domain.SouvenirOrder
	if err := json.Unmarshal([]byte(data), &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}

	return &order, nil
}

// Update rewrites an existing order, refreshing its TTL.
func (r *OrderRepository) Update(ctx context.Context, order *domain.SouvenirOrder) error {
	if _, err := r.Get(ctx, order.OrderID); err != nil {
		return err
	}

	order.UpdatedAt = time.Now()
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	if err := r.client.Set(ctx, r.orderKey(order.OrderID), data, orderTTL).Err(); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	return nil
}

// List returns all known order IDs.
func (r *OrderRepository) List(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, orderIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return ids, nil
}

// Delete removes an order.
func (r *OrderRepository) Delete(ctx context.Context, orderID string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.orderKey(orderID))
	pipe.SRem(ctx, orderIndexKey, orderID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (r *OrderRepository) orderKey(orderID string) string {
	return fmt.Sprintf("%s%s", orderKeyPrefix, orderID)
}
