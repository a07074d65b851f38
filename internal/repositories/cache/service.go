// Package cache provides the redis-backed read cache for wallet rows.
//
// Cached wallets serve read endpoints only. The posting engine always loads
// wallets from the database because the cached copy does not carry the
// optimistic-lock version.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"custodia/internal/models"

	"github.com/redis/go-redis/v9"
)

type Service struct {
	client *redis.Client
	ttl    time.Duration
}

func NewService(client *redis.Client, defaultTTL time.Duration) *Service {
	return &Service{
		client: client,
		ttl:    defaultTTL,
	}
}

func walletKey(walletID uint) string {
	return fmt.Sprintf("wallet:%d", walletID)
}

func (s *Service) CacheWallet(ctx context.Context, wallet *models.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet: %w", err)
	}
	return s.client.Set(ctx, walletKey(wallet.ID), data, s.ttl).Err()
}

// GetWallet returns (nil, nil) on a cache miss.
func (s *Service) GetWallet(ctx context.Context, walletID uint) (*models.Wallet, error) {
	data, err := s.client.Get(ctx, walletKey(walletID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached wallet: %w", err)
	}

	var wallet models.Wallet
	if err := json.Unmarshal(data, &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached wallet: %w", err)
	}
	return &wallet, nil
}

func (s *Service) InvalidateWallet(ctx context.Context, walletID uint) error {
	return s.client.Del(ctx, walletKey(walletID)).Err()
}

func (s *Service) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *Service) Close() error {
	return s.client.Close()
}
