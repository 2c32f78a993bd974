package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore хранилище сессии в Redis
// Позволяет нескольким процессам разделять одну сессию. TTL не выставляется:
// сессия живет до явного выхода или 401, как и в localStorage.
type RedisStore struct {
	client redis.Cmdable
	prefix string
}

// NewRedisStore создает хранилище; ключи имеют вид <prefix>:<namespace>:<key>
func NewRedisStore(client redis.Cmdable, prefix, namespace string) *RedisStore {
	p := prefix
	if namespace != "" {
		p = p + ":" + namespace
	}
	return &RedisStore{client: client, prefix: p}
}

func (s *RedisStore) key(k string) string {
	if s.prefix == "" {
		return k
	}
	return s.prefix + ":" + k
}

// Get возвращает значение ключа; ok=false если ключ отсутствует
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: redis get %s: %v", ErrBackend, key, err)
	}
	return v, true, nil
}

// Set записывает значение без срока жизни
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %v", ErrBackend, key, err)
	}
	return nil
}

// Remove удаляет ключ
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: redis del %s: %v", ErrBackend, key, err)
	}
	return nil
}
