package tmpstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Drolfothesgnir/sillypost/util"
	"github.com/redis/go-redis/v9"
)

// Different key prefixes for different use cases
const (
	CachePrefix  = "cache:"
	RenderPrefix = CachePrefix + "render:"
)

var ErrCacheMiss = errors.New("cache miss")

// Rendered sillycode kept between requests.
type RenderEntry struct {
	HTML       string    `json:"html"`
	Length     int       `json:"length"`
	RenderedAt time.Time `json:"rendered_at"`
}

type Store interface {
	SaveRender(ctx context.Context, key string, entry RenderEntry, ttl time.Duration) error
	GetRender(ctx context.Context, key string) (*RenderEntry, error)
	DeleteRender(ctx context.Context, key string) error
	Close() error
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// RenderKey returns the cache key of the input rendered in the given mode.
// The input is hashed so the key length does not depend on the post size.
func RenderKey(input string, isEditor bool) string {
	mode := "view"
	if isEditor {
		mode = "editor"
	}

	sum := sha256.Sum256([]byte(input))
	return RenderPrefix + mode + ":" + hex.EncodeToString(sum[:])
}

// Saves rendered output under the key for ttl.
func (store *RedisStore) SaveRender(
	ctx context.Context,
	key string,
	entry RenderEntry,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to serialize render entry: %w", err)
	}

	return store.client.Set(ctx, key, jsonData, ttl).Err()
}

// Returns ErrCacheMiss if the entry is not found or expired.
func (store *RedisStore) GetRender(ctx context.Context, key string) (*RenderEntry, error) {
	jsonData, err := store.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get render entry: %w", err)
	}

	var entry RenderEntry
	if err := json.Unmarshal(jsonData, &entry); err != nil {
		return nil, fmt.Errorf("failed to parse render entry json: %w", err)
	}

	return &entry, nil
}

func (store *RedisStore) DeleteRender(ctx context.Context, key string) error {
	return store.client.Del(ctx, key).Err()
}

// Close releases the client connections.
func (store *RedisStore) Close() error {
	return store.client.Close()
}
