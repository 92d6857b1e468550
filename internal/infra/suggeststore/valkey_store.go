package suggeststore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/vedicworks/muhurat-api/internal/domain/muhurat"
	apperrors "github.com/vedicworks/muhurat-api/pkg/errors"
)

// ValkeyStore caches suggestion responses in a Valkey-compatible database so
// multiple instances share one cache.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "muhurat"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) GetSuggestion(ctx context.Context, key string) (muhurat.Response, bool, error) {
	if key == "" {
		return muhurat.Response{}, false, nil
	}
	cmd := s.client.B().Get().Key(s.entryKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return muhurat.Response{}, false, nil
		}
		return muhurat.Response{}, false, apperrors.Wrap(apperrors.CodeStorageError, "suggestion cache read failed", err)
	}
	var resp muhurat.Response
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return muhurat.Response{}, false, apperrors.Wrap(apperrors.CodeStorageError, "suggestion cache entry corrupt", err)
	}
	return resp, true, nil
}

func (s *ValkeyStore) SaveSuggestion(ctx context.Context, key string, resp muhurat.Response, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.entryKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return apperrors.Wrap(apperrors.CodeStorageError, "suggestion cache write failed", err)
	}
	return nil
}

func (s *ValkeyStore) entryKey(key string) string {
	return s.prefix + ":suggest:" + key
}

var _ muhurat.Store = (*ValkeyStore)(nil)
