// Package redisstore persists the session under a single well-known redis
// key, for deployments where the portal process is restarted or relocated
// and a local file would not survive.
package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/harborline/portal/sessions"
)

var _ sessions.Store = (*Store)(nil)

const opTimeout = 2 * time.Second

type Store struct {
	client *redis.Client
	key    string
}

func New(client *redis.Client, key string) *Store {
	return &Store{client: client, key: key}
}

func (s *Store) Load() (*sessions.StoredSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "[redisstore.Load] get session key")
	}

	var session sessions.StoredSession
	if err := json.Unmarshal(data, &session); err != nil {
		// Corrupt session data degrades to "no session"
		return nil, nil
	}
	if session.Current == nil {
		return nil, nil
	}
	return &session, nil
}

func (s *Store) Save(session *sessions.StoredSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "[redisstore.Save] marshal session")
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return errors.Wrap(err, "[redisstore.Save] set session key")
	}
	return nil
}

func (s *Store) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Wrap(err, "[redisstore.Clear] del session key")
	}
	return nil
}
