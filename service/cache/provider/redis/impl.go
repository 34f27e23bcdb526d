package redis

import (
	"time"

	redigo "github.com/gomodule/redigo/redis"

	"github.com/auctionloft/goapi/base/ctx"
	"github.com/auctionloft/goapi/service/cache/provider"
)

type impl struct {
	pool *redigo.Pool
}

// NewRedis wraps a redigo pool as a shared cache provider, so a multi-instance
// deployment can share one projection slot instead of recomputing per pod.
func NewRedis(pool *redigo.Pool) provider.Provider {
	return &impl{pool}
}

// NewPool dials a redis with sane defaults for a small request-path cache.
func NewPool(uri string, password string) *redigo.Pool {
	return &redigo.Pool{
		MaxIdle:     8,
		MaxActive:   64,
		IdleTimeout: 5 * time.Minute,
		Dial: func() (redigo.Conn, error) {
			opts := []redigo.DialOption{}
			if password != "" {
				opts = append(opts, redigo.DialPassword(password))
			}
			return redigo.Dial("tcp", uri, opts...)
		},
	}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	conn := im.pool.Get()
	defer conn.Close()

	val, err := redigo.Bytes(conn.Do("GET", key))
	if err == redigo.ErrNil {
		return nil, time.Duration(0), provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Get failed")
		return nil, time.Duration(0), err
	}

	ttl, err := redigo.Int64(conn.Do("TTL", key))
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.TTL failed")
		return nil, time.Duration(0), err
	}

	return val, time.Duration(ttl) * time.Second, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	conn := im.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("SET", key, value, "EX", int(ttl.Seconds())); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	conn := im.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("DEL", key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Del failed")
		return err
	}
	return nil
}
