// Copyright 2026 go-vecbit Authors. SPDX-License-Identifier: Apache-2.0

// Package redisbit keeps a fixed-size bit sequence in a Redis bitmap so
// that many processes can share it. Point updates go through SETBIT and
// GETBIT; whole bitmaps move between Redis and in-process vectors with
// Load and Save.
//
// Redis addresses bitmap offsets from the most significant bit of the
// first byte of the string, which is exactly the uint8/Msb0 layout, so
// bulk transfers are straight byte copies with no bit reshuffling.
package redisbit

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sunjay/go-vecbit/vecbit"
)

var (
	// ErrRange is returned for bit offsets outside the bitmap.
	ErrRange = errors.New("redisbit: bit index out of range")

	// ErrSize is returned for invalid bitmap sizes at construction.
	ErrSize = errors.New("redisbit: invalid bitmap size")

	// ErrSizeMismatch is returned when a vector's length does not match
	// the bitmap it is saved to or combined with.
	ErrSizeMismatch = errors.New("redisbit: length does not match bitmap size")
)

// maxRedisBits is the Redis bitmap ceiling: strings cap at 512 MB.
const maxRedisBits = 1 << 32

// BitmapVec is the vector instantiation that shares Redis's bitmap
// layout: bytes filled most significant bit first.
type BitmapVec = vecbit.Vec[uint8, vecbit.Msb0[uint8]]

// Store is a fixed-size bitmap held in a single Redis string key. A store
// that was never written reads as all zeros. Store performs no IO at
// construction; every accessor takes the context of the calling request.
type Store struct {
	client *redis.Client
	key    string
	bits   int
}

// New returns a store of bits bits backed by key.
func New(client *redis.Client, key string, bits int) (*Store, error) {
	if bits <= 0 || bits > maxRedisBits {
		return nil, fmt.Errorf("%w: %d bits", ErrSize, bits)
	}
	return &Store{client: client, key: key, bits: bits}, nil
}

// Len returns the bitmap size in bits.
func (s *Store) Len() int {
	return s.bits
}

// Key returns the Redis key holding the bitmap.
func (s *Store) Key() string {
	return s.key
}

func (s *Store) check(i int) error {
	if i < 0 || i >= s.bits {
		return fmt.Errorf("%w: %d not in [0:%d)", ErrRange, i, s.bits)
	}
	return nil
}

// SetBit writes the bit at offset i.
func (s *Store) SetBit(ctx context.Context, i int, bit bool) error {
	if err := s.check(i); err != nil {
		return err
	}
	v := 0
	if bit {
		v = 1
	}
	return s.client.SetBit(ctx, s.key, int64(i), v).Err()
}

// Bit reads the bit at offset i.
func (s *Store) Bit(ctx context.Context, i int) (bool, error) {
	if err := s.check(i); err != nil {
		return false, err
	}
	v, err := s.client.GetBit(ctx, s.key, int64(i)).Result()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// SetBits sets every given offset to one in a single pipelined round
// trip.
func (s *Store) SetBits(ctx context.Context, idxs ...int) error {
	for _, i := range idxs {
		if err := s.check(i); err != nil {
			return err
		}
	}
	pipe := s.client.Pipeline()
	for _, i := range idxs {
		pipe.SetBit(ctx, s.key, int64(i), 1)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// OnesCount returns the number of set bits.
func (s *Store) OnesCount(ctx context.Context) (int, error) {
	n, err := s.client.BitCount(ctx, s.key, &redis.BitCount{Start: 0, End: -1}).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// FirstOne returns the offset of the first set bit. The second result is
// false when no bit is set.
func (s *Store) FirstOne(ctx context.Context) (int, bool, error) {
	pos, err := s.client.BitPos(ctx, s.key, 1).Result()
	if err != nil {
		return 0, false, err
	}
	if pos < 0 || pos >= int64(s.bits) {
		return 0, false, nil
	}
	return int(pos), true, nil
}

func (s *Store) bitop(ctx context.Context, op func(ctx context.Context, dest string, keys ...string) *redis.IntCmd, others []*Store) error {
	keys := make([]string, 0, len(others)+1)
	keys = append(keys, s.key)
	for _, o := range others {
		if o.bits != s.bits {
			return fmt.Errorf("%w: %d vs %d bits", ErrSizeMismatch, o.bits, s.bits)
		}
		keys = append(keys, o.key)
	}
	return op(ctx, s.key, keys...).Err()
}

// And intersects the other bitmaps into s server-side with BITOP.
func (s *Store) And(ctx context.Context, others ...*Store) error {
	return s.bitop(ctx, s.client.BitOpAnd, others)
}

// Or unions the other bitmaps into s server-side with BITOP.
func (s *Store) Or(ctx context.Context, others ...*Store) error {
	return s.bitop(ctx, s.client.BitOpOr, others)
}

// Xor folds the other bitmaps into s by symmetric difference server-side
// with BITOP.
func (s *Store) Xor(ctx context.Context, others ...*Store) error {
	return s.bitop(ctx, s.client.BitOpXor, others)
}

// Not inverts the bitmap in place server-side with BITOP. BITOP NOT only
// flips bytes the string already holds and flips every bit of those
// bytes, so the string is first extended to the full bitmap size and the
// dead tail bits are cleared again after the inversion.
func (s *Store) Not(ctx context.Context) error {
	last := int64(s.bits - 1)
	v, err := s.client.GetBit(ctx, s.key, last).Result()
	if err != nil {
		return err
	}
	if err := s.client.SetBit(ctx, s.key, last, int(v)).Err(); err != nil {
		return err
	}
	if err := s.client.BitOpNot(ctx, s.key, s.key).Err(); err != nil {
		return err
	}
	if s.bits%8 == 0 {
		return nil
	}
	pipe := s.client.Pipeline()
	for i := s.bits; i < (s.bits+7)/8*8; i++ {
		pipe.SetBit(ctx, s.key, int64(i), 0)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// Clear writes an all-zero bitmap of the full size, so later BITOP and
// BITCOUNT calls see the intended length.
func (s *Store) Clear(ctx context.Context) error {
	return s.client.Set(ctx, s.key, make([]byte, (s.bits+7)/8), 0).Err()
}

// Load reads the whole bitmap into a vector of exactly Len bits. Offsets
// the server never touched read as zero.
func (s *Store) Load(ctx context.Context) (*BitmapVec, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	b := make([]byte, (s.bits+7)/8)
	copy(b, raw)
	v, err := vecbit.FromElements[uint8, vecbit.Msb0[uint8]](b)
	if err != nil {
		return nil, err
	}
	v.Truncate(s.bits)
	return v, nil
}

// Save writes v as the whole bitmap. v must hold exactly Len bits.
func (s *Store) Save(ctx context.Context, v *BitmapVec) error {
	if v.Len() != s.bits {
		return fmt.Errorf("%w: vector %d vs bitmap %d bits", ErrSizeMismatch, v.Len(), s.bits)
	}
	b := make([]byte, (s.bits+7)/8)
	copy(b, v.Elements())
	if k := s.bits % 8; k != 0 {
		// Zero the dead low bits of the final byte.
		b[len(b)-1] &= 0xFF << (8 - k)
	}
	return s.client.Set(ctx, s.key, b, 0).Err()
}
