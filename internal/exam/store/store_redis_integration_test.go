//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"climbreg/internal/exam/models"
	"climbreg/internal/exam/store"
	id "climbreg/pkg/domain"
	"climbreg/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *store.RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.cache = store.NewRedisCache(s.redis.Client, 5*time.Minute)
}

func (s *RedisCacheSuite) SetupTest() {
	ctx := context.Background()
	err := s.redis.FlushAll(ctx)
	s.Require().NoError(err)
}

func (s *RedisCacheSuite) code(raw string) id.IDCode {
	code, err := id.ParseIDCode(raw)
	s.Require().NoError(err)
	return code
}

func (s *RedisCacheSuite) TestCertificateRoundTrip() {
	ctx := context.Background()
	record := &models.Certificate{
		IDCode:     s.code("20202020004"),
		Kind:       models.KindRed,
		Name:       "Pulvi Punane",
		Examiner:   "Eerik Eksamineerija",
		ExamDate:   time.Date(2022, 12, 15, 0, 0, 0, 0, time.UTC),
		ExpiryDate: time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC),
	}

	err := s.cache.SaveCertificate(ctx, record)
	s.Require().NoError(err)

	found, err := s.cache.FindCertificate(ctx, record.IDCode)
	s.Require().NoError(err)
	s.Equal(record.Kind, found.Kind)
	s.Equal(record.Name, found.Name)
	s.True(record.ExamDate.Equal(found.ExamDate))
	s.True(record.ExpiryDate.Equal(found.ExpiryDate))
}

func (s *RedisCacheSuite) TestMissAndInvalidate() {
	ctx := context.Background()
	code := s.code("10001010002")

	_, err := s.cache.FindCertificate(ctx, code)
	s.ErrorIs(err, store.ErrNotFound)

	s.Require().NoError(s.cache.SaveCertificate(ctx, &models.Certificate{IDCode: code, Kind: models.KindGreen}))
	s.Require().NoError(s.cache.Invalidate(ctx, code))

	_, err = s.cache.FindCertificate(ctx, code)
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *RedisCacheSuite) TestEntriesCarryTTL() {
	ctx := context.Background()
	code := s.code("50505050003")

	s.Require().NoError(s.cache.SaveCertificate(ctx, &models.Certificate{IDCode: code, Kind: models.KindGreen}))

	ttl, err := s.redis.Client.TTL(ctx, "climbreg:certificate:"+code.String()).Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, 5*time.Minute)
}
