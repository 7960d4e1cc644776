//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	audit "climbreg/pkg/platform/audit"
	"climbreg/pkg/platform/audit/store/postgres"
	"climbreg/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *postgres.Store
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = postgres.New(s.postgres.DB)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "audit_events")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestAppendAndListBySubject() {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	s.Require().NoError(s.store.Append(ctx, audit.Event{
		Timestamp: base,
		Subject:   "10001010002",
		Action:    string(audit.EventCardAssigned),
		Resource:  "01-AAA113",
		ActorID:   "Ilmar Instruktor",
	}))
	s.Require().NoError(s.store.Append(ctx, audit.Event{
		Timestamp: base.Add(time.Second),
		Subject:   "10001010002",
		Action:    string(audit.EventCardReleased),
		Resource:  "01-AAA111",
	}))
	s.Require().NoError(s.store.Append(ctx, audit.Event{
		Timestamp: base,
		Subject:   "20202020004",
		Action:    string(audit.EventExamRegistered),
	}))

	events, err := s.store.ListBySubject(ctx, "10001010002")
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(string(audit.EventCardAssigned), events[0].Action)
	s.Equal(audit.CategoryCompliance, events[0].Category)
	s.Equal("01-AAA113", events[0].Resource)
	s.Equal("Ilmar Instruktor", events[0].ActorID)
	s.True(base.Equal(events[0].Timestamp))
	s.NotEqual(uuid.Nil, events[0].ID)
}

func (s *PostgresStoreSuite) TestAppendIsIdempotentByID() {
	ctx := context.Background()
	event := audit.Event{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		Subject:   "10001010002",
		Action:    string(audit.EventCardAssigned),
	}

	s.Require().NoError(s.store.Append(ctx, event))
	s.Require().NoError(s.store.Append(ctx, event))

	events, err := s.store.ListBySubject(ctx, "10001010002")
	s.Require().NoError(err)
	s.Len(events, 1)
}

func (s *PostgresStoreSuite) TestListRecent() {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.store.Append(ctx, audit.Event{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Subject:   "10001010002",
			Action:    string(audit.EventCardAssignRejected),
		}))
	}

	events, err := s.store.ListRecent(ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.True(events[0].Timestamp.After(events[1].Timestamp))
	s.Equal(audit.CategoryOperations, events[0].Category)
}
