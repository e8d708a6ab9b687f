package characters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/succ-discord/internal/domain/character"
	"github.com/KirkDiggler/succ-discord/internal/domain/conditions"
	apperr "github.com/KirkDiggler/succ-discord/internal/errors"
)

type fixedClock struct {
	now time.Time
}

func (f *fixedClock) Now() time.Time {
	return f.now
}

type RedisRepoTestSuite struct {
	suite.Suite
	client *redis.Client
	mock   redismock.ClientMock
	clock  *fixedClock
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.client, s.mock = redismock.NewClientMock()
	s.clock = &fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:       s.client,
		TimeProvider: s.clock,
	})
	s.ctx = context.Background()
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) testCharacter(id, name string) *character.Character {
	char := character.New(id, "user-1", "guild-1", name)
	char.SetSkill(character.Skill{Name: "Fighting", Attribute: character.Agility, Die: 8})
	char.AddItem(character.Item{ID: "item-1", Name: "Long Sword", Type: character.ItemWeapon})
	return char
}

func (s *RedisRepoTestSuite) encode(char *character.Character, createdAt, updatedAt time.Time) string {
	data, err := json.Marshal(toData(char, createdAt, updatedAt))
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestCreate() {
	char := s.testCharacter("char-1", "Red")
	payload := s.encode(char, s.clock.now, s.clock.now)

	s.mock.ExpectExists("character:char-1").SetVal(0)
	s.mock.ExpectSet("character:char-1", payload, 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:user-1:characters", "char-1").SetVal(1)

	s.NoError(s.repo.Create(s.ctx, char))
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	s.mock.ExpectExists("character:char-1").SetVal(1)

	err := s.repo.Create(s.ctx, s.testCharacter("char-1", "Red"))
	s.True(apperr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreate_Validation() {
	s.True(apperr.IsInvalidArgument(s.repo.Create(s.ctx, nil)))
	s.True(apperr.IsInvalidArgument(s.repo.Create(s.ctx, &character.Character{ID: "x"})))
}

func (s *RedisRepoTestSuite) TestCreate_StoreError() {
	char := s.testCharacter("char-1", "Red")
	payload := s.encode(char, s.clock.now, s.clock.now)

	s.mock.ExpectExists("character:char-1").SetVal(0)
	s.mock.ExpectSet("character:char-1", payload, 0).SetErr(errors.New("redis down"))

	s.Error(s.repo.Create(s.ctx, char))
}

func (s *RedisRepoTestSuite) TestGet() {
	char := s.testCharacter("char-1", "Red")
	char.ApplyCondition(&conditions.AppliedCondition{
		ConditionID: conditions.Smite,
		Options:     map[string]string{"weapon": "Long Sword", "bonus": "+2"},
		AppliedBy:   "user-1",
		AppliedAt:   s.clock.now,
	})
	s.mock.ExpectGet("character:char-1").SetVal(s.encode(char, s.clock.now, s.clock.now))

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal("Red", got.Name)
	s.Equal(character.Die(8), got.Skills[0].Die)
	s.Require().Len(got.Weapons(), 1)
	s.True(got.HasCondition(conditions.Smite))
	s.Equal("+2", got.Conditions[0].Options["bonus"])
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("character:missing").RedisNil()

	_, err := s.repo.Get(s.ctx, "missing")
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGet_RequiresID() {
	_, err := s.repo.Get(s.ctx, "")
	s.True(apperr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestListByOwner() {
	red := s.testCharacter("char-1", "Red")
	blue := s.testCharacter("char-2", "Blue")

	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectSMembers("owner:user-1:characters").SetVal([]string{"char-1", "char-2"})
	s.mock.ExpectGet("character:char-1").SetVal(s.encode(red, s.clock.now, s.clock.now))
	s.mock.ExpectGet("character:char-2").SetVal(s.encode(blue, s.clock.now, s.clock.now))

	chars, err := s.repo.ListByOwner(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Require().Len(chars, 2)
	s.Equal("Blue", chars[0].Name)
	s.Equal("Red", chars[1].Name)
}

func (s *RedisRepoTestSuite) TestListByOwner_MissingMember() {
	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectSMembers("owner:user-1:characters").SetVal([]string{"gone"})
	s.mock.ExpectGet("character:gone").RedisNil()

	_, err := s.repo.ListByOwner(s.ctx, "user-1")
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdate_KeepsCreatedAt() {
	created := s.clock.now.Add(-48 * time.Hour)
	char := s.testCharacter("char-1", "Red")
	s.mock.ExpectGet("character:char-1").SetVal(s.encode(char, created, created))

	char.Name = "Red the Bold"
	s.mock.ExpectSet("character:char-1", s.encode(char, created, s.clock.now), 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:user-1:characters", "char-1").SetVal(0)

	s.NoError(s.repo.Update(s.ctx, char))
}

func (s *RedisRepoTestSuite) TestUpdate_NotFound() {
	s.mock.ExpectGet("character:char-1").RedisNil()

	err := s.repo.Update(s.ctx, s.testCharacter("char-1", "Red"))
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	char := s.testCharacter("char-1", "Red")
	s.mock.ExpectGet("character:char-1").SetVal(s.encode(char, s.clock.now, s.clock.now))
	s.mock.ExpectDel("character:char-1").SetVal(1)
	s.mock.ExpectSRem("owner:user-1:characters", "char-1").SetVal(1)

	s.NoError(s.repo.Delete(s.ctx, "char-1"))
}
