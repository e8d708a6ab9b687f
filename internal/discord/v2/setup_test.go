package v2_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"

	v2 "github.com/KirkDiggler/succ-discord/internal/discord/v2"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/succ-discord/internal/domain/conditions"
	"github.com/KirkDiggler/succ-discord/internal/i18n"
	"github.com/KirkDiggler/succ-discord/internal/repositories/characters"
	characterService "github.com/KirkDiggler/succ-discord/internal/services/character"
	"github.com/KirkDiggler/succ-discord/internal/templates"
	"github.com/KirkDiggler/succ-discord/internal/uuid"
)

type BotTestSuite struct {
	suite.Suite
	ctx     context.Context
	service characterService.Service
	bot     *v2.Bot

	mu         sync.Mutex
	responders map[string]*core.MockResponder
}

func (s *BotTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.responders = map[string]*core.MockResponder{}
	s.newBot(0)
}

func (s *BotTestSuite) newBot(perMinute int) {
	bundle, err := i18n.LoadEmbedded()
	s.Require().NoError(err)
	localizer := bundle.Localizer("en-US")

	renderer, err := templates.NewRenderer(localizer)
	s.Require().NoError(err)

	registry, err := conditions.DefaultRegistry()
	s.Require().NoError(err)

	s.service = characterService.NewService(&characterService.ServiceConfig{
		Repository:    characters.NewInMemoryRepository(),
		UUIDGenerator: uuid.NewStaticGenerator("char-1", "char-2"),
	})

	s.bot, err = v2.NewBot(&v2.BotConfig{
		CharacterService:   s.service,
		Conditions:         registry,
		Renderer:           renderer,
		Localizer:          localizer,
		UUIDGenerator:      uuid.NewStaticGenerator("dlg-1"),
		RateLimitPerMinute: perMinute,
	})
	s.Require().NoError(err)

	// one responder per interaction id so concurrent interactions stay apart
	s.bot.Pipeline.SetResponderFactory(func(_ *discordgo.Session, i *discordgo.InteractionCreate) core.InteractionResponder {
		return s.responder(i.ID)
	})
}

func (s *BotTestSuite) responder(id string) *core.MockResponder {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.responders[id]
	if !ok {
		r = core.NewMockResponder()
		s.responders[id] = r
	}
	return r
}

func (s *BotTestSuite) execute(i *discordgo.InteractionCreate) *core.MockResponder {
	s.Require().NoError(s.bot.Pipeline.Execute(s.ctx, nil, i))
	return s.responder(i.ID)
}

func (s *BotTestSuite) createPip() {
	r := s.execute(core.NewCommandInteraction("user-1", "character",
		core.SubcommandOption("create", core.StringOption("name", "Pip"))))
	s.Require().Len(r.Responses, 1)
	s.Contains(r.Responses[0].Embeds[0].Description, "**Pip**")
}

// startCondition runs a /condition command in the background and waits for
// its dialog to be drawn
func (s *BotTestSuite) startCondition(sub string) (<-chan error, *core.MockResponder) {
	i := core.NewCommandInteraction("user-1", "condition", core.SubcommandOption(sub))
	done := make(chan error, 1)
	go func() {
		done <- s.bot.Pipeline.Execute(s.ctx, nil, i)
	}()

	r := s.responder(i.ID)
	s.Require().Eventually(func() bool {
		return s.bot.Dialogs.Pending() == 1 && r.EditCount() > 0
	}, time.Second, 5*time.Millisecond)
	return done, r
}

func (s *BotTestSuite) await(done <-chan error) {
	select {
	case err := <-done:
		s.Require().NoError(err)
	case <-time.After(time.Second):
		s.FailNow("command did not finish")
	}
}

func (s *BotTestSuite) TestNumbFlowAppliesCondition() {
	s.createPip()

	done, cmd := s.startCondition("numb")
	drawn := cmd.LastResponse()
	s.Require().NotNil(drawn)
	s.Require().Len(drawn.Embeds, 1)
	s.Contains(drawn.Embeds[0].Title, "Numb")
	s.NotEmpty(drawn.Components)

	click := s.execute(core.NewComponentInteraction("user-1", cmd.OriginalID, "dialog:action:dlg-1:raise"))
	s.Require().Len(click.Updates, 1)
	s.Empty(click.Updates[0].Components)

	s.await(done)
	s.Require().Len(cmd.FollowUps, 1)
	s.Contains(cmd.FollowUps[0].Content, "**Pip**")
	s.Contains(cmd.FollowUps[0].Content, "ignores 2 point(s) of penalty")
	s.Zero(s.bot.Dialogs.Pending())

	char, err := s.service.ResolveCharacter(s.ctx, "user-1", "Pip")
	s.Require().NoError(err)
	s.True(char.HasCondition(conditions.Numb))
}

func (s *BotTestSuite) TestCancelAppliesNothing() {
	s.createPip()

	done, cmd := s.startCondition("deflection")
	s.execute(core.NewComponentInteraction("user-1", cmd.OriginalID, "dialog:action:dlg-1:cancel"))
	s.await(done)

	s.Empty(cmd.FollowUps)
	char, err := s.service.ResolveCharacter(s.ctx, "user-1", "")
	s.Require().NoError(err)
	s.Empty(char.Conditions)
}

func (s *BotTestSuite) TestOtherPlayerCannotAnswer() {
	s.createPip()

	done, cmd := s.startCondition("numb")
	intruder := s.execute(core.NewComponentInteraction("user-2", cmd.OriginalID, "dialog:action:dlg-1:success"))
	s.Require().NotNil(intruder.LastResponse())
	s.True(intruder.LastResponse().Ephemeral)
	s.Equal(1, s.bot.Dialogs.Pending())

	s.execute(core.NewComponentInteraction("user-1", cmd.OriginalID, "dialog:action:dlg-1:success"))
	s.await(done)
	s.Require().Len(cmd.FollowUps, 1)
	s.Contains(cmd.FollowUps[0].Content, "ignores 1 point(s) of penalty")
}

func (s *BotTestSuite) TestSmiteWithoutWeaponsWarns() {
	s.createPip()

	i := core.NewCommandInteraction("user-1", "condition", core.SubcommandOption("smite"))
	r := s.execute(i)

	s.Zero(s.bot.Dialogs.Pending())
	s.Require().Len(r.FollowUps, 1)
	s.Contains(r.FollowUps[0].Content, "⚠️")
	s.True(r.Deleted)
}

func (s *BotTestSuite) TestUnknownCharacterIsReported() {
	i := core.NewCommandInteraction("user-1", "condition",
		core.SubcommandOption("numb", core.StringOption("character", "Nobody")))
	r := s.execute(i)

	s.Zero(s.bot.Dialogs.Pending())
	s.Require().NotNil(r.LastResponse())
	s.True(r.LastResponse().Ephemeral)
}

func (s *BotTestSuite) TestExpiredDialog() {
	r := s.execute(core.NewComponentInteraction("user-1", "gone", "dialog:action:dlg-9:success"))
	s.Require().NotNil(r.LastResponse())
	s.Contains(r.LastResponse().Content, "expired")
}

func (s *BotTestSuite) TestDirectMessagesAreRejected() {
	i := core.NewCommandInteraction("user-1", "character", core.SubcommandOption("list"))
	i.GuildID = ""
	r := s.execute(i)

	s.Require().NotNil(r.LastResponse())
	s.True(r.LastResponse().Ephemeral)
}

func (s *BotTestSuite) TestRateLimit() {
	s.newBot(1)

	first := s.execute(core.NewCommandInteraction("user-1", "character", core.SubcommandOption("list")))
	s.Require().NotNil(first.LastResponse())
	s.NotContains(first.LastResponse().Content, "⏱️")

	i := core.NewCommandInteraction("user-1", "character", core.SubcommandOption("list"))
	i.ID = "interaction-again"
	second := s.execute(i)
	s.Require().NotNil(second.LastResponse())
	s.Contains(second.LastResponse().Content, "⏱️")
}

func (s *BotTestSuite) TestUnknownCommand() {
	r := s.execute(core.NewCommandInteraction("user-1", "roll"))
	s.Require().NotNil(r.LastResponse())
	s.Equal("I don't know how to handle that command.", r.LastResponse().Content)
}

func TestBotSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}
