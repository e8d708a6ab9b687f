package routers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/succ-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/handlers"
	mockhandlers "github.com/KirkDiggler/succ-discord/internal/discord/v2/handlers/mock"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/routers"
	"github.com/KirkDiggler/succ-discord/internal/domain/character"
	"github.com/KirkDiggler/succ-discord/internal/domain/conditions"
	mockcharacter "github.com/KirkDiggler/succ-discord/internal/services/character/mock"
)

func TestRouterConfigs_Validate(t *testing.T) {
	pipeline := core.NewPipeline()

	_, err := routers.NewConditionRouter(nil)
	assert.Error(t, err)
	_, err = routers.NewConditionRouter(&routers.ConditionRouterConfig{Pipeline: pipeline})
	assert.Error(t, err)

	_, err = routers.NewCharacterRouter(&routers.CharacterRouterConfig{})
	assert.Error(t, err)

	_, err = routers.NewDialogRouter(&routers.DialogRouterConfig{Pipeline: pipeline})
	assert.Error(t, err)
	_, err = routers.NewDialogRouter(&routers.DialogRouterConfig{Pipeline: pipeline, Handler: handlers.NewDialogHandler(nil)})
	require.NoError(t, err)
	assert.Equal(t, 1, pipeline.HandlerCount())
}

func TestConditionRouter_RoutesSubcommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	dialogs := mockhandlers.NewMockConditionDialogs(ctrl)
	service := mockcharacter.NewMockService(ctrl)

	registry, err := conditions.DefaultRegistry()
	require.NoError(t, err)

	handler, err := handlers.NewConditionHandler(&handlers.ConditionHandlerConfig{
		Dialogs:    dialogs,
		Service:    service,
		Conditions: registry,
	})
	require.NoError(t, err)

	responder := core.NewMockResponder()
	pipeline := core.NewPipeline()
	pipeline.SetResponderFactory(func(*discordgo.Session, *discordgo.InteractionCreate) core.InteractionResponder {
		return responder
	})
	_, err = routers.NewConditionRouter(&routers.ConditionRouterConfig{Pipeline: pipeline, Handler: handler})
	require.NoError(t, err)

	char := character.New("char-1", "user-1", "test-guild", "Pip")
	service.EXPECT().ResolveCharacter(gomock.Any(), "user-1", "").Return(char, nil)
	dialogs.EXPECT().RequestNumb(gomock.Any()).Return(nil, nil)

	err = pipeline.Execute(context.Background(), nil,
		core.NewCommandInteraction("user-1", routers.ConditionCommand, core.SubcommandOption("numb")))
	require.NoError(t, err)
	assert.Equal(t, []bool{false}, responder.DeferCalls)
	assert.Empty(t, responder.FollowUps)
}

func TestCommands_MatchRouters(t *testing.T) {
	subs := map[string][]string{}
	for _, cmd := range routers.Commands() {
		for _, opt := range cmd.Options {
			require.Equal(t, discordgo.ApplicationCommandOptionSubCommand, opt.Type)
			subs[cmd.Name] = append(subs[cmd.Name], opt.Name)

			// Discord rejects required options after optional ones
			optional := false
			for _, param := range opt.Options {
				if !param.Required {
					optional = true
				} else {
					assert.False(t, optional, "%s %s: required %s after optional", cmd.Name, opt.Name, param.Name)
				}
			}
		}
	}

	assert.Equal(t, []string{"boost", "lower", "smite", "protection", "deflection", "numb"}, subs[routers.ConditionCommand])
	assert.Equal(t, []string{"create", "attribute", "skill", "item", "show", "list"}, subs[routers.CharacterCommand])
}

func TestCommands_DieChoices(t *testing.T) {
	var attribute *discordgo.ApplicationCommandOption
	for _, cmd := range routers.Commands() {
		if cmd.Name != routers.CharacterCommand {
			continue
		}
		for _, opt := range cmd.Options {
			if opt.Name == "attribute" {
				attribute = opt
			}
		}
	}
	require.NotNil(t, attribute)

	var sides []any
	for _, param := range attribute.Options {
		if param.Name == handlers.DieParam {
			for _, choice := range param.Choices {
				sides = append(sides, choice.Value)
			}
		}
	}
	assert.Equal(t, []any{4, 6, 8, 10, 12}, sides)
}

type fakeCreator struct {
	created []string
	fail    error
}

func (f *fakeCreator) ApplicationCommandCreate(_, _ string, cmd *discordgo.ApplicationCommand, _ ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.created = append(f.created, cmd.Name)
	return cmd, nil
}

func TestRegisterCommands(t *testing.T) {
	creator := &fakeCreator{}
	require.NoError(t, routers.RegisterCommands(creator, "app", "guild"))
	assert.Equal(t, []string{routers.ConditionCommand, routers.CharacterCommand}, creator.created)

	err := routers.RegisterCommands(&fakeCreator{fail: errors.New("boom")}, "app", "")
	assert.ErrorContains(t, err, "failed to create command condition")
}
