package character

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	apperr "github.com/KirkDiggler/succ-discord/internal/errors"
)

// SeedFile is the YAML layout accepted by ImportSeed
type SeedFile struct {
	Characters []SeedCharacter `yaml:"characters"`
}

// SeedCharacter describes one character to import
type SeedCharacter struct {
	OwnerID    string         `yaml:"owner_id"`
	RealmID    string         `yaml:"realm_id"`
	Name       string         `yaml:"name"`
	Attributes map[string]int `yaml:"attributes"`
	Skills     []SeedSkill    `yaml:"skills"`
	Items      []SeedItem     `yaml:"items"`
}

// SeedSkill is a skill entry in a seed file
type SeedSkill struct {
	Name      string `yaml:"name"`
	Attribute string `yaml:"attribute"`
	Die       int    `yaml:"die"`
}

// SeedItem is an inventory entry in a seed file
type SeedItem struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// ImportSeedFile reads path and imports it. A missing path is a no-op.
func ImportSeedFile(ctx context.Context, svc Service, path string) (int, error) {
	if path == "" {
		return 0, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return ImportSeed(ctx, svc, f)
}

// ImportSeed creates every character in the seed that its owner does not
// already have. It returns the number of characters created.
func ImportSeed(ctx context.Context, svc Service, r io.Reader) (int, error) {
	var seed SeedFile
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "failed to parse seed")
	}

	created := 0
	for _, entry := range seed.Characters {
		char, err := svc.CreateCharacter(ctx, &CreateCharacterInput{
			OwnerID: entry.OwnerID,
			RealmID: entry.RealmID,
			Name:    entry.Name,
		})
		if apperr.IsAlreadyExists(err) {
			log.Printf("[SEED] Skipping %s for %s: already exists", entry.Name, entry.OwnerID)
			continue
		}
		if err != nil {
			return created, apperr.Wrapf(err, "failed to seed %s", entry.Name)
		}

		for attr, die := range entry.Attributes {
			if _, err := svc.SetAttribute(ctx, char.ID, attr, die); err != nil {
				return created, apperr.Wrapf(err, "failed to seed %s", entry.Name)
			}
		}
		for _, skill := range entry.Skills {
			if _, err := svc.SetSkill(ctx, &SetSkillInput{
				CharacterID: char.ID,
				Name:        skill.Name,
				Attribute:   skill.Attribute,
				Die:         skill.Die,
			}); err != nil {
				return created, apperr.Wrapf(err, "failed to seed %s", entry.Name)
			}
		}
		for _, item := range entry.Items {
			if _, err := svc.AddItem(ctx, &AddItemInput{
				CharacterID: char.ID,
				Name:        item.Name,
				Type:        item.Type,
			}); err != nil {
				return created, apperr.Wrapf(err, "failed to seed %s", entry.Name)
			}
		}

		created++
	}

	log.Printf("[SEED] Imported %d characters", created)
	return created, nil
}
