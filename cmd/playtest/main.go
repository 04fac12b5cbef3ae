package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/config"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/db"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/game/encounter"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/game/progression"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/model"
)

const ConfigPath = "config/engine.yaml"

// monsterPacks rotates which bestiary entries a session fights, roughly
// ordered by difficulty. The last pack is the chapter boss.
var monsterPacks = [][]int32{
	{data.TemplateRuinHound, data.TemplateRuinHound},
	{data.TemplateAshWraith},
	{data.TemplateBogStalker, data.TemplateRuinHound},
	{data.TemplateHollowKnight},
	{data.TemplateWardenOfEmbers},
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("RUIN_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadEngine(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	slog.Info("playtest starting",
		"encounters", cfg.Playtest.Encounters,
		"maxRounds", cfg.Playtest.MaxRounds,
		"persist", cfg.Playtest.Persist)

	if err := data.LoadSkills(); err != nil {
		return fmt.Errorf("loading skills: %w", err)
	}
	if err := data.LoadPlayerTemplates(); err != nil {
		return fmt.Errorf("loading player templates: %w", err)
	}
	if err := data.LoadEntityTemplates(); err != nil {
		return fmt.Errorf("loading entity templates: %w", err)
	}

	var charRepo *db.CharacterRepository
	var snapStore *db.SnapshotStore
	if cfg.Playtest.Persist {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		charRepo = db.NewCharacterRepository(database.Pool())
		snapStore = db.NewSnapshotStore(database.Pool())
		slog.Info("database connected")
	}

	prog := progression.NewEngine(cfg.Rates)
	archetypes := data.Archetypes()

	// Each session owns its participants outright; the only shared state
	// across goroutines is the read-only catalogs and the progression
	// engine, which keeps no state of its own.
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Playtest.Encounters; i++ {
		session := session{
			id:        int32(i + 1),
			archetype: archetypes[i%len(archetypes)],
			prog:      prog,
			maxRounds: int32(cfg.Playtest.MaxRounds),
			charRepo:  charRepo,
			snapStore: snapStore,
		}
		g.Go(func() error {
			return session.run(gctx)
		})
	}
	return g.Wait()
}

// session is one isolated playtest: a fresh character fighting its way
// through the monster packs, with a chapter transition when it outgrows the
// first bracket.
type session struct {
	id        int32
	archetype data.Archetype
	prog      *progression.Engine
	maxRounds int32
	charRepo  *db.CharacterRepository
	snapStore *db.SnapshotStore
}

func (s *session) run(ctx context.Context) error {
	player, err := model.NewPlayer(uint32(s.id), fmt.Sprintf("tester-%d", s.id), s.archetype)
	if err != nil {
		return fmt.Errorf("session %d: %w", s.id, err)
	}

	var lastEnc *encounter.Encounter
	for packIdx, pack := range monsterPacks {
		if err := ctx.Err(); err != nil {
			return err
		}

		monsters := make([]*model.Creature, 0, len(pack))
		for j, templateID := range pack {
			tpl := data.GetEntityTemplate(templateID)
			id := uint32(int(s.id)*1000 + packIdx*10 + j)
			monsters = append(monsters, model.SpawnEntity(id, tpl))
		}

		enc := encounter.New(encounter.Config{
			ID:          s.id*100 + int32(packIdx),
			Players:     []*model.Player{player},
			Monsters:    monsters,
			Progression: s.prog,
			MaxRounds:   s.maxRounds,
		})
		lastEnc = enc

		summary, err := enc.Run(ctx)
		if err != nil {
			return fmt.Errorf("session %d: %w", s.id, err)
		}
		if summary.Outcome != encounter.OutcomeVictory {
			break
		}

		// Rest between fights the way a player would.
		player.RefillPools()

		// Outgrowing the first bracket triggers the chapter transition and
		// its catch-up clamp.
		if player.Progression().Chapter() == 1 && player.Progression().TrueLevel() >= 20 {
			if _, err := s.prog.EnterChapter(player, 2); err != nil {
				return fmt.Errorf("session %d: %w", s.id, err)
			}
		}
	}

	snap := player.Progression().Snapshot()
	slog.Info("session finished",
		"session", s.id,
		"archetype", s.archetype.String(),
		"trueLevel", snap.TrueLevel,
		"effectiveLevel", snap.EffectiveLevel,
		"skillLevel", snap.SkillLevel,
		"totalXP", snap.TotalXP,
		"classPoints", snap.TotalClassPoints,
		"alive", !player.IsDead())

	if s.charRepo != nil {
		if err := s.charRepo.Save(ctx, player); err != nil {
			return fmt.Errorf("session %d: %w", s.id, err)
		}
		if err := s.snapStore.Save(ctx, player.ID(), db.CaptureRuntime(player, lastEnc.Effects())); err != nil {
			return fmt.Errorf("session %d: %w", s.id, err)
		}
		slog.Info("session persisted", "session", s.id)
	}
	return nil
}
