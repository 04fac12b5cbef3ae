package encounter

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/game/combat"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/game/effect"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/game/progression"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/model"
)

const (
	// DefaultMaxRounds caps an encounter before it is called a draw.
	DefaultMaxRounds = 50

	// energyRegenPct of maximum energy returns to every living participant
	// at the end of each round, so long fights never deadlock on empty
	// pools.
	energyRegenPct = 5
)

// Outcome is how an encounter ended.
type Outcome int8

const (
	OutcomeVictory Outcome = iota
	OutcomeDefeat
	OutcomeDraw
)

var outcomeNames = [...]string{
	OutcomeVictory: "victory",
	OutcomeDefeat:  "defeat",
	OutcomeDraw:    "draw",
}

func (o Outcome) String() string {
	if int(o) < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Summary is the structured result of one finished encounter.
type Summary struct {
	ID      int32
	Outcome Outcome
	Rounds  int32

	Kills       int32
	XPAwarded   int64
	ClassPoints int32

	DamageDealt int64 // by the player side
	DamageTaken int64 // by the player side, ticks included
}

// Config assembles one encounter. Participants must be owned exclusively by
// this encounter: the loop runs them from a single goroutine and shares
// nothing but the read-only catalogs with other encounters.
type Config struct {
	ID       int32
	Players  []*model.Player
	Monsters []*model.Creature

	Progression *progression.Engine

	// PlayerChooser and MonsterChooser pick actions for their side.
	// Nil defaults to FirstUsable.
	PlayerChooser  Chooser
	MonsterChooser Chooser

	// MaxRounds caps the fight; 0 means DefaultMaxRounds.
	MaxRounds int32
}

// Encounter sequences turn-based combat rounds for one isolated set of
// participants: player actions, monster actions, then end-of-round effect
// ticks, with kill awards routed to the progression engine as deaths occur.
type Encounter struct {
	id       int32
	players  []*model.Player
	side     []*model.Creature // player side as creatures, same order
	monsters []*model.Creature

	resolver *combat.Resolver
	effects  *effect.Manager
	prog     *progression.Engine

	playerChooser  Chooser
	monsterChooser Chooser
	maxRounds      int32

	byID        map[uint32]*model.Creature
	deadHandled map[uint32]bool

	round   int32
	summary Summary
}

// New builds an encounter from its config. The effect engine and resolver
// are created fresh per encounter; catalogs are the only shared state.
func New(cfg Config) *Encounter {
	effects := effect.NewManager()

	e := &Encounter{
		id:             cfg.ID,
		players:        cfg.Players,
		monsters:       cfg.Monsters,
		resolver:       combat.NewResolver(effects),
		effects:        effects,
		prog:           cfg.Progression,
		playerChooser:  cfg.PlayerChooser,
		monsterChooser: cfg.MonsterChooser,
		maxRounds:      cfg.MaxRounds,
		byID:           make(map[uint32]*model.Creature),
		deadHandled:    make(map[uint32]bool),
	}
	if e.playerChooser == nil {
		e.playerChooser = FirstUsable{}
	}
	if e.monsterChooser == nil {
		e.monsterChooser = FirstUsable{}
	}
	if e.maxRounds <= 0 {
		e.maxRounds = DefaultMaxRounds
	}

	for _, p := range cfg.Players {
		e.side = append(e.side, p.Creature)
		e.byID[p.ID()] = p.Creature
	}
	for _, m := range cfg.Monsters {
		e.byID[m.ID()] = m
	}
	e.summary.ID = cfg.ID

	return e
}

// Effects exposes the encounter's status effect engine, for snapshotting
// survivors at the persistence boundary.
func (e *Encounter) Effects() *effect.Manager {
	return e.effects
}

// Run drives the encounter to an outcome. Every action resolves fully
// before the next is considered; ctx is only consulted between actions, so
// an interrupted encounter never leaves a half-applied action behind.
func (e *Encounter) Run(ctx context.Context) (Summary, error) {
	e.enterCombat()
	defer e.leaveCombat()

	slog.Info("encounter started",
		"encounter", e.id,
		"players", len(e.players),
		"monsters", len(e.monsters))

	for e.round = 1; e.round <= e.maxRounds; e.round++ {
		if err := e.runRound(ctx); err != nil {
			e.summary.Rounds = e.round
			return e.summary, err
		}

		if over, outcome := e.resolveOutcome(); over {
			e.summary.Rounds = e.round
			e.summary.Outcome = outcome
			e.logFinish()
			return e.summary, nil
		}
	}

	e.summary.Rounds = e.maxRounds
	e.summary.Outcome = OutcomeDraw
	e.logFinish()
	return e.summary, nil
}

// runRound sequences one full round: player side acts, monster side acts,
// active effects tick, pools regenerate.
func (e *Encounter) runRound(ctx context.Context) error {
	for _, c := range e.side {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.takeTurn(c, e.playerChooser, e.side, e.monsters)
	}
	for _, m := range e.monsters {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.takeTurn(m, e.monsterChooser, e.monsters, e.side)
	}

	e.tickEffects()
	e.regenerate()
	return nil
}

// takeTurn lets one creature act, if it can.
func (e *Encounter) takeTurn(actor *model.Creature, chooser Chooser, allies, enemies []*model.Creature) {
	if actor.IsDead() {
		return
	}
	if actor.IsDisabled() {
		slog.Debug("turn lost to control effect",
			"encounter", e.id,
			"actor", actor.Name(),
			"round", e.round)
		return
	}

	skillID, target, ok := chooser.Choose(actor, allies, enemies)
	if !ok {
		return
	}

	out, err := e.resolver.Resolve(combat.Action{
		Actor:   actor,
		Target:  target,
		SkillID: skillID,
		Mods:    e.actionMods(actor, target, skillID),
	})
	if err != nil {
		// Validation failures mutate nothing; the actor simply loses the
		// turn. Catalog-level surprises are worth a warning.
		if errors.Is(err, combat.ErrInvalidAction) || errors.Is(err, combat.ErrInsufficientResource) {
			slog.Debug("action rejected",
				"encounter", e.id,
				"actor", actor.Name(),
				"skill", skillID,
				"error", err)
		} else {
			slog.Warn("action failed",
				"encounter", e.id,
				"actor", actor.Name(),
				"skill", skillID,
				"error", err)
		}
		return
	}

	if p, isPlayer := actor.Data.(*model.Player); isPlayer {
		e.prog.RecordSkillUse(p)
		if out.Application == data.ApplyDamage {
			e.summary.DamageDealt += int64(out.Amount)
		}
	} else if out.Application == data.ApplyDamage {
		if _, hitPlayer := target.Data.(*model.Player); hitPlayer {
			e.summary.DamageTaken += int64(out.Amount)
		}
	}

	if target.IsDead() {
		e.handleDeath(actor, target)
	}
}

// actionMods assembles the external modifier list for one action: the
// actor's outgoing damage penalties and the target's flat incoming
// reduction, both read from active status effects. Only offensive actions
// carry them.
func (e *Encounter) actionMods(actor, target *model.Creature, skillID int32) []combat.Modifier {
	tpl := data.GetSkillTemplate(skillID)
	if tpl == nil || !tpl.IsOffensive() {
		return nil
	}

	var mods []combat.Modifier
	if flat := e.effects.IncomingFlatReduction(target.ID()); flat > 0 {
		mods = append(mods, combat.Modifier{Kind: combat.ModFlat, Value: -flat})
	}
	if pct := e.effects.OutgoingPenaltyPct(actor.ID()); pct > 0 {
		mods = append(mods, combat.Modifier{Kind: combat.ModPercent, Value: -pct})
	}
	return mods
}

// tickEffects advances every active effect one round and settles any deaths
// the ticks caused. A tick kill is credited to the source of the last
// damaging tick on the victim.
func (e *Encounter) tickEffects() {
	results := e.effects.TickRound()

	lastSource := make(map[uint32]uint32)
	for _, res := range results {
		def, err := data.GetEffectKindDef(res.Kind)
		if err != nil || res.Amount <= 0 {
			continue
		}
		switch def.Category {
		case data.CategoryDamageOverTime:
			lastSource[res.TargetID] = res.SourceID
			if _, isPlayer := e.byID[res.TargetID].Data.(*model.Player); isPlayer {
				e.summary.DamageTaken += int64(res.Amount)
			}
		}
	}

	for targetID, sourceID := range lastSource {
		target := e.byID[targetID]
		if target == nil || !target.IsDead() {
			continue
		}
		e.handleDeath(e.byID[sourceID], target)
	}
}

// handleDeath settles one death exactly once: effects are dropped, a boss
// flips to its dead status, and a player killing an npc collects the kill
// award.
func (e *Encounter) handleDeath(killer, victim *model.Creature) {
	if victim == nil || e.deadHandled[victim.ID()] {
		return
	}
	e.deadHandled[victim.ID()] = true

	e.effects.ClearTarget(victim)
	if b, isBoss := victim.Data.(*model.Boss); isBoss {
		b.SetStatus(model.BossStatusDead)
	}

	slog.Debug("participant died",
		"encounter", e.id,
		"victim", victim.Name(),
		"round", e.round)

	if killer == nil {
		return
	}
	p, isPlayer := killer.Data.(*model.Player)
	if !isPlayer || victim.AsNpc() == nil {
		return
	}

	res := e.prog.RewardKill(p, victim)
	e.summary.Kills++
	e.summary.XPAwarded += res.XP
	e.summary.ClassPoints += res.ClassPoints
}

// regenerate returns a sliver of energy to every living participant.
func (e *Encounter) regenerate() {
	for _, c := range e.byID {
		if c.IsDead() {
			continue
		}
		regen := c.MaxEnergy() * energyRegenPct / 100
		if regen < 1 {
			regen = 1
		}
		c.RestoreEnergy(regen)
	}
}

// resolveOutcome reports whether one side is wiped out.
func (e *Encounter) resolveOutcome() (bool, Outcome) {
	if firstLiving(e.monsters) == nil {
		return true, OutcomeVictory
	}
	if firstLiving(e.side) == nil {
		return true, OutcomeDefeat
	}
	return false, OutcomeDraw
}

// enterCombat marks every participant and moves bosses into their fighting
// status.
func (e *Encounter) enterCombat() {
	for _, c := range e.byID {
		c.SetInCombat(true)
		if b, isBoss := c.Data.(*model.Boss); isBoss && b.Status() == model.BossStatusAlive {
			b.SetStatus(model.BossStatusFighting)
		}
	}
}

// leaveCombat clears combat marks and returns surviving bosses to their
// idle status.
func (e *Encounter) leaveCombat() {
	for _, c := range e.byID {
		c.SetInCombat(false)
		if b, isBoss := c.Data.(*model.Boss); isBoss && b.Status() == model.BossStatusFighting {
			b.SetStatus(model.BossStatusAlive)
		}
	}
}

func (e *Encounter) logFinish() {
	slog.Info("encounter finished",
		"encounter", e.id,
		"outcome", e.summary.Outcome.String(),
		"rounds", e.summary.Rounds,
		"kills", e.summary.Kills,
		"xp", e.summary.XPAwarded,
		"damageDealt", e.summary.DamageDealt,
		"damageTaken", e.summary.DamageTaken)
}
