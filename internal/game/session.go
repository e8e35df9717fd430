package game

import (
	"fmt"
	"log"
	"math/rand"

	"heartdodge/internal/battle"
	"heartdodge/internal/config"
	"heartdodge/internal/enemy"
	"heartdodge/internal/monitoring"
	"heartdodge/internal/player"
	"heartdodge/internal/records"
)

const (
	messageTicks    = 180
	alertCheckEvery = 60
	projectileCap   = 400
)

// Items the heart carries into every encounter.
var startingItems = []player.Item{
	{Name: "Healing Candy", HealValue: 5},
	{Name: "Bandage", HealValue: 3},
	{Name: "Healing Pie", HealValue: 8},
}

// Message is a line of feedback shown under the arena.
type Message struct {
	Text  string
	Ticks int
}

// Session runs encounters back to back: each battle against the next roster
// enemy, with a summary screen in between.
type Session struct {
	cfg     *config.Config
	pending *config.Config
	roster  *enemy.RosterConfig
	rng     *rand.Rand
	monitor *monitoring.BattleMonitor
	records *records.Store

	battle    *battle.Battle
	encounter int
	message   Message

	summary  bool
	lastRank int
	last     records.Entry
}

// NewSession starts the first encounter.
func NewSession(cfg *config.Config, roster *enemy.RosterConfig, store *records.Store, rng *rand.Rand) *Session {
	s := &Session{
		cfg:     cfg,
		roster:  roster,
		rng:     rng,
		monitor: monitoring.NewBattleMonitor(projectileCap),
		records: store,
	}
	s.startEncounter()
	return s
}

func (s *Session) Battle() *battle.Battle             { return s.battle }
func (s *Session) Config() *config.Config             { return s.cfg }
func (s *Session) Monitor() *monitoring.BattleMonitor { return s.monitor }
func (s *Session) Message() Message                   { return s.message }
func (s *Session) InSummary() bool                    { return s.summary }
func (s *Session) LastEntry() (records.Entry, int)    { return s.last, s.lastRank }
func (s *Session) Records() []records.Entry           { return s.records.Entries() }

// QueueConfig stores a reloaded config. It takes effect with the next
// encounter so a running battle keeps consistent tuning.
func (s *Session) QueueConfig(cfg *config.Config) {
	s.pending = cfg
}

func (s *Session) startEncounter() {
	if s.pending != nil {
		s.cfg = s.pending
		s.pending = nil
		log.Printf("[Config] Applied reloaded configuration")
	}

	keys := s.roster.Keys()
	key := keys[s.encounter%len(keys)]
	s.encounter++

	def, err := s.roster.Get(key)
	if err != nil {
		// Keys come from the roster itself.
		panic(err)
	}
	e := enemy.New(key, def)

	heart := player.NewHeart(s.cfg, battle.ArenaRect(s.cfg))
	for _, it := range startingItems {
		heart.AddItem(it)
	}

	s.monitor.Reset()
	s.battle = battle.New(s.cfg, e, heart, s.rng)
	s.battle.SetMonitor(s.monitor)
	s.summary = false
	s.setMessage(fmt.Sprintf("%s appears!", e.Name))
	log.Printf("[Battle] Encounter %d: %s (boss=%v)", s.encounter, e.Name, e.Boss)
}

// Step advances one tick with the commands pressed this tick and the held
// movement direction.
func (s *Session) Step(cmds []battle.Command, dirX, dirY float64) {
	if s.message.Ticks > 0 {
		s.message.Ticks--
	}

	if s.summary {
		for _, c := range cmds {
			if c == battle.CmdConfirm {
				s.startEncounter()
				return
			}
		}
		return
	}

	for _, c := range cmds {
		res := s.battle.HandleCommand(c)
		if text := describe(res, s.battle); text != "" {
			s.setMessage(text)
		}
	}
	s.battle.Update(dirX, dirY)

	if s.battle.Stats().Ticks%alertCheckEvery == 0 {
		for _, a := range s.monitor.CheckAlerts() {
			log.Printf("[Monitor] %s: %s (%.1f > %.1f)", a.Type, a.Message, a.Value, a.Threshold)
		}
	}

	if s.battle.Finished() {
		s.recordResult()
	}
}

func (s *Session) recordResult() {
	stats := s.battle.Stats()
	e := s.battle.Enemy
	entry := records.Entry{
		Enemy:       e.Name,
		Boss:        e.Boss,
		Outcome:     s.battle.Outcome().String(),
		DamageTaken: stats.DamageTaken,
		Hits:        stats.Hits,
		Ticks:       stats.Ticks,
	}
	entry.Score = records.SurvivalScore(entry)

	rank, err := s.records.Add(entry)
	if err != nil {
		log.Printf("[Records] Warning: %v", err)
	}
	s.last = entry
	s.lastRank = rank
	s.summary = true
	log.Printf("[Battle] %s ended: %s, score %d, rank %d", e.Name, entry.Outcome, entry.Score, rank)
}

func (s *Session) setMessage(text string) {
	s.message = Message{Text: text, Ticks: messageTicks}
}

// describe turns a command result into player feedback.
func describe(r battle.Result, b *battle.Battle) string {
	name := b.Enemy.Name
	switch r.Kind {
	case battle.ResultFightDamage:
		return fmt.Sprintf("You hit %s for %d damage!", name, r.Damage)
	case battle.ResultEnemyKilled:
		return fmt.Sprintf("You hit %s for %d damage! %s is defeated!", name, r.Damage, name)
	case battle.ResultCheck:
		return r.Text
	case battle.ResultTalk:
		return fmt.Sprintf("You talk to %s. It seems less hostile.", name)
	case battle.ResultNoItems:
		return "You have no items."
	case battle.ResultItemUsed:
		return fmt.Sprintf("You used %s and recovered %d HP.", r.Item.Name, r.Healed)
	case battle.ResultSpare:
		return fmt.Sprintf("You spared %s.", name)
	case battle.ResultMercyFail:
		return fmt.Sprintf("%s doesn't want to stop fighting.", name)
	}
	return ""
}
