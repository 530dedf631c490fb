// services/engine.go - Timer-driven host loop around the pure reducer
package services

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"cosmicclicker/game"
)

const (
	// TickInterval drives passive-income integration and event expiry.
	TickInterval = 100 * time.Millisecond
	// EventRollInterval is how often a rush event trigger is rolled.
	EventRollInterval = 15 * time.Second
	// OfflineThreshold is the minimum gap since the last save before a
	// one-shot offline catch-up grant is applied on load.
	OfflineThreshold = 5 * time.Second
)

// Engine owns one player's game state and is its only writer. External
// inputs and the two periodic tasks (fast tick, event roll) all feed one
// serialized dispatch queue, so reducer invocations never interleave.
// Persistence is fire-and-forget: a failed save is logged and superseded
// by the next one.
type Engine struct {
	mu    sync.RWMutex
	state game.State
	store Store
	scope string

	clock Clock
	rng   *rand.Rand

	actions chan game.Action
	saves   chan game.State
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once

	subMu       sync.Mutex
	subscribers map[int]chan game.State
	nextSubID   int
}

// NewEngine builds an engine for one save scope. It does not load or start
// timers; call Start.
func NewEngine(store Store, scope string, clock Clock, rng *rand.Rand) *Engine {
	return &Engine{
		state:       game.NewState(clock.Now()),
		store:       store,
		scope:       scope,
		clock:       clock,
		rng:         rng,
		actions:     make(chan game.Action, 64),
		saves:       make(chan game.State, 1),
		done:        make(chan struct{}),
		subscribers: make(map[int]chan game.State),
	}
}

// Start loads the persisted snapshot, applies offline catch-up, and spins
// up the dispatch loop and the persister.
func (e *Engine) Start() {
	saved, err := e.store.Load(e.scope)
	if err != nil {
		log.Printf("Load failed for scope %s, starting fresh: %v", e.scope, err)
	}
	if saved != nil {
		elapsed := time.Duration(e.clock.Now().UnixMilli()-saved.LastSaved) * time.Millisecond
		e.apply(game.LoadGame{Saved: *saved})

		// One-shot offline compensation. Rush events that would have
		// fired or expired during the gap are deliberately ignored.
		if elapsed > OfflineThreshold {
			income := e.Snapshot().PassiveIncome
			if income > 0 {
				e.apply(game.AddStardust{Amount: income * elapsed.Seconds()})
			}
		}
	}

	e.wg.Add(2)
	go e.loop()
	go e.persistLoop()
}

// Stop tears down the timers and flushes a final save.
func (e *Engine) Stop() {
	e.once.Do(func() {
		close(e.done)
		e.wg.Wait()
		e.mu.RLock()
		snap := e.state.Clone()
		store, scope := e.store, e.scope
		e.mu.RUnlock()
		snap.LastSaved = e.clock.Now().UnixMilli()
		if err := store.Save(scope, &snap); err != nil {
			log.Printf("Final save failed for scope %s: %v", scope, err)
		}
	})
}

// Dispatch queues an action for the serialized reducer loop.
func (e *Engine) Dispatch(a game.Action) {
	select {
	case e.actions <- a:
	case <-e.done:
	}
}

// Do applies an action immediately and returns the resulting snapshot.
// Reductions stay serialized with the timer-driven ones; this just skips
// the queue so request handlers can respond with the fresh state.
func (e *Engine) Do(a game.Action) game.State {
	return e.apply(a)
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() game.State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Clone()
}

// SwapStore switches the persistence target (e.g. cloud to local on
// logout) without losing the in-memory state, and persists to the new
// target immediately.
func (e *Engine) SwapStore(store Store, scope string) {
	e.mu.Lock()
	e.store = store
	e.scope = scope
	snap := e.state.Clone()
	e.mu.Unlock()
	e.queueSave(snap)
}

// Subscribe registers a snapshot channel fed on every state change. Slow
// consumers skip updates rather than block the loop.
func (e *Engine) Subscribe() (<-chan game.State, func()) {
	e.subMu.Lock()
	defer e.subMu.Unlock()
	id := e.nextSubID
	e.nextSubID++
	ch := make(chan game.State, 8)
	e.subscribers[id] = ch
	return ch, func() {
		e.subMu.Lock()
		defer e.subMu.Unlock()
		if sub, ok := e.subscribers[id]; ok {
			delete(e.subscribers, id)
			close(sub)
		}
	}
}

func (e *Engine) loop() {
	defer e.wg.Done()
	tick := time.NewTicker(TickInterval)
	defer tick.Stop()
	roll := time.NewTicker(EventRollInterval)
	defer roll.Stop()

	for {
		select {
		case <-e.done:
			return
		case a := <-e.actions:
			e.apply(a)
		case <-tick.C:
			e.apply(game.Tick{})
			e.expireEvents()
		case <-roll.C:
			e.rollEvent()
		}
	}
}

// apply runs one reduction, notifies subscribers and queues a save.
func (e *Engine) apply(a game.Action) game.State {
	now := e.clock.Now()
	e.mu.Lock()
	e.state = game.Reduce(e.state, a, now)
	snap := e.state.Clone()
	e.mu.Unlock()

	e.notify(snap)
	e.queueSave(snap)
	return snap
}

// expireEvents dispatches EndEvent for any lapsed instance. The reducer's
// own tick pruning uses the same predicate, so this is a redundant safety
// net for instances added between ticks.
func (e *Engine) expireEvents() {
	nowMillis := e.clock.Now().UnixMilli()
	for _, instance := range e.Snapshot().ActiveEvents {
		if instance.Expired(nowMillis) {
			e.apply(game.EndEvent{EventID: instance.ID, StartedAt: instance.StartedAt})
		}
	}
}

// rollEvent draws one Bernoulli trial against the current event chance
// and, on success, starts a weighted random rush event. At most one event
// runs at a time.
func (e *Engine) rollEvent() {
	snap := e.Snapshot()
	if len(snap.ActiveEvents) > 0 {
		return
	}
	if snap.EventChance <= 0 || e.rng.Float64() >= snap.EventChance {
		return
	}
	def := game.PickRushEvent(e.rng)
	e.apply(game.StartEvent{Event: game.ActiveEvent{
		ID:        def.ID,
		Name:      def.Name,
		Duration:  def.Duration,
		StartedAt: e.clock.Now().UnixMilli(),
	}})
}

// queueSave hands the latest snapshot to the persister, replacing any
// queued older one. Saving never blocks the dispatch loop.
func (e *Engine) queueSave(snap game.State) {
	for {
		select {
		case e.saves <- snap:
			return
		default:
			select {
			case <-e.saves:
			default:
			}
		}
	}
}

func (e *Engine) persistLoop() {
	defer e.wg.Done()
	for {
		select {
		case <-e.done:
			return
		case snap := <-e.saves:
			e.mu.RLock()
			store, scope := e.store, e.scope
			e.mu.RUnlock()
			snap.LastSaved = e.clock.Now().UnixMilli()
			if err := store.Save(scope, &snap); err != nil {
				log.Printf("Save failed for scope %s: %v", scope, err)
			}
		}
	}
}

func (e *Engine) notify(snap game.State) {
	e.subMu.Lock()
	defer e.subMu.Unlock()
	for _, sub := range e.subscribers {
		select {
		case sub <- snap:
		default:
		}
	}
}
