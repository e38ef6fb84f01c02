package service

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze-engine/config"
	"github.com/beka-birhanu/vinom-maze-engine/maze"
	"github.com/beka-birhanu/vinom-maze-engine/service/i"
	"github.com/google/uuid"
)

// Service-related errors.
var (
	ErrSessionNotFound = errors.New("no maze session for the given id")
	ErrNotMultiLayered = errors.New("maze session is not multi-layered")
)

// session pairs a maze with its single active behavior. The mutex
// serializes behavior updates: Update is not reentrant and must never run
// concurrently with another update on the same maze.
type session struct {
	maze     *maze.Maze
	behavior maze.Behavior
	seed     int64
	sync.Mutex
}

// MazeSessionManager keeps the live maze sessions in memory, keyed by ID.
// Behaviors mutate their grid in place on every Tick, so external callers
// only ever see session state through Snapshot, which copies it under the
// session lock.
type MazeSessionManager struct {
	sessions map[uuid.UUID]*session
	logger   *log.Logger
	sync.RWMutex
}

// Config holds configuration settings for creating a new MazeSessionManager.
type Config struct {
	Logger *log.Logger
}

// NewMazeSessionManager creates a new MazeSessionManager instance.
func NewMazeSessionManager(c *Config) (*MazeSessionManager, error) {
	return &MazeSessionManager{
		sessions: make(map[uuid.UUID]*session),
		logger:   c.Logger,
	}, nil
}

// CreateSession generates a maze from the configuration, wraps it with
// the behavior matching its type and registers the session. A zero seed
// is replaced with the current time so that explicit seeds stay
// reproducible.
func (m *MazeSessionManager) CreateSession(cfg maze.Config, seed int64) (uuid.UUID, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := maze.NewRand(seed)

	// Behavior knobs left zero fall back to the environment defaults.
	if cfg.VisibilityRadius <= 0 {
		cfg.VisibilityRadius = config.Envs.DefaultVisibilityRadius
	}
	if cfg.FadeDelay <= 0 {
		cfg.FadeDelay = time.Duration(config.Envs.DefaultFadeDelayMs) * time.Millisecond
	}
	if cfg.ChangeInterval <= 0 {
		cfg.ChangeInterval = time.Duration(config.Envs.DefaultChangeIntervalMs) * time.Millisecond
	}

	generated, err := maze.CreateMaze(cfg, rng)
	if err != nil {
		m.logger.Printf("%s[ERROR]%s creating maze for a new session: %s", config.LogErrorColor, config.LogColorReset, err)
		return uuid.Nil, err
	}

	behavior, err := maze.WrapMaze(generated, cfg, rng)
	if err != nil {
		m.logger.Printf("%s[ERROR]%s wrapping maze for a new session: %s", config.LogErrorColor, config.LogColorReset, err)
		return uuid.Nil, err
	}

	id := m.saveSession(&session{maze: generated, behavior: behavior, seed: seed})
	m.logger.Printf("%s[INFO]%s started maze session %s: type=%s %dx%d seed=%d", config.LogInfoColor, config.LogColorReset, id, cfg.Type, cfg.Width, cfg.Height, seed)
	return id, nil
}

// Snapshot returns a copy of the session's observable state. The copy is
// taken while holding the session lock so a concurrent tick can never
// tear the grid or the behavior fields mid-read.
func (m *MazeSessionManager) Snapshot(id uuid.UUID) (*i.Snapshot, error) {
	m.RLock()
	s, ok := m.sessions[id]
	m.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.Lock()
	defer s.Unlock()

	snapshot := &i.Snapshot{
		Maze: s.maze.Clone(),
		Type: maze.TypeLinear,
	}

	switch b := s.behavior.(type) {
	case *maze.ShadowBehavior:
		snapshot.Type = b.Type()
		snapshot.VisibilityRadius = b.VisibilityRadius()
	case *maze.MemoryBehavior:
		snapshot.Type = b.Type()
		snapshot.FadeDelay = b.FadeDelay()
	case *maze.MultiLayeredBehavior:
		snapshot.Type = b.Type()
		snapshot.CurrentLayer = b.CurrentLayer()
		snapshot.Transitions = append(snapshot.Transitions, b.Transitions()...)
	case *maze.TimeChangingBehavior:
		snapshot.Type = b.Type()
		snapshot.TimeUntilNextChange = b.TimeUntilNextChange()
	}

	return snapshot, nil
}

// Tick drives the session's behavior update exactly once. Linear sessions
// have no behavior and the tick is a no-op.
func (m *MazeSessionManager) Tick(id uuid.UUID, in maze.TickInput) error {
	m.RLock()
	s, ok := m.sessions[id]
	m.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	s.Lock()
	defer s.Unlock()
	if s.behavior != nil {
		s.behavior.Update(in)
	}
	return nil
}

// UseTransition attempts a layer switch at the given position and
// returns the resulting layer, read under the same lock as the switch.
func (m *MazeSessionManager) UseTransition(id uuid.UUID, pos maze.Position) (bool, int, error) {
	m.RLock()
	s, ok := m.sessions[id]
	m.RUnlock()
	if !ok {
		return false, 0, ErrSessionNotFound
	}

	layered, ok := s.behavior.(*maze.MultiLayeredBehavior)
	if !ok {
		return false, 0, ErrNotMultiLayered
	}

	s.Lock()
	defer s.Unlock()
	return layered.UseTransition(pos), layered.CurrentLayer(), nil
}

// EndSession discards the session.
func (m *MazeSessionManager) EndSession(id uuid.UUID) error {
	m.Lock()
	defer m.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	m.logger.Printf("%s[INFO]%s ended maze session %s", config.LogInfoColor, config.LogColorReset, id)
	return nil
}

// saveSession registers the session under a fresh ID.
func (m *MazeSessionManager) saveSession(s *session) uuid.UUID {
	m.Lock()
	defer m.Unlock()

	id := uuid.New()
	for {
		if _, ok := m.sessions[id]; !ok {
			break
		}
		id = uuid.New()
	}
	m.sessions[id] = s
	return id
}
