package game

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/input"
)

// Session owns one match: both paddles, the ball, the score and the phase
type Session struct {
	ID uuid.UUID

	Player1 *Paddle
	Player2 *Paddle
	Ball    *Ball

	Score Score
	State State

	tick   uint64
	cfg    config.Config
	cues   CueSink
	logger *slog.Logger
}

// Option customizes a Session
type Option func(*Session)

// WithCues sets the sink for audible cues
func WithCues(c CueSink) Option {
	return func(s *Session) {
		if c != nil {
			s.cues = c
		}
	}
}

// WithLogger sets the structured logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLaunch overrides the launch policy resolved from config
func WithLaunch(p LaunchPolicy) Option {
	return func(s *Session) {
		if p != nil {
			s.Ball.launch = p
			s.resetBall()
		}
	}
}

// NewSession validates cfg and creates a session in StateStart
func NewSession(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	launch, err := NewLaunchPolicy(cfg.Launch, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("launch policy: %w", err)
	}

	x1, y1 := cfg.Player1Start()
	x2, y2 := cfg.Player2Start()
	bx, by := cfg.BallCenter()

	s := &Session{
		ID:      uuid.New(),
		Player1: NewPaddle(x1, y1, cfg.PaddleWidth, cfg.PaddleHeight, cfg.PaddleSpeed, cfg.FieldHeight),
		Player2: NewPaddle(x2, y2, cfg.PaddleWidth, cfg.PaddleHeight, cfg.PaddleSpeed, cfg.FieldHeight),
		Ball:    NewBall(bx, by, cfg.BallWidth, cfg.BallHeight, cfg.BallSpeed, cfg.FieldWidth, cfg.FieldHeight, launch),
		State:   StateStart,
		cfg:     cfg,
		cues:    NopCues{},
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger.Info("session started", "session", s.ID, "launch", cfg.Launch)
	return s, nil
}

// Update advances the session by dt seconds
//
// Order per frame:
//  1. restart, then confirm edge (read and cleared from in)
//  2. ball physics when playing
//  3. boundary scoring, in any state
//  4. paddle movement, in any state
func (s *Session) Update(dt float64, in input.Source) {
	if dt < 0 {
		dt = 0
	}
	s.tick++

	if input.Consume(in, input.ActionRestart) {
		s.Restart()
	}

	if input.Consume(in, input.ActionConfirm) {
		s.toggle()
	}

	if s.State == StatePlay {
		contact := s.Ball.Update(dt, s.Player1, s.Player2)
		if contact&ContactPaddle != 0 {
			s.cues.Cue(CuePaddle)
		}
		if contact&ContactWall != 0 {
			s.cues.Cue(CueWall)
		}
	}

	s.checkScore()

	movePaddle(s.Player1, in, input.ActionPlayer1Up, input.ActionPlayer1Down, dt)
	movePaddle(s.Player2, in, input.ActionPlayer2Up, input.ActionPlayer2Down, dt)

	s.assertInvariants()
}

// Restart begins a new session: scores cleared, entities back to their start
func (s *Session) Restart() {
	prev := s.ID
	s.ID = uuid.New()
	s.Score = Score{}
	s.State = StateStart

	_, y1 := s.cfg.Player1Start()
	_, y2 := s.cfg.Player2Start()
	s.Player1.Reset(y1)
	s.Player2.Reset(y2)
	s.resetBall()

	s.logger.Info("session restarted", "session", s.ID, "previous", prev)
}

// Frame snapshots the session for rendering
func (s *Session) Frame() Frame {
	return Frame{
		SessionID:   s.ID,
		Tick:        s.tick,
		FieldWidth:  s.cfg.FieldWidth,
		FieldHeight: s.cfg.FieldHeight,
		Player1:     s.Player1.Rect(),
		Player2:     s.Player2.Rect(),
		Ball:        s.Ball.Rect(),
		Score:       s.Score,
		State:       s.State,
	}
}

// Config returns the configuration the session was built with
func (s *Session) Config() config.Config {
	return s.cfg
}

func (s *Session) toggle() {
	if s.State == StateStart {
		s.State = StatePlay
		s.logger.Debug("serve", "session", s.ID, "dx", s.Ball.DX, "dy", s.Ball.DY)
		return
	}
	s.State = StateStart
	s.resetBall()
}

// checkScore credits at most one point: the two crossings exclude each other
func (s *Session) checkScore() {
	var scorer Side
	switch {
	case s.Ball.X < 0:
		scorer = SidePlayer2
	case s.Ball.X > s.cfg.FieldWidth-s.Ball.Width:
		scorer = SidePlayer1
	default:
		return
	}

	s.Score = s.Score.Add(scorer)
	s.resetBall()
	s.State = StateStart
	s.cues.Cue(CueScore)

	s.logger.Info("point",
		"session", s.ID,
		"scorer", scorer.String(),
		"player1", s.Score.Player1,
		"player2", s.Score.Player2,
	)
}

func (s *Session) resetBall() {
	s.Ball.Reset(s.Ball.Center())
}

// Both directions apply in turn, so holding both cancels out except at a wall
func movePaddle(p *Paddle, in input.Source, up, down input.Action, dt float64) {
	upHeld, downHeld := in.Held(up), in.Held(down)
	if upHeld {
		p.MoveUp(dt)
	}
	if downHeld {
		p.MoveDown(dt)
	}
	if upHeld == downHeld {
		p.Stop()
	}
}
