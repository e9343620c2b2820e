package engine

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Recording is everything needed to reproduce a game: the settings the
// session was built with and every command it received.
type Recording struct {
	Seed         uint64        `yaml:"seed"`
	Kicks        string        `yaml:"kicks"`
	DropInterval time.Duration `yaml:"drop_interval"`
	Commands     []Command     `yaml:"commands"`
	FinalScore   int           `yaml:"final_score"`
}

// Config returns the settings part of the recording.
func (r Recording) Config() Config {
	return Config{DropInterval: r.DropInterval, Kicks: r.Kicks, Seed: r.Seed}
}

// Recorder applies commands to a session and remembers them.
type Recorder struct {
	session *GameSession
	rec     Recording
}

// NewRecorder builds a session from cfg. A zero seed is replaced by one taken
// from the clock so the recording stays replayable. Extra options (such as
// listeners) are applied after the config's own.
func NewRecorder(cfg Config, extra ...Option) (*Recorder, error) {
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	return &Recorder{
		session: NewSession(append(opts, extra...)...),
		rec: Recording{
			Seed:         cfg.Seed,
			Kicks:        cfg.Kicks,
			DropInterval: cfg.DropInterval,
		},
	}, nil
}

// Apply records cmd and applies it to the session.
func (r *Recorder) Apply(cmd Command) {
	r.rec.Commands = append(r.rec.Commands, cmd)
	r.session.Apply(cmd)
}

func (r *Recorder) Session() *GameSession {
	return r.session
}

// Recording returns a copy of what has been recorded so far.
func (r *Recorder) Recording() Recording {
	rec := r.rec
	rec.Commands = append([]Command(nil), r.rec.Commands...)
	rec.FinalScore = r.session.Score()
	return rec
}

// Replay rebuilds the session described by rec by re-applying its commands.
func Replay(rec Recording) (*GameSession, error) {
	if rec.Seed == 0 {
		return nil, fmt.Errorf("%w: recording has no seed", ErrInvalidConfig)
	}
	opts, err := rec.Config().Options()
	if err != nil {
		return nil, err
	}

	s := NewSession(opts...)
	for _, cmd := range rec.Commands {
		s.Apply(cmd)
	}
	return s, nil
}

func WriteRecording(w io.Writer, rec Recording) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("write recording: %w", err)
	}
	return enc.Close()
}

func ReadRecording(r io.Reader) (Recording, error) {
	var rec Recording
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		return Recording{}, fmt.Errorf("read recording: %w", err)
	}
	return rec, nil
}
