package countdown

import (
	"errors"
	"fmt"

	"github.com/2beens/fitplanner/pkg"
)

const (
	ExpiredSpeechText = "Descanso finalizado!"
	ExpiredSpeechLang = "pt-BR"
)

var ErrAlertUnavailable = errors.New("alert unavailable")

type AlertKind string

const (
	AlertSound  AlertKind = "sound"
	AlertSpeech AlertKind = "speech"
	AlertSilent AlertKind = "silent"
)

// Alert tells the client how to announce the end of a rest interval.
type Alert struct {
	Kind  AlertKind `json:"kind"`
	Asset string    `json:"asset,omitempty"`
	Text  string    `json:"text,omitempty"`
	Lang  string    `json:"lang,omitempty"`
}

type Alerter interface {
	Alert() (Alert, error)
}

// SoundAlerter announces with the notification sound asset, if it exists
// on disk.
type SoundAlerter struct {
	AssetPath string
	AssetURL  string
}

func (s SoundAlerter) Alert() (Alert, error) {
	if s.AssetPath == "" {
		return Alert{}, fmt.Errorf("sound: %w", ErrAlertUnavailable)
	}
	exists, err := pkg.PathExists(s.AssetPath, false)
	if err != nil {
		return Alert{}, fmt.Errorf("sound asset %s: %w", s.AssetPath, err)
	}
	if !exists {
		return Alert{}, fmt.Errorf("sound asset %s: %w", s.AssetPath, ErrAlertUnavailable)
	}
	return Alert{Kind: AlertSound, Asset: s.AssetURL}, nil
}

type SpeechAlerter struct {
	Text string
	Lang string
}

func (s SpeechAlerter) Alert() (Alert, error) {
	if s.Text == "" {
		return Alert{}, fmt.Errorf("speech: %w", ErrAlertUnavailable)
	}
	return Alert{Kind: AlertSpeech, Text: s.Text, Lang: s.Lang}, nil
}

type chain []Alerter

// Chain tries each alerter in order and falls back to silence when all of
// them fail. It never returns an error.
func Chain(alerters ...Alerter) Alerter {
	return chain(alerters)
}

func (c chain) Alert() (Alert, error) {
	for _, a := range c {
		if a == nil {
			continue
		}
		if alert, err := a.Alert(); err == nil {
			return alert, nil
		}
	}
	return Alert{Kind: AlertSilent}, nil
}

// DefaultAlerter is the sound asset with the pt-BR spoken fallback.
func DefaultAlerter(soundPath, soundURL string) Alerter {
	return Chain(
		SoundAlerter{AssetPath: soundPath, AssetURL: soundURL},
		SpeechAlerter{Text: ExpiredSpeechText, Lang: ExpiredSpeechLang},
	)
}
