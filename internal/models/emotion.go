// Package models defines the domain values of the mood journal, the flat
// transfer records the store persists, and the mapping between the two.
package models

import (
	"errors"
	"fmt"
)

// Emotion is the fixed set of mood tags a journal entry can carry. It is
// persisted as its raw string value.
type Emotion string

const (
	EmotionHappy   Emotion = "happy"
	EmotionCalm    Emotion = "calm"
	EmotionExcited Emotion = "excited"
	EmotionAnxious Emotion = "anxious"
	EmotionSad     Emotion = "sad"
	EmotionAngry   Emotion = "angry"
	EmotionTired   Emotion = "tired"
)

var ErrUnknownEmotion = errors.New("unknown emotion")

var emotions = []Emotion{
	EmotionHappy,
	EmotionCalm,
	EmotionExcited,
	EmotionAnxious,
	EmotionSad,
	EmotionAngry,
	EmotionTired,
}

// Emotions returns all known emotions in their canonical order.
func Emotions() []Emotion {
	out := make([]Emotion, len(emotions))
	copy(out, emotions)
	return out
}

// ParseEmotion converts a raw stored string into an Emotion. A value outside
// the known set returns ErrUnknownEmotion; callers decide whether to drop the
// record or fail the whole operation.
func ParseEmotion(raw string) (Emotion, error) {
	for _, e := range emotions {
		if string(e) == raw {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEmotion, raw)
}

func (e Emotion) String() string {
	return string(e)
}
