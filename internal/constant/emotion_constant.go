package constant

import "fmt"

// Emotion levels run 1 (calm) through 5 (very angry).
const (
	EmotionLevelMin = 1
	EmotionLevelMax = 5
)

// emotionLabels are the plain labels used inside prompts.
var emotionLabels = map[int]string{
	1: "평온",
	2: "다소 불만",
	3: "불만",
	4: "화남",
	5: "매우 화남",
}

// emotionDisplayLabels are the labels shown in the UI and stored in the
// saved-case metadata.
var emotionDisplayLabels = map[int]string{
	1: "😊 평온",
	2: "🙂 다소 불만",
	3: "😐 불만",
	4: "😠 화남",
	5: "😡 매우 화남",
}

// EmotionLabel returns the plain label for a level, defaulting to 불만 for
// out-of-range values.
func EmotionLabel(level int) string {
	if l, ok := emotionLabels[level]; ok {
		return l
	}
	return "불만"
}

// EmotionDisplayLabel returns the UI label for a level.
func EmotionDisplayLabel(level int) string {
	if l, ok := emotionDisplayLabels[level]; ok {
		return l
	}
	return emotionDisplayLabels[3]
}

// EmotionDesc renders the prompt field, e.g. "4 (화남)".
func EmotionDesc(level int) string {
	return fmt.Sprintf("%d (%s)", level, EmotionLabel(level))
}

// EmotionLevelFromDisplayLabel recovers the level from a stored UI label,
// returning 0 when the label is unknown (legacy files).
func EmotionLevelFromDisplayLabel(label string) int {
	for level, l := range emotionDisplayLabels {
		if l == label {
			return level
		}
	}
	return 0
}
