package prompt

import (
	"fmt"
	"strings"
)

// FallbackNarrationPrompt is used when the embedded template is unavailable.
func FallbackNarrationPrompt(data NarrationData) string {
	var windows strings.Builder
	for _, w := range data.Windows {
		fmt.Fprintf(&windows, "- %s: %s (%s)\n", w.Activity, w.Time, w.Reason)
	}

	return fmt.Sprintf(`Rewrite this daily business briefing as one short, friendly paragraph.
Keep every time window exactly as written. Use plain business language.
Never use any of these words: %s
Stay under %d characters and reply with the paragraph only.

Top priority: %s
Windows:
%sBest for: %s
Avoid: %s
Opportunity: %s
Caution: %s`,
		data.ForbiddenWords, data.MaxRunes,
		data.TopPriority, windows.String(),
		data.BestFor, data.Avoid, data.Opportunity, data.Caution)
}
