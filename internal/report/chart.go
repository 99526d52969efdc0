package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dmitrijs2005/wellnest/internal/models"
)

// barWidth is the bar length, in characters, of a maximal (5.0) average.
const barWidth = 20

// RenderBars writes one line per bucket: a short day label, a bar
// proportional to the day's average mood over the 0..5 scale, and the
// numeric average. Days without entries render a placeholder instead of an
// empty zero-height bar.
func RenderBars(w io.Writer, days []DayBucket) {
	for _, d := range days {
		label := d.Date
		if len(label) > len("2006-") {
			label = label[len("2006-"):]
		}

		avg, ok := AverageOf(d.Moods)
		if !ok {
			fmt.Fprintf(w, "%s %-*s    —\n", label, barWidth, "")
			continue
		}

		n := int(math.Round(avg / models.MoodMax * barWidth))
		fmt.Fprintf(w, "%s %-*s %.2f\n", label, barWidth, strings.Repeat("#", n), avg)
	}
}
