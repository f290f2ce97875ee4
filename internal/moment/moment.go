// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package moment derives display fields from backend results: the "m:ss"
// start time, the confidence percentage, and the embedded player locator.
package moment

import (
	"fmt"
	"math"
	"math/big"
	"net/url"
	"strconv"

	"github.com/pdiddy/moment-search/pkg/types"
)

// DefaultEmbedHost is the video provider used when none is configured.
const DefaultEmbedHost = "www.youtube.com"

// FormatTime renders an offset in seconds as minutes and zero-padded
// seconds: 125 becomes "2:05". Minutes do not roll over into hours.
func FormatTime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	minutes := int(math.Floor(seconds / 60))
	remaining := int(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d", minutes, remaining)
}

// FormatConfidence renders a score in [0,1] as a percentage with one decimal.
// A percentage exactly halfway between two tenths rounds away from zero, so
// 0.0125 is "1.3%".
func FormatConfidence(score float64) string {
	pct := score * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return fmt.Sprintf("%.1f%%", pct)
	}

	// Work on the exact binary value; fmt would round ties to even.
	tenths := new(big.Float).SetPrec(256).SetFloat64(math.Abs(pct))
	tenths.Mul(tenths, big.NewFloat(10))
	tenths.Add(tenths, big.NewFloat(0.5))
	n, _ := tenths.Int(nil)

	digits := n.String()
	if len(digits) < 2 {
		digits = "0" + digits
	}
	sign := ""
	if pct < 0 {
		sign = "-"
	}
	return sign + digits[:len(digits)-1] + "." + digits[len(digits)-1:] + "%"
}

// EmbedURL returns the player locator for videoID starting at start seconds.
func EmbedURL(host, videoID string, start float64, autoplay bool) string {
	if host == "" {
		host = DefaultEmbedHost
	}
	flag := "0"
	if autoplay {
		flag = "1"
	}
	return fmt.Sprintf("https://%s/embed/%s?start=%s&autoplay=%s",
		host, url.PathEscape(videoID), strconv.FormatFloat(start, 'f', -1, 64), flag)
}

// Augment derives a Moment for each result, keeping response order. Only the
// first moment autoplays.
func Augment(results []types.Result, host string) []types.Moment {
	moments := make([]types.Moment, 0, len(results))
	for i, r := range results {
		autoplay := i == 0
		moments = append(moments, types.Moment{
			Result:      r,
			Rank:        i + 1,
			DisplayTime: FormatTime(r.StartSeconds),
			Confidence:  FormatConfidence(r.Score),
			EmbedURL:    EmbedURL(host, r.VideoID, r.StartSeconds, autoplay),
			Autoplay:    autoplay,
		})
	}
	return moments
}
