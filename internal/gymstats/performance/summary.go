package performance

type Summary struct {
	TotalSessions  int     `json:"total_sessions"`
	CompletionRate float64 `json:"completion_rate"`
	SkipRate       float64 `json:"skip_rate"`
	SubstituteRate float64 `json:"substitute_rate"`
	PRRate         float64 `json:"pr_rate"`
	AvgRPE         float64 `json:"avg_rpe"`
}

// Summarize counts every flag on its own, a log both completed and substituted adds to both rates.
func Summarize(logs []Log) Summary {
	summary := Summary{TotalSessions: len(logs)}
	if len(logs) == 0 {
		return summary
	}

	var (
		completed, skipped, substituted, prs int
		rpeSum                               float64
		rpeCount                             int
	)
	for _, l := range logs {
		if l.Completed {
			completed++
		}
		if l.Skipped {
			skipped++
		}
		if l.Substituted {
			substituted++
		}
		if l.WasPR {
			prs++
		}
		if l.RPE != nil {
			rpeSum += *l.RPE
			rpeCount++
		}
	}

	total := float64(len(logs))
	summary.CompletionRate = float64(completed) / total
	summary.SkipRate = float64(skipped) / total
	summary.SubstituteRate = float64(substituted) / total
	summary.PRRate = float64(prs) / total
	if rpeCount > 0 {
		summary.AvgRPE = rpeSum / float64(rpeCount)
	}

	return summary
}
