// Package zipf builds rank-frequency tables from n-gram counts and fits
// log-log least-squares lines to them, the classic diagnostic for Zipfian
// structure in an emerging lexicon.
//
// 🚀 What is a rank-frequency table?
//
//	Sort the distinct grams of one group by count, descending; rank them
//	from 0; and carry ln(rank+1) and ln(count) alongside. A Zipfian
//	distribution — frequency inversely proportional to rank — shows up as
//	a straight line with negative slope in (LogRank, LogCount) space, so
//	the slope and R² of an ordinary least-squares fit summarize how
//	lexicon-like a group's word inventory has become.
//
// ⚙️ Usage:
//
//	tab, _ := ngram.Count(wordSeqs, 1)
//	entries, err := zipf.RankFrequency(tab)
//	fit, err := zipf.FitLogLog(entries)
//	// fit.Slope, fit.Intercept, fit.R2
//
// Rank-frequency runs both on raw character data (diagnostic) and on
// segmented-word data (the hypothesis test).
package zipf
