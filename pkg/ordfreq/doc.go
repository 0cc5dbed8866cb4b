// Package ordfreq reports the most frequent meaningful words of a document.
//
// Tokens that are single characters, purely numeric, or fuzzy matches for a
// blacklisted common word are dropped. The survivors are clustered online:
// each joins the most similar existing canonical word (ratio >= cutoff) or
// becomes one. Counts per canonical word are then ranked.
//
// Basic use:
//
//	bl, _, err := ordfreq.LoadBlacklist(ctx, cfg, false, logger)
//	eng, err := ordfreq.New(ordfreq.Options{Blacklist: bl})
//	res, err := eng.Analyze(ctx, text, 10)
//	for _, e := range res.Top {
//		fmt.Println(e.Key, e.Count)
//	}
package ordfreq
