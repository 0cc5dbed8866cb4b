// Command ordfreq prints the most frequent meaningful words of a document.
//
//	ordfreq [flags] <document>
//
// Words are lowercased, common words from the blacklist are dropped, and
// spelling variants are counted together under the first spelling seen.
// The blacklist is cached between runs; --rebuild-cache refreshes it after
// editing its sources.
package main
