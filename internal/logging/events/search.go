package events

import "github.com/atomicstack/pageview/internal/logging"

type SearchTracer struct{}

var Search = SearchTracer{}

func (SearchTracer) Apply(query string, candidates, matched, total int) {
	logging.Trace("search.apply", map[string]interface{}{
		"query":      query,
		"candidates": candidates,
		"matched":    matched,
		"total":      total,
	})
}

func (SearchTracer) Debounce(query string, seq uint64) {
	logging.Trace("search.debounce", map[string]interface{}{"query": query, "seq": seq})
}

func (SearchTracer) Suggest(query string, titles []string) {
	logging.Trace("search.suggest", map[string]interface{}{"query": query, "titles": titles})
}

func (SearchTracer) Append(query string) {
	logging.Trace("search.append", map[string]interface{}{"query": query})
}

func (SearchTracer) Backspace(query string) {
	logging.Trace("search.backspace", map[string]interface{}{"query": query})
}
