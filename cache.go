package turkmorph

import "errors"

// AnalysisCache maps a normalized input to a previously computed word
// analysis. Implementations must compute each key at most once under
// concurrent requests for the same key while staying non-blocking for
// distinct keys. Capacity and eviction policy are left to the
// implementation.
//
// No implementation ships yet; enabling the cache path fails fast with
// ErrCacheUnsupported.
type AnalysisCache interface {
	Analyze(word string, compute func(string) *WordAnalysis) *WordAnalysis
}

// ErrCacheUnsupported is returned by New when Config.UseCache is set.
var ErrCacheUnsupported = errors.New("turkmorph: dynamic analysis cache is not implemented")
