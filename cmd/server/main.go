// Command server exposes the Turkish morphological analyzer as a JSON
// REST API.
//
// Endpoints:
//
//	GET  /api/analyze?word=<word>
//	POST /api/analyze/text   body: {"text":"..."}
//	GET  /api/health
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/acikdil/turkmorph"
)

// ---- JSON response types ------------------------------------------------

type morphemeJSON struct {
	ID      string `json:"id"`
	Surface string `json:"surface"`
}

type analysisJSON struct {
	Lemma     string         `json:"lemma"`
	POS       string         `json:"pos"`
	Stem      string         `json:"stem"`
	Ending    string         `json:"ending,omitempty"`
	Morphemes []morphemeJSON `json:"morphemes,omitempty"`
}

type wordResponse struct {
	Input           string         `json:"input"`
	NormalizedInput string         `json:"normalized_input"`
	Correct         bool           `json:"correct"`
	Analyses        []analysisJSON `json:"analyses"`
}

type textResponse struct {
	Results []wordResponse `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toWordJSON(wa *turkmorph.WordAnalysis) wordResponse {
	out := wordResponse{
		Input:           wa.Input,
		NormalizedInput: wa.NormalizedInput,
		Correct:         wa.IsCorrect(),
		Analyses:        make([]analysisJSON, 0, len(wa.Analyses)),
	}
	for _, a := range wa.Analyses {
		aj := analysisJSON{
			Lemma:  a.Item.Lemma,
			POS:    a.POS.String(),
			Stem:   a.Stem,
			Ending: a.Ending(),
		}
		for _, m := range a.Morphemes {
			aj.Morphemes = append(aj.Morphemes, morphemeJSON{ID: m.Morpheme.ID, Surface: m.Surface})
		}
		out.Analyses = append(out.Analyses, aj)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleAnalyzeWord(m *turkmorph.Morphology) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}

		start := time.Now()
		wa := m.Analyze(word)
		log.Debug().
			Str("word", word).
			Int("analyses", len(wa.Analyses)).
			Dur("elapsed", time.Since(start)).
			Msg("analyze")

		status := http.StatusOK
		if !wa.IsCorrect() {
			status = http.StatusNotFound
		}
		writeJSON(w, status, toWordJSON(wa))
	}
}

func handleAnalyzeText(m *turkmorph.Morphology) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}

		results := m.AnalyzeSentence(body.Text)
		out := textResponse{Results: make([]wordResponse, 0, len(results))}
		for _, wa := range results {
			out.Results = append(out.Results, toWordJSON(wa))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	informal := flag.Bool("informal", false, "enable informal morphotactics")
	ignoreDiacritics := flag.Bool("ignore-diacritics", false, "diacritic-insensitive analysis")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	m, err := turkmorph.New(turkmorph.DefaultLexicon(), turkmorph.Config{
		Informal:                   *informal,
		IgnoreDiacriticsInAnalysis: *ignoreDiacritics,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build morphology")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze/text", handleAnalyzeText(m))
	mux.HandleFunc("/api/analyze", handleAnalyzeWord(m))
	mux.HandleFunc("/api/health", handleHealth)

	handler := cors.Default().Handler(mux)

	log.Info().Str("addr", *addr).Msg("listening")
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
