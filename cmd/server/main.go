// Command server exposes the Vietnamese phonemizer as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/convert?text=<text>[&sanitize=true]
//	POST /api/convert        body: {"text":"..."}
//	GET  /api/parse?syllable=<syllable>
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strconv"

	"github.com/rs/cors"

	vig2p "github.com/viet-nlp/vig2p"
)

// ---- JSON response types ------------------------------------------------

type convertResponse struct {
	Text string `json:"text"`
	IPA  string `json:"ipa"`
}

type parseResponse struct {
	Syllable string `json:"syllable"`
	Onset    string `json:"onset"`
	Nucleus  string `json:"nucleus"`
	Coda     string `json:"coda"`
	Tone     int    `json:"tone"`
	ToneName string `json:"tone_name"`
	IPA      string `json:"ipa"`
	Valid    bool   `json:"valid"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toneName(t vig2p.Tone) string {
	switch t {
	case vig2p.ToneNgang:
		return "ngang"
	case vig2p.ToneSac:
		return "sắc"
	case vig2p.ToneHuyen:
		return "huyền"
	case vig2p.ToneHoi:
		return "hỏi"
	case vig2p.ToneNga:
		return "ngã"
	case vig2p.ToneNang:
		return "nặng"
	default:
		return "unknown"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleConvert(conv *vig2p.Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var text string
		var sanitize bool

		switch r.Method {
		case http.MethodGet:
			text = r.URL.Query().Get("text")
			sanitize, _ = strconv.ParseBool(r.URL.Query().Get("sanitize"))
		case http.MethodPost:
			var body struct {
				Text     string `json:"text"`
				Sanitize bool   `json:"sanitize"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
				return
			}
			text = body.Text
			sanitize = body.Sanitize
		default:
			writeError(w, http.StatusMethodNotAllowed, "GET or POST required")
			return
		}

		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'text'")
			return
		}
		if sanitize {
			text = vig2p.Sanitize(text)
		}
		writeJSON(w, http.StatusOK, convertResponse{
			Text: text,
			IPA:  conv.Convert(text),
		})
	}
}

func handleParse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		tok := r.URL.Query().Get("syllable")
		if tok == "" {
			writeError(w, http.StatusBadRequest, "missing 'syllable' query parameter")
			return
		}
		syl := vig2p.ParseSyllable(vig2p.Normalize(tok))
		writeJSON(w, http.StatusOK, parseResponse{
			Syllable: tok,
			Onset:    syl.Onset,
			Nucleus:  syl.Nucleus,
			Coda:     syl.Coda,
			Tone:     int(syl.Tone),
			ToneName: toneName(syl.Tone),
			IPA:      syl.IPA(),
			Valid:    vig2p.IsSyllable(tok),
		})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	rulesPath := flag.String("rules", "", "optional replacement-rule file applied after table rendering")
	flag.Parse()

	var opts []vig2p.Option
	if *rulesPath != "" {
		rs, err := vig2p.LoadRulesFile(*rulesPath)
		if err != nil {
			log.Fatalf("failed to load rules: %v", err)
		}
		log.Printf("loaded %d rules from %s", rs.Len(), *rulesPath)
		opts = append(opts, vig2p.WithRules(rs))
	}
	conv := vig2p.New(opts...)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/convert", handleConvert(conv))
	mux.HandleFunc("/api/parse", handleParse())

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
