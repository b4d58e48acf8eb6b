package tokenizer

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

const (
	fallbackEncoding = "cl100k_base"
	charsPerToken    = 4
)

// Tokenizer estimates token counts for prompts and replies. Until Warm has loaded a BPE
// encoding, and whenever none can be loaded, it falls back to a characters-per-token heuristic.
type Tokenizer struct {
	model  string
	logger *slog.Logger

	once sync.Once
	enc  atomic.Pointer[tiktoken.Tiktoken]
}

// New returns a tokenizer for model. Call Warm to load the encoding.
func New(model string, logger *slog.Logger) *Tokenizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tokenizer{model: model, logger: logger.With("component", "llm.tokenizer")}
}

// Warm loads the encoding for the model, which may download BPE ranks on first use
// (TIKTOKEN_CACHE_DIR keeps them across restarts). Only the first call does any work.
func (t *Tokenizer) Warm() {
	t.once.Do(func() {
		start := time.Now()
		enc, err := tiktoken.EncodingForModel(t.model)
		if err != nil {
			enc, err = tiktoken.GetEncoding(fallbackEncoding)
		}
		if err != nil {
			t.logger.Warn("tokenizer encoding unavailable, using estimate", "model", t.model, "error", err)
			return
		}
		t.enc.Store(enc)
		t.logger.Info("tokenizer encoding loaded", "model", t.model, "elapsed", time.Since(start))
	})
}

// Ready reports whether counts come from the BPE encoding.
func (t *Tokenizer) Ready() bool {
	return t.enc.Load() != nil
}

// CountTokens returns the number of tokens text encodes to. It never blocks on loading.
func (t *Tokenizer) CountTokens(text string) int {
	if text == "" {
		return 0
	}
	if enc := t.enc.Load(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return Estimate(text)
}

// Estimate approximates tokens as one per four characters, rounded up.
func Estimate(text string) int {
	n := utf8.RuneCountInString(text)
	return (n + charsPerToken - 1) / charsPerToken
}
