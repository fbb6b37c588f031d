// Package cleanup implements the OCR text-repair pipeline: running-header
// removal, linebreak rejoining, long-s normalization, and dictionary-driven
// token correction, with full provenance for every change. The pipeline is
// pure and deterministic: it performs no I/O and never mutates its inputs,
// so independent works can be cleaned in parallel without locking.
package cleanup

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/corpustools/ocrclean/models"
	"github.com/corpustools/ocrclean/pkg/rules"
	"github.com/corpustools/ocrclean/pkg/tokenizer"
)

// CleanText runs the single-page pipeline over a text: header strip,
// linebreak rejoin, long-s normalization, tokenization, dictionary
// correction, f/ſ-hack correction, detokenization. The returned record has
// no metadata attached; CleanPage adds it.
//
// The f/ſ-hack pass runs strictly after the dictionary pass and sees the
// already-corrected token stream, so on overlapping keys the dictionary
// wins and the heuristic table only gets a second chance at tokens the
// dictionary missed.
func CleanText(text string, headers map[string]struct{}, reg *rules.Registry) models.CleanedPage {
	var (
		headerLog    CorrectionLog
		linebreakLog CorrectionLog
		longSLog     CorrectionLog
		ocrLog       CorrectionLog
		fsHackLog    CorrectionLog
	)

	if len(headers) > 0 {
		text = stripHeaderLines(text, headers, &headerLog)
	}

	text, _ = RejoinLinebreaks(text, &linebreakLog)
	text, _ = ReplaceLongS(text, &longSLog)

	tokens := tokenizer.Tokenize(text)

	corrections := reg.Corrections()
	for i, tok := range tokens {
		if repl, ok := corrections[tok]; ok {
			ocrLog.Append(tok, repl)
			tokens[i] = repl
		}
	}

	fsHack := reg.FSHack()
	for i, tok := range tokens {
		if repl, ok := fsHack[tok]; ok {
			fsHackLog.Append(tok, repl)
			tokens[i] = repl
		}
	}

	return models.CleanedPage{
		Text:       tokenizer.Detokenize(tokens),
		TextOrig:   text,
		Tokens:     derivedTokens(tokens),
		Headers:    headerLog.Pairs(),
		Linebreaks: linebreakLog.Pairs(),
		LongS:      longSLog.Pairs(),
		OCR:        ocrLog.Pairs(),
		FSHack:     fsHackLog.Pairs(),
	}
}

// CleanPage cleans one page record. Every field of the input other than the
// text is passed through into the output's metadata, page id included.
func CleanPage(page models.Page, headers map[string]struct{}, reg *rules.Registry) models.CleanedPage {
	cleaned := CleanText(page.Text, headers, reg)
	meta := make(map[string]any, len(page.Meta)+1)
	for k, v := range page.Meta {
		meta[k] = v
	}
	if page.ID != "" {
		meta["page_id"] = page.ID
	}
	cleaned.Meta = meta
	return cleaned
}

// stripHeaderLines drops every line whose trimmed form is in the header set
// and logs each dropped line as (line, "").
func stripHeaderLines(text string, headers map[string]struct{}, log *CorrectionLog) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if _, ok := headers[strings.TrimSpace(line)]; ok {
			log.Append(line, "")
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// derivedTokens lowercases, trims, and filters the corrected token stream
// down to tokens starting with a letter. This is the analytic token list fed
// to downstream word-frequency logic, not the raw tokenizer output.
func derivedTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		trimmed := strings.TrimSpace(tok)
		if trimmed == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(trimmed)
		if !unicode.IsLetter(r) {
			continue
		}
		out = append(out, strings.ToLower(trimmed))
	}
	return out
}
