package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// BatchLine is written for every input of a batch run. Error is set
// instead of Result when the pipeline failed for that input.
type BatchLine struct {
	Input  string  `json:"input"`
	Result *Result `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// ProcessBatch runs every text through the pipeline and writes one JSON
// line per text to w. A failing text does not stop the batch; the number
// of failures is returned.
func (p *Processor) ProcessBatch(ctx context.Context, texts []string, w io.Writer) (int, error) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	failed := 0
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return failed, err
		}

		line := BatchLine{Input: text}
		result, err := p.EasyKorean(ctx, text)
		if err != nil {
			failed++
			line.Error = err.Error()
			p.log.WarnContext(ctx, "batch entry failed",
				slog.Int("line", i+1),
				slog.String("error", err.Error()),
			)
		} else {
			line.Result = result
		}

		if err := enc.Encode(line); err != nil {
			return failed, fmt.Errorf("failed to write batch result: %w", err)
		}
	}

	return failed, nil
}
