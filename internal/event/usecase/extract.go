package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"eventsnap/internal/event"
	"eventsnap/internal/model"
)

// jsonObjectPattern grabs the outermost JSON object from the model output,
// tolerating prose before and after it.
var jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

const fallbackDescriptionLimit = 500

func (uc *implUseCase) Extract(ctx context.Context, in event.ExtractInput) (model.ExtractedEvent, error) {
	if !strings.HasPrefix(in.MIMEType, "image/") {
		return model.ExtractedEvent{}, event.ErrNotAnImage
	}

	key := cacheKey(in.Data)
	if record, ok := uc.cache.Get(key); ok {
		uc.l.Debugf(ctx, "event.usecase.Extract: cache hit for %s", key[:12])
		return uc.stamp(ctx, record), nil
	}

	raw, err := uc.llm.ExtractFromImage(ctx, in.MIMEType, base64.StdEncoding.EncodeToString(in.Data))
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Extract: %v", err)
		return model.ExtractedEvent{}, event.ErrExtractionFailed
	}

	record := parseExtraction(raw)
	uc.cache.Add(key, record)

	return uc.stamp(ctx, record), nil
}

// stamp assigns identity to a record and saves it to history. Persistence is
// best effort; a storage failure never loses the extraction itself.
func (uc *implUseCase) stamp(ctx context.Context, record model.EventRecord) model.ExtractedEvent {
	ev := model.ExtractedEvent{
		ID:        uuid.New(),
		Event:     record,
		CreatedAt: uc.clock(),
	}

	if err := uc.repo.Save(ctx, ev); err != nil {
		uc.l.Warnf(ctx, "event.usecase.Extract: save history: %v", err)
	}

	return ev
}

// parseExtraction turns raw model output into an EventRecord. Model output
// arrives fenced, bare, or wrapped in prose; anything that still fails to
// parse becomes an empty record that keeps the leading text as description so
// the user can fill the fields in by hand.
func parseExtraction(raw string) model.EventRecord {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if match := jsonObjectPattern.FindString(text); match != "" {
		text = match
	}

	var record model.EventRecord
	if err := json.Unmarshal([]byte(text), &record); err != nil {
		return model.EventRecord{Description: truncate(raw, fallbackDescriptionLimit)}
	}

	return record
}

func cacheKey(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
