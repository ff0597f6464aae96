package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/http/dto"
	"github.com/ChaiyasitZ/backend-project-AdvCompro/internal/core/domain"
)

var ErrInvalidTodoPayload = errors.New("invalid todo payload")

func BuildCreateTodoListInput(req dto.CreateTodoRequest, categoryID *uint64) (domain.CreateTodoListInput, error) {
	if strings.TrimSpace(req.Title) == "" {
		return domain.CreateTodoListInput{}, ErrInvalidTodoPayload
	}

	return domain.CreateTodoListInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  categoryID,
	}, nil
}

// BuildUpdateTodoListInput accepts a partial update. Fields sent as null or
// with the wrong type are rejected, and at least one field must be present.
func BuildUpdateTodoListInput(req dto.UpdateTodoRequest, raw map[string]json.RawMessage) (domain.UpdateTodoListInput, error) {
	if !hasJSONField(raw, "title") && !hasJSONField(raw, "description") {
		return domain.UpdateTodoListInput{}, ErrInvalidTodoPayload
	}

	if hasJSONField(raw, "title") && (req.Title == nil || isJSONNull(raw["title"])) {
		return domain.UpdateTodoListInput{}, ErrInvalidTodoPayload
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return domain.UpdateTodoListInput{}, ErrInvalidTodoPayload
	}

	if hasJSONField(raw, "description") && (req.Description == nil || isJSONNull(raw["description"])) {
		return domain.UpdateTodoListInput{}, ErrInvalidTodoPayload
	}

	return domain.UpdateTodoListInput{
		Title:       req.Title,
		Description: req.Description,
	}, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
