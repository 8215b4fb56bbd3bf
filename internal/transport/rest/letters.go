package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
	lettersvc "github.com/amoura-app/amoura-backend/internal/service/letter"
)

type letterService interface {
	Save(ctx context.Context, input lettersvc.SaveInput) (*domain.Letter, error)
	List(ctx context.Context, input lettersvc.ListInput) ([]*domain.Letter, int, error)
	Get(ctx context.Context, input lettersvc.GetInput) (*domain.Letter, error)
}

// LetterHandler serves the saved-letter endpoints.
type LetterHandler struct {
	service letterService
	logger  *slog.Logger
}

func NewLetterHandler(service letterService, logger *slog.Logger) *LetterHandler {
	return &LetterHandler{service: service, logger: logger}
}

type saveLetterRequest struct {
	Content  string  `json:"content"`
	ImageURL string  `json:"imageUrl"`
	Prompt   string  `json:"prompt"`
	Language *string `json:"language"`
}

type letterResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl"`
	Prompt    string    `json:"prompt"`
	Language  *string   `json:"language,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type letterListResponse struct {
	Letters []letterResponse `json:"letters"`
	Total   int              `json:"total"`
}

func (h *LetterHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveLetterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	letter, err := h.service.Save(r.Context(), lettersvc.SaveInput{
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Prompt:   req.Prompt,
		Language: req.Language,
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLetterResponse(letter))
}

func (h *LetterHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid offset")
		return
	}

	letters, total, err := h.service.List(r.Context(), lettersvc.ListInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	resp := letterListResponse{
		Letters: make([]letterResponse, 0, len(letters)),
		Total:   total,
	}
	for _, l := range letters {
		resp.Letters = append(resp.Letters, toLetterResponse(l))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *LetterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid letter id")
		return
	}

	letter, err := h.service.Get(r.Context(), lettersvc.GetInput{LetterID: id})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toLetterResponse(letter))
}

func toLetterResponse(l *domain.Letter) letterResponse {
	return letterResponse{
		ID:        l.ID.String(),
		Content:   l.Content,
		ImageURL:  l.ImageURL,
		Prompt:    l.Prompt,
		Language:  l.Language,
		CreatedAt: l.CreatedAt,
	}
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
