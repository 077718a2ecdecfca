package game

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	dto "silverdollar/internal/api/dto/game"
	"silverdollar/internal/converter"
	"silverdollar/internal/game/strip"
	"silverdollar/internal/model"
	"silverdollar/internal/service"
	"silverdollar/pkg/req"
	"silverdollar/pkg/resp"
)

type HandlerDeps struct {
	Serv service.GameService
	Log  *slog.Logger
}

type Handler struct {
	serv service.GameService
	log  *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Create начинает новую партию
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CreateGameRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	g, err := h.serv.Create(r.Context(), converter.ToNewGame(payload))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToGameResponse(*g))
}

// Get возвращает состояние партии
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.serv.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResponse(*g))
}

// Check проверяет ход ?start=&distance= без изменения поля
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	start, err := strconv.Atoi(r.URL.Query().Get("start"))
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "start must be an integer")
		return
	}
	distance, err := strconv.Atoi(r.URL.Query().Get("distance"))
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "distance must be an integer")
		return
	}

	check, err := h.serv.CheckMove(r.Context(), model.Move{
		GameID:   chi.URLParam(r, "id"),
		Start:    start,
		Distance: distance,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCheckResponse(*check))
}

// Move делает ход. Недопустимый ход - 422 и текущее поле, партия продолжается
func (h *Handler) Move(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.MoveRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	g, err := h.serv.Move(r.Context(), converter.ToMove(chi.URLParam(r, "id"), payload))
	switch {
	case err == nil:
		resp.WriteJSONResponse(w, http.StatusOK, dto.MoveResponse{
			Legal: true,
			Game:  converter.ToGameResponse(*g),
		})
	case errors.Is(err, strip.ErrIllegalMove) && g != nil:
		resp.WriteJSONResponse(w, http.StatusUnprocessableEntity, dto.MoveResponse{
			Legal: false,
			Game:  converter.ToGameResponse(*g),
			Error: "Illegal move!",
		})
	default:
		h.writeError(w, r, err)
	}
}

// Delete удаляет партию
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidGame):
		resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrGameNotFound):
		resp.WriteJSONError(w, http.StatusNotFound, "game not found")
	case errors.Is(err, service.ErrGameFinished):
		resp.WriteJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrTooManyGames):
		resp.WriteJSONError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, service.ErrUnauthenticated):
		resp.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.log.ErrorContext(r.Context(), "game request failed", "path", r.URL.Path, "error", err)
		resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
	}
}
