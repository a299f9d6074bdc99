package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"country-explorer/internal/explorer"
	"country-explorer/internal/model"
	"country-explorer/internal/service"
)

type SessionHandler struct {
	explorerService service.ExplorerService
}

func NewSessionHandler(explorerService service.ExplorerService) *SessionHandler {
	return &SessionHandler{
		explorerService: explorerService,
	}
}

// eventRequest is the wire form of a UI event: a control change, a scroll or a navigation.
type eventRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (r eventRequest) toEvent() (explorer.Event, error) {
	switch r.Type {
	case "region":
		return explorer.RegionChanged{Region: r.Value}, nil
	case "subregion":
		return explorer.SubregionChanged{Subregion: r.Value}, nil
	case "population":
		bracket, err := model.ParseBracket(r.Value)
		if err != nil {
			return nil, err
		}
		return explorer.PopulationChanged{Bracket: bracket}, nil
	case "sort":
		key, err := model.ParseSortKey(r.Value)
		if err != nil {
			return nil, err
		}
		return explorer.SortChanged{Key: key}, nil
	case "search":
		return explorer.SearchChanged{Term: r.Value}, nil
	case "scroll":
		return explorer.ScrolledToBottom{}, nil
	case "select":
		return explorer.CountrySelected{Name: r.Value}, nil
	case "back":
		return explorer.BackRequested{}, nil
	}
	return nil, fmt.Errorf("%w: unknown event type %q", model.ErrInvalidCriteria, r.Type)
}

// OpenSession fetches the country list and starts a new explorer session.
func (h *SessionHandler) OpenSession(c *fiber.Ctx) error {
	snapshot, err := h.explorerService.Open(c.UserContext())
	if err != nil {
		return upstream(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": snapshot,
	})
}

func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	snapshot, err := h.explorerService.Snapshot(c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": snapshot,
	})
}

// PostEvent applies one UI event to the session and returns the new snapshot.
func (h *SessionHandler) PostEvent(c *fiber.Ctx) error {
	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid event body: "+err.Error())
	}

	ev, err := req.toEvent()
	if err != nil {
		return err
	}

	snapshot, err := h.explorerService.Dispatch(c.UserContext(), c.Params("id"), ev)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": snapshot,
	})
}

func (h *SessionHandler) CloseSession(c *fiber.Ctx) error {
	if err := h.explorerService.Close(c.UserContext(), c.Params("id")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Session closed",
	})
}

func (h *SessionHandler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ready",
		"sessions": h.explorerService.SessionCount(),
	})
}
