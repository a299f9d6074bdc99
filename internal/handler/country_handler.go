package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"country-explorer/internal/explorer"
	"country-explorer/internal/model"
	"country-explorer/internal/service"
)

type CountryHandler struct {
	detailsService service.DetailsService
}

func NewCountryHandler(detailsService service.DetailsService) *CountryHandler {
	return &CountryHandler{
		detailsService: detailsService,
	}
}

type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type regionOption struct {
	Region     string   `json:"region"`
	Subregions []string `json:"subregions"`
}

// GetOptions lists the values the filter and sort controls offer.
func (h *CountryHandler) GetOptions(c *fiber.Ctx) error {
	regions := make([]regionOption, 0)
	for _, region := range explorer.Regions() {
		regions = append(regions, regionOption{Region: region, Subregions: explorer.Subregions(region)})
	}

	brackets := make([]option, 0, len(model.Brackets))
	for _, b := range model.Brackets {
		brackets = append(brackets, option{Value: string(b), Label: b.Label()})
	}

	sortKeys := make([]option, 0, len(model.SortKeys))
	for _, k := range model.SortKeys {
		sortKeys = append(sortKeys, option{Value: string(k), Label: k.Label()})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"regions":    regions,
			"population": brackets,
			"sort_by":    sortKeys,
			"page_size":  explorer.PageSize,
		},
	})
}

// GetDetails looks up the session's selected country.
func (h *CountryHandler) GetDetails(c *fiber.Ctx) error {
	details, err := h.detailsService.Load(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) ||
			errors.Is(err, model.ErrNoSelection) ||
			errors.Is(err, model.ErrNotFound) {
			return err
		}
		return upstream(err)
	}

	return c.JSON(fiber.Map{
		"data":   details,
		"fields": details.Fields(),
	})
}
