package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"tempconv/internal/conversion"
	"tempconv/internal/models"
	"tempconv/internal/service"

	"github.com/gin-gonic/gin"
)

// convertRequest carries the raw value so that both JSON numbers and the
// text typed by a user ("36.6") are accepted and parsed strictly.
type convertRequest struct {
	Value json.RawMessage `json:"value"`
	From  string          `json:"from"`
	To    string          `json:"to"`
}

// ConvertRequest is an exported model for Swagger docs of the convert payload.
type ConvertRequest struct {
	// Value to convert, as a number or numeric text
	Value string `json:"value" example:"36.6"`
	// Source scale: celsius, fahrenheit, kelvin, rankine (or c, f, k, r)
	From string `json:"from" example:"celsius"`
	// Target scale
	To string `json:"to" example:"fahrenheit"`
}

type scaleInfo struct {
	Name   models.Scale `json:"name"`
	Symbol string       `json:"symbol"`
}

// scales validates the requested source and target scales.
func (r convertRequest) scales() (models.Scale, models.Scale, error) {
	from, err := models.ParseScale(r.From)
	if err != nil {
		return "", "", fmt.Errorf("%w: from: %w", conversion.ErrInvalidInput, err)
	}
	to, err := models.ParseScale(r.To)
	if err != nil {
		return "", "", fmt.Errorf("%w: to: %w", conversion.ErrInvalidInput, err)
	}
	return from, to, nil
}

func parseRawValue(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("%w: value is required", conversion.ErrInvalidInput)
	}
	var text string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, fmt.Errorf("%w: %v", conversion.ErrInvalidInput, err)
		}
	} else {
		text = string(raw)
	}
	return conversion.ParseInput(text)
}

// bindConvert binds and validates a conversion payload, writing a 400 on failure.
func (h *Handler) bindConvert(c *gin.Context) (service.ConvertParams, bool) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return service.ConvertParams{}, false
	}
	value, err := parseRawValue(req.Value)
	if err != nil {
		h.services.Push(models.NotificationError, service.MsgInvalidNumber)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return service.ConvertParams{}, false
	}
	from, to, err := req.scales()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return service.ConvertParams{}, false
	}
	return service.ConvertParams{Value: value, From: from, To: to}, true
}

// @Summary      List scales
// @Tags         convert
// @Produce      json
// @Success      200  {array}  scaleInfo
// @Router       /api/v1/scales [get]
// @Security     BearerAuth
func (h *Handler) listScales(c *gin.Context) {
	out := make([]scaleInfo, 0, len(models.Scales))
	for _, s := range models.Scales {
		out = append(out, scaleInfo{Name: s, Symbol: conversion.SymbolOf(s)})
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Convert a temperature
// @Description  Records the conversion in history and returns display values, colors and the indicator position
// @Tags         convert
// @Accept       json
// @Produce      json
// @Param        body  body   ConvertRequest  true  "Conversion payload"
// @Success      200   {object}  models.Conversion
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/convert [post]
// @Security     BearerAuth
func (h *Handler) convert(c *gin.Context) {
	p, ok := h.bindConvert(c)
	if !ok {
		return
	}
	view, err := h.services.Convert(c.Request.Context(), p)
	if err != nil {
		h.respondError(c, err, "convert_failed", "from", p.From, "to", p.To)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Swap scales
// @Description  Swaps source and target; a previous result becomes the new input
// @Tags         convert
// @Produce      json
// @Success      200  {object}  service.SwapResult
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/convert/swap [post]
// @Security     BearerAuth
func (h *Handler) swap(c *gin.Context) {
	res, err := h.services.Swap(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "convert_swap_failed")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Get converter state
// @Tags         convert
// @Produce      json
// @Success      200  {object}  models.ConverterState
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/convert/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	st, err := h.services.State(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "convert_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
