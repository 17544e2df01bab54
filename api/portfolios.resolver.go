package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type savePortfolioRequest struct {
	Name   string                 `json:"name"`
	Assets []PortfolioItemRequest `json:"assets"`
}

func (h ApiHandler) listPortfolios(c *gin.Context) {
	portfolios, err := h.SavedPortfolioRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolios)
}

func (h ApiHandler) getPortfolio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid portfolio id: %w", err), c, 400)
		return
	}

	portfolio, err := h.SavedPortfolioRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if portfolio == nil {
		returnErrorJsonCode(fmt.Errorf("portfolio %s not found", id), c, 404)
		return
	}

	c.JSON(200, portfolio)
}

func (h ApiHandler) createPortfolio(c *gin.Context) {
	var requestBody savePortfolioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}
	if requestBody.Name == "" {
		returnErrorJsonCode(fmt.Errorf("portfolio name is required"), c, 400)
		return
	}

	portfolio, err := h.SavedPortfolioRepository.Add(requestBody.Name, toPortfolioItems(requestBody.Assets))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(201, portfolio)
}

func (h ApiHandler) updatePortfolio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid portfolio id: %w", err), c, 400)
		return
	}

	var requestBody savePortfolioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	portfolio, err := h.SavedPortfolioRepository.Update(id, requestBody.Name, toPortfolioItems(requestBody.Assets))
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if portfolio == nil {
		returnErrorJsonCode(fmt.Errorf("portfolio %s not found", id), c, 404)
		return
	}

	c.JSON(200, portfolio)
}

func (h ApiHandler) deletePortfolio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid portfolio id: %w", err), c, 400)
		return
	}

	err = h.SavedPortfolioRepository.Delete(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"deleted": id.String()})
}
