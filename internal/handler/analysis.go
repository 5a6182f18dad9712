package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/razanodeh01/Huffman-Text-Compression/internal/repo"
	"github.com/razanodeh01/Huffman-Text-Compression/internal/service"
	"github.com/razanodeh01/Huffman-Text-Compression/pkg/huffman"
	"github.com/razanodeh01/Huffman-Text-Compression/pkg/textsource"
)

type AnalysisHandler struct {
	svc *service.AnalysisService
}

func NewAnalysisHandler(s *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{svc: s}
}

type createAnalysisReq struct {
	Text         string `json:"text"          binding:"required"`
	Source       string `json:"source"`
	KeepCase     bool   `json:"keep_case"`
	KeepNewlines bool   `json:"keep_newlines"`
}

func (h *AnalysisHandler) Create(c *gin.Context) {
	var req createAnalysisReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, created, err := h.svc.Analyze(c.Request.Context(), service.AnalyzeRequest{
		Text:   req.Text,
		Source: req.Source,
		Policy: textsource.Policy{KeepCase: req.KeepCase, KeepNewlines: req.KeepNewlines},
	})
	if err != nil {
		writeError(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, a)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AnalysisHandler) GetByID(c *gin.Context) {
	a, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AnalysisHandler) List(c *gin.Context) {
	as, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, as)
}

// Subset serves ?symbols=abc&skip_unknown=true.
func (h *AnalysisHandler) Subset(c *gin.Context) {
	symbols := []rune(c.Query("symbols"))
	if len(symbols) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbols is required"})
		return
	}
	skip := false
	if v := c.Query("skip_unknown"); v != "" {
		var err error
		if skip, err = strconv.ParseBool(v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "skip_unknown: " + err.Error()})
			return
		}
	}
	rows, skipped, err := h.svc.Subset(c.Request.Context(), c.Param("id"), symbols, skip)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows, "skipped": skipped})
}

func writeError(c *gin.Context, err error) {
	var use *huffman.UnknownSymbolError
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
	case errors.As(err, &use):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "symbol": string(use.Symbol)})
	case errors.Is(err, huffman.ErrEmptyAlphabet):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
