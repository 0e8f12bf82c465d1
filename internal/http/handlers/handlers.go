package handlers

import (
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ticketwise/backend/internal/dataset"
	"github.com/ticketwise/backend/internal/models"
	"github.com/ticketwise/backend/internal/service"
	"github.com/ticketwise/backend/internal/store"
)

type Handler struct {
	Store  *store.Store
	Config service.Config
	Logger zerolog.Logger

	// Runs are serialized: the engine owns the agent working set for the
	// duration of one batch.
	runMu sync.Mutex
}

type ImportSummary struct {
	Agents   int      `json:"agents"`
	Tickets  int      `json:"tickets"`
	Warnings []string `json:"warnings"`
}

type ProcessResponse struct {
	Assignments []models.AssignmentRecord `json:"assignments"`
	Summary     models.RunSummary         `json:"summary"`
}

// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]any
// @Router /healthz [get]
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Import a dataset
// @Description Replace the current agent pool and ticket batch with the uploaded JSON dataset
// @Tags import
// @Accept json
// @Produce json
// @Success 200 {object} ImportSummary
// @Failure 400 {object} map[string]any
// @Router /api/import [post]
func (h *Handler) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "failed to read request body", err.Error())
		return
	}
	ds, warnings, err := dataset.Parse(raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_DATASET", "dataset is not valid JSON", err.Error())
		return
	}
	if len(ds.Agents) == 0 {
		writeError(c, http.StatusBadRequest, "INVALID_DATASET", "dataset has no agents", nil)
		return
	}

	h.Store.ReplaceDataset(ds.Agents, ds.Tickets)
	h.Logger.Info().
		Int("agents", len(ds.Agents)).
		Int("tickets", len(ds.Tickets)).
		Int("warnings", len(warnings)).
		Msg("dataset imported")

	summary := ImportSummary{Agents: len(ds.Agents), Tickets: len(ds.Tickets), Warnings: warnings}
	if summary.Warnings == nil {
		summary.Warnings = []string{}
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Run assignment on the imported dataset
// @Tags process
// @Produce json
// @Success 200 {object} ProcessResponse
// @Failure 409 {object} map[string]any
// @Failure 422 {object} map[string]any
// @Router /api/process [post]
func (h *Handler) Process(c *gin.Context) {
	h.runMu.Lock()
	defer h.runMu.Unlock()

	agents, tickets, err := h.Store.Snapshot()
	if err != nil {
		writeError(c, http.StatusConflict, "NO_DATASET", "import a dataset before processing", nil)
		return
	}

	engine := &service.Engine{Config: h.Config, Logger: h.Logger}
	started := time.Now().UTC()
	records, summary, err := engine.Run(agents, tickets)
	if err != nil {
		writeError(c, http.StatusUnprocessableEntity, "INVALID_CONFIG", "assignment configuration rejected", err.Error())
		return
	}

	run := models.Run{StartedAt: started, FinishedAt: time.Now().UTC(), Summary: summary}
	h.Store.SaveRun(agents, records, run)
	h.Logger.Info().Interface("counts", summary.Counts).Msg("assignment run complete")

	c.JSON(http.StatusOK, ProcessResponse{Assignments: records, Summary: summary})
}

// @Summary List assignment records from the latest run
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/assignments [get]
func (h *Handler) AssignmentsList(c *gin.Context) {
	records := h.Store.Assignments()
	if records == nil {
		records = []models.AssignmentRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"assignments": records})
}

// @Summary List agents with current loads
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/agents [get]
func (h *Handler) AgentsList(c *gin.Context) {
	agents := h.Store.Agents()
	if agents == nil {
		agents = []models.Agent{}
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents})
}

// @Summary List tickets in the current batch
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/tickets [get]
func (h *Handler) TicketsList(c *gin.Context) {
	tickets := h.Store.Tickets()
	if tickets == nil {
		tickets = []models.Ticket{}
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// @Summary Latest run metadata and summary
// @Produce json
// @Success 200 {object} models.Run
// @Failure 404 {object} map[string]any
// @Router /api/runs/latest [get]
func (h *Handler) RunsLatest(c *gin.Context) {
	run, err := h.Store.LatestRun()
	if err != nil {
		writeError(c, http.StatusNotFound, "NO_RUN", "no assignment run recorded yet", nil)
		return
	}
	c.JSON(http.StatusOK, run)
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	body := gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
	if details != nil {
		body["error"].(gin.H)["details"] = details
	}
	c.JSON(status, body)
}
